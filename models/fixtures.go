package models

// Sample storefront data inserted by the admin seed endpoint. Both the
// seed route and the tests share this single fixture set.

// MenuItemFixtures returns the fixed sample menu: 8 beverages.
// A fresh slice is returned each call so inserts never mutate shared state.
func MenuItemFixtures() []MenuItem {
	return []MenuItem{
		{Name: "Espresso", Description: "Rich and bold Italian classic", Price: 3.50, Image: "https://images.unsplash.com/photo-1579992357154-faf4bde95b3d?w=400&h=300&fit=crop", Category: "espresso"},
		{Name: "Cappuccino", Description: "Smooth espresso with steamed milk foam", Price: 4.50, Image: "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=400&h=300&fit=crop", Category: "espresso"},
		{Name: "Caramel Latte", Description: "Sweet caramel with creamy milk", Price: 5.00, Image: "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?w=400&h=300&fit=crop", Category: "latte"},
		{Name: "Mocha", Description: "Chocolate and espresso perfection", Price: 5.50, Image: "https://images.unsplash.com/photo-1607260550778-aa9d29444ce1?w=400&h=300&fit=crop", Category: "mocha"},
		{Name: "Flat White", Description: "Velvety microfoam with espresso", Price: 4.75, Image: "https://images.unsplash.com/photo-1542990253-0d0f5be5f0ed?w=400&h=300&fit=crop", Category: "espresso"},
		{Name: "Cold Brew", Description: "Smooth, refreshing cold-steeped coffee", Price: 4.25, Image: "https://images.unsplash.com/photo-1517487881594-2787fef5ebf7?w=400&h=300&fit=crop", Category: "cold"},
		{Name: "Macchiato", Description: "Espresso marked with foam", Price: 3.75, Image: "https://images.unsplash.com/photo-1557006021-b85faa2bc5e2?w=400&h=300&fit=crop", Category: "espresso"},
		{Name: "Affogato", Description: "Espresso over vanilla ice cream", Price: 6.00, Image: "https://images.unsplash.com/photo-1563741451-a0f6a7624c95?w=400&h=300&fit=crop", Category: "dessert"},
	}
}

// ProductFixtures returns the fixed sample bean catalog: 6 products.
func ProductFixtures() []Product {
	return []Product{
		{Name: "Ethiopian Blend", Description: "Fruity and floral notes", Price: 18.99, Rating: 5, Image: "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=400&h=300&fit=crop"},
		{Name: "Colombian Supreme", Description: "Rich and balanced", Price: 16.99, Rating: 4, Image: "https://images.unsplash.com/photo-1447933601403-0c6688de566e?w=400&h=300&fit=crop"},
		{Name: "Italian Roast", Description: "Dark and intense", Price: 15.99, Rating: 5, Image: "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?w=400&h=300&fit=crop"},
		{Name: "Brazilian Santos", Description: "Smooth and nutty", Price: 17.99, Rating: 4, Image: "https://images.unsplash.com/photo-1511537190424-bbbab87ac5eb?w=400&h=300&fit=crop"},
		{Name: "Sumatra Mandheling", Description: "Full-bodied and earthy", Price: 19.99, Rating: 5, Image: "https://images.unsplash.com/photo-1525385133512-2f3bdd039054?w=400&h=300&fit=crop"},
		{Name: "Kenya AA", Description: "Bright and wine-like", Price: 20.99, Rating: 5, Image: "https://images.unsplash.com/photo-1610889556528-9a770e32642f?w=400&h=300&fit=crop"},
	}
}
