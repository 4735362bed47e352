package service

import "lumen/internal/models"

// merchantTemplate is one entry in the fixed extraction catalog. Item
// prices are line costs; totals are computed at extraction time.
type merchantTemplate struct {
	Merchant string
	Items    []models.Item
}

// extractionCatalog holds the receipt templates the simulated extractor
// draws from. Templates are never handed out directly: extraction copies
// the items so the catalog stays pristine.
var extractionCatalog = []merchantTemplate{
	{
		Merchant: "Whole Foods Market",
		Items: []models.Item{
			{Name: "Organic Bananas", Quantity: 2, Price: 4.98, Category: "Groceries"},
			{Name: "Almond Milk", Quantity: 1, Price: 5.99, Category: "Groceries"},
			{Name: "Chicken Breast", Quantity: 3, Price: 18.75, Category: "Groceries"},
			{Name: "Fresh Spinach", Quantity: 2, Price: 7.98, Category: "Groceries"},
			{Name: "Greek Yogurt", Quantity: 4, Price: 12.00, Category: "Groceries"},
		},
	},
	{
		Merchant: "Target",
		Items: []models.Item{
			{Name: "Laundry Detergent", Quantity: 1, Price: 15.99, Category: "Household"},
			{Name: "Paper Towels", Quantity: 2, Price: 24.98, Category: "Household"},
			{Name: "Notebook", Quantity: 3, Price: 11.97, Category: "Office Supplies"},
			{Name: "USB Cable", Quantity: 1, Price: 12.99, Category: "Electronics"},
		},
	},
	{
		Merchant: "Amazon",
		Items: []models.Item{
			{Name: "Wireless Mouse", Quantity: 1, Price: 29.99, Category: "Electronics"},
			{Name: "Phone Case", Quantity: 1, Price: 19.99, Category: "Electronics"},
			{Name: "HDMI Cable", Quantity: 2, Price: 25.98, Category: "Electronics"},
			{Name: "Book: AI Fundamentals", Quantity: 1, Price: 34.99, Category: "Books"},
		},
	},
	{
		Merchant: "Shell Gas Station",
		Items: []models.Item{
			{Name: "Premium Gasoline", Quantity: 12, Price: 45.20, Category: "Transportation"},
			{Name: "Car Wash", Quantity: 1, Price: 8.99, Category: "Transportation"},
		},
	},
	{
		Merchant: "Starbucks",
		Items: []models.Item{
			{Name: "Caffe Latte", Quantity: 2, Price: 9.50, Category: "Dining"},
			{Name: "Blueberry Muffin", Quantity: 1, Price: 3.75, Category: "Dining"},
		},
	},
}
