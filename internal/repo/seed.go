package repo

import "github.com/rogerio-castellano/inventory-manager/internal/models"

// DefaultLowStockThreshold is the threshold a new store starts with.
const DefaultLowStockThreshold = 5

// NewestItemPlaceholder is reported as the newest item of an empty store.
const NewestItemPlaceholder = "-"

// SampleProducts returns a fresh copy of the seed rows, in their fixed order.
func SampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Apple", Quantity: 50, Price: 1.5},
		{ID: 2, Name: "Banana", Quantity: 20, Price: 1.0},
		{ID: 3, Name: "Orange", Quantity: 10, Price: 2.0},
		{ID: 4, Name: "Milk", Quantity: 5, Price: 3.0},
	}
}
