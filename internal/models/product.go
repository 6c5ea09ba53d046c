package models

// Product represents a product entity in the inventory system.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// IsLowStock reports whether the product is at or below the given threshold.
func (p Product) IsLowStock(threshold int) bool {
	return p.Quantity <= threshold
}
