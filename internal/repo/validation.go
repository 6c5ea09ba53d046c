package repo

import (
	"math"
	"strings"
)

func validateProduct(id int, name string, quantity int, price float64) error {
	if id <= 0 {
		return NewValidationError("ID must be > 0.")
	}
	if strings.TrimSpace(name) == "" {
		return NewValidationError("Name cannot be empty.")
	}
	if quantity < 0 {
		return NewValidationError("Quantity must be >= 0.")
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return NewValidationError("Price must be a finite number.")
	}
	if price < 0 {
		return NewValidationError("Price must be >= 0.")
	}
	return nil
}
