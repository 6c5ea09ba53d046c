// Package forms parses the text typed into product forms (console prompts,
// urlencoded bodies, CSV cells) before it reaches the product store.
package forms

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

// ProductInput is a product form after parsing.
type ProductInput struct {
	ID       int
	Name     string
	Quantity int
	Price    float64
}

// ParseNonNegativeInt parses s as an integer >= 0. field names the input in the error message.
func ParseNonNegativeInt(s, field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, repo.NewValidationError(fmt.Sprintf("%s must be a non-negative integer.", field))
	}
	return v, nil
}

// ParseNonNegativeFloat parses s as a finite number >= 0.
func ParseNonNegativeFloat(s, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, repo.NewValidationError(fmt.Sprintf("%s must be a non-negative number.", field))
	}
	return v, nil
}

// RequireText returns s trimmed, or an error when nothing is left.
func RequireText(s, field string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", repo.NewValidationError(fmt.Sprintf("%s cannot be empty.", field))
	}
	return t, nil
}

// ParseID parses a product ID typed by the user.
func ParseID(s string) (int, error) {
	return ParseNonNegativeInt(s, "ID")
}

// ParseProduct parses the four product fields in form order: ID, name, quantity, price.
func ParseProduct(id, name, quantity, price string) (ProductInput, error) {
	var in ProductInput
	var err error
	if in.ID, err = ParseID(id); err != nil {
		return ProductInput{}, err
	}
	if in.Name, err = RequireText(name, "Name"); err != nil {
		return ProductInput{}, err
	}
	if in.Quantity, err = ParseNonNegativeInt(quantity, "Quantity"); err != nil {
		return ProductInput{}, err
	}
	if in.Price, err = ParseNonNegativeFloat(price, "Price"); err != nil {
		return ProductInput{}, err
	}
	return in, nil
}
