package repo

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicatedValueUnique is returned when a product ID is already taken.
	ErrDuplicatedValueUnique = errors.New("duplicated unique value")

	// ErrInvalidProduct is returned when a field of a product fails validation.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrUserNotFound is returned when no user matches a username.
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError carries the human-readable message shown to the user when an
// inventory operation is rejected. The wrapped sentinel classifies the failure.
type ValidationError struct {
	Message string
	err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

// NewValidationError builds a ValidationError classified as ErrInvalidProduct.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message, err: ErrInvalidProduct}
}

func duplicateIDError() *ValidationError {
	return &ValidationError{Message: "A product with this ID already exists.", err: ErrDuplicatedValueUnique}
}

func notFoundError(id int) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("No product found with ID %d", id), err: ErrProductNotFound}
}

// AsValidationError reports whether err is (or wraps) a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
