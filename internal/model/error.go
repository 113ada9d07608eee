package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeEmptyCheckout   = "EMPTY_CHECKOUT"
	ErrCodeInvalidRating   = "INVALID_RATING"
	ErrCodeDishNotFound    = "DISH_NOT_FOUND"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrEmptyCheckout   = NewDomainError(ErrCodeEmptyCheckout, "Cart is empty, nothing to check out")
	ErrInvalidRating   = NewDomainError(ErrCodeInvalidRating, "Rating must be between 1 and 5")
	ErrDishNotFound    = NewDomainError(ErrCodeDishNotFound, "Dish is not on the menu")
)
