package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the acting user is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// Checkout and payment rule violations. These are recoverable by the
// caller: they are raised before or inside the atomic unit that would
// otherwise commit, so persisted state is never corrupted.
var (
	// ErrEmptyCart indicates a checkout was attempted with no cart items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInsufficientStock indicates a requested quantity exceeds the available stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInsufficientPayment indicates the paid amount is less than the transaction total.
	ErrInsufficientPayment = errors.New("insufficient payment")

	// ErrUnsupportedPaymentMethod indicates no strategy is registered for the requested method.
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")

	// ErrAlreadyPaid indicates settlement was attempted on a transaction that is already paid.
	ErrAlreadyPaid = errors.New("transaction already paid")

	// ErrTransactionFailed indicates settlement was attempted on a transaction in a failed state.
	ErrTransactionFailed = errors.New("transaction in a failed state")
)

// AppError wraps a lower-level failure with an HTTP-ish status code and
// a message safe to surface past the API boundary.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
