package usecase

import "errors"

var (
	ErrTokenNotValid = errors.New("token is not valid")
	ErrTokenExpired  = errors.New("token is expired")
)

var (
	ErrAddressMissing = errors.New("address book entry is missing")
	ErrCartEmpty      = errors.New("shopping cart is empty")
	ErrOrderNotFound  = errors.New("order not found")
	ErrReasonRequired = errors.New("reason is required")

	// ErrOrderStatus covers both invalid transitions and transitions lost to a
	// concurrent writer.
	ErrOrderStatus = errors.New("order status no longer permits this action")
	ErrOrderPaid   = errors.New("order has already been paid")

	// ErrPaymentGateway is retryable by the caller; local state is untouched.
	ErrPaymentGateway = errors.New("payment gateway error")

	// ErrDuplicatePaymentEvent is recognized and swallowed by the reconciler.
	ErrDuplicatePaymentEvent = errors.New("duplicate payment event")
)
