package storage

import "errors"

var (
	ErrOrderNotFound   = errors.New("order with given id or number doesn't exist in storage")
	ErrAddressNotFound = errors.New("address with given id doesn't exist in storage")
	ErrRefundNotFound  = errors.New("pending refund for given order doesn't exist in storage")
	ErrEmptyLineItems  = errors.New("order must contain at least one line item")
)
