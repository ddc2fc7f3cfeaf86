package entity

import "fmt"

// OrderStatus codes are part of the external API.
type OrderStatus int

const (
	StatusPendingPayment     OrderStatus = 1
	StatusToBeConfirmed      OrderStatus = 2
	StatusConfirmed          OrderStatus = 3
	StatusDeliveryInProgress OrderStatus = 4
	StatusCompleted          OrderStatus = 5
	StatusCancelled          OrderStatus = 6
)

var orderStatusNames = map[OrderStatus]string{
	StatusPendingPayment:     "PENDING_PAYMENT",
	StatusToBeConfirmed:      "TO_BE_CONFIRMED",
	StatusConfirmed:          "CONFIRMED",
	StatusDeliveryInProgress: "DELIVERY_IN_PROGRESS",
	StatusCompleted:          "COMPLETED",
	StatusCancelled:          "CANCELLED",
}

func ParseOrderStatus(code int) (OrderStatus, error) {
	status := OrderStatus(code)
	if !status.Valid() {
		return 0, fmt.Errorf("unknown order status code %d", code)
	}

	return status, nil
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusNames[s]

	return ok
}

func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s OrderStatus) String() string {
	name, ok := orderStatusNames[s]
	if !ok {
		return fmt.Sprintf("OrderStatus(%d)", int(s))
	}

	return name
}

type PayStatus int

const (
	PayStatusUnpaid PayStatus = 0
	PayStatusPaid   PayStatus = 1
	PayStatusRefund PayStatus = 2
)

func ParsePayStatus(code int) (PayStatus, error) {
	status := PayStatus(code)
	switch status {
	case PayStatusUnpaid, PayStatusPaid, PayStatusRefund:
		return status, nil
	}

	return 0, fmt.Errorf("unknown pay status code %d", code)
}

func (s PayStatus) String() string {
	switch s {
	case PayStatusUnpaid:
		return "UNPAID"
	case PayStatusPaid:
		return "PAID"
	case PayStatusRefund:
		return "REFUND"
	default:
		return fmt.Sprintf("PayStatus(%d)", int(s))
	}
}
