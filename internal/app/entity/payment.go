package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type GatewayOutcome string

const (
	OutcomePaid            GatewayOutcome = "PAID"
	OutcomeRefundConfirmed GatewayOutcome = "REFUND_CONFIRMED"
)

type GatewayEvent struct {
	OrderNumber OrderNumber
	Outcome     GatewayOutcome
}

type PayRequest struct {
	OrderNumber OrderNumber
	Amount      decimal.Decimal
	Description string
	PayerRef    string
}

// Prepay is the gateway payload the client needs to complete the payment.
type Prepay struct {
	Provider     string
	Reference    string
	ClientSecret string
	Params       map[string]string
}

type RefundRequest struct {
	OrderNumber    OrderNumber
	RefundNumber   string
	RefundAmount   decimal.Decimal
	OriginalAmount decimal.Decimal
}

type RefundStatus string

const (
	RefundPending RefundStatus = "PENDING"
	RefundDone    RefundStatus = "DONE"
)

type Refunds []Refund

// Refund tracks a refund owed for a cancelled paid order until the gateway
// accepts it.
type Refund struct {
	ID           int64
	OrderID      OrderID
	OrderNumber  OrderNumber
	RefundNumber string
	Amount       decimal.Decimal
	Status       RefundStatus
	Attempts     int
	LastError    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
