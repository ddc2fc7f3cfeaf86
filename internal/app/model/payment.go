package model

import "github.com/shopspring/decimal"

type PaymentRequest struct {
	OrderNumber string `json:"orderNumber"`
}

type PrepayResponse struct {
	Provider     string            `json:"provider"`
	Reference    string            `json:"reference"`
	ClientSecret string            `json:"clientSecret,omitempty"`
	Params       map[string]string `json:"params,omitempty"`
}

// GatewayNotification is posted by the payment gateway to the callback
// endpoints.
type GatewayNotification struct {
	OrderNumber string `json:"orderNumber"`
}

// Wire models of the HTTP payment gateway.

type GatewayPayRequest struct {
	OrderNumber string          `json:"out_trade_no"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	PayerRef    string          `json:"payer"`
}

type GatewayPayResponse struct {
	Code      string            `json:"code,omitempty"`
	Reference string            `json:"prepay_id"`
	Params    map[string]string `json:"params,omitempty"`
}

type GatewayRefundRequest struct {
	OrderNumber    string          `json:"out_trade_no"`
	RefundNumber   string          `json:"out_refund_no"`
	RefundAmount   decimal.Decimal `json:"refund"`
	OriginalAmount decimal.Decimal `json:"total"`
}

type GatewayErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
