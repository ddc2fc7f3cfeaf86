package stripegw

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"go.uber.org/zap"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	usecase "github.com/avGenie/go-order-lifecycle/internal/app/usecase/errors"
)

const (
	Provider = "stripe"

	metadataOrderNumber  = "order_number"
	metadataRefundNumber = "refund_number"

	defaultCurrency = "cny"
)

var (
	ErrAPIKeyMissing  = errors.New("stripe api key is required")
	ErrIntentNotFound = errors.New("payment intent for order not found")
)

type intentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type refundAPI interface {
	New(params *stripe.RefundParams) (*stripe.Refund, error)
}

// intentFinder resolves the payment intent created for an order.
type intentFinder func(ctx context.Context, number entity.OrderNumber) (string, error)

type clients struct {
	intents intentAPI
	refunds refundAPI
	find    intentFinder
}

// Gateway creates payment intents and refunds through Stripe. The order
// number is the idempotency key of the intent and the refund number is the
// idempotency key of the refund, so retries never charge or refund twice.
type Gateway struct {
	api      clients
	currency string
}

func New(apiKey, currency string, backends *stripe.Backends) (*Gateway, error) {
	apiKey = strings.TrimSpace(apiKey)
	if len(apiKey) == 0 {
		return nil, ErrAPIKeyMissing
	}

	sc := client.New(apiKey, backends)

	return newWithClients(currency, clients{
		intents: sc.PaymentIntents,
		refunds: sc.Refunds,
		find: func(ctx context.Context, number entity.OrderNumber) (string, error) {
			params := &stripe.PaymentIntentSearchParams{}
			params.Context = ctx
			params.Query = fmt.Sprintf("metadata['%s']:'%s'", metadataOrderNumber, number)

			iter := sc.PaymentIntents.Search(params)
			for iter.Next() {
				return iter.PaymentIntent().ID, nil
			}
			if err := iter.Err(); err != nil {
				return "", err
			}

			return "", ErrIntentNotFound
		},
	}), nil
}

func newWithClients(currency string, api clients) *Gateway {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if len(currency) == 0 {
		currency = defaultCurrency
	}

	return &Gateway{
		api:      api,
		currency: currency,
	}
}

func (g *Gateway) Pay(ctx context.Context, request entity.PayRequest) (entity.Prepay, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(minorUnits(request.Amount)),
		Currency:    stripe.String(g.currency),
		Description: stripe.String(request.Description),
		Metadata: map[string]string{
			metadataOrderNumber: request.OrderNumber.String(),
		},
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey("pay-" + request.OrderNumber.String())

	intent, err := g.api.intents.New(params)
	if err != nil {
		return entity.Prepay{}, fmt.Errorf("%w: create payment intent: %w", usecase.ErrPaymentGateway, err)
	}
	if intent.Status == stripe.PaymentIntentStatusSucceeded {
		return entity.Prepay{}, usecase.ErrOrderPaid
	}

	zap.L().Debug("payment intent created",
		zap.String("number", request.OrderNumber.String()),
		zap.String("intent", intent.ID),
	)

	return entity.Prepay{
		Provider:     Provider,
		Reference:    intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (g *Gateway) Refund(ctx context.Context, request entity.RefundRequest) error {
	intentID, err := g.api.find(ctx, request.OrderNumber)
	if err != nil {
		return fmt.Errorf("%w: lookup payment intent: %w", usecase.ErrPaymentGateway, err)
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(intentID),
		Amount:        stripe.Int64(minorUnits(request.RefundAmount)),
		Reason:        stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
		Metadata: map[string]string{
			metadataOrderNumber:  request.OrderNumber.String(),
			metadataRefundNumber: request.RefundNumber,
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey("refund-" + request.RefundNumber)

	if _, err := g.api.refunds.New(params); err != nil {
		return fmt.Errorf("%w: refund payment intent: %w", usecase.ErrPaymentGateway, err)
	}

	zap.L().Debug("refund created",
		zap.String("number", request.OrderNumber.String()),
		zap.String("refund", request.RefundNumber),
	)

	return nil
}

func minorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
