package callback

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
	"go.uber.org/zap"

	httputils "github.com/avGenie/go-order-lifecycle/internal/app/controller/http/utils"
	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	numbers "github.com/avGenie/go-order-lifecycle/internal/app/usecase/validator"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	maxStripePayload      = 65536

	// set on intents and refunds by the stripe gateway
	metadataOrderNumber = "order_number"
)

// StripeEvents receives Stripe webhook events signed with the endpoint
// secret. Events that do not concern an order are acknowledged and dropped.
func (c *Callback) StripeEvents(secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(secret) == 0 {
			zap.L().Warn("stripe event received but webhook secret is not configured")
			http.Error(w, "stripe webhook is not configured", http.StatusServiceUnavailable)
			return
		}

		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxStripePayload))
		if err != nil {
			http.Error(w, "cannot read stripe event", http.StatusBadRequest)
			return
		}

		event, err := webhook.ConstructEventWithOptions(payload, r.Header.Get(stripeSignatureHeader), secret,
			webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
		if err != nil {
			zap.L().Warn("stripe event rejected", zap.Error(err))
			http.Error(w, "stripe signature verification failed", http.StatusUnauthorized)
			return
		}

		outcome, number, ok, err := stripeOutcome(event)
		if err != nil {
			zap.L().Info("malformed stripe event", zap.String("event", event.ID), zap.Error(err))
			http.Error(w, "malformed stripe event", http.StatusBadRequest)
			return
		}
		if !ok {
			w.WriteHeader(http.StatusOK)
			return
		}
		if !numbers.OrderNumberValidation(number) {
			zap.L().Info("stripe event without order number",
				zap.String("event", event.ID),
				zap.String("type", string(event.Type)),
			)
			w.WriteHeader(http.StatusOK)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		if err := c.reconciler.HandleGatewayEvent(ctx, entity.GatewayEvent{OrderNumber: number, Outcome: outcome}); err != nil {
			zap.L().Error("error while handling stripe event",
				zap.String("event", event.ID),
				zap.String("number", number.String()),
				zap.Error(err),
			)
			httputils.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// stripeOutcome maps an event onto a gateway outcome. ok is false for events
// that carry no outcome.
func stripeOutcome(event stripe.Event) (outcome entity.GatewayOutcome, number entity.OrderNumber, ok bool, err error) {
	if event.Data == nil {
		return "", "", false, fmt.Errorf("event %s has no data", event.ID)
	}

	var metadata map[string]string
	switch event.Type {
	case stripe.EventTypePaymentIntentSucceeded:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return "", "", false, err
		}
		outcome, metadata = entity.OutcomePaid, intent.Metadata

	case stripe.EventTypeChargeRefunded:
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return "", "", false, err
		}
		if !charge.Refunded {
			return "", "", false, nil
		}
		outcome, metadata = entity.OutcomeRefundConfirmed, charge.Metadata

	case stripe.EventTypeRefundUpdated, stripe.EventTypeChargeRefundUpdated:
		var refund stripe.Refund
		if err := json.Unmarshal(event.Data.Raw, &refund); err != nil {
			return "", "", false, err
		}
		if refund.Status != stripe.RefundStatusSucceeded {
			return "", "", false, nil
		}
		outcome, metadata = entity.OutcomeRefundConfirmed, refund.Metadata

	default:
		return "", "", false, nil
	}

	return outcome, entity.OrderNumber(metadata[metadataOrderNumber]), true, nil
}
