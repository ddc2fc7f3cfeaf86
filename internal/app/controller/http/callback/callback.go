package callback

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	httputils "github.com/avGenie/go-order-lifecycle/internal/app/controller/http/utils"
	"github.com/avGenie/go-order-lifecycle/internal/app/converter"
	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	"github.com/avGenie/go-order-lifecycle/internal/app/model"
	numbers "github.com/avGenie/go-order-lifecycle/internal/app/usecase/validator"
	"github.com/avGenie/go-order-lifecycle/internal/app/validator"
)

//go:generate mockgen -destination=mock/callback.go -package=mock . EventReconciler

type EventReconciler interface {
	HandleGatewayEvent(ctx context.Context, event entity.GatewayEvent) error
}

// Callback receives payment gateway notifications. Duplicate deliveries are
// acknowledged like first ones so the gateway stops retrying.
type Callback struct {
	reconciler EventReconciler
}

func New(reconciler EventReconciler) Callback {
	return Callback{
		reconciler: reconciler,
	}
}

func (c *Callback) PaySuccess() http.HandlerFunc {
	return c.notify(entity.OutcomePaid)
}

func (c *Callback) RefundSuccess() http.HandlerFunc {
	return c.notify(entity.OutcomeRefundConfirmed)
}

func (c *Callback) notify(outcome entity.GatewayOutcome) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var notification model.GatewayNotification
		if err := httputils.DecodeJSON(w, r, &notification); err != nil {
			zap.L().Info("invalid gateway notification", zap.Error(err))
			return
		}
		if !validator.GatewayNotification(notification) {
			http.Error(w, "order number is required", http.StatusBadRequest)
			return
		}
		if !numbers.OrderNumberValidation(entity.OrderNumber(notification.OrderNumber)) {
			http.Error(w, "order number is invalid", http.StatusUnprocessableEntity)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		event := converter.ConvertGatewayNotificationToEvent(notification, outcome)
		if err := c.reconciler.HandleGatewayEvent(ctx, event); err != nil {
			zap.L().Error("error while handling gateway notification",
				zap.String("number", notification.OrderNumber),
				zap.String("outcome", string(outcome)),
				zap.Error(err),
			)
			httputils.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
