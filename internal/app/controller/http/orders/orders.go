package orders

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	httputils "github.com/avGenie/go-order-lifecycle/internal/app/controller/http/utils"
	"github.com/avGenie/go-order-lifecycle/internal/app/converter"
	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	"github.com/avGenie/go-order-lifecycle/internal/app/model"
	numbers "github.com/avGenie/go-order-lifecycle/internal/app/usecase/validator"
	"github.com/avGenie/go-order-lifecycle/internal/app/validator"
)

const defaultPaymentTimeout = 5 * time.Second

//go:generate mockgen -destination=mock/orders.go -package=mock . OrderProcessor,PaymentProcessor

type OrderProcessor interface {
	Submit(ctx context.Context, userID entity.UserID, req entity.SubmitOrder) (entity.SubmitResult, error)
	Reorder(ctx context.Context, userID entity.UserID, id entity.OrderID) error
	History(ctx context.Context, userID entity.UserID, filter entity.PageFilter) (entity.OrderPage, error)
	Details(ctx context.Context, userID entity.UserID, id entity.OrderID) (entity.OrderDetails, error)
	CancelByCustomer(ctx context.Context, userID entity.UserID, id entity.OrderID) error
	Remind(ctx context.Context, userID entity.UserID, id entity.OrderID) error
}

type PaymentProcessor interface {
	Pay(ctx context.Context, userID entity.UserID, number entity.OrderNumber) (entity.Prepay, error)
}

// Order serves the customer side of the order lifecycle.
type Order struct {
	orders   OrderProcessor
	payments PaymentProcessor

	paymentTimeout time.Duration
}

// New builds the customer handlers. paymentTimeout is the budget of one
// gateway call and extends the request deadline of Payment.
func New(orders OrderProcessor, payments PaymentProcessor, paymentTimeout time.Duration) Order {
	if paymentTimeout <= 0 {
		paymentTimeout = defaultPaymentTimeout
	}

	return Order{
		orders:         orders,
		payments:       payments,
		paymentTimeout: paymentTimeout,
	}
}

func (p *Order) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while submitting order", zap.Error(err))
			return
		}

		var request model.SubmitOrderRequest
		if err := httputils.DecodeJSON(w, r, &request); err != nil {
			zap.L().Info("invalid submit request", zap.Error(err))
			return
		}
		if !validator.SubmitOrderRequest(request) {
			http.Error(w, "address book id is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		result, err := p.orders.Submit(ctx, userID, converter.ConvertSubmitRequestToEntity(request))
		if err != nil {
			zap.L().Info("error while submitting order", zap.String("user_id", userID.String()), zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		zap.L().Debug("order submitted", zap.String("number", result.Number.String()))

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertSubmitResultToOutput(result))
	}
}

func (p *Order) Payment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while paying order", zap.Error(err))
			return
		}

		var request model.PaymentRequest
		if err := httputils.DecodeJSON(w, r, &request); err != nil {
			zap.L().Info("invalid payment request", zap.Error(err))
			return
		}
		if !validator.PaymentRequest(request) {
			http.Error(w, "order number is required", http.StatusBadRequest)
			return
		}
		if !numbers.OrderNumberValidation(entity.OrderNumber(request.OrderNumber)) {
			http.Error(w, "order number is invalid", http.StatusUnprocessableEntity)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout+p.paymentTimeout)
		defer cancel()

		prepay, err := p.payments.Pay(ctx, userID, entity.OrderNumber(request.OrderNumber))
		if err != nil {
			zap.L().Info("error while paying order", zap.String("number", request.OrderNumber), zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertPrepayToOutput(prepay))
	}
}

func (p *Order) History() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while getting history", zap.Error(err))
			return
		}

		filter, err := converter.ConvertQueryToPageFilter(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		page, err := p.orders.History(ctx, userID, filter)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertHistoryPageToOutput(page))
	}
}

func (p *Order) Details() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, id, ok := p.parseTarget(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		details, err := p.orders.Details(ctx, userID, id)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderDetailsToOutput(details))
	}
}

func (p *Order) Cancel() http.HandlerFunc {
	return p.action("cancel", p.orders.CancelByCustomer)
}

func (p *Order) Repetition() http.HandlerFunc {
	return p.action("repetition", p.orders.Reorder)
}

func (p *Order) Reminder() http.HandlerFunc {
	return p.action("reminder", p.orders.Remind)
}

func (p *Order) action(name string, fn func(context.Context, entity.UserID, entity.OrderID) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, id, ok := p.parseTarget(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		if err := fn(ctx, userID, id); err != nil {
			zap.L().Info("order action failed",
				zap.String("action", name),
				zap.Int64("order_id", int64(id)),
				zap.Error(err),
			)
			httputils.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func (p *Order) parseTarget(w http.ResponseWriter, r *http.Request) (entity.UserID, entity.OrderID, bool) {
	userID, err := httputils.ParseUserID(w, r)
	if err != nil {
		zap.L().Error("error while parsing user id", zap.Error(err))
		return 0, 0, false
	}

	id, err := httputils.ParseOrderID(w, r)
	if err != nil {
		return 0, 0, false
	}

	return userID, id, true
}
