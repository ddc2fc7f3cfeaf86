package admin

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	httputils "github.com/avGenie/go-order-lifecycle/internal/app/controller/http/utils"
	"github.com/avGenie/go-order-lifecycle/internal/app/converter"
	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	"github.com/avGenie/go-order-lifecycle/internal/app/model"
)

//go:generate mockgen -destination=mock/admin.go -package=mock . OrderManager

type OrderManager interface {
	Search(ctx context.Context, filter entity.PageFilter) (entity.OrderPage, error)
	Statistics(ctx context.Context) (entity.OrderStatistics, error)
	AdminDetails(ctx context.Context, id entity.OrderID) (entity.OrderDetails, error)
	Confirm(ctx context.Context, id entity.OrderID) error
	Reject(ctx context.Context, id entity.OrderID, reason string) error
	CancelByStaff(ctx context.Context, id entity.OrderID, reason string) error
	Dispatch(ctx context.Context, id entity.OrderID) error
	Complete(ctx context.Context, id entity.OrderID) error
}

// Admin serves the staff side of the order lifecycle. Routes are expected
// behind the staff-only middleware.
type Admin struct {
	orders OrderManager
}

func New(orders OrderManager) Admin {
	return Admin{
		orders: orders,
	}
}

func (a *Admin) ConditionSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := converter.ConvertQueryToPageFilter(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		page, err := a.orders.Search(ctx, filter)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertSearchPageToOutput(page))
	}
}

func (a *Admin) Statistics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		statistics, err := a.orders.Statistics(ctx)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertStatisticsToOutput(statistics))
	}
}

func (a *Admin) Details() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httputils.ParseOrderID(w, r)
		if err != nil {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		details, err := a.orders.AdminDetails(ctx, id)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderDetailsToOutput(details))
	}
}

func (a *Admin) Confirm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.ConfirmRequest
		if err := httputils.DecodeJSON(w, r, &request); err != nil {
			zap.L().Info("invalid confirm request", zap.Error(err))
			return
		}

		a.finish(w, r, "confirm", entity.OrderID(request.ID), func(ctx context.Context, id entity.OrderID) error {
			return a.orders.Confirm(ctx, id)
		})
	}
}

func (a *Admin) Rejection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.RejectionRequest
		if err := httputils.DecodeJSON(w, r, &request); err != nil {
			zap.L().Info("invalid rejection request", zap.Error(err))
			return
		}

		a.finish(w, r, "rejection", entity.OrderID(request.ID), func(ctx context.Context, id entity.OrderID) error {
			return a.orders.Reject(ctx, id, request.RejectionReason)
		})
	}
}

func (a *Admin) Cancel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.CancelRequest
		if err := httputils.DecodeJSON(w, r, &request); err != nil {
			zap.L().Info("invalid cancel request", zap.Error(err))
			return
		}

		a.finish(w, r, "cancel", entity.OrderID(request.ID), func(ctx context.Context, id entity.OrderID) error {
			return a.orders.CancelByStaff(ctx, id, request.CancelReason)
		})
	}
}

func (a *Admin) Delivery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httputils.ParseOrderID(w, r)
		if err != nil {
			return
		}

		a.finish(w, r, "delivery", id, a.orders.Dispatch)
	}
}

func (a *Admin) Complete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httputils.ParseOrderID(w, r)
		if err != nil {
			return
		}

		a.finish(w, r, "complete", id, a.orders.Complete)
	}
}

func (a *Admin) finish(w http.ResponseWriter, r *http.Request, action string, id entity.OrderID, fn func(context.Context, entity.OrderID) error) {
	if id <= 0 {
		http.Error(w, httputils.ErrInvalidOrderID.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
	defer cancel()

	if err := fn(ctx, id); err != nil {
		zap.L().Info("staff action failed",
			zap.String("action", action),
			zap.Int64("order_id", int64(id)),
			zap.Error(err),
		)
		httputils.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
