package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	"github.com/avGenie/go-order-lifecycle/internal/app/metrics"
	storage "github.com/avGenie/go-order-lifecycle/internal/app/storage/api/errors"
	"github.com/avGenie/go-order-lifecycle/internal/app/storage/api/model"
	usecase "github.com/avGenie/go-order-lifecycle/internal/app/usecase/errors"
	"github.com/avGenie/go-order-lifecycle/internal/app/usecase/order"
)

//go:generate mockgen -destination=mock/gateway.go -package=mock github.com/avGenie/go-order-lifecycle/internal/app/usecase/payment Gateway

const defaultTimeout = 5 * time.Second

type Gateway interface {
	Pay(ctx context.Context, request entity.PayRequest) (entity.Prepay, error)
	Refund(ctx context.Context, request entity.RefundRequest) error
}

// Reconciler maps payment gateway outcomes onto order transitions.
type Reconciler struct {
	storage  model.Storage
	gateway  Gateway
	notifier order.Notifier
	timeout  time.Duration
	idGen    func() string
	now      func() time.Time
}

func NewReconciler(storage model.Storage, gateway Gateway, notifier order.Notifier, timeout time.Duration) *Reconciler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Reconciler{
		storage:  storage,
		gateway:  gateway,
		notifier: notifier,
		timeout:  timeout,
		idGen:    func() string { return ulid.Make().String() },
		now:      time.Now,
	}
}

// Pay asks the gateway to prepare a payment for an unpaid order of the user.
func (r *Reconciler) Pay(ctx context.Context, userID entity.UserID, number entity.OrderNumber) (entity.Prepay, error) {
	o, err := r.storage.GetOrderByNumberAndUser(ctx, number, userID)
	if err != nil {
		return entity.Prepay{}, translateNotFound(err)
	}
	if o.PayStatus == entity.PayStatusPaid {
		return entity.Prepay{}, usecase.ErrOrderPaid
	}
	if o.Status != entity.StatusPendingPayment || o.PayStatus != entity.PayStatusUnpaid {
		return entity.Prepay{}, fmt.Errorf("order %s is %s: %w", number, o.Status, usecase.ErrOrderStatus)
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	prepay, err := r.gateway.Pay(callCtx, entity.PayRequest{
		OrderNumber: o.Number,
		Amount:      o.Amount,
		Description: "order " + o.Number.String(),
		PayerRef:    userID.String(),
	})
	if err != nil {
		metrics.GatewayCalls.WithLabelValues("pay", metrics.ResultError).Inc()
		return entity.Prepay{}, classify(err)
	}
	metrics.GatewayCalls.WithLabelValues("pay", metrics.ResultOK).Inc()

	return prepay, nil
}

// HandleGatewayEvent applies a gateway callback. Repeated events are no-ops.
func (r *Reconciler) HandleGatewayEvent(ctx context.Context, event entity.GatewayEvent) error {
	var err error
	switch event.Outcome {
	case entity.OutcomePaid:
		err = r.handlePaid(ctx, event.OrderNumber)
	case entity.OutcomeRefundConfirmed:
		err = r.handleRefundConfirmed(ctx, event.OrderNumber)
	default:
		return fmt.Errorf("unknown gateway outcome %q", event.Outcome)
	}

	if errors.Is(err, usecase.ErrDuplicatePaymentEvent) {
		metrics.DuplicateEvents.Inc()
		zap.L().Info("duplicate gateway event ignored",
			zap.String("number", event.OrderNumber.String()),
			zap.String("outcome", string(event.Outcome)),
		)

		return nil
	}

	return err
}

func (r *Reconciler) handlePaid(ctx context.Context, number entity.OrderNumber) error {
	o, err := r.storage.GetOrderByNumber(ctx, number)
	if err != nil {
		return translateNotFound(err)
	}

	if o.Status != entity.StatusPendingPayment {
		return r.handleLatePayment(ctx, o)
	}

	paid, _, err := order.Transition(ctx, r.storage, o, order.TriggerPaid, "", r.now().UTC())
	if err != nil {
		if !errors.Is(err, usecase.ErrOrderStatus) {
			return err
		}

		// lost the race, possibly to a customer cancel
		o, err = r.storage.GetOrderByNumber(ctx, number)
		if err != nil {
			return translateNotFound(err)
		}

		return r.handleLatePayment(ctx, o)
	}

	zap.L().Info("order paid", zap.Int64("order_id", int64(paid.ID)), zap.String("number", number.String()))

	r.notifier.Broadcast(entity.CreateNewOrderEvent(paid))

	return nil
}

// handleLatePayment deals with a PAID event for an order that already left
// PENDING_PAYMENT. Money captured for an order cancelled while unpaid is
// recorded and refunded; anything else is a repeated event.
func (r *Reconciler) handleLatePayment(ctx context.Context, o entity.Order) error {
	if o.Status != entity.StatusCancelled || o.PayStatus != entity.PayStatusUnpaid {
		return usecase.ErrDuplicatePaymentEvent
	}

	now := r.now().UTC()
	paid := entity.PayStatusPaid
	unpaid := entity.PayStatusUnpaid

	err := r.storage.InTx(ctx, func(repo model.Repository) error {
		ok, err := repo.UpdateOrderConditional(ctx, o.ID, entity.StatusCancelled, entity.OrderPatch{
			Status:            entity.StatusCancelled,
			PayStatus:         &paid,
			CheckoutTime:      &now,
			ExpectedPayStatus: &unpaid,
		})
		if err != nil {
			return err
		}
		if !ok {
			return usecase.ErrDuplicatePaymentEvent
		}

		return repo.InsertRefund(ctx, entity.Refund{
			OrderID:      o.ID,
			OrderNumber:  o.Number,
			RefundNumber: r.idGen(),
			Amount:       o.Amount,
			Status:       entity.RefundPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	})
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicatePaymentEvent) {
			return err
		}

		return fmt.Errorf("error while recording payment for cancelled order %d: %w", o.ID, err)
	}

	zap.L().Warn("payment received for cancelled order, refunding",
		zap.Int64("order_id", int64(o.ID)),
		zap.String("number", o.Number.String()),
	)

	o.PayStatus = paid
	o.CheckoutTime = &now
	if err := r.RefundCancelled(context.WithoutCancel(ctx), o); err != nil {
		zap.L().Error("error while refunding cancelled order", zap.Int64("order_id", int64(o.ID)), zap.Error(err))
	}

	return nil
}

func (r *Reconciler) handleRefundConfirmed(ctx context.Context, number entity.OrderNumber) error {
	o, err := r.storage.GetOrderByNumber(ctx, number)
	if err != nil {
		return translateNotFound(err)
	}

	if o.PayStatus == entity.PayStatusRefund {
		return usecase.ErrDuplicatePaymentEvent
	}
	if o.Status != entity.StatusCancelled || o.PayStatus != entity.PayStatusPaid {
		return fmt.Errorf("refund confirmed for %s order %s: %w", o.Status, number, usecase.ErrOrderStatus)
	}

	refund, err := r.storage.GetPendingRefund(ctx, o.ID)
	if err != nil && !errors.Is(err, storage.ErrRefundNotFound) {
		return err
	}

	var pending *entity.Refund
	if err == nil {
		pending = &refund
	}

	return r.settle(ctx, o, pending)
}

// RefundCancelled issues the gateway refund recorded for a cancelled paid
// order. On failure the ledger row stays pending for the retrier.
func (r *Reconciler) RefundCancelled(ctx context.Context, o entity.Order) error {
	refund, err := r.storage.GetPendingRefund(ctx, o.ID)
	if err != nil {
		if errors.Is(err, storage.ErrRefundNotFound) {
			return nil
		}

		return err
	}

	return r.attemptRefund(ctx, o, refund)
}

func (r *Reconciler) attemptRefund(ctx context.Context, o entity.Order, refund entity.Refund) error {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := r.gateway.Refund(callCtx, entity.RefundRequest{
		OrderNumber:    o.Number,
		RefundNumber:   refund.RefundNumber,
		RefundAmount:   refund.Amount,
		OriginalAmount: o.Amount,
	})
	if err != nil {
		metrics.GatewayCalls.WithLabelValues("refund", metrics.ResultError).Inc()

		refund.Attempts++
		refund.LastError = err.Error()
		refund.UpdatedAt = r.now().UTC()
		if updErr := r.storage.UpdateRefund(ctx, refund); updErr != nil {
			zap.L().Error("error while recording refund attempt", zap.String("refund", refund.RefundNumber), zap.Error(updErr))
		}

		return classify(err)
	}
	metrics.GatewayCalls.WithLabelValues("refund", metrics.ResultOK).Inc()

	return r.settle(ctx, o, &refund)
}

// settle marks the refund done and moves payStatus of the cancelled order to
// REFUND in one transaction.
func (r *Reconciler) settle(ctx context.Context, o entity.Order, refund *entity.Refund) error {
	err := r.storage.InTx(ctx, func(repo model.Repository) error {
		if refund != nil {
			refund.Status = entity.RefundDone
			refund.Attempts++
			refund.LastError = ""
			refund.UpdatedAt = r.now().UTC()
			if err := repo.UpdateRefund(ctx, *refund); err != nil {
				return err
			}
		}

		refunded := entity.PayStatusRefund
		ok, err := repo.UpdateOrderConditional(ctx, o.ID, entity.StatusCancelled, entity.OrderPatch{
			Status:    entity.StatusCancelled,
			PayStatus: &refunded,
		})
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("order %d is no longer cancelled: %w", o.ID, usecase.ErrOrderStatus)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("error while settling refund for order %d: %w", o.ID, err)
	}

	zap.L().Info("refund settled", zap.Int64("order_id", int64(o.ID)), zap.String("number", o.Number.String()))

	return nil
}

// classify keeps business rejections and marks everything else as a
// retryable gateway failure.
func classify(err error) error {
	if errors.Is(err, usecase.ErrOrderPaid) || errors.Is(err, usecase.ErrPaymentGateway) {
		return err
	}

	return fmt.Errorf("%w: %w", usecase.ErrPaymentGateway, err)
}

func translateNotFound(err error) error {
	if errors.Is(err, storage.ErrOrderNotFound) {
		return usecase.ErrOrderNotFound
	}

	return fmt.Errorf("error while getting order: %w", err)
}
