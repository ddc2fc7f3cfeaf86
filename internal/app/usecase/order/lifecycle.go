package order

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	"github.com/avGenie/go-order-lifecycle/internal/app/storage/api/model"
	usecase "github.com/avGenie/go-order-lifecycle/internal/app/usecase/errors"
)

//go:generate mockgen -destination=mock/lifecycle.go -package=mock github.com/avGenie/go-order-lifecycle/internal/app/usecase/order Refunder,Notifier

// Refunder issues the gateway refund for a committed cancellation of a paid
// order.
type Refunder interface {
	RefundCancelled(ctx context.Context, order entity.Order) error
}

type Notifier interface {
	Broadcast(event entity.StatusEvent)
}

// Lifecycle drives customer and staff actions through the transition table.
type Lifecycle struct {
	storage  model.Storage
	refunder Refunder
	notifier Notifier
	idGen    func() string
	now      func() time.Time
}

func NewLifecycle(storage model.Storage, refunder Refunder, notifier Notifier) *Lifecycle {
	return &Lifecycle{
		storage:  storage,
		refunder: refunder,
		notifier: notifier,
		idGen:    func() string { return ulid.Make().String() },
		now:      time.Now,
	}
}

func (l *Lifecycle) CancelByCustomer(ctx context.Context, userID entity.UserID, id entity.OrderID) error {
	return l.apply(ctx, &userID, id, TriggerCustomerCancel, "")
}

func (l *Lifecycle) Confirm(ctx context.Context, id entity.OrderID) error {
	return l.apply(ctx, nil, id, TriggerConfirm, "")
}

func (l *Lifecycle) Reject(ctx context.Context, id entity.OrderID, reason string) error {
	return l.apply(ctx, nil, id, TriggerStaffReject, reason)
}

func (l *Lifecycle) CancelByStaff(ctx context.Context, id entity.OrderID, reason string) error {
	return l.apply(ctx, nil, id, TriggerStaffCancel, reason)
}

func (l *Lifecycle) Dispatch(ctx context.Context, id entity.OrderID) error {
	return l.apply(ctx, nil, id, TriggerDispatch, "")
}

func (l *Lifecycle) Complete(ctx context.Context, id entity.OrderID) error {
	return l.apply(ctx, nil, id, TriggerComplete, "")
}

// Remind pushes a reminder about an open order to connected staff.
func (l *Lifecycle) Remind(ctx context.Context, userID entity.UserID, id entity.OrderID) error {
	order, err := l.load(ctx, &userID, id)
	if err != nil {
		return err
	}
	if order.Status.Terminal() {
		return fmt.Errorf("order %d is %s: %w", id, order.Status, usecase.ErrOrderStatus)
	}

	l.notifier.Broadcast(entity.CreateReminderEvent(order))

	return nil
}

func (l *Lifecycle) load(ctx context.Context, owner *entity.UserID, id entity.OrderID) (entity.Order, error) {
	order, err := l.storage.GetOrderByID(ctx, id)
	if err != nil {
		return entity.Order{}, translateNotFound(err)
	}
	if owner != nil && order.UserID != *owner {
		return entity.Order{}, usecase.ErrOrderNotFound
	}

	return order, nil
}

func (l *Lifecycle) apply(ctx context.Context, owner *entity.UserID, id entity.OrderID, trigger Trigger, reason string) error {
	order, err := l.load(ctx, owner, id)
	if err != nil {
		return err
	}

	var (
		updated entity.Order
		change  Change
	)
	err = l.storage.InTx(ctx, func(repo model.Repository) error {
		updated, change, err = Transition(ctx, repo, order, trigger, reason, l.now().UTC())
		if err != nil {
			return err
		}
		if !change.Refund {
			return nil
		}

		now := l.now().UTC()

		return repo.InsertRefund(ctx, entity.Refund{
			OrderID:      updated.ID,
			OrderNumber:  updated.Number,
			RefundNumber: l.idGen(),
			Amount:       updated.Amount,
			Status:       entity.RefundPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	})
	if err != nil {
		return err
	}

	zap.L().Info("order status changed",
		zap.Int64("order_id", int64(updated.ID)),
		zap.String("trigger", trigger.String()),
		zap.String("from", change.Expected.String()),
		zap.String("to", updated.Status.String()),
	)

	if change.Refund {
		// the cancellation stays recorded; the pending refund is retried later.
		// The gateway call is bounded by the refunder, not by the caller's request.
		if err := l.refunder.RefundCancelled(context.WithoutCancel(ctx), updated); err != nil {
			zap.L().Error("error while refunding cancelled order",
				zap.Int64("order_id", int64(updated.ID)),
				zap.Error(err),
			)
		}
	}

	return nil
}
