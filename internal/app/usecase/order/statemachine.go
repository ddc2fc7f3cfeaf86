package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	"github.com/avGenie/go-order-lifecycle/internal/app/metrics"
	usecase "github.com/avGenie/go-order-lifecycle/internal/app/usecase/errors"
)

type Trigger int

const (
	TriggerPaid Trigger = iota + 1
	TriggerCustomerCancel
	TriggerStaffReject
	TriggerStaffCancel
	TriggerConfirm
	TriggerDispatch
	TriggerComplete
)

// CustomerCancelReason is recorded for every cancellation made by the
// customer.
const CustomerCancelReason = "user cancelled"

var triggerNames = map[Trigger]string{
	TriggerPaid:           "paid",
	TriggerCustomerCancel: "customer_cancel",
	TriggerStaffReject:    "staff_reject",
	TriggerStaffCancel:    "staff_cancel",
	TriggerConfirm:        "confirm",
	TriggerDispatch:       "dispatch",
	TriggerComplete:       "complete",
}

func (t Trigger) String() string {
	name, ok := triggerNames[t]
	if !ok {
		return fmt.Sprintf("Trigger(%d)", int(t))
	}

	return name
}

type edge struct {
	from    entity.OrderStatus
	trigger Trigger
}

// transitions is the only place where order status moves are defined.
var transitions = map[edge]entity.OrderStatus{
	{entity.StatusPendingPayment, TriggerPaid}:           entity.StatusToBeConfirmed,
	{entity.StatusPendingPayment, TriggerCustomerCancel}: entity.StatusCancelled,
	{entity.StatusPendingPayment, TriggerStaffCancel}:    entity.StatusCancelled,
	{entity.StatusToBeConfirmed, TriggerCustomerCancel}:  entity.StatusCancelled,
	{entity.StatusToBeConfirmed, TriggerStaffReject}:     entity.StatusCancelled,
	{entity.StatusToBeConfirmed, TriggerStaffCancel}:     entity.StatusCancelled,
	{entity.StatusToBeConfirmed, TriggerConfirm}:         entity.StatusConfirmed,
	{entity.StatusConfirmed, TriggerDispatch}:            entity.StatusDeliveryInProgress,
	{entity.StatusDeliveryInProgress, TriggerComplete}:   entity.StatusCompleted,
}

// Next returns the status reached from the given one by trigger.
func Next(from entity.OrderStatus, trigger Trigger) (entity.OrderStatus, error) {
	to, ok := transitions[edge{from, trigger}]
	if !ok {
		return 0, fmt.Errorf("%s is not allowed from %s: %w", trigger, from, usecase.ErrOrderStatus)
	}

	return to, nil
}

// Change is a validated transition ready to be stored.
type Change struct {
	Expected entity.OrderStatus
	Patch    entity.OrderPatch
	// Refund is set when a paid order gets cancelled.
	Refund bool
}

// Plan validates the trigger against the order and builds the patch with the
// side effects of the transition.
func Plan(order entity.Order, trigger Trigger, reason string, now time.Time) (Change, error) {
	reason = strings.TrimSpace(reason)

	switch trigger {
	case TriggerStaffReject, TriggerStaffCancel:
		if len(reason) == 0 {
			return Change{}, fmt.Errorf("%s: %w", trigger, usecase.ErrReasonRequired)
		}
	case TriggerCustomerCancel:
		reason = CustomerCancelReason
	}

	to, err := Next(order.Status, trigger)
	if err != nil {
		return Change{}, err
	}

	change := Change{
		Expected: order.Status,
		Patch:    entity.OrderPatch{Status: to},
	}

	switch trigger {
	case TriggerPaid:
		paid := entity.PayStatusPaid
		change.Patch.PayStatus = &paid
		change.Patch.CheckoutTime = &now
	case TriggerCustomerCancel, TriggerStaffCancel:
		change.Patch.CancelTime = &now
		change.Patch.CancelReason = &reason
		change.Refund = order.PayStatus == entity.PayStatusPaid
	case TriggerStaffReject:
		change.Patch.CancelTime = &now
		change.Patch.CancelReason = &reason
		change.Patch.RejectionReason = &reason
		change.Refund = order.PayStatus == entity.PayStatusPaid
	case TriggerComplete:
		change.Patch.DeliveryTime = &now
	}

	return change, nil
}

type ConditionalUpdater interface {
	UpdateOrderConditional(ctx context.Context, id entity.OrderID, expected entity.OrderStatus, patch entity.OrderPatch) (bool, error)
}

// Transition plans the trigger and stores it as one compare-and-set update.
// A lost race reports ErrOrderStatus and leaves the stored order untouched.
func Transition(ctx context.Context, updater ConditionalUpdater, order entity.Order, trigger Trigger, reason string, now time.Time) (entity.Order, Change, error) {
	change, err := Plan(order, trigger, reason, now)
	if err != nil {
		metrics.Transitions.WithLabelValues(trigger.String(), metrics.ResultInvalid).Inc()
		return order, Change{}, err
	}

	ok, err := updater.UpdateOrderConditional(ctx, order.ID, change.Expected, change.Patch)
	if err != nil {
		metrics.Transitions.WithLabelValues(trigger.String(), metrics.ResultError).Inc()
		return order, Change{}, fmt.Errorf("error while applying %s to order %d: %w", trigger, order.ID, err)
	}
	if !ok {
		metrics.Transitions.WithLabelValues(trigger.String(), metrics.ResultConflict).Inc()
		zap.L().Info("order status changed concurrently",
			zap.Int64("order_id", int64(order.ID)),
			zap.String("expected", change.Expected.String()),
			zap.String("trigger", trigger.String()),
		)

		return order, Change{}, fmt.Errorf("order %d is no longer %s: %w", order.ID, change.Expected, usecase.ErrOrderStatus)
	}

	metrics.Transitions.WithLabelValues(trigger.String(), metrics.ResultOK).Inc()

	return change.Patch.Apply(order), change, nil
}
