package order

import (
	"context"
	"fmt"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	"github.com/avGenie/go-order-lifecycle/internal/app/storage/api/model"
	usecase "github.com/avGenie/go-order-lifecycle/internal/app/usecase/errors"
)

// Finder serves read-only order views.
type Finder struct {
	storage model.Repository
}

func NewFinder(storage model.Repository) *Finder {
	return &Finder{storage: storage}
}

// History returns the caller's orders, newest first.
func (f *Finder) History(ctx context.Context, userID entity.UserID, filter entity.PageFilter) (entity.OrderPage, error) {
	filter.UserID = &userID

	return f.page(ctx, filter)
}

func (f *Finder) Details(ctx context.Context, userID entity.UserID, id entity.OrderID) (entity.OrderDetails, error) {
	details, err := f.AdminDetails(ctx, id)
	if err != nil {
		return entity.OrderDetails{}, err
	}
	if details.Order.UserID != userID {
		return entity.OrderDetails{}, usecase.ErrOrderNotFound
	}

	return details, nil
}

func (f *Finder) Search(ctx context.Context, filter entity.PageFilter) (entity.OrderPage, error) {
	return f.page(ctx, filter)
}

func (f *Finder) AdminDetails(ctx context.Context, id entity.OrderID) (entity.OrderDetails, error) {
	order, err := f.storage.GetOrderByID(ctx, id)
	if err != nil {
		return entity.OrderDetails{}, translateNotFound(err)
	}

	items, err := f.storage.GetLineItems(ctx, id)
	if err != nil {
		return entity.OrderDetails{}, fmt.Errorf("error while getting line items: %w", err)
	}

	return entity.OrderDetails{Order: order, LineItems: items}, nil
}

// Statistics counts orders waiting on staff.
func (f *Finder) Statistics(ctx context.Context) (entity.OrderStatistics, error) {
	var (
		statistics entity.OrderStatistics
		err        error
	)

	counters := []struct {
		status entity.OrderStatus
		dest   *int64
	}{
		{entity.StatusToBeConfirmed, &statistics.ToBeConfirmed},
		{entity.StatusConfirmed, &statistics.Confirmed},
		{entity.StatusDeliveryInProgress, &statistics.DeliveryInProgress},
	}
	for _, counter := range counters {
		*counter.dest, err = f.storage.CountByStatus(ctx, counter.status)
		if err != nil {
			return entity.OrderStatistics{}, err
		}
	}

	return statistics, nil
}

func (f *Finder) page(ctx context.Context, filter entity.PageFilter) (entity.OrderPage, error) {
	orders, total, err := f.storage.PageQuery(ctx, filter.Normalize())
	if err != nil {
		return entity.OrderPage{}, err
	}

	page := entity.OrderPage{
		Total:  total,
		Orders: make([]entity.OrderDetails, 0, len(orders)),
	}
	for _, order := range orders {
		items, err := f.storage.GetLineItems(ctx, order.ID)
		if err != nil {
			return entity.OrderPage{}, fmt.Errorf("error while getting line items of order %d: %w", order.ID, err)
		}
		page.Orders = append(page.Orders, entity.OrderDetails{Order: order, LineItems: items})
	}

	return page, nil
}
