package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	usecase "github.com/avGenie/go-order-lifecycle/internal/app/usecase/errors"
)

func TestFinder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := seedOrder(t, store, "N1", entity.StatusToBeConfirmed, entity.PayStatusPaid)
	seedOrder(t, store, "N2", entity.StatusToBeConfirmed, entity.PayStatusPaid)
	seedOrder(t, store, "N3", entity.StatusDeliveryInProgress, entity.PayStatusPaid)
	seedOrder(t, store, "N4", entity.StatusCancelled, entity.PayStatusRefund)

	finder := NewFinder(store)

	t.Run("history", func(t *testing.T) {
		page, err := finder.History(ctx, customerID, entity.PageFilter{Page: 1, PageSize: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(4), page.Total)
		require.Len(t, page.Orders, 3)
		for _, details := range page.Orders {
			assert.Len(t, details.LineItems, 2)
			assert.True(t, details.Order.Amount.Equal(details.LineItems.Amount()))
		}

		page, err = finder.History(ctx, strangerID, entity.PageFilter{})
		require.NoError(t, err)
		assert.Zero(t, page.Total)
		assert.Empty(t, page.Orders)
	})

	t.Run("details", func(t *testing.T) {
		details, err := finder.Details(ctx, customerID, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first.Number, details.Order.Number)
		assert.Len(t, details.LineItems, 2)

		_, err = finder.Details(ctx, strangerID, first.ID)
		assert.ErrorIs(t, err, usecase.ErrOrderNotFound)

		_, err = finder.AdminDetails(ctx, 999)
		assert.ErrorIs(t, err, usecase.ErrOrderNotFound)
	})

	t.Run("search by status", func(t *testing.T) {
		status := entity.StatusToBeConfirmed
		page, err := finder.Search(ctx, entity.PageFilter{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
	})

	t.Run("statistics", func(t *testing.T) {
		statistics, err := finder.Statistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatistics{
			ToBeConfirmed:      2,
			Confirmed:          0,
			DeliveryInProgress: 1,
		}, statistics)
	})
}
