package order

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	"github.com/avGenie/go-order-lifecycle/internal/app/storage/sqlstore"
)

const (
	customerID entity.UserID = 7
	strangerID entity.UserID = 8
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()

	store, err := sqlstore.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func fixedNow() time.Time {
	return testNow
}

func sequence(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + strconv.Itoa(n)
	}
}

// seedOrder stores an order with two line items directly in the given state.
func seedOrder(t *testing.T, store *sqlstore.Store, number string, status entity.OrderStatus, pay entity.PayStatus) entity.Order {
	t.Helper()
	ctx := context.Background()

	order := entity.Order{
		Number:        entity.OrderNumber(number),
		UserID:        customerID,
		AddressBookID: 1,
		Consignee:     "Alice",
		Phone:         "13800000000",
		Address:       "1 Main St",
		Amount:        decimal.NewFromInt(25),
		Status:        status,
		PayStatus:     pay,
		OrderTime:     testNow.Add(-time.Hour),
	}

	id, err := store.InsertOrder(ctx, order)
	require.NoError(t, err)
	order.ID = id

	err = store.InsertLineItems(ctx, entity.LineItems{
		{OrderID: id, DishID: 1, Name: "A", UnitPrice: decimal.NewFromInt(10), Quantity: 2},
		{OrderID: id, DishID: 2, Name: "B", UnitPrice: decimal.NewFromInt(5), Quantity: 1},
	})
	require.NoError(t, err)

	return order
}

func requireStatus(t *testing.T, store *sqlstore.Store, id entity.OrderID, status entity.OrderStatus) entity.Order {
	t.Helper()

	order, err := store.GetOrderByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, status, order.Status)

	return order
}
