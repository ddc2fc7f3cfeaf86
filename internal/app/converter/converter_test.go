package converter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
)

func TestCartToLineItems(t *testing.T) {
	cart := entity.CartItems{
		{ID: 1, UserID: 7, DishID: 10, Name: "A", Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
		{ID: 2, UserID: 7, SetmealID: 3, Name: "B", DishFlavor: "mild", Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
	}

	items := CartToLineItems(cart)
	require.Len(t, items, 2)
	assert.Equal(t, int64(10), items[0].DishID)
	assert.Equal(t, int64(3), items[1].SetmealID)
	assert.Equal(t, "mild", items[1].DishFlavor)
	assert.True(t, decimal.NewFromInt(25).Equal(items.Amount()))

	// the snapshot is detached from the cart
	cart[0].UnitPrice = decimal.NewFromInt(100)
	assert.True(t, decimal.NewFromInt(25).Equal(items.Amount()))
}

func TestLineItemsToCart(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cart := LineItemsToCart(9, entity.LineItems{
		{ID: 4, OrderID: 1, DishID: 10, Name: "A", Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
	}, createdAt)

	require.Len(t, cart, 1)
	assert.Equal(t, entity.UserID(9), cart[0].UserID)
	assert.Zero(t, cart[0].ID)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, createdAt, cart[0].CreatedAt)
}

func TestOrderDishes(t *testing.T) {
	tests := []struct {
		name  string
		items entity.LineItems
		want  string
	}{
		{
			name: "several items",
			items: entity.LineItems{
				{Name: "Noodles", Quantity: 2},
				{Name: "Tea", Quantity: 1},
			},
			want: "Noodles*2;Tea*1;",
		},
		{
			name:  "no items",
			items: nil,
			want:  "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, OrderDishes(test.items))
		})
	}
}

func TestConvertOrderToOutput(t *testing.T) {
	reason := "out of stock"
	cancelTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	order := entity.Order{
		ID:              5,
		Number:          "N5",
		Status:          entity.StatusCancelled,
		PayStatus:       entity.PayStatusPaid,
		Amount:          decimal.RequireFromString("25"),
		OrderTime:       cancelTime.Add(-time.Hour),
		CancelTime:      &cancelTime,
		CancelReason:    &reason,
		RejectionReason: &reason,
	}

	out := ConvertOrderToOutput(order)
	assert.Equal(t, 6, out.Status)
	assert.Equal(t, 1, out.PayStatus)
	assert.Equal(t, reason, out.RejectionReason)
	assert.NotEmpty(t, out.CancelTime)
	assert.Empty(t, out.CheckoutTime)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"amount":"25"`)
	assert.NotContains(t, string(data), "checkoutTime")
}

func TestConvertStatusEventToOutput(t *testing.T) {
	event := entity.CreateNewOrderEvent(entity.Order{ID: 42, Number: "N42"})

	data, err := json.Marshal(ConvertStatusEventToOutput(event))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":1,"orderId":42,"content":"order number: N42"}`, string(data))
}
