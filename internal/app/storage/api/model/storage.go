package model

import (
	"context"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
)

// Repository is served both by the database handle and by an open
// transaction.
type Repository interface {
	GetOrderByID(ctx context.Context, id entity.OrderID) (entity.Order, error)
	GetOrderByNumber(ctx context.Context, number entity.OrderNumber) (entity.Order, error)
	GetOrderByNumberAndUser(ctx context.Context, number entity.OrderNumber, userID entity.UserID) (entity.Order, error)
	InsertOrder(ctx context.Context, order entity.Order) (entity.OrderID, error)
	InsertLineItems(ctx context.Context, items entity.LineItems) error
	GetLineItems(ctx context.Context, orderID entity.OrderID) (entity.LineItems, error)
	// UpdateOrderConditional applies the patch only while the stored status
	// equals expected and reports whether a row changed.
	UpdateOrderConditional(ctx context.Context, id entity.OrderID, expected entity.OrderStatus, patch entity.OrderPatch) (bool, error)
	PageQuery(ctx context.Context, filter entity.PageFilter) (entity.Orders, int64, error)
	CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error)

	GetAddress(ctx context.Context, id entity.AddressID) (entity.Address, error)

	ListCart(ctx context.Context, userID entity.UserID) (entity.CartItems, error)
	ClearCart(ctx context.Context, userID entity.UserID) error
	AddCartItems(ctx context.Context, items entity.CartItems) error

	InsertRefund(ctx context.Context, refund entity.Refund) error
	GetPendingRefund(ctx context.Context, orderID entity.OrderID) (entity.Refund, error)
	GetPendingRefunds(ctx context.Context, limit int) (entity.Refunds, error)
	UpdateRefund(ctx context.Context, refund entity.Refund) error
}

type Storage interface {
	Repository

	// InTx runs fn inside one transaction; an error from fn rolls it back.
	InTx(ctx context.Context, fn func(repo Repository) error) error
	Ping(ctx context.Context) error
	Close() error
}
