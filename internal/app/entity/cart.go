package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItems []CartItem

// CartItem belongs to the cart collaborator. The order core reads and clears
// it, and only re-creates it on re-order.
type CartItem struct {
	ID        int64
	UserID    UserID
	DishID    int64
	SetmealID int64

	Name       string
	Image      string
	DishFlavor string

	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time
}
