package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderID int64

type OrderNumber string

func (n OrderNumber) String() string {
	return string(n)
}

type Orders []Order

type Order struct {
	ID            OrderID
	Number        OrderNumber
	UserID        UserID
	AddressBookID AddressID

	Consignee string
	Phone     string
	Address   string

	Amount decimal.Decimal
	Remark string

	Status    OrderStatus
	PayStatus PayStatus

	OrderTime    time.Time
	CheckoutTime *time.Time
	CancelTime   *time.Time
	DeliveryTime *time.Time

	CancelReason    *string
	RejectionReason *string
}

// OrderPatch is applied by a conditional update guarded by the order's
// expected status. Nil fields stay untouched.
type OrderPatch struct {
	Status    OrderStatus
	PayStatus *PayStatus

	// ExpectedPayStatus additionally guards the update on the stored pay
	// status when set.
	ExpectedPayStatus *PayStatus

	CheckoutTime *time.Time
	CancelTime   *time.Time
	DeliveryTime *time.Time

	CancelReason    *string
	RejectionReason *string
}

// Apply returns a copy of the order with the patch fields set.
func (p OrderPatch) Apply(order Order) Order {
	order.Status = p.Status
	if p.PayStatus != nil {
		order.PayStatus = *p.PayStatus
	}
	if p.CheckoutTime != nil {
		order.CheckoutTime = p.CheckoutTime
	}
	if p.CancelTime != nil {
		order.CancelTime = p.CancelTime
	}
	if p.DeliveryTime != nil {
		order.DeliveryTime = p.DeliveryTime
	}
	if p.CancelReason != nil {
		order.CancelReason = p.CancelReason
	}
	if p.RejectionReason != nil {
		order.RejectionReason = p.RejectionReason
	}

	return order
}

type LineItems []LineItem

type LineItem struct {
	ID        int64
	OrderID   OrderID
	DishID    int64
	SetmealID int64

	Name       string
	Image      string
	DishFlavor string

	UnitPrice decimal.Decimal
	Quantity  int
}

func (i LineItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (items LineItems) Amount() decimal.Decimal {
	amount := decimal.Zero
	for _, item := range items {
		amount = amount.Add(item.Total())
	}

	return amount
}

type SubmitOrder struct {
	AddressBookID AddressID
	Remark        string
}

type SubmitResult struct {
	ID        OrderID
	Number    OrderNumber
	OrderTime time.Time
	Amount    decimal.Decimal
}

type OrderDetails struct {
	Order     Order
	LineItems LineItems
}

type OrderStatistics struct {
	ToBeConfirmed      int64
	Confirmed          int64
	DeliveryInProgress int64
}
