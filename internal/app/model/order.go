package model

import "github.com/shopspring/decimal"

type SubmitOrderRequest struct {
	AddressBookID int64  `json:"addressBookId"`
	Remark        string `json:"remark"`
}

type SubmitOrderResponse struct {
	ID          int64           `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	OrderAmount decimal.Decimal `json:"orderAmount"`
	OrderTime   string          `json:"orderTime"`
}

type OrderResponses []OrderResponse

type OrderResponse struct {
	ID            int64           `json:"id"`
	Number        string          `json:"number"`
	Status        int             `json:"status"`
	PayStatus     int             `json:"payStatus"`
	UserID        int64           `json:"userId"`
	AddressBookID int64           `json:"addressBookId"`
	Consignee     string          `json:"consignee"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Amount        decimal.Decimal `json:"amount"`
	Remark        string          `json:"remark,omitempty"`

	OrderTime    string `json:"orderTime"`
	CheckoutTime string `json:"checkoutTime,omitempty"`
	CancelTime   string `json:"cancelTime,omitempty"`
	DeliveryTime string `json:"deliveryTime,omitempty"`

	CancelReason    string `json:"cancelReason,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`

	// OrderDishes is a "name*qty;" summary shown in staff search results.
	OrderDishes     string             `json:"orderDishes,omitempty"`
	OrderDetailList LineItemResponses `json:"orderDetailList,omitempty"`
}

type LineItemResponses []LineItemResponse

type LineItemResponse struct {
	ID         int64           `json:"id"`
	DishID     int64           `json:"dishId,omitempty"`
	SetmealID  int64           `json:"setmealId,omitempty"`
	Name       string          `json:"name"`
	Image      string          `json:"image,omitempty"`
	DishFlavor string          `json:"dishFlavor,omitempty"`
	Number     int             `json:"number"`
	Amount     decimal.Decimal `json:"amount"`
}

type PageResponse struct {
	Total   int64          `json:"total"`
	Records OrderResponses `json:"records"`
}

type StatisticsResponse struct {
	ToBeConfirmed      int64 `json:"toBeConfirmed"`
	Confirmed          int64 `json:"confirmed"`
	DeliveryInProgress int64 `json:"deliveryInProgress"`
}

type ConfirmRequest struct {
	ID int64 `json:"id"`
}

type RejectionRequest struct {
	ID              int64  `json:"id"`
	RejectionReason string `json:"rejectionReason"`
}

type CancelRequest struct {
	ID           int64  `json:"id"`
	CancelReason string `json:"cancelReason"`
}
