package validator

import "github.com/avGenie/go-order-lifecycle/internal/app/model"

func SubmitOrderRequest(request model.SubmitOrderRequest) bool {
	return request.AddressBookID > 0
}

func PaymentRequest(request model.PaymentRequest) bool {
	return len(request.OrderNumber) > 0
}

func GatewayNotification(notification model.GatewayNotification) bool {
	return len(notification.OrderNumber) > 0
}
