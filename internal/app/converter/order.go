package converter

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-module/carbon/v2"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	"github.com/avGenie/go-order-lifecycle/internal/app/model"
)

func ConvertSubmitRequestToEntity(request model.SubmitOrderRequest) entity.SubmitOrder {
	return entity.SubmitOrder{
		AddressBookID: entity.AddressID(request.AddressBookID),
		Remark:        request.Remark,
	}
}

func ConvertSubmitResultToOutput(result entity.SubmitResult) model.SubmitOrderResponse {
	return model.SubmitOrderResponse{
		ID:          int64(result.ID),
		OrderNumber: result.Number.String(),
		OrderAmount: result.Amount,
		OrderTime:   formatTime(result.OrderTime),
	}
}

func ConvertOrderToOutput(order entity.Order) model.OrderResponse {
	return model.OrderResponse{
		ID:              int64(order.ID),
		Number:          order.Number.String(),
		Status:          int(order.Status),
		PayStatus:       int(order.PayStatus),
		UserID:          int64(order.UserID),
		AddressBookID:   int64(order.AddressBookID),
		Consignee:       order.Consignee,
		Phone:           order.Phone,
		Address:         order.Address,
		Amount:          order.Amount,
		Remark:          order.Remark,
		OrderTime:       formatTime(order.OrderTime),
		CheckoutTime:    formatOptionalTime(order.CheckoutTime),
		CancelTime:      formatOptionalTime(order.CancelTime),
		DeliveryTime:    formatOptionalTime(order.DeliveryTime),
		CancelReason:    optionalString(order.CancelReason),
		RejectionReason: optionalString(order.RejectionReason),
	}
}

func ConvertOrderDetailsToOutput(details entity.OrderDetails) model.OrderResponse {
	out := ConvertOrderToOutput(details.Order)
	out.OrderDetailList = ConvertLineItemsToOutput(details.LineItems)

	return out
}

func ConvertLineItemsToOutput(items entity.LineItems) model.LineItemResponses {
	out := make(model.LineItemResponses, 0, len(items))
	for _, item := range items {
		out = append(out, model.LineItemResponse{
			ID:         item.ID,
			DishID:     item.DishID,
			SetmealID:  item.SetmealID,
			Name:       item.Name,
			Image:      item.Image,
			DishFlavor: item.DishFlavor,
			Number:     item.Quantity,
			Amount:     item.UnitPrice,
		})
	}

	return out
}

// ConvertHistoryPageToOutput keeps full line items for the customer view.
func ConvertHistoryPageToOutput(page entity.OrderPage) model.PageResponse {
	records := make(model.OrderResponses, 0, len(page.Orders))
	for _, details := range page.Orders {
		records = append(records, ConvertOrderDetailsToOutput(details))
	}

	return model.PageResponse{Total: page.Total, Records: records}
}

// ConvertSearchPageToOutput replaces line items with the dish summary used by
// the staff order list.
func ConvertSearchPageToOutput(page entity.OrderPage) model.PageResponse {
	records := make(model.OrderResponses, 0, len(page.Orders))
	for _, details := range page.Orders {
		out := ConvertOrderToOutput(details.Order)
		out.OrderDishes = OrderDishes(details.LineItems)
		records = append(records, out)
	}

	return model.PageResponse{Total: page.Total, Records: records}
}

// OrderDishes renders items as "name*qty;" pairs.
func OrderDishes(items entity.LineItems) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(item.Name)
		sb.WriteByte('*')
		sb.WriteString(strconv.Itoa(item.Quantity))
		sb.WriteByte(';')
	}

	return sb.String()
}

func ConvertStatisticsToOutput(statistics entity.OrderStatistics) model.StatisticsResponse {
	return model.StatisticsResponse{
		ToBeConfirmed:      statistics.ToBeConfirmed,
		Confirmed:          statistics.Confirmed,
		DeliveryInProgress: statistics.DeliveryInProgress,
	}
}

func formatTime(t time.Time) string {
	return carbon.CreateFromStdTime(t).ToRfc3339String()
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}

	return formatTime(*t)
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
