package converter

import (
	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	"github.com/avGenie/go-order-lifecycle/internal/app/model"
)

func ConvertPrepayToOutput(prepay entity.Prepay) model.PrepayResponse {
	return model.PrepayResponse{
		Provider:     prepay.Provider,
		Reference:    prepay.Reference,
		ClientSecret: prepay.ClientSecret,
		Params:       prepay.Params,
	}
}

func ConvertGatewayNotificationToEvent(notification model.GatewayNotification, outcome entity.GatewayOutcome) entity.GatewayEvent {
	return entity.GatewayEvent{
		OrderNumber: entity.OrderNumber(notification.OrderNumber),
		Outcome:     outcome,
	}
}

func ConvertPayRequestToGateway(request entity.PayRequest) model.GatewayPayRequest {
	return model.GatewayPayRequest{
		OrderNumber: request.OrderNumber.String(),
		Amount:      request.Amount,
		Description: request.Description,
		PayerRef:    request.PayerRef,
	}
}

func ConvertGatewayPayResponseToPrepay(provider string, response model.GatewayPayResponse) entity.Prepay {
	return entity.Prepay{
		Provider:  provider,
		Reference: response.Reference,
		Params:    response.Params,
	}
}

func ConvertRefundRequestToGateway(request entity.RefundRequest) model.GatewayRefundRequest {
	return model.GatewayRefundRequest{
		OrderNumber:    request.OrderNumber.String(),
		RefundNumber:   request.RefundNumber,
		RefundAmount:   request.RefundAmount,
		OriginalAmount: request.OriginalAmount,
	}
}

func ConvertStatusEventToOutput(event entity.StatusEvent) model.StatusMessage {
	return model.StatusMessage{
		Type:    int(event.Type),
		OrderID: int64(event.OrderID),
		Content: event.Content,
	}
}
