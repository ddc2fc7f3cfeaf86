package httpgw

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/avGenie/go-order-lifecycle/internal/app/converter"
	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	"github.com/avGenie/go-order-lifecycle/internal/app/model"
	usecase "github.com/avGenie/go-order-lifecycle/internal/app/usecase/errors"
)

const (
	Provider = "http"

	payPath    = `/api/pay`
	refundPath = `/api/refund`

	codeOrderPaid = "ORDERPAID"

	defaultTimeout = 5 * time.Second
)

var (
	ErrGatewayAddressInvalid = errors.New("payment gateway address invalid")
	ErrRequestsExceeded      = errors.New("number of requests to payment gateway has been exceeded")
)

// Gateway talks JSON over HTTP to the payment provider.
type Gateway struct {
	client http.Client

	payAddress    string
	refundAddress string
}

func New(address string, timeout time.Duration) (*Gateway, error) {
	if len(address) == 0 {
		return nil, ErrGatewayAddressInvalid
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	address = strings.TrimRight(address, "/")

	return &Gateway{
		client: http.Client{
			Timeout: timeout,
		},
		payAddress:    address + payPath,
		refundAddress: address + refundPath,
	}, nil
}

func (g *Gateway) Pay(ctx context.Context, request entity.PayRequest) (entity.Prepay, error) {
	res, err := g.post(ctx, g.payAddress, converter.ConvertPayRequestToGateway(request))
	if err != nil {
		return entity.Prepay{}, err
	}
	defer res.Body.Close()

	if err := processStatus(res); err != nil {
		return entity.Prepay{}, err
	}

	var response model.GatewayPayResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return entity.Prepay{}, fmt.Errorf("%w: error while decoding pay response: %w", usecase.ErrPaymentGateway, err)
	}
	if response.Code == codeOrderPaid {
		return entity.Prepay{}, usecase.ErrOrderPaid
	}

	zap.L().Debug("prepay created", zap.String("number", request.OrderNumber.String()), zap.String("reference", response.Reference))

	return converter.ConvertGatewayPayResponseToPrepay(Provider, response), nil
}

func (g *Gateway) Refund(ctx context.Context, request entity.RefundRequest) error {
	res, err := g.post(ctx, g.refundAddress, converter.ConvertRefundRequestToGateway(request))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	return processStatus(res)
}

func (g *Gateway) post(ctx context.Context, address string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("error while marshalling gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, address, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot create request for payment gateway: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrPaymentGateway, err)
	}

	return res, nil
}

func processStatus(res *http.Response) error {
	switch status := res.StatusCode; {
	case status == http.StatusOK, status == http.StatusAccepted:
		return nil
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", usecase.ErrPaymentGateway, ErrRequestsExceeded)
	case status == http.StatusConflict:
		var response model.GatewayErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&response); err == nil && response.Code == codeOrderPaid {
			return usecase.ErrOrderPaid
		}

		return fmt.Errorf("%w: conflict from payment gateway", usecase.ErrPaymentGateway)
	default:
		return fmt.Errorf("%w: unexpected status from payment gateway: %d", usecase.ErrPaymentGateway, status)
	}
}
