package httpgw

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	"github.com/avGenie/go-order-lifecycle/internal/app/model"
	usecase "github.com/avGenie/go-order-lifecycle/internal/app/usecase/errors"
)

func TestNewInvalidAddress(t *testing.T) {
	_, err := New("", time.Second)
	assert.ErrorIs(t, err, ErrGatewayAddressInvalid)
}

func TestPay(t *testing.T) {
	type want struct {
		err       error
		reference string
	}
	tests := []struct {
		name    string
		handler http.HandlerFunc

		want want
	}{
		{
			name: "prepay created",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var request model.GatewayPayRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
				assert.Equal(t, "N1", request.OrderNumber)
				assert.True(t, decimal.RequireFromString("25").Equal(request.Amount))
				assert.Equal(t, "7", request.PayerRef)

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"prepay_id":"wx123","params":{"nonce":"abc"}}`))
			},
			want: want{reference: "wx123"},
		},
		{
			name: "already paid in body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"code":"ORDERPAID"}`))
			},
			want: want{err: usecase.ErrOrderPaid},
		},
		{
			name: "already paid conflict",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(`{"code":"ORDERPAID","message":"paid"}`))
			},
			want: want{err: usecase.ErrOrderPaid},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			want: want{err: usecase.ErrPaymentGateway},
		},
		{
			name: "too many requests",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			want: want{err: ErrRequestsExceeded},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{`))
			},
			want: want{err: usecase.ErrPaymentGateway},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(test.handler)
			defer server.Close()

			gateway, err := New(server.URL+"/", time.Second)
			require.NoError(t, err)

			prepay, err := gateway.Pay(context.Background(), entity.PayRequest{
				OrderNumber: "N1",
				Amount:      decimal.RequireFromString("25.00"),
				Description: "order N1",
				PayerRef:    "7",
			})
			if test.want.err != nil {
				assert.ErrorIs(t, err, test.want.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, Provider, prepay.Provider)
			assert.Equal(t, test.want.reference, prepay.Reference)
			assert.Equal(t, "abc", prepay.Params["nonce"])
		})
	}
}

func TestRefund(t *testing.T) {
	var got model.GatewayRefundRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, refundPath, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	gateway, err := New(server.URL, time.Second)
	require.NoError(t, err)

	err = gateway.Refund(context.Background(), entity.RefundRequest{
		OrderNumber:    "N1",
		RefundNumber:   "R1",
		RefundAmount:   decimal.RequireFromString("25"),
		OriginalAmount: decimal.RequireFromString("25"),
	})
	require.NoError(t, err)
	assert.Equal(t, "N1", got.OrderNumber)
	assert.Equal(t, "R1", got.RefundNumber)
}

func TestRefundUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	address := server.URL
	server.Close()

	gateway, err := New(address, time.Second)
	require.NoError(t, err)

	err = gateway.Refund(context.Background(), entity.RefundRequest{OrderNumber: "N1", RefundNumber: "R1"})
	assert.ErrorIs(t, err, usecase.ErrPaymentGateway)
}

func TestPayContextDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	gateway, err := New(server.URL, 5*time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = gateway.Pay(ctx, entity.PayRequest{OrderNumber: "N1"})
	assert.ErrorIs(t, err, usecase.ErrPaymentGateway)
}
