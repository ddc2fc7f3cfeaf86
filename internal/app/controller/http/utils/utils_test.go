package httputils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	usecase "github.com/avGenie/go-order-lifecycle/internal/app/usecase/errors"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error

		wantStatus int
		wantBody   string
	}{
		{name: "address", err: usecase.ErrAddressMissing, wantStatus: http.StatusBadRequest},
		{name: "cart", err: usecase.ErrCartEmpty, wantStatus: http.StatusBadRequest},
		{name: "reason", err: usecase.ErrReasonRequired, wantStatus: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("load: %w", usecase.ErrOrderNotFound), wantStatus: http.StatusNotFound},
		{
			name:       "status",
			err:        fmt.Errorf("confirm: %w", usecase.ErrOrderStatus),
			wantStatus: http.StatusConflict,
			wantBody:   "order status no longer permits this action",
		},
		{
			name:       "paid",
			err:        usecase.ErrOrderPaid,
			wantStatus: http.StatusConflict,
			wantBody:   "order status no longer permits this action",
		},
		{name: "gateway", err: fmt.Errorf("%w: timeout", usecase.ErrPaymentGateway), wantStatus: http.StatusBadGateway},
		{name: "other", err: errors.New("disk on fire"), wantStatus: http.StatusInternalServerError, wantBody: ErrInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			writer := httptest.NewRecorder()
			WriteError(writer, test.err)

			assert.Equal(t, test.wantStatus, writer.Code)
			if len(test.wantBody) != 0 {
				assert.Equal(t, test.wantBody, strings.TrimSpace(writer.Body.String()))
			}
		})
	}
}

func TestParseUserID(t *testing.T) {
	tests := []struct {
		name      string
		isContext bool
		userCtx   entity.UserIDCtx

		wantID     entity.UserID
		wantStatus int
	}{
		{
			name:      "valid",
			isContext: true,
			userCtx:   entity.CreateUserIDCtx(entity.Identity{UserID: 7, Role: entity.RoleCustomer}, http.StatusOK),
			wantID:    7,
		},
		{name: "no context", wantStatus: http.StatusInternalServerError},
		{
			name:       "expired",
			isContext:  true,
			userCtx:    entity.CreateUserIDCtx(entity.Identity{}, http.StatusUnauthorized),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bad request",
			isContext:  true,
			userCtx:    entity.CreateUserIDCtx(entity.Identity{}, http.StatusBadRequest),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if test.isContext {
				request = request.WithContext(context.WithValue(request.Context(), entity.UserIDCtxKey{}, test.userCtx))
			}
			writer := httptest.NewRecorder()

			id, err := ParseUserID(writer, request)
			if test.wantStatus != 0 {
				require.Error(t, err)
				assert.Equal(t, test.wantStatus, writer.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.wantID, id)
		})
	}
}

func TestParseOrderID(t *testing.T) {
	tests := []struct {
		param   string
		want    entity.OrderID
		wantErr bool
	}{
		{param: "42", want: 42},
		{param: "0", wantErr: true},
		{param: "abc", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.param, func(t *testing.T) {
			routeCtx := chi.NewRouteContext()
			routeCtx.URLParams.Add("id", test.param)
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request = request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeCtx))
			writer := httptest.NewRecorder()

			id, err := ParseOrderID(writer, request)
			if test.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOrderID)
				assert.Equal(t, http.StatusBadRequest, writer.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.want, id)
		})
	}
}
