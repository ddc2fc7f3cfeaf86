package httputils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	usecase "github.com/avGenie/go-order-lifecycle/internal/app/usecase/errors"
)

const (
	RequestTimeout = 3 * time.Second

	ErrTokenExpired = "token has expired"
	ErrInvalidAuth  = "auth credentials are invalid"
	ErrInternal     = "internal server error"
)

var ErrInvalidOrderID = errors.New("order id is invalid")

func GetIdentityFromContext(r *http.Request) (entity.UserIDCtx, error) {
	userIDCtx, ok := r.Context().Value(entity.UserIDCtxKey{}).(entity.UserIDCtx)
	if !ok {
		return entity.UserIDCtx{}, fmt.Errorf("user id couldn't obtain from context")
	}

	return userIDCtx, nil
}

// ParseUserID writes the authentication failure itself, callers only return.
func ParseUserID(w http.ResponseWriter, r *http.Request) (entity.UserID, error) {
	userIDCtx, err := GetIdentityFromContext(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return 0, err
	}

	switch userIDCtx.StatusCode {
	case http.StatusBadRequest:
		http.Error(w, ErrInvalidAuth, http.StatusUnauthorized)
		return 0, fmt.Errorf("failed auth credentials")
	case http.StatusUnauthorized:
		http.Error(w, ErrTokenExpired, http.StatusUnauthorized)
		return 0, errors.New(ErrTokenExpired)
	}

	if !userIDCtx.Identity.UserID.Valid() {
		http.Error(w, ErrInvalidAuth, http.StatusUnauthorized)
		return 0, fmt.Errorf("invalid user id with status ok")
	}

	return userIDCtx.Identity.UserID, nil
}

func ParseOrderID(w http.ResponseWriter, r *http.Request) (entity.OrderID, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, ErrInvalidOrderID.Error(), http.StatusBadRequest)
		return 0, ErrInvalidOrderID
	}

	return entity.OrderID(id), nil
}

func DecodeJSON(w http.ResponseWriter, r *http.Request, out any) error {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		http.Error(w, "request body is invalid", http.StatusBadRequest)
		return fmt.Errorf("error while decoding request body: %w", err)
	}

	return nil
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	out, err := json.Marshal(body)
	if err != nil {
		zap.L().Error("error while marshalling response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

// WriteError maps use case errors onto HTTP statuses.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrAddressMissing),
		errors.Is(err, usecase.ErrCartEmpty),
		errors.Is(err, usecase.ErrReasonRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		http.Error(w, usecase.ErrOrderNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderStatus), errors.Is(err, usecase.ErrOrderPaid):
		http.Error(w, usecase.ErrOrderStatus.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGateway):
		http.Error(w, usecase.ErrPaymentGateway.Error(), http.StatusBadGateway)
	default:
		zap.L().Error("unexpected error while processing request", zap.Error(err))
		http.Error(w, ErrInternal, http.StatusInternalServerError)
	}
}
