package token

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	usecase "github.com/avGenie/go-order-lifecycle/internal/app/usecase/converter"
)

const (
	ErrTokenExpired = "token has expired"
	ErrInvalidAuth  = "auth credentials are invalid"
	ErrForbidden    = "staff role required"
)

// TokenParserMiddleware puts the caller identity into the request context.
// Handlers decide what an unauthenticated caller may do.
func TokenParserMiddleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header[usecase.AuthHeader]
			userCtx := processAuthIdentity(authHeader, secretKey)

			ctx := context.WithValue(r.Context(), entity.UserIDCtxKey{}, userCtx)
			r = r.WithContext(ctx)

			next.ServeHTTP(w, r)
		})
	}
}

// RequireStaff rejects callers without a valid staff token.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userCtx, ok := r.Context().Value(entity.UserIDCtxKey{}).(entity.UserIDCtx)
		if !ok || userCtx.StatusCode != http.StatusOK {
			http.Error(w, ErrInvalidAuth, http.StatusUnauthorized)
			return
		}

		if userCtx.Identity.Role != entity.RoleStaff {
			zap.L().Info("staff endpoint called without staff role", zap.String("user_id", userCtx.Identity.UserID.String()))
			http.Error(w, ErrForbidden, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func processAuthIdentity(authHeader []string, secretKey string) entity.UserIDCtx {
	if len(authHeader) == 0 {
		zap.L().Debug("authorization header is empty")

		return entity.CreateUserIDCtx(entity.Identity{}, http.StatusUnauthorized)
	}

	identity, err := usecase.GetIdentityFromAuthHeader(authHeader[0], secretKey)
	if err != nil {
		zap.L().Info("error while parsing auth header", zap.Error(err))

		return entity.CreateUserIDCtx(entity.Identity{}, http.StatusUnauthorized)
	}

	if !identity.UserID.Valid() {
		zap.L().Error("empty user id in authorization header")

		return entity.CreateUserIDCtx(entity.Identity{}, http.StatusBadRequest)
	}

	return entity.CreateUserIDCtx(identity, http.StatusOK)
}
