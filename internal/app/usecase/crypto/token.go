package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	usecase "github.com/avGenie/go-order-lifecycle/internal/app/usecase/errors"
)

const tokenExpiration = 24 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
	UserID entity.UserID `json:"uid"`
	Role   entity.Role   `json:"role"`
}

func BuildJWTString(identity entity.Identity, secretKey string) (string, error) {
	return buildJWTString(identity, secretKey, time.Now().Add(tokenExpiration))
}

func buildJWTString(identity entity.Identity, secretKey string, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Subject:   identity.UserID.String(),
		},
		UserID: identity.UserID,
		Role:   identity.Role,
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("error while signing token: %w", err)
	}

	return tokenString, nil
}

func GetIdentity(tokenString string, secretKey string) (entity.Identity, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.Identity{}, usecase.ErrTokenExpired
		}

		return entity.Identity{}, fmt.Errorf("%w: %w", usecase.ErrTokenNotValid, err)
	}

	if !token.Valid {
		return entity.Identity{}, usecase.ErrTokenNotValid
	}

	role := claims.Role
	if len(role) == 0 {
		role = entity.RoleCustomer
	}

	return entity.Identity{
		UserID: claims.UserID,
		Role:   role,
	}, nil
}
