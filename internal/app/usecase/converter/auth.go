package usecase

import (
	"fmt"
	"strings"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	"github.com/avGenie/go-order-lifecycle/internal/app/usecase/crypto"
)

const (
	bearerHeader = "Bearer"

	AuthHeader = "Authorization"
)

func GetIdentityFromAuthHeader(header string, secretKey string) (entity.Identity, error) {
	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 {
		return entity.Identity{}, fmt.Errorf("auth header doesn't contain two parts")
	}

	if headerParts[0] != bearerHeader {
		return entity.Identity{}, fmt.Errorf("first auth header part is invalid")
	}

	identity, err := crypto.GetIdentity(headerParts[1], secretKey)
	if err != nil {
		return entity.Identity{}, fmt.Errorf("error while getting identity from token: %w", err)
	}

	return identity, nil
}

func SetIdentityToAuthHeaderFormat(identity entity.Identity, secretKey string) (string, error) {
	token, err := crypto.BuildJWTString(identity, secretKey)
	if err != nil {
		return "", fmt.Errorf("error while creating jwt token: %w", err)
	}

	return fmt.Sprintf("%s %s", bearerHeader, token), nil
}
