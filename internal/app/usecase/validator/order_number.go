package validator

import (
	"github.com/oklog/ulid/v2"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
)

// OrderNumberValidation reports whether number is a ULID as issued on submit.
func OrderNumberValidation(number entity.OrderNumber) bool {
	_, err := ulid.ParseStrict(string(number))
	return err == nil
}
