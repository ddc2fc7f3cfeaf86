package validator

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
)

func TestOrderNumberValidation(t *testing.T) {
	tests := []struct {
		name   string
		number entity.OrderNumber
		want   bool
	}{
		{name: "issued number", number: entity.OrderNumber(ulid.Make().String()), want: true},
		{name: "fixed number", number: "01HQ3Z8K9V6W2X4Y5Z7A8B9C0D", want: true},
		{name: "empty", number: "", want: false},
		{name: "too short", number: "01HQ3Z", want: false},
		{name: "forbidden letter", number: "01HQ3Z8K9V6W2X4Y5Z7A8B9C0U", want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, OrderNumberValidation(test.number))
		})
	}
}
