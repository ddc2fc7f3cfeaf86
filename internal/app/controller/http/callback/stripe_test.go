package callback

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v78/webhook"

	"github.com/avGenie/go-order-lifecycle/internal/app/controller/http/callback/mock"
	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
)

const webhookSecret = "whsec_test"

func stripeEvent(eventType, object string) string {
	return `{"id":"evt_1","object":"event","api_version":"2020-08-27","type":"` + eventType + `","data":{"object":` + object + `}}`
}

func stripeHeader(secret, payload string, signedAt time.Time) string {
	signature := webhook.ComputeSignature(signedAt, []byte(payload), secret)
	return fmt.Sprintf("t=%d,v1=%s", signedAt.Unix(), hex.EncodeToString(signature))
}

func TestStripeEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconciler := mock.NewMockEventReconciler(ctrl)
	callback := New(reconciler)

	succeeded := stripeEvent("payment_intent.succeeded",
		`{"id":"pi_1","object":"payment_intent","status":"succeeded","metadata":{"order_number":"`+paidNumber+`"}}`)

	tests := []struct {
		name    string
		secret  string
		payload string
		header  func(payload string) string
		event   *entity.GatewayEvent

		wantStatus int
	}{
		{
			name:       "payment succeeded",
			secret:     webhookSecret,
			payload:    succeeded,
			event:      &entity.GatewayEvent{OrderNumber: paidNumber, Outcome: entity.OutcomePaid},
			wantStatus: http.StatusOK,
		},
		{
			name:   "charge refunded",
			secret: webhookSecret,
			payload: stripeEvent("charge.refunded",
				`{"id":"ch_1","object":"charge","refunded":true,"metadata":{"order_number":"`+paidNumber+`"}}`),
			event:      &entity.GatewayEvent{OrderNumber: paidNumber, Outcome: entity.OutcomeRefundConfirmed},
			wantStatus: http.StatusOK,
		},
		{
			name:   "refund succeeded",
			secret: webhookSecret,
			payload: stripeEvent("refund.updated",
				`{"id":"re_1","object":"refund","status":"succeeded","metadata":{"order_number":"`+paidNumber+`","refund_number":"R1"}}`),
			event:      &entity.GatewayEvent{OrderNumber: paidNumber, Outcome: entity.OutcomeRefundConfirmed},
			wantStatus: http.StatusOK,
		},
		{
			name:   "refund still pending",
			secret: webhookSecret,
			payload: stripeEvent("refund.updated",
				`{"id":"re_1","object":"refund","status":"pending","metadata":{"order_number":"`+paidNumber+`"}}`),
			wantStatus: http.StatusOK,
		},
		{
			name:   "partial charge refund",
			secret: webhookSecret,
			payload: stripeEvent("charge.refunded",
				`{"id":"ch_1","object":"charge","refunded":false,"metadata":{"order_number":"`+paidNumber+`"}}`),
			wantStatus: http.StatusOK,
		},
		{
			name:   "intent of another system",
			secret: webhookSecret,
			payload: stripeEvent("payment_intent.succeeded",
				`{"id":"pi_2","object":"payment_intent","status":"succeeded","metadata":{}}`),
			wantStatus: http.StatusOK,
		},
		{
			name:       "unrelated event type",
			secret:     webhookSecret,
			payload:    stripeEvent("customer.created", `{"id":"cus_1","object":"customer"}`),
			wantStatus: http.StatusOK,
		},
		{
			name:       "unsigned",
			secret:     webhookSecret,
			payload:    succeeded,
			header:     func(string) string { return "" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "signed with another secret",
			secret:  webhookSecret,
			payload: succeeded,
			header: func(payload string) string {
				return stripeHeader("whsec_other", payload, time.Now())
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "signature too old",
			secret:  webhookSecret,
			payload: succeeded,
			header: func(payload string) string {
				return stripeHeader(webhookSecret, payload, time.Now().Add(-time.Hour))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "secret not configured",
			payload:    succeeded,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.event != nil {
				reconciler.EXPECT().HandleGatewayEvent(gomock.Any(), *test.event).Return(nil)
			}

			header := stripeHeader(webhookSecret, test.payload, time.Now())
			if test.header != nil {
				header = test.header(test.payload)
			}

			request := httptest.NewRequest(http.MethodPost, "/api/notify/stripe", strings.NewReader(test.payload))
			if len(header) != 0 {
				request.Header.Set(stripeSignatureHeader, header)
			}
			writer := httptest.NewRecorder()

			callback.StripeEvents(test.secret)(writer, request)

			assert.Equal(t, test.wantStatus, writer.Code)
		})
	}
}
