package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	ordermock "github.com/avGenie/go-order-lifecycle/internal/app/usecase/order/mock"
	"github.com/avGenie/go-order-lifecycle/internal/app/usecase/payment/mock"
)

func TestRetryPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newTestStore(t)
	first := seedOrder(t, store, "N1", entity.StatusCancelled, entity.PayStatusPaid)
	seedRefund(t, store, first, "R1")
	second := seedOrder(t, store, "N2", entity.StatusCancelled, entity.PayStatusPaid)
	seedRefund(t, store, second, "R2")

	gateway := mock.NewMockGateway(ctrl)
	gateway.EXPECT().Refund(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request entity.RefundRequest) error {
			if request.RefundNumber == "R2" {
				return errors.New("gateway 503")
			}
			return nil
		}).Times(2)

	retrier := CreateRefundRetrier(newTestReconciler(store, gateway, ordermock.NewMockNotifier(ctrl)), 0, 0)

	assert.Equal(t, 1, retrier.RetryPending(context.Background()))

	assert.Equal(t, entity.PayStatusRefund, getOrder(t, store, first.ID).PayStatus)
	assert.Equal(t, entity.PayStatusPaid, getOrder(t, store, second.ID).PayStatus)

	pending, err := store.GetPendingRefunds(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "R2", pending[0].RefundNumber)
	assert.Equal(t, 1, pending[0].Attempts)

	gateway.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(nil)

	assert.Equal(t, 1, retrier.RetryPending(context.Background()))
	assert.Equal(t, entity.PayStatusRefund, getOrder(t, store, second.ID).PayStatus)
	assert.Zero(t, retrier.RetryPending(context.Background()))
}

func TestRefundRetrierStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newTestStore(t)
	retrier := CreateRefundRetrier(newTestReconciler(store, mock.NewMockGateway(ctrl), ordermock.NewMockNotifier(ctrl)), 0, 0)

	finished := make(chan struct{})
	go func() {
		retrier.Start()
		close(finished)
	}()

	retrier.Stop()
	<-finished
}
