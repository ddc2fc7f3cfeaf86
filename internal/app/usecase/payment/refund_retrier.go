package payment

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
)

const (
	defaultRetryInterval = 30 * time.Second
	defaultBatch         = 10
	retryConcurrency     = 4

	requestTimeout = 3 * time.Second
)

// RefundRetrier periodically re-issues refunds the gateway has not accepted
// yet.
type RefundRetrier struct {
	reconciler *Reconciler
	interval   time.Duration
	batch      int
	done       chan struct{}
}

func CreateRefundRetrier(reconciler *Reconciler, interval time.Duration, batch int) *RefundRetrier {
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	if batch <= 0 {
		batch = defaultBatch
	}

	return &RefundRetrier{
		reconciler: reconciler,
		interval:   interval,
		batch:      batch,
		done:       make(chan struct{}),
	}
}

func (u *RefundRetrier) Start() {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-u.done:
			zap.L().Info("refund retrier work has finished")
			return
		case <-ticker.C:
			u.RetryPending(context.Background())
		}
	}
}

func (u *RefundRetrier) Stop() {
	close(u.done)
}

// RetryPending runs one pass over the pending refunds and returns how many
// got settled.
func (u *RefundRetrier) RetryPending(ctx context.Context) int {
	refunds := u.getPendingRefunds(ctx)
	if len(refunds) == 0 {
		return 0
	}

	var (
		settled atomic.Int64
		g       errgroup.Group
	)
	g.SetLimit(retryConcurrency)

	for _, refund := range refunds {
		g.Go(func() error {
			if u.retry(ctx, refund) {
				settled.Add(1)
			}

			return nil
		})
	}
	_ = g.Wait()

	return int(settled.Load())
}

func (u *RefundRetrier) getPendingRefunds(ctx context.Context) entity.Refunds {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	refunds, err := u.reconciler.storage.GetPendingRefunds(ctx, u.batch)
	if err != nil {
		zap.L().Error("error while getting pending refunds", zap.Error(err))
		return entity.Refunds{}
	}

	return refunds
}

func (u *RefundRetrier) retry(ctx context.Context, refund entity.Refund) bool {
	o, err := u.reconciler.storage.GetOrderByID(ctx, refund.OrderID)
	if err != nil {
		zap.L().Error("error while getting order for refund", zap.String("refund", refund.RefundNumber), zap.Error(err))
		return false
	}

	if err := u.reconciler.attemptRefund(ctx, o, refund); err != nil {
		zap.L().Warn("refund retry failed",
			zap.String("refund", refund.RefundNumber),
			zap.Int("attempts", refund.Attempts+1),
			zap.Error(err),
		)

		return false
	}

	return true
}
