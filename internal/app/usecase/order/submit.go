package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/avGenie/go-order-lifecycle/internal/app/converter"
	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	storage "github.com/avGenie/go-order-lifecycle/internal/app/storage/api/errors"
	"github.com/avGenie/go-order-lifecycle/internal/app/storage/api/model"
	usecase "github.com/avGenie/go-order-lifecycle/internal/app/usecase/errors"
)

// Submitter turns a user's cart into an order.
type Submitter struct {
	storage model.Storage
	idGen   func() string
	now     func() time.Time
}

func NewSubmitter(storage model.Storage) *Submitter {
	return &Submitter{
		storage: storage,
		idGen:   func() string { return ulid.Make().String() },
		now:     time.Now,
	}
}

// Submit creates the order, its line items and clears the cart in one
// transaction.
func (s *Submitter) Submit(ctx context.Context, userID entity.UserID, req entity.SubmitOrder) (entity.SubmitResult, error) {
	var result entity.SubmitResult

	err := s.storage.InTx(ctx, func(repo model.Repository) error {
		address, err := repo.GetAddress(ctx, req.AddressBookID)
		if err != nil {
			if errors.Is(err, storage.ErrAddressNotFound) {
				return usecase.ErrAddressMissing
			}

			return fmt.Errorf("error while getting address: %w", err)
		}
		if address.UserID != userID {
			return usecase.ErrAddressMissing
		}

		cart, err := repo.ListCart(ctx, userID)
		if err != nil {
			return fmt.Errorf("error while getting cart: %w", err)
		}
		if len(cart) == 0 {
			return usecase.ErrCartEmpty
		}

		items := converter.CartToLineItems(cart)
		order := entity.Order{
			Number:        entity.OrderNumber(s.idGen()),
			UserID:        userID,
			AddressBookID: address.ID,
			Consignee:     address.Consignee,
			Phone:         address.Phone,
			Address:       address.Detail,
			Amount:        items.Amount(),
			Remark:        strings.TrimSpace(req.Remark),
			Status:        entity.StatusPendingPayment,
			PayStatus:     entity.PayStatusUnpaid,
			OrderTime:     s.now().UTC(),
		}

		order.ID, err = repo.InsertOrder(ctx, order)
		if err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := repo.InsertLineItems(ctx, items); err != nil {
			return err
		}

		if err := repo.ClearCart(ctx, userID); err != nil {
			return err
		}

		result = entity.SubmitResult{
			ID:        order.ID,
			Number:    order.Number,
			OrderTime: order.OrderTime,
			Amount:    order.Amount,
		}

		return nil
	})
	if err != nil {
		return entity.SubmitResult{}, err
	}

	zap.L().Info("order submitted",
		zap.Int64("order_id", int64(result.ID)),
		zap.String("number", result.Number.String()),
		zap.String("amount", result.Amount.StringFixed(2)),
	)

	return result, nil
}

// Reorder copies the line items of a previous order back into the cart.
func (s *Submitter) Reorder(ctx context.Context, userID entity.UserID, id entity.OrderID) error {
	order, err := s.storage.GetOrderByID(ctx, id)
	if err != nil {
		return translateNotFound(err)
	}
	if order.UserID != userID {
		return usecase.ErrOrderNotFound
	}

	items, err := s.storage.GetLineItems(ctx, id)
	if err != nil {
		return fmt.Errorf("error while getting line items: %w", err)
	}

	return s.storage.AddCartItems(ctx, converter.LineItemsToCart(userID, items, s.now().UTC()))
}

func translateNotFound(err error) error {
	if errors.Is(err, storage.ErrOrderNotFound) {
		return usecase.ErrOrderNotFound
	}

	return fmt.Errorf("error while getting order: %w", err)
}
