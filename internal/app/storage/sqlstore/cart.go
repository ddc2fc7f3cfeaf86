package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	storage "github.com/avGenie/go-order-lifecycle/internal/app/storage/api/errors"
)

func (r *repo) GetAddress(ctx context.Context, id entity.AddressID) (entity.Address, error) {
	query := `SELECT id, user_id, consignee, phone, detail FROM address_book WHERE id = ?`

	var address entity.Address
	err := r.queryRow(ctx, query, int64(id)).Scan(
		&address.ID, &address.UserID, &address.Consignee, &address.Phone, &address.Detail,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Address{}, storage.ErrAddressNotFound
		}

		return entity.Address{}, fmt.Errorf("failed to select address: %w", err)
	}

	return address, nil
}

// CreateAddress belongs to the address book collaborator and is used to seed
// local databases.
func (r *repo) CreateAddress(ctx context.Context, address entity.Address) (entity.AddressID, error) {
	query := `
		INSERT INTO address_book (user_id, consignee, phone, detail)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`

	var id int64
	err := r.queryRow(ctx, query, int64(address.UserID), address.Consignee, address.Phone, address.Detail).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert address: %w", err)
	}

	return entity.AddressID(id), nil
}

func (r *repo) ListCart(ctx context.Context, userID entity.UserID) (entity.CartItems, error) {
	query := `
		SELECT id, user_id, dish_id, setmeal_id, name, image, dish_flavor, quantity, amount, create_time
		FROM shopping_cart WHERE user_id = ? ORDER BY id
	`

	rows, err := r.query(ctx, query, int64(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to select cart: %w", err)
	}
	defer rows.Close()

	var items entity.CartItems
	for rows.Next() {
		var (
			item              entity.CartItem
			dishID, setmealID sql.NullInt64
		)
		err := rows.Scan(&item.ID, &item.UserID, &dishID, &setmealID, &item.Name, &item.Image,
			&item.DishFlavor, &item.Quantity, &item.UnitPrice, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		item.DishID = dishID.Int64
		item.SetmealID = setmealID.Int64

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cart: %w", err)
	}

	return items, nil
}

func (r *repo) ClearCart(ctx context.Context, userID entity.UserID) error {
	if _, err := r.exec(ctx, `DELETE FROM shopping_cart WHERE user_id = ?`, int64(userID)); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

func (r *repo) AddCartItems(ctx context.Context, items entity.CartItems) error {
	query := `
		INSERT INTO shopping_cart (user_id, dish_id, setmeal_id, name, image, dish_flavor, quantity, amount, create_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, item := range items {
		_, err := r.exec(ctx, query,
			int64(item.UserID), nullID(item.DishID), nullID(item.SetmealID), item.Name, item.Image,
			item.DishFlavor, item.Quantity, item.UnitPrice.StringFixed(2), item.CreatedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert cart item %q: %w", item.Name, err)
		}
	}

	return nil
}
