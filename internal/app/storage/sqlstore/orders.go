package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	storage "github.com/avGenie/go-order-lifecycle/internal/app/storage/api/errors"
)

const orderColumns = `id, number, user_id, address_book_id, consignee, phone, address, amount, remark,
	status, pay_status, order_time, checkout_time, cancel_time, delivery_time, cancel_reason, rejection_reason`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (entity.Order, error) {
	var (
		order                          entity.Order
		status, payStatus              int64
		checkout, cancel, delivery     sql.NullTime
		cancelReason, rejectionReason sql.NullString
	)

	err := row.Scan(
		&order.ID, &order.Number, &order.UserID, &order.AddressBookID,
		&order.Consignee, &order.Phone, &order.Address, &order.Amount, &order.Remark,
		&status, &payStatus, &order.OrderTime,
		&checkout, &cancel, &delivery, &cancelReason, &rejectionReason,
	)
	if err != nil {
		return entity.Order{}, err
	}

	order.Status = entity.OrderStatus(status)
	order.PayStatus = entity.PayStatus(payStatus)
	order.CheckoutTime = timePtr(checkout)
	order.CancelTime = timePtr(cancel)
	order.DeliveryTime = timePtr(delivery)
	order.CancelReason = stringPtr(cancelReason)
	order.RejectionReason = stringPtr(rejectionReason)

	return order, nil
}

func (r *repo) getOrder(ctx context.Context, where string, args ...any) (entity.Order, error) {
	row := r.queryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE `+where, args...)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("failed to select order: %w", err)
	}

	return order, nil
}

func (r *repo) GetOrderByID(ctx context.Context, id entity.OrderID) (entity.Order, error) {
	return r.getOrder(ctx, `id = ?`, int64(id))
}

func (r *repo) GetOrderByNumber(ctx context.Context, number entity.OrderNumber) (entity.Order, error) {
	return r.getOrder(ctx, `number = ?`, number.String())
}

func (r *repo) GetOrderByNumberAndUser(ctx context.Context, number entity.OrderNumber, userID entity.UserID) (entity.Order, error) {
	return r.getOrder(ctx, `number = ? AND user_id = ?`, number.String(), int64(userID))
}

func (r *repo) InsertOrder(ctx context.Context, order entity.Order) (entity.OrderID, error) {
	query := `
		INSERT INTO orders (number, user_id, address_book_id, consignee, phone, address, amount, remark,
			status, pay_status, order_time, checkout_time, cancel_time, delivery_time, cancel_reason, rejection_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	var id int64
	err := r.queryRow(ctx, query,
		order.Number.String(), int64(order.UserID), int64(order.AddressBookID),
		order.Consignee, order.Phone, order.Address, order.Amount.StringFixed(2), order.Remark,
		int64(order.Status), int64(order.PayStatus), order.OrderTime.UTC(),
		nullTime(order.CheckoutTime), nullTime(order.CancelTime), nullTime(order.DeliveryTime),
		nullString(order.CancelReason), nullString(order.RejectionReason),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	return entity.OrderID(id), nil
}

func (r *repo) InsertLineItems(ctx context.Context, items entity.LineItems) error {
	if len(items) == 0 {
		return storage.ErrEmptyLineItems
	}

	query := `
		INSERT INTO order_detail (order_id, dish_id, setmeal_id, name, image, dish_flavor, quantity, amount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, item := range items {
		_, err := r.exec(ctx, query,
			int64(item.OrderID), nullID(item.DishID), nullID(item.SetmealID),
			item.Name, item.Image, item.DishFlavor, item.Quantity, item.UnitPrice.StringFixed(2),
		)
		if err != nil {
			return fmt.Errorf("failed to insert line item %q: %w", item.Name, err)
		}
	}

	return nil
}

func (r *repo) GetLineItems(ctx context.Context, orderID entity.OrderID) (entity.LineItems, error) {
	query := `
		SELECT id, order_id, dish_id, setmeal_id, name, image, dish_flavor, quantity, amount
		FROM order_detail WHERE order_id = ? ORDER BY id
	`

	rows, err := r.query(ctx, query, int64(orderID))
	if err != nil {
		return nil, fmt.Errorf("failed to select line items: %w", err)
	}
	defer rows.Close()

	var items entity.LineItems
	for rows.Next() {
		var (
			item              entity.LineItem
			dishID, setmealID sql.NullInt64
		)
		err := rows.Scan(&item.ID, &item.OrderID, &dishID, &setmealID,
			&item.Name, &item.Image, &item.DishFlavor, &item.Quantity, &item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		item.DishID = dishID.Int64
		item.SetmealID = setmealID.Int64

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line items: %w", err)
	}

	return items, nil
}

func (r *repo) UpdateOrderConditional(ctx context.Context, id entity.OrderID, expected entity.OrderStatus, patch entity.OrderPatch) (bool, error) {
	sets := []string{"status = ?"}
	args := []any{int64(patch.Status)}

	if patch.PayStatus != nil {
		sets = append(sets, "pay_status = ?")
		args = append(args, int64(*patch.PayStatus))
	}
	if patch.CheckoutTime != nil {
		sets = append(sets, "checkout_time = ?")
		args = append(args, patch.CheckoutTime.UTC())
	}
	if patch.CancelTime != nil {
		sets = append(sets, "cancel_time = ?")
		args = append(args, patch.CancelTime.UTC())
	}
	if patch.DeliveryTime != nil {
		sets = append(sets, "delivery_time = ?")
		args = append(args, patch.DeliveryTime.UTC())
	}
	if patch.CancelReason != nil {
		sets = append(sets, "cancel_reason = ?")
		args = append(args, *patch.CancelReason)
	}
	if patch.RejectionReason != nil {
		sets = append(sets, "rejection_reason = ?")
		args = append(args, *patch.RejectionReason)
	}

	query := `UPDATE orders SET ` + strings.Join(sets, ", ") + ` WHERE id = ? AND status = ?`
	args = append(args, int64(id), int64(expected))
	if patch.ExpectedPayStatus != nil {
		query += ` AND pay_status = ?`
		args = append(args, int64(*patch.ExpectedPayStatus))
	}

	result, err := r.exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

func (r *repo) PageQuery(ctx context.Context, filter entity.PageFilter) (entity.Orders, int64, error) {
	filter = filter.Normalize()

	var (
		conds []string
		args  []any
	)
	if filter.UserID != nil {
		conds = append(conds, "user_id = ?")
		args = append(args, int64(*filter.UserID))
	}
	if filter.Status != nil {
		conds = append(conds, "status = ?")
		args = append(args, int64(*filter.Status))
	}
	if len(filter.Number) != 0 {
		conds = append(conds, "number LIKE ?")
		args = append(args, "%"+filter.Number+"%")
	}
	if len(filter.Phone) != 0 {
		conds = append(conds, "phone LIKE ?")
		args = append(args, "%"+filter.Phone+"%")
	}
	if filter.BeginTime != nil {
		conds = append(conds, "order_time >= ?")
		args = append(args, filter.BeginTime.UTC())
	}
	if filter.EndTime != nil {
		conds = append(conds, "order_time <= ?")
		args = append(args, filter.EndTime.UTC())
	}

	where := ""
	if len(conds) != 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.queryRow(ctx, `SELECT COUNT(*) FROM orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}
	if total == 0 {
		return entity.Orders{}, 0, nil
	}

	query := `SELECT ` + orderColumns + ` FROM orders` + where + ` ORDER BY order_time DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, filter.PageSize, filter.Offset())

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to select orders page: %w", err)
	}
	defer rows.Close()

	orders := make(entity.Orders, 0, filter.PageSize)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, total, nil
}

func (r *repo) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	var count int64
	err := r.queryRow(ctx, `SELECT COUNT(*) FROM orders WHERE status = ?`, int64(status)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders with status %s: %w", status, err)
	}

	return count, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	return &t.Time
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}

	return &s.String
}

func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}
