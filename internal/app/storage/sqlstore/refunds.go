package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
	storage "github.com/avGenie/go-order-lifecycle/internal/app/storage/api/errors"
)

const refundColumns = `id, order_id, order_number, refund_number, amount, status, attempts, last_error, created_at, updated_at`

func scanRefund(row rowScanner) (entity.Refund, error) {
	var (
		refund entity.Refund
		status string
	)

	err := row.Scan(&refund.ID, &refund.OrderID, &refund.OrderNumber, &refund.RefundNumber, &refund.Amount,
		&status, &refund.Attempts, &refund.LastError, &refund.CreatedAt, &refund.UpdatedAt)
	if err != nil {
		return entity.Refund{}, err
	}
	refund.Status = entity.RefundStatus(status)

	return refund, nil
}

func (r *repo) InsertRefund(ctx context.Context, refund entity.Refund) error {
	query := `
		INSERT INTO refunds (order_id, order_number, refund_number, amount, status, attempts, last_error, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.exec(ctx, query,
		int64(refund.OrderID), refund.OrderNumber.String(), refund.RefundNumber, refund.Amount.StringFixed(2),
		string(refund.Status), refund.Attempts, refund.LastError, refund.CreatedAt.UTC(), refund.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert refund: %w", err)
	}

	return nil
}

func (r *repo) GetPendingRefund(ctx context.Context, orderID entity.OrderID) (entity.Refund, error) {
	query := `SELECT ` + refundColumns + ` FROM refunds WHERE order_id = ? AND status = ? ORDER BY id LIMIT 1`

	refund, err := scanRefund(r.queryRow(ctx, query, int64(orderID), string(entity.RefundPending)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Refund{}, storage.ErrRefundNotFound
		}

		return entity.Refund{}, fmt.Errorf("failed to select refund: %w", err)
	}

	return refund, nil
}

// GetPendingRefunds returns the least recently attempted pending refunds.
func (r *repo) GetPendingRefunds(ctx context.Context, limit int) (entity.Refunds, error) {
	query := `SELECT ` + refundColumns + ` FROM refunds WHERE status = ? ORDER BY updated_at, id LIMIT ?`

	rows, err := r.query(ctx, query, string(entity.RefundPending), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select pending refunds: %w", err)
	}
	defer rows.Close()

	var refunds entity.Refunds
	for rows.Next() {
		refund, err := scanRefund(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan refund: %w", err)
		}
		refunds = append(refunds, refund)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate refunds: %w", err)
	}

	return refunds, nil
}

func (r *repo) UpdateRefund(ctx context.Context, refund entity.Refund) error {
	query := `UPDATE refunds SET status = ?, attempts = ?, last_error = ?, updated_at = ? WHERE id = ?`

	result, err := r.exec(ctx, query,
		string(refund.Status), refund.Attempts, refund.LastError, refund.UpdatedAt.UTC(), refund.ID)
	if err != nil {
		return fmt.Errorf("failed to update refund %d: %w", refund.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrRefundNotFound
	}

	return nil
}
