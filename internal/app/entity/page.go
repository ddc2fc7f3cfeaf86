package entity

import (
	"math"
	"time"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type PageFilter struct {
	Page     int
	PageSize int

	UserID *UserID
	Status *OrderStatus
	Number string
	Phone  string

	BeginTime *time.Time
	EndTime   *time.Time
}

// Normalize clamps paging values to sane bounds.
func (f PageFilter) Normalize() PageFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}

	return f
}

// OffsetInRange reports whether the row offset of the page fits a 32-bit
// SQL integer.
func (f PageFilter) OffsetInRange() bool {
	if f.Page < 1 || f.PageSize < 1 {
		return true
	}

	return f.Page-1 <= math.MaxInt32/f.PageSize
}

func (f PageFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type OrderPage struct {
	Total  int64
	Orders []OrderDetails
}
