package converter

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/golang-module/carbon/v2"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
)

var ErrPageOutOfRange = errors.New("page is out of range")

// ConvertQueryToPageFilter reads page, pageSize, status, number, phone,
// beginTime and endTime from the query string.
func ConvertQueryToPageFilter(query url.Values) (entity.PageFilter, error) {
	var filter entity.PageFilter
	var err error

	if filter.Page, err = optionalInt(query, "page"); err != nil {
		return entity.PageFilter{}, err
	}
	if filter.PageSize, err = optionalInt(query, "pageSize"); err != nil {
		return entity.PageFilter{}, err
	}

	if raw := query.Get("status"); len(raw) != 0 {
		code, err := strconv.Atoi(raw)
		if err != nil {
			return entity.PageFilter{}, fmt.Errorf("status is invalid: %w", err)
		}
		status, err := entity.ParseOrderStatus(code)
		if err != nil {
			return entity.PageFilter{}, err
		}
		filter.Status = &status
	}

	filter.Number = query.Get("number")
	filter.Phone = query.Get("phone")

	if filter.BeginTime, err = optionalTime(query, "beginTime"); err != nil {
		return entity.PageFilter{}, err
	}
	if filter.EndTime, err = optionalTime(query, "endTime"); err != nil {
		return entity.PageFilter{}, err
	}

	filter = filter.Normalize()
	if !filter.OffsetInRange() {
		return entity.PageFilter{}, ErrPageOutOfRange
	}

	return filter, nil
}

func optionalInt(query url.Values, key string) (int, error) {
	raw := query.Get(key)
	if len(raw) == 0 {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s is invalid: %w", key, err)
	}

	return value, nil
}

func optionalTime(query url.Values, key string) (*time.Time, error) {
	raw := query.Get(key)
	if len(raw) == 0 {
		return nil, nil
	}

	parsed := carbon.Parse(raw, carbon.UTC)
	if parsed.Error != nil {
		return nil, fmt.Errorf("%s is invalid: %w", key, parsed.Error)
	}
	t := parsed.ToStdTime()

	return &t, nil
}
