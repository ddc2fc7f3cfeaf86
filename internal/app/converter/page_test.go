package converter

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
)

func TestConvertQueryToPageFilter(t *testing.T) {
	query := url.Values{}
	query.Set("page", "2")
	query.Set("pageSize", "500")
	query.Set("status", "2")
	query.Set("number", "01H")
	query.Set("phone", "138")
	query.Set("beginTime", "2024-03-01 00:00:00")
	query.Set("endTime", "2024-03-02 12:30:00")

	filter, err := ConvertQueryToPageFilter(query)
	require.NoError(t, err)

	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, entity.MaxPageSize, filter.PageSize)
	require.NotNil(t, filter.Status)
	assert.Equal(t, entity.StatusToBeConfirmed, *filter.Status)
	assert.Equal(t, "01H", filter.Number)
	assert.Equal(t, "138", filter.Phone)
	require.NotNil(t, filter.BeginTime)
	assert.True(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Equal(*filter.BeginTime))
	require.NotNil(t, filter.EndTime)
	assert.True(t, time.Date(2024, 3, 2, 12, 30, 0, 0, time.UTC).Equal(*filter.EndTime))
}

func TestConvertQueryToPageFilterDefaults(t *testing.T) {
	filter, err := ConvertQueryToPageFilter(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, entity.DefaultPageSize, filter.PageSize)
	assert.Nil(t, filter.Status)
	assert.Nil(t, filter.BeginTime)
}

func TestConvertQueryToPageFilterErrors(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "page", value: "x"},
		{key: "pageSize", value: "1.5"},
		{key: "status", value: "9"},
		{key: "status", value: "done"},
		{key: "beginTime", value: "yesterday-ish"},
		{key: "page", value: "9223372036854775807"},
	}

	for _, test := range tests {
		t.Run(test.key+"="+test.value, func(t *testing.T) {
			query := url.Values{}
			query.Set(test.key, test.value)

			_, err := ConvertQueryToPageFilter(query)
			assert.Error(t, err)
		})
	}
}

func TestConvertQueryToPageFilterPageBound(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		pageSize string
		wantErr  bool
	}{
		{name: "last page in range", page: "21474837", pageSize: "100"},
		{name: "first page out of range", page: "21474838", pageSize: "100", wantErr: true},
		{name: "huge page with default size", page: "9223372036854775807", wantErr: true},
		{name: "huge page size is clamped", page: "2", pageSize: "9223372036854775807"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			query := url.Values{}
			query.Set("page", test.page)
			if len(test.pageSize) != 0 {
				query.Set("pageSize", test.pageSize)
			}

			filter, err := ConvertQueryToPageFilter(query)
			if test.wantErr {
				assert.ErrorIs(t, err, ErrPageOutOfRange)
				return
			}

			require.NoError(t, err)
			assert.GreaterOrEqual(t, filter.Offset(), 0)
		})
	}
}
