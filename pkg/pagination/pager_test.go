package pagination_test

import (
	"context"
	"math"
	"testing"

	"github.com/ddd-commerce/backend/pkg/pagination"
	"github.com/stretchr/testify/assert"
)

func TestNewPager(t *testing.T) {
	tests := []struct {
		page, limit       int
		wantPage, wantLim int
		wantOffset        int
	}{
		{0, 0, 1, pagination.DefaultLimit, 0},
		{1, 20, 1, 20, 0},
		{3, 20, 3, 20, 40},
		{2, 500, 2, pagination.MaxLimit, pagination.MaxLimit},
		{math.MaxInt, pagination.MaxLimit, pagination.MaxPage, pagination.MaxLimit, (pagination.MaxPage - 1) * pagination.MaxLimit},
	}

	for _, tt := range tests {
		p := pagination.NewPager(tt.page, tt.limit)
		offset, limit := p.Do()

		assert.Equal(t, tt.wantPage, p.Page)
		assert.Equal(t, tt.wantLim, limit)
		assert.Equal(t, tt.wantOffset, offset)
	}
}

func TestPagerOffsetNeverNegative(t *testing.T) {
	for _, page := range []int{math.MaxInt, math.MaxInt / 10, math.MaxInt32} {
		offset, _ := pagination.NewPager(page, pagination.MaxLimit).Do()
		assert.GreaterOrEqual(t, offset, 0, page)
	}
}

func TestTotalPages(t *testing.T) {
	p := pagination.NewPager(1, 10)

	p.SetTotal(0)
	assert.Equal(t, 0, p.TotalPages())

	p.SetTotal(10)
	assert.Equal(t, 1, p.TotalPages())

	p.SetTotal(11)
	assert.Equal(t, 2, p.TotalPages())
}

func TestPagingValidate(t *testing.T) {
	assert.NoError(t, (&pagination.Paging{}).Validate(context.Background()))
	assert.NoError(t, (&pagination.Paging{Page: 2, Limit: 100}).Validate(context.Background()))
	assert.Error(t, (&pagination.Paging{Limit: 101}).Validate(context.Background()))
	assert.Error(t, (&pagination.Paging{Page: -1}).Validate(context.Background()))
}
