package pagination

import (
	"context"

	"github.com/ddd-commerce/backend/pkg/validation"
)

// Paging is the query form of a Pager.
type Paging struct {
	Page  int `json:"page" query:"page" validate:"omitempty,min=1"`
	Limit int `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
}

func (p *Paging) Validate(ctx context.Context) error {
	return validation.Validate().StructCtx(ctx, p)
}

func (p *Paging) Pager() *Pager {
	return NewPager(p.Page, p.Limit)
}
