package author

import (
	"context"
)

// Service is the business-logic contract for authors.
type Service interface {
	Create(ctx context.Context, req CreateAuthorRequest) (*Author, error)
	GetByID(ctx context.Context, id string) (*Author, error)
	List(ctx context.Context, page, perPage int) ([]Author, int64, error)
	Update(ctx context.Context, id string, req UpdateAuthorRequest) (*Author, error)
	Delete(ctx context.Context, id string) error

	SearchByName(ctx context.Context, name string) ([]Author, error)
	UpdateBookCount(ctx context.Context, id string) (*Author, error)
}
