package category

import (
	"context"
)

// Service is the business-logic contract for categories.
type Service interface {
	Create(ctx context.Context, req CreateCategoryRequest) (*Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context, page, perPage int) ([]Category, int64, error)
	Update(ctx context.Context, id string, req UpdateCategoryRequest) (*Category, error)
	Delete(ctx context.Context, id string) error

	SearchByName(ctx context.Context, name string) ([]Category, error)
	GetTree(ctx context.Context) ([]*TreeNode, error)
	GetSubcategories(ctx context.Context, parentID string) ([]Category, error)
	UpdateBookCount(ctx context.Context, id string) (*Category, error)
}
