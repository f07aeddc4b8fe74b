package book

import (
	"context"
)

// Service is the business-logic contract for books.
type Service interface {
	Create(ctx context.Context, req CreateBookRequest) (*Book, error)
	GetByID(ctx context.Context, id string) (*Book, error)
	List(ctx context.Context, req ListBooksRequest) ([]Book, int64, error)
	Update(ctx context.Context, id string, req UpdateBookRequest) (*Book, error)
	Delete(ctx context.Context, id string) error

	CheckAvailability(ctx context.Context, id string) (*AvailabilityResponse, error)
	UpdateInventory(ctx context.Context, id string, req UpdateInventoryRequest) (*Book, error)
	GetByAuthor(ctx context.Context, authorID string) ([]Book, error)
	GetByCategory(ctx context.Context, categoryID string) ([]Book, error)
	SearchByTitle(ctx context.Context, title string) ([]Book, error)
}
