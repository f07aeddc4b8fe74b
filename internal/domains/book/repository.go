package book

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the document-store contract for books.
// FindByID returns (nil, nil) when no document matches.
type Repository interface {
	Insert(ctx context.Context, b *Book) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Book, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]Book, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Save(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)

	ExistsByISBN(ctx context.Context, isbn string, excludeID primitive.ObjectID) (bool, error)
	CountByAuthor(ctx context.Context, authorID primitive.ObjectID) (int64, error)
	CountByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error)
	FindByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]Book, error)
	FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]Book, error)
	SearchByTitle(ctx context.Context, title string) ([]Book, error)
}
