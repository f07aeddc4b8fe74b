package author

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the document-store contract for authors.
// FindByID returns (nil, nil) when no document matches.
type Repository interface {
	Insert(ctx context.Context, a *Author) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Author, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]Author, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Save(ctx context.Context, a *Author) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)

	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	SearchByName(ctx context.Context, name string) ([]Author, error)
}
