package category

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the document-store contract for categories.
// FindByID returns (nil, nil) when no document matches.
type Repository interface {
	Insert(ctx context.Context, c *Category) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Category, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]Category, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Save(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)

	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	FindAll(ctx context.Context) ([]Category, error)
	FindChildren(ctx context.Context, parentID primitive.ObjectID) ([]Category, error)
	CountChildren(ctx context.Context, parentID primitive.ObjectID) (int64, error)
	SearchByName(ctx context.Context, name string) ([]Category, error)
}
