package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"library-catalog/internal/domains/category"
	"library-catalog/internal/infrastructure/database"
)

const collectionName = "categories"

// Categories sort by sort_order first so sibling ordering is stable.
var defaultSort = bson.D{{Key: "sort_order", Value: 1}, {Key: "name", Value: 1}}

type categoryRepository struct {
	coll *mongo.Collection
}

// NewCategoryRepository returns the mongo-backed category repository.
func NewCategoryRepository(db *database.MongoDB) category.Repository {
	return &categoryRepository{coll: db.Collection(collectionName)}
}

func (r *categoryRepository) Insert(ctx context.Context, c *category.Category) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert category: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*category.Category, error) {
	var c category.Category
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return &c, nil
}

func (r *categoryRepository) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]category.Category, error) {
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(defaultSort)

	return r.findWithOptions(ctx, filter, opts)
}

func (r *categoryRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}

func (r *categoryRepository) Save(ctx context.Context, c *category.Category) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return fmt.Errorf("save category: %w", err)
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *categoryRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("check category exists: %w", err)
	}
	return count > 0, nil
}

// FindAll returns the whole collection; tree building groups it in memory.
func (r *categoryRepository) FindAll(ctx context.Context) ([]category.Category, error) {
	return r.findWithOptions(ctx, bson.M{}, options.Find().SetSort(defaultSort))
}

func (r *categoryRepository) FindChildren(ctx context.Context, parentID primitive.ObjectID) ([]category.Category, error) {
	return r.findWithOptions(ctx, bson.M{"parent_id": parentID}, options.Find().SetSort(defaultSort))
}

func (r *categoryRepository) CountChildren(ctx context.Context, parentID primitive.ObjectID) (int64, error) {
	return r.Count(ctx, bson.M{"parent_id": parentID})
}

func (r *categoryRepository) SearchByName(ctx context.Context, name string) ([]category.Category, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}}
	return r.findWithOptions(ctx, filter, options.Find().SetSort(defaultSort))
}

func (r *categoryRepository) findWithOptions(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]category.Category, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []category.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}
