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

	"library-catalog/internal/domains/author"
	"library-catalog/internal/infrastructure/database"
)

const collectionName = "authors"

type authorRepository struct {
	coll *mongo.Collection
}

// NewAuthorRepository returns the mongo-backed author repository.
func NewAuthorRepository(db *database.MongoDB) author.Repository {
	return &authorRepository{coll: db.Collection(collectionName)}
}

func (r *authorRepository) Insert(ctx context.Context, a *author.Author) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert author: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *authorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*author.Author, error) {
	var a author.Author
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find author by id: %w", err)
	}
	return &a, nil
}

func (r *authorRepository) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]author.Author, error) {
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find authors: %w", err)
	}
	defer cursor.Close(ctx)

	authors := []author.Author{}
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}
	return authors, nil
}

func (r *authorRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count authors: %w", err)
	}
	return count, nil
}

func (r *authorRepository) Save(ctx context.Context, a *author.Author) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return fmt.Errorf("save author: %w", err)
	}
	return nil
}

func (r *authorRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete author: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *authorRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("check author exists: %w", err)
	}
	return count > 0, nil
}

func (r *authorRepository) SearchByName(ctx context.Context, name string) ([]author.Author, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("search authors: %w", err)
	}
	defer cursor.Close(ctx)

	authors := []author.Author{}
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}
	return authors, nil
}
