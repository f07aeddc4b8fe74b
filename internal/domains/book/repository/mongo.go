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

	"library-catalog/internal/domains/book"
	"library-catalog/internal/infrastructure/database"
)

const collectionName = "books"

type bookRepository struct {
	coll *mongo.Collection
}

// NewBookRepository returns the mongo-backed book repository.
func NewBookRepository(db *database.MongoDB) book.Repository {
	return &bookRepository{coll: db.Collection(collectionName)}
}

func (r *bookRepository) Insert(ctx context.Context, b *book.Book) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert book: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *bookRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*book.Book, error) {
	var b book.Book
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find book by id: %w", err)
	}
	return &b, nil
}

func (r *bookRepository) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]book.Book, error) {
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	defer cursor.Close(ctx)

	books := []book.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}
	return books, nil
}

func (r *bookRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return count, nil
}

func (r *bookRepository) Save(ctx context.Context, b *book.Book) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": b.ID}, b)
	if err != nil {
		return fmt.Errorf("save book: %w", err)
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete book: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *bookRepository) ExistsByISBN(ctx context.Context, isbn string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"isbn": isbn}
	if excludeID != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("check isbn exists: %w", err)
	}
	return count > 0, nil
}

func (r *bookRepository) CountByAuthor(ctx context.Context, authorID primitive.ObjectID) (int64, error) {
	return r.Count(ctx, bson.M{"author_id": authorID})
}

func (r *bookRepository) CountByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error) {
	return r.Count(ctx, bson.M{"category_id": categoryID})
}

func (r *bookRepository) FindByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]book.Book, error) {
	return r.findAllByFilter(ctx, bson.M{"author_id": authorID})
}

func (r *bookRepository) FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]book.Book, error) {
	return r.findAllByFilter(ctx, bson.M{"category_id": categoryID})
}

// SearchByTitle matches titles case-insensitively; the input is quoted so
// regex metacharacters in user queries are matched literally.
func (r *bookRepository) SearchByTitle(ctx context.Context, title string) ([]book.Book, error) {
	filter := bson.M{"title": primitive.Regex{Pattern: regexp.QuoteMeta(title), Options: "i"}}
	return r.findAllByFilter(ctx, filter)
}

func (r *bookRepository) findAllByFilter(ctx context.Context, filter bson.M) ([]book.Book, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	defer cursor.Close(ctx)

	books := []book.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}
	return books, nil
}
