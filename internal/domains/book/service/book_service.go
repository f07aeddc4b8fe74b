package service

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/shared/utils"
)

// AuthorChecker verifies that a referenced author exists. The document
// store has no foreign keys, so the service enforces this at write time.
type AuthorChecker interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// CategoryChecker verifies that a referenced category exists.
type CategoryChecker interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type BookService struct {
	repo       book.Repository
	authors    AuthorChecker
	categories CategoryChecker
}

func NewService(repo book.Repository, authors AuthorChecker, categories CategoryChecker) book.Service {
	return &BookService{
		repo:       repo,
		authors:    authors,
		categories: categories,
	}
}

func (s *BookService) Create(ctx context.Context, req book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	authorID, err := primitive.ObjectIDFromHex(req.AuthorID)
	if err != nil {
		return nil, book.ErrInvalidBookID
	}
	categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		return nil, book.ErrInvalidBookID
	}

	if err := s.checkReferences(ctx, &authorID, &categoryID); err != nil {
		return nil, err
	}

	isbn := utils.NormalizeISBN(req.ISBN)
	exists, err := s.repo.ExistsByISBN(ctx, isbn, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, book.ErrISBNExists
	}

	b := req.ToBook(authorID, categoryID, time.Now().UTC())
	if b.AvailableCopies > b.TotalCopies {
		return nil, book.ErrInvalidInventory
	}

	id, err := s.repo.Insert(ctx, b)
	if err != nil {
		return nil, err
	}
	b.ID = id

	return b, nil
}

func (s *BookService) GetByID(ctx context.Context, id string) (*book.Book, error) {
	return s.load(ctx, id)
}

func (s *BookService) List(ctx context.Context, req book.ListBooksRequest) ([]book.Book, int64, error) {
	filter := bson.M{}

	if req.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(req.Search), Options: "i"}
		filter["$or"] = []bson.M{
			{"title": pattern},
			{"description": pattern},
		}
	}
	if req.AuthorID != "" {
		authorID, err := primitive.ObjectIDFromHex(req.AuthorID)
		if err != nil {
			return nil, 0, book.ErrInvalidBookID
		}
		filter["author_id"] = authorID
	}
	if req.CategoryID != "" {
		categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
		if err != nil {
			return nil, 0, book.ErrInvalidBookID
		}
		filter["category_id"] = categoryID
	}
	if req.AvailableOnly {
		filter["available_copies"] = bson.M{"$gt": 0}
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64(page-1) * int64(perPage)
	books, err := s.repo.Find(ctx, filter, skip, int64(perPage))
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func (s *BookService) Update(ctx context.Context, id string, req book.UpdateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	// Re-check referential existence only when a reference changes.
	var newAuthorID, newCategoryID *primitive.ObjectID
	if req.AuthorID != nil {
		authorID, err := primitive.ObjectIDFromHex(*req.AuthorID)
		if err != nil {
			return nil, book.ErrInvalidBookID
		}
		newAuthorID = &authorID
	}
	if req.CategoryID != nil {
		categoryID, err := primitive.ObjectIDFromHex(*req.CategoryID)
		if err != nil {
			return nil, book.ErrInvalidBookID
		}
		newCategoryID = &categoryID
	}
	if err := s.checkReferences(ctx, newAuthorID, newCategoryID); err != nil {
		return nil, err
	}

	if req.ISBN != nil {
		isbn := utils.NormalizeISBN(*req.ISBN)
		if isbn != b.ISBN {
			exists, err := s.repo.ExistsByISBN(ctx, isbn, b.ID)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, book.ErrISBNExists
			}
		}
		b.ISBN = isbn
	}

	if req.Title != nil {
		b.Title = *req.Title
	}
	if newAuthorID != nil {
		b.AuthorID = *newAuthorID
	}
	if newCategoryID != nil {
		b.CategoryID = *newCategoryID
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.PublicationDate != nil {
		b.PublicationDate = req.PublicationDate
	}
	if req.Pages != nil {
		b.Pages = req.Pages
	}
	if req.Language != nil {
		b.Language = *req.Language
	}
	if req.Publisher != nil {
		b.Publisher = *req.Publisher
	}
	if req.AvailableCopies != nil {
		b.AvailableCopies = *req.AvailableCopies
	}
	if req.TotalCopies != nil {
		b.TotalCopies = *req.TotalCopies
	}
	if req.Tags != nil {
		b.Tags = req.Tags
	}

	if b.AvailableCopies > b.TotalCopies {
		return nil, book.ErrInvalidInventory
	}

	b.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	b, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, b.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return book.ErrBookNotFound
	}
	return nil
}

func (s *BookService) CheckAvailability(ctx context.Context, id string) (*book.AvailabilityResponse, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return &book.AvailabilityResponse{
		BookID:          b.ID.Hex(),
		AvailableCopies: b.AvailableCopies,
		TotalCopies:     b.TotalCopies,
		IsAvailable:     b.IsAvailable(),
	}, nil
}

func (s *BookService) UpdateInventory(ctx context.Context, id string, req book.UpdateInventoryRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if *req.AvailableCopies > *req.TotalCopies {
		return nil, book.ErrInvalidInventory
	}

	b.AvailableCopies = *req.AvailableCopies
	b.TotalCopies = *req.TotalCopies
	b.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookService) GetByAuthor(ctx context.Context, authorID string) ([]book.Book, error) {
	id, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, book.ErrInvalidBookID
	}
	return s.repo.FindByAuthor(ctx, id)
}

func (s *BookService) GetByCategory(ctx context.Context, categoryID string) ([]book.Book, error) {
	id, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, book.ErrInvalidBookID
	}
	return s.repo.FindByCategory(ctx, id)
}

func (s *BookService) SearchByTitle(ctx context.Context, title string) ([]book.Book, error) {
	return s.repo.SearchByTitle(ctx, title)
}

// load parses the id and fetches the book, mapping a malformed id and an
// absent document to their respective sentinels.
func (s *BookService) load(ctx context.Context, id string) (*book.Book, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, book.ErrInvalidBookID
	}

	b, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (s *BookService) checkReferences(ctx context.Context, authorID, categoryID *primitive.ObjectID) error {
	if authorID != nil {
		ok, err := s.authors.Exists(ctx, *authorID)
		if err != nil {
			return err
		}
		if !ok {
			return book.ErrAuthorNotFound
		}
	}
	if categoryID != nil {
		ok, err := s.categories.Exists(ctx, *categoryID)
		if err != nil {
			return err
		}
		if !ok {
			return book.ErrCategoryNotFound
		}
	}
	return nil
}
