package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-catalog/internal/domains/author"
)

// BookCounter reports how many books reference an author. Satisfied by
// the book repository; used for the delete guard and book_count recompute.
type BookCounter interface {
	CountByAuthor(ctx context.Context, authorID primitive.ObjectID) (int64, error)
}

type AuthorService struct {
	repo  author.Repository
	books BookCounter
}

func NewService(repo author.Repository, books BookCounter) author.Service {
	return &AuthorService{repo: repo, books: books}
}

func (s *AuthorService) Create(ctx context.Context, req author.CreateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := req.ToAuthor(time.Now().UTC())
	id, err := s.repo.Insert(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = id

	return a, nil
}

func (s *AuthorService) GetByID(ctx context.Context, id string) (*author.Author, error) {
	return s.load(ctx, id)
}

func (s *AuthorService) List(ctx context.Context, page, perPage int) ([]author.Author, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	total, err := s.repo.Count(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	skip := int64(page-1) * int64(perPage)
	authors, err := s.repo.Find(ctx, bson.M{}, skip, int64(perPage))
	if err != nil {
		return nil, 0, err
	}

	return authors, total, nil
}

func (s *AuthorService) Update(ctx context.Context, id string, req author.UpdateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Email != nil {
		a.Email = *req.Email
	}
	if req.Biography != nil {
		a.Biography = *req.Biography
	}
	if req.BirthDate != nil {
		a.BirthDate = req.BirthDate
	}
	if req.DeathDate != nil {
		a.DeathDate = req.DeathDate
	}
	if req.Nationality != nil {
		a.Nationality = *req.Nationality
	}
	if req.Website != nil {
		a.Website = *req.Website
	}
	if req.SocialMedia != nil {
		a.SocialMedia = author.FilterSocialMedia(req.SocialMedia)
	}
	if req.Genres != nil {
		a.Genres = req.Genres
	}
	if req.Awards != nil {
		a.Awards = req.Awards
	}
	if req.Status != nil {
		a.Status = author.Status(*req.Status)
	}

	// Cross-field date rules re-checked against the merged state.
	if err := author.ValidateLifeDates(a.BirthDate, a.DeathDate); err != nil {
		return nil, err
	}

	a.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *AuthorService) Delete(ctx context.Context, id string) error {
	a, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.books.CountByAuthor(ctx, a.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return author.ErrAuthorHasBooks
	}

	deleted, err := s.repo.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (s *AuthorService) SearchByName(ctx context.Context, name string) ([]author.Author, error) {
	return s.repo.SearchByName(ctx, name)
}

// UpdateBookCount recomputes the derived book_count from the books
// collection and persists it.
func (s *AuthorService) UpdateBookCount(ctx context.Context, id string) (*author.Author, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.books.CountByAuthor(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	a.BookCount = int(count)
	a.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *AuthorService) load(ctx context.Context, id string) (*author.Author, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, author.ErrInvalidAuthorID
	}

	a, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, author.ErrAuthorNotFound
	}
	return a, nil
}
