package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-catalog/internal/domains/book"
)

type fakeBookRepo struct {
	books map[primitive.ObjectID]*book.Book

	lastFilter bson.M
	lastSkip   int64
	lastLimit  int64
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[primitive.ObjectID]*book.Book{}}
}

func (r *fakeBookRepo) Insert(_ context.Context, b *book.Book) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *b
	stored.ID = id
	r.books[id] = &stored
	return id, nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id primitive.ObjectID) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookRepo) Find(_ context.Context, filter bson.M, skip, limit int64) ([]book.Book, error) {
	r.lastFilter = filter
	r.lastSkip = skip
	r.lastLimit = limit
	books := []book.Book{}
	for _, b := range r.books {
		books = append(books, *b)
	}
	return books, nil
}

func (r *fakeBookRepo) Count(_ context.Context, filter bson.M) (int64, error) {
	return int64(len(r.books)), nil
}

func (r *fakeBookRepo) Save(_ context.Context, b *book.Book) error {
	clone := *b
	r.books[b.ID] = &clone
	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := r.books[id]; !ok {
		return false, nil
	}
	delete(r.books, id)
	return true, nil
}

func (r *fakeBookRepo) ExistsByISBN(_ context.Context, isbn string, excludeID primitive.ObjectID) (bool, error) {
	for id, b := range r.books {
		if b.ISBN == isbn && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookRepo) CountByAuthor(_ context.Context, authorID primitive.ObjectID) (int64, error) {
	var n int64
	for _, b := range r.books {
		if b.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookRepo) CountByCategory(_ context.Context, categoryID primitive.ObjectID) (int64, error) {
	var n int64
	for _, b := range r.books {
		if b.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookRepo) FindByAuthor(_ context.Context, authorID primitive.ObjectID) ([]book.Book, error) {
	books := []book.Book{}
	for _, b := range r.books {
		if b.AuthorID == authorID {
			books = append(books, *b)
		}
	}
	return books, nil
}

func (r *fakeBookRepo) FindByCategory(_ context.Context, categoryID primitive.ObjectID) ([]book.Book, error) {
	books := []book.Book{}
	for _, b := range r.books {
		if b.CategoryID == categoryID {
			books = append(books, *b)
		}
	}
	return books, nil
}

func (r *fakeBookRepo) SearchByTitle(_ context.Context, title string) ([]book.Book, error) {
	books := []book.Book{}
	for _, b := range r.books {
		books = append(books, *b)
	}
	return books, nil
}

type fakeChecker struct {
	exists bool
}

func (c fakeChecker) Exists(_ context.Context, _ primitive.ObjectID) (bool, error) {
	return c.exists, nil
}

func newBookService(repo *fakeBookRepo) book.Service {
	return NewService(repo, fakeChecker{exists: true}, fakeChecker{exists: true})
}

func validCreateRequest() book.CreateBookRequest {
	return book.CreateBookRequest{
		Title:      "The Dispossessed",
		ISBN:       "978-0-306-40615-7",
		AuthorID:   primitive.NewObjectID().Hex(),
		CategoryID: primitive.NewObjectID().Hex(),
	}
}

func TestBookService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults and normalizes isbn", func(t *testing.T) {
		repo := newFakeBookRepo()
		svc := newBookService(repo)

		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		assert.False(t, b.ID.IsZero())
		assert.Equal(t, "9780306406157", b.ISBN)
		assert.Equal(t, 1, b.AvailableCopies)
		assert.Equal(t, 1, b.TotalCopies)
		assert.Equal(t, book.DefaultLanguage, b.Language)
		assert.NotNil(t, repo.books[b.ID])
	})

	t.Run("rejects missing author", func(t *testing.T) {
		repo := newFakeBookRepo()
		svc := NewService(repo, fakeChecker{exists: false}, fakeChecker{exists: true})

		_, err := svc.Create(ctx, validCreateRequest())
		assert.ErrorIs(t, err, book.ErrAuthorNotFound)
	})

	t.Run("rejects missing category", func(t *testing.T) {
		repo := newFakeBookRepo()
		svc := NewService(repo, fakeChecker{exists: true}, fakeChecker{exists: false})

		_, err := svc.Create(ctx, validCreateRequest())
		assert.ErrorIs(t, err, book.ErrCategoryNotFound)
	})

	t.Run("rejects duplicate isbn", func(t *testing.T) {
		repo := newFakeBookRepo()
		svc := newBookService(repo)

		_, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		req := validCreateRequest()
		req.ISBN = "9780306406157"
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, book.ErrISBNExists)
	})

	t.Run("rejects available above total", func(t *testing.T) {
		repo := newFakeBookRepo()
		svc := newBookService(repo)

		available, total := 5, 2
		req := validCreateRequest()
		req.AvailableCopies = &available
		req.TotalCopies = &total

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, book.ErrInvalidInventory)
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		repo := newFakeBookRepo()
		svc := newBookService(repo)

		req := validCreateRequest()
		req.Title = ""
		_, err := svc.Create(ctx, req)
		assert.Error(t, err)
		assert.Empty(t, repo.books)
	})
}

func TestBookService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookRepo()
	svc := newBookService(repo)

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		b, err := svc.GetByID(ctx, created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, created.Title, b.Title)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "not-an-id")
		assert.ErrorIs(t, err, book.ErrInvalidBookID)
	})

	t.Run("absent", func(t *testing.T) {
		_, err := svc.GetByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestBookService_List(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookRepo()
	svc := newBookService(repo)

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	t.Run("builds search filter", func(t *testing.T) {
		_, total, err := svc.List(ctx, book.ListBooksRequest{
			Search:        "dispossessed",
			AvailableOnly: true,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		assert.Contains(t, repo.lastFilter, "$or")
		assert.Equal(t, bson.M{"$gt": 0}, repo.lastFilter["available_copies"])
	})

	t.Run("clamps pagination", func(t *testing.T) {
		_, _, err := svc.List(ctx, book.ListBooksRequest{Page: 0, PerPage: 500})
		require.NoError(t, err)
		assert.Equal(t, int64(0), repo.lastSkip)
		assert.Equal(t, int64(100), repo.lastLimit)

		_, _, err = svc.List(ctx, book.ListBooksRequest{Page: 3, PerPage: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(40), repo.lastSkip)
		assert.Equal(t, int64(20), repo.lastLimit)
	})

	t.Run("malformed author filter", func(t *testing.T) {
		_, _, err := svc.List(ctx, book.ListBooksRequest{AuthorID: "bad"})
		assert.ErrorIs(t, err, book.ErrInvalidBookID)
	})
}

func TestBookService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update touches only named fields", func(t *testing.T) {
		repo := newFakeBookRepo()
		svc := newBookService(repo)

		created, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		// Back-date the stored copy so the refreshed timestamp is visible.
		stored := repo.books[created.ID]
		stored.UpdatedAt = time.Now().UTC().Add(-time.Hour)

		title := "The Left Hand of Darkness"
		updated, err := svc.Update(ctx, created.ID.Hex(), book.UpdateBookRequest{Title: &title})
		require.NoError(t, err)

		assert.Equal(t, title, updated.Title)
		assert.Equal(t, created.ISBN, updated.ISBN)
		assert.Equal(t, created.AuthorID, updated.AuthorID)
		assert.Equal(t, created.AvailableCopies, updated.AvailableCopies)
		assert.True(t, updated.UpdatedAt.After(stored.UpdatedAt))
	})

	t.Run("isbn change collides with another book", func(t *testing.T) {
		repo := newFakeBookRepo()
		svc := newBookService(repo)

		first, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		req := validCreateRequest()
		req.ISBN = "0306406152"
		second, err := svc.Create(ctx, req)
		require.NoError(t, err)

		isbn := first.ISBN
		_, err = svc.Update(ctx, second.ID.Hex(), book.UpdateBookRequest{ISBN: &isbn})
		assert.ErrorIs(t, err, book.ErrISBNExists)
	})

	t.Run("unchanged isbn is not a conflict", func(t *testing.T) {
		repo := newFakeBookRepo()
		svc := newBookService(repo)

		created, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		isbn := "978-0-306-40615-7"
		updated, err := svc.Update(ctx, created.ID.Hex(), book.UpdateBookRequest{ISBN: &isbn})
		require.NoError(t, err)
		assert.Equal(t, "9780306406157", updated.ISBN)
	})

	t.Run("merged inventory must stay consistent", func(t *testing.T) {
		repo := newFakeBookRepo()
		svc := newBookService(repo)

		created, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		available := 5
		_, err = svc.Update(ctx, created.ID.Hex(), book.UpdateBookRequest{AvailableCopies: &available})
		assert.ErrorIs(t, err, book.ErrInvalidInventory)
	})

	t.Run("absent book", func(t *testing.T) {
		repo := newFakeBookRepo()
		svc := newBookService(repo)

		title := "Anything"
		_, err := svc.Update(ctx, primitive.NewObjectID().Hex(), book.UpdateBookRequest{Title: &title})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("empty title never persisted", func(t *testing.T) {
		repo := newFakeBookRepo()
		svc := newBookService(repo)

		created, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		empty := ""
		_, err = svc.Update(ctx, created.ID.Hex(), book.UpdateBookRequest{Title: &empty})
		assert.Error(t, err)
		assert.Equal(t, created.Title, repo.books[created.ID].Title)
	})
}

func TestBookService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookRepo()
	svc := newBookService(repo)

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID.Hex()))
	assert.Empty(t, repo.books)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID.Hex()), book.ErrBookNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "bad"), book.ErrInvalidBookID)
}

func TestBookService_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookRepo()
	svc := newBookService(repo)

	available, total := 0, 3
	req := validCreateRequest()
	req.AvailableCopies = &available
	req.TotalCopies = &total

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	resp, err := svc.CheckAvailability(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.ID.Hex(), resp.BookID)
	assert.Equal(t, 0, resp.AvailableCopies)
	assert.Equal(t, 3, resp.TotalCopies)
	assert.False(t, resp.IsAvailable)
}

func TestBookService_UpdateInventory(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookRepo()
	svc := newBookService(repo)

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	t.Run("sets both counters", func(t *testing.T) {
		available, total := 2, 4
		b, err := svc.UpdateInventory(ctx, created.ID.Hex(), book.UpdateInventoryRequest{
			AvailableCopies: &available,
			TotalCopies:     &total,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, b.AvailableCopies)
		assert.Equal(t, 4, b.TotalCopies)
	})

	t.Run("rejects available above total", func(t *testing.T) {
		available, total := 9, 4
		_, err := svc.UpdateInventory(ctx, created.ID.Hex(), book.UpdateInventoryRequest{
			AvailableCopies: &available,
			TotalCopies:     &total,
		})
		assert.ErrorIs(t, err, book.ErrInvalidInventory)
	})

	t.Run("zero total never persisted", func(t *testing.T) {
		available, total := 0, 0
		_, err := svc.UpdateInventory(ctx, created.ID.Hex(), book.UpdateInventoryRequest{
			AvailableCopies: &available,
			TotalCopies:     &total,
		})
		assert.Error(t, err)
		assert.GreaterOrEqual(t, repo.books[created.ID].TotalCopies, 1)
	})
}

func TestBookService_GetByAuthor(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookRepo()
	svc := newBookService(repo)

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	books, err := svc.GetByAuthor(ctx, created.AuthorID.Hex())
	require.NoError(t, err)
	assert.Len(t, books, 1)

	_, err = svc.GetByAuthor(ctx, "bad")
	assert.ErrorIs(t, err, book.ErrInvalidBookID)
}
