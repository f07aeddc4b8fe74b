package container

import (
	"context"
	"fmt"

	"library-catalog/internal/config"
	"library-catalog/internal/infrastructure/database"

	"library-catalog/internal/domains/author"
	authorHandler "library-catalog/internal/domains/author/handler"
	authorRepo "library-catalog/internal/domains/author/repository"
	authorService "library-catalog/internal/domains/author/service"

	"library-catalog/internal/domains/book"
	bookHandler "library-catalog/internal/domains/book/handler"
	bookRepo "library-catalog/internal/domains/book/repository"
	bookService "library-catalog/internal/domains/book/service"

	"library-catalog/internal/domains/category"
	categoryHandler "library-catalog/internal/domains/category/handler"
	categoryRepo "library-catalog/internal/domains/category/repository"
	categoryService "library-catalog/internal/domains/category/service"
)

// Container holds all application dependencies, constructed once at
// startup and passed down explicitly. No global singletons.
type Container struct {
	Config *config.Config
	DB     *database.MongoDB

	BookRepo     book.Repository
	AuthorRepo   author.Repository
	CategoryRepo category.Repository

	BookService     book.Service
	AuthorService   author.Service
	CategoryService category.Service

	BookHandler     *bookHandler.Handler
	AuthorHandler   *authorHandler.Handler
	CategoryHandler *categoryHandler.Handler
}

// NewContainer builds the dependency graph in order: config,
// infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(context.Background(), &cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	books := bookRepo.NewBookRepository(db)
	authors := authorRepo.NewAuthorRepository(db)
	categories := categoryRepo.NewCategoryRepository(db)

	bookSvc := bookService.NewService(books, authors, categories)
	authorSvc := authorService.NewService(authors, books)
	categorySvc := categoryService.NewService(categories, books)

	return &Container{
		Config:          cfg,
		DB:              db,
		BookRepo:        books,
		AuthorRepo:      authors,
		CategoryRepo:    categories,
		BookService:     bookSvc,
		AuthorService:   authorSvc,
		CategoryService: categorySvc,
		BookHandler:     bookHandler.NewHandler(bookSvc),
		AuthorHandler:   authorHandler.NewHandler(authorSvc),
		CategoryHandler: categoryHandler.NewHandler(categorySvc),
	}, nil
}

// Cleanup releases process-wide resources during shutdown.
func (c *Container) Cleanup(ctx context.Context) {
	if c.DB != nil {
		_ = c.DB.Close(ctx)
	}
}
