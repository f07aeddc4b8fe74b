package book

import (
	"fmt"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-catalog/internal/shared/utils"
)

func objectIDRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !utils.IsValidObjectID(s) {
		return validation.NewError("validation_object_id", "must be a valid object id")
	}
	return nil
}

// textPtrRule bounds the rune length of an optional string field.
// Unlike the built-in Length rule it does not skip empty values, so a
// present-but-empty pointer still fails when min > 0.
func textPtrRule(min, max int) validation.RuleFunc {
	return func(value interface{}) error {
		p, _ := value.(*string)
		if p == nil {
			return nil
		}
		if n := utf8.RuneCountInString(*p); n < min || n > max {
			return validation.NewError("validation_length", fmt.Sprintf("the length must be between %d and %d", min, max))
		}
		return nil
	}
}

// rangePtrRule bounds an optional integer field. Zero is not treated as
// absent: a pointer to 0 is validated like any other value.
func rangePtrRule(min, max int) validation.RuleFunc {
	return func(value interface{}) error {
		p, _ := value.(*int)
		if p == nil {
			return nil
		}
		if *p < min || *p > max {
			return validation.NewError("validation_range", fmt.Sprintf("must be between %d and %d", min, max))
		}
		return nil
	}
}

// minPtrRule is rangePtrRule with only a lower bound.
func minPtrRule(min int) validation.RuleFunc {
	return func(value interface{}) error {
		p, _ := value.(*int)
		if p == nil {
			return nil
		}
		if *p < min {
			return validation.NewError("validation_min", fmt.Sprintf("must be no less than %d", min))
		}
		return nil
	}
}

func isbnRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := utils.ValidateISBN(s); err != nil {
		return validation.NewError("validation_isbn", err.Error())
	}
	return nil
}

// CreateBookRequest is the payload for POST /books.
type CreateBookRequest struct {
	Title           string     `json:"title"`
	ISBN            string     `json:"isbn"`
	AuthorID        string     `json:"author_id"`
	CategoryID      string     `json:"category_id"`
	Description     string     `json:"description"`
	PublicationDate *time.Time `json:"publication_date"`
	Pages           *int       `json:"pages"`
	Language        string     `json:"language"`
	Publisher       string     `json:"publisher"`
	AvailableCopies *int       `json:"available_copies"`
	TotalCopies     *int       `json:"total_copies"`
	Tags            []string   `json:"tags"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.ISBN, validation.Required, validation.By(isbnRule)),
		validation.Field(&r.AuthorID, validation.Required, validation.By(objectIDRule)),
		validation.Field(&r.CategoryID, validation.Required, validation.By(objectIDRule)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
		validation.Field(&r.Pages, validation.By(rangePtrRule(1, 10000))),
		validation.Field(&r.Language, validation.Length(0, 50)),
		validation.Field(&r.Publisher, validation.Length(0, 100)),
		validation.Field(&r.AvailableCopies, validation.By(minPtrRule(0))),
		validation.Field(&r.TotalCopies, validation.By(minPtrRule(1))),
	)
}

// ToBook builds the model with defaults applied and timestamps stamped.
// The ISBN is stored normalized; ids must already be format-checked.
func (r CreateBookRequest) ToBook(authorID, categoryID primitive.ObjectID, now time.Time) *Book {
	available := 1
	if r.AvailableCopies != nil {
		available = *r.AvailableCopies
	}
	total := 1
	if r.TotalCopies != nil {
		total = *r.TotalCopies
	}
	language := r.Language
	if language == "" {
		language = DefaultLanguage
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	return &Book{
		Title:           r.Title,
		ISBN:            utils.NormalizeISBN(r.ISBN),
		AuthorID:        authorID,
		CategoryID:      categoryID,
		Description:     r.Description,
		PublicationDate: r.PublicationDate,
		Pages:           r.Pages,
		Language:        language,
		Publisher:       r.Publisher,
		AvailableCopies: available,
		TotalCopies:     total,
		Tags:            tags,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// UpdateBookRequest is the payload for PUT /books/:id.
// Nil fields are left untouched.
type UpdateBookRequest struct {
	Title           *string    `json:"title"`
	ISBN            *string    `json:"isbn"`
	AuthorID        *string    `json:"author_id"`
	CategoryID      *string    `json:"category_id"`
	Description     *string    `json:"description"`
	PublicationDate *time.Time `json:"publication_date"`
	Pages           *int       `json:"pages"`
	Language        *string    `json:"language"`
	Publisher       *string    `json:"publisher"`
	AvailableCopies *int       `json:"available_copies"`
	TotalCopies     *int       `json:"total_copies"`
	Tags            []string   `json:"tags"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.By(textPtrRule(1, 200))),
		validation.Field(&r.ISBN, validation.By(isbnPtrRule)),
		validation.Field(&r.AuthorID, validation.By(objectIDPtrRule)),
		validation.Field(&r.CategoryID, validation.By(objectIDPtrRule)),
		validation.Field(&r.Description, validation.By(textPtrRule(0, 1000))),
		validation.Field(&r.Pages, validation.By(rangePtrRule(1, 10000))),
		validation.Field(&r.Language, validation.By(textPtrRule(0, 50))),
		validation.Field(&r.Publisher, validation.By(textPtrRule(0, 100))),
		validation.Field(&r.AvailableCopies, validation.By(minPtrRule(0))),
		validation.Field(&r.TotalCopies, validation.By(minPtrRule(1))),
	)
}

func isbnPtrRule(value interface{}) error {
	p, _ := value.(*string)
	if p == nil {
		return nil
	}
	return isbnRule(*p)
}

func objectIDPtrRule(value interface{}) error {
	p, _ := value.(*string)
	if p == nil {
		return nil
	}
	if *p == "" || !utils.IsValidObjectID(*p) {
		return validation.NewError("validation_object_id", "must be a valid object id")
	}
	return nil
}

// ListBooksRequest carries the query filters for GET /books.
type ListBooksRequest struct {
	Search        string
	AuthorID      string
	CategoryID    string
	AvailableOnly bool
	Page          int
	PerPage       int
}

// UpdateInventoryRequest is the payload for PUT /books/:id/inventory.
type UpdateInventoryRequest struct {
	AvailableCopies *int `json:"available_copies"`
	TotalCopies     *int `json:"total_copies"`
}

func (r UpdateInventoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AvailableCopies, validation.NotNil, validation.By(minPtrRule(0))),
		validation.Field(&r.TotalCopies, validation.NotNil, validation.By(minPtrRule(1))),
	)
}

// AvailabilityResponse summarizes lending availability for one book.
type AvailabilityResponse struct {
	BookID          string `json:"book_id"`
	AvailableCopies int    `json:"available_copies"`
	TotalCopies     int    `json:"total_copies"`
	IsAvailable     bool   `json:"is_available"`
}
