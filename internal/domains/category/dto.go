package category

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-catalog/internal/shared/utils"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

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

// CreateCategoryRequest is the payload for POST /categories.
// When Slug is empty it is derived from Name.
type CreateCategoryRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ParentID    string   `json:"parent_id"`
	Slug        string   `json:"slug"`
	Color       string   `json:"color"`
	Icon        string   `json:"icon"`
	SortOrder   *int     `json:"sort_order"`
	IsFeatured  *bool    `json:"is_featured"`
	Keywords    []string `json:"keywords"`
	Status      string   `json:"status"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 50)),
		validation.Field(&r.Description, validation.Length(0, 500)),
		validation.Field(&r.ParentID, validation.By(objectIDRule)),
		validation.Field(&r.Color, validation.Match(hexColorPattern)),
		validation.Field(&r.Icon, validation.Length(0, 50)),
		validation.Field(&r.Status, validation.In(
			StatusActive.String(), StatusInactive.String(), StatusDeprecated.String(),
		)),
	)
}

// ToCategory builds the model with defaults applied and timestamps
// stamped. ResolveSlug must have succeeded first.
func (r CreateCategoryRequest) ToCategory(parentID *primitive.ObjectID, slug string, now time.Time) *Category {
	status := Status(r.Status)
	if r.Status == "" {
		status = StatusActive
	}
	sortOrder := 0
	if r.SortOrder != nil {
		sortOrder = *r.SortOrder
	}
	isFeatured := false
	if r.IsFeatured != nil {
		isFeatured = *r.IsFeatured
	}

	return &Category{
		Name:        NormalizeName(r.Name),
		Description: r.Description,
		ParentID:    parentID,
		Slug:        slug,
		Color:       r.Color,
		Icon:        r.Icon,
		SortOrder:   sortOrder,
		IsFeatured:  isFeatured,
		Keywords:    NormalizeKeywords(r.Keywords),
		BookCount:   0,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ResolveSlug normalizes the supplied slug, deriving one from the name
// when absent. Fails when nothing alphanumeric survives normalization.
func (r CreateCategoryRequest) ResolveSlug() (string, error) {
	source := r.Slug
	if source == "" {
		source = r.Name
	}
	slug := utils.GenerateSlug(source)
	if slug == "" {
		return "", ErrInvalidSlug
	}
	return slug, nil
}

// UpdateCategoryRequest is the payload for PUT /categories/:id.
// Nil fields are left untouched.
type UpdateCategoryRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	ParentID    *string  `json:"parent_id"`
	Slug        *string  `json:"slug"`
	Color       *string  `json:"color"`
	Icon        *string  `json:"icon"`
	SortOrder   *int     `json:"sort_order"`
	IsFeatured  *bool    `json:"is_featured"`
	Keywords    []string `json:"keywords"`
	Status      *string  `json:"status"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.By(textPtrRule(2, 50))),
		validation.Field(&r.Description, validation.By(textPtrRule(0, 500))),
		validation.Field(&r.ParentID, validation.By(objectIDPtrRule)),
		validation.Field(&r.Color, validation.Match(hexColorPattern)),
		validation.Field(&r.Icon, validation.By(textPtrRule(0, 50))),
		validation.Field(&r.Status, validation.By(statusPtrRule)),
	)
}

// textPtrRule bounds the rune length of an optional string field without
// the built-in Length rule's empty-value skip, so a present-but-empty
// pointer still fails when min > 0.
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

func statusPtrRule(value interface{}) error {
	p, _ := value.(*string)
	if p == nil {
		return nil
	}
	if !Status(*p).IsValid() {
		return validation.NewError("validation_status", "must be a valid status")
	}
	return nil
}

func objectIDPtrRule(value interface{}) error {
	p, _ := value.(*string)
	if p == nil || *p == "" {
		return nil
	}
	if !utils.IsValidObjectID(*p) {
		return validation.NewError("validation_object_id", "must be a valid object id")
	}
	return nil
}
