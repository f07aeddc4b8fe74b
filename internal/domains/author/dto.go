package author

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

func websiteRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return validation.NewError("validation_website", "must start with http:// or https://")
	}
	return nil
}

func websitePtrRule(value interface{}) error {
	p, _ := value.(*string)
	if p == nil {
		return nil
	}
	return websiteRule(*p)
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

// ValidateLifeDates enforces the cross-field date rules shared by create
// and update: birth in the past, death strictly after birth.
func ValidateLifeDates(birth, death *time.Time) error {
	if birth != nil && birth.After(time.Now().UTC()) {
		return ErrBirthDateInFuture
	}
	if birth != nil && death != nil && !death.After(*birth) {
		return ErrDeathBeforeBirth
	}
	return nil
}

// CreateAuthorRequest is the payload for POST /authors.
type CreateAuthorRequest struct {
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Biography   string            `json:"biography"`
	BirthDate   *time.Time        `json:"birth_date"`
	DeathDate   *time.Time        `json:"death_date"`
	Nationality string            `json:"nationality"`
	Website     string            `json:"website"`
	SocialMedia map[string]string `json:"social_media"`
	Genres      []string          `json:"genres"`
	Awards      []string          `json:"awards"`
	Status      string            `json:"status"`
}

func (r CreateAuthorRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Biography, validation.Length(0, 2000)),
		validation.Field(&r.Nationality, validation.Length(0, 50)),
		validation.Field(&r.Website, validation.By(websiteRule)),
		validation.Field(&r.Status, validation.In(
			StatusActive.String(), StatusInactive.String(), StatusDeceased.String(),
		)),
	)
	if err != nil {
		return err
	}
	return ValidateLifeDates(r.BirthDate, r.DeathDate)
}

// ToAuthor builds the model with defaults applied and timestamps stamped.
func (r CreateAuthorRequest) ToAuthor(now time.Time) *Author {
	status := Status(r.Status)
	if r.Status == "" {
		status = StatusActive
	}
	genres := r.Genres
	if genres == nil {
		genres = []string{}
	}
	awards := r.Awards
	if awards == nil {
		awards = []string{}
	}

	return &Author{
		Name:        r.Name,
		Email:       r.Email,
		Biography:   r.Biography,
		BirthDate:   r.BirthDate,
		DeathDate:   r.DeathDate,
		Nationality: r.Nationality,
		Website:     r.Website,
		SocialMedia: FilterSocialMedia(r.SocialMedia),
		Genres:      genres,
		Awards:      awards,
		Status:      status,
		BookCount:   0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateAuthorRequest is the payload for PUT /authors/:id.
// Nil fields are left untouched.
type UpdateAuthorRequest struct {
	Name        *string           `json:"name"`
	Email       *string           `json:"email"`
	Biography   *string           `json:"biography"`
	BirthDate   *time.Time        `json:"birth_date"`
	DeathDate   *time.Time        `json:"death_date"`
	Nationality *string           `json:"nationality"`
	Website     *string           `json:"website"`
	SocialMedia map[string]string `json:"social_media"`
	Genres      []string          `json:"genres"`
	Awards      []string          `json:"awards"`
	Status      *string           `json:"status"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.By(textPtrRule(2, 100))),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Biography, validation.By(textPtrRule(0, 2000))),
		validation.Field(&r.Nationality, validation.By(textPtrRule(0, 50))),
		validation.Field(&r.Website, validation.By(websitePtrRule)),
		validation.Field(&r.Status, validation.By(statusPtrRule)),
	)
}
