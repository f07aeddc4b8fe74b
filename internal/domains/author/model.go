package author

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status represents the author's lifecycle state.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDeceased Status = "deceased"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDeceased:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// allowedPlatforms is the social-media key allow-list. Unrecognized
// platforms are silently dropped.
var allowedPlatforms = map[string]bool{
	"twitter":   true,
	"facebook":  true,
	"instagram": true,
	"linkedin":  true,
	"goodreads": true,
}

// Author represents a document in the authors collection.
type Author struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Biography   string             `bson:"biography,omitempty" json:"biography,omitempty"`
	BirthDate   *time.Time         `bson:"birth_date,omitempty" json:"birth_date,omitempty"`
	DeathDate   *time.Time         `bson:"death_date,omitempty" json:"death_date,omitempty"`
	Nationality string             `bson:"nationality,omitempty" json:"nationality,omitempty"`
	Website     string             `bson:"website,omitempty" json:"website,omitempty"`
	SocialMedia map[string]string  `bson:"social_media" json:"social_media"`
	Genres      []string           `bson:"genres" json:"genres"`
	Awards      []string           `bson:"awards" json:"awards"`
	Status      Status             `bson:"status" json:"status"`
	BookCount   int                `bson:"book_count" json:"book_count"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// GetAge returns the author's current age, or age at death when a death
// date is set. Returns nil when the birth date is unknown.
func (a *Author) GetAge() *int {
	if a.BirthDate == nil {
		return nil
	}

	end := time.Now().UTC()
	if a.DeathDate != nil {
		end = *a.DeathDate
	}

	age := end.Year() - a.BirthDate.Year()
	if end.Month() < a.BirthDate.Month() ||
		(end.Month() == a.BirthDate.Month() && end.Day() < a.BirthDate.Day()) {
		age--
	}

	return &age
}

func (a *Author) IsActive() bool {
	return a.Status == StatusActive
}

// AddGenre appends a genre unless it is empty or already present.
func (a *Author) AddGenre(genre string) {
	if genre == "" {
		return
	}
	for _, g := range a.Genres {
		if g == genre {
			return
		}
	}
	a.Genres = append(a.Genres, genre)
}

// AddAward appends an award unless it is empty or already present.
func (a *Author) AddAward(award string) {
	if award == "" {
		return
	}
	for _, w := range a.Awards {
		if w == award {
			return
		}
	}
	a.Awards = append(a.Awards, award)
}

// FilterSocialMedia keeps only allow-listed platforms, lower-casing keys.
func FilterSocialMedia(profiles map[string]string) map[string]string {
	filtered := map[string]string{}
	for platform, profile := range profiles {
		key := strings.ToLower(platform)
		if allowedPlatforms[key] {
			filtered[key] = profile
		}
	}
	return filtered
}
