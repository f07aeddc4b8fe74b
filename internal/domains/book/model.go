package book

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book represents a catalog entry in the books collection.
type Book struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	ISBN            string             `bson:"isbn" json:"isbn"`
	AuthorID        primitive.ObjectID `bson:"author_id" json:"author_id"`
	CategoryID      primitive.ObjectID `bson:"category_id" json:"category_id"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	PublicationDate *time.Time         `bson:"publication_date,omitempty" json:"publication_date,omitempty"`
	Pages           *int               `bson:"pages,omitempty" json:"pages,omitempty"`
	Language        string             `bson:"language" json:"language"`
	Publisher       string             `bson:"publisher,omitempty" json:"publisher,omitempty"`
	AvailableCopies int                `bson:"available_copies" json:"available_copies"`
	TotalCopies     int                `bson:"total_copies" json:"total_copies"`
	Tags            []string           `bson:"tags" json:"tags"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// DefaultLanguage is applied when a book is created without one.
const DefaultLanguage = "English"

// IsAvailable reports whether at least one copy can be lent.
func (b *Book) IsAvailable() bool {
	return b.AvailableCopies > 0
}

// CanLend reports whether quantity copies can be lent at once.
func (b *Book) CanLend(quantity int) bool {
	return b.AvailableCopies >= quantity
}
