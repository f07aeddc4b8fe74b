package category

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status represents the category's lifecycle state.
type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusDeprecated Status = "deprecated"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDeprecated:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Category represents a document in the categories collection.
// ParentID enables a tree: zero or one parent per category.
type Category struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	ParentID    *primitive.ObjectID `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
	Slug        string              `bson:"slug" json:"slug"`
	Color       string              `bson:"color,omitempty" json:"color,omitempty"`
	Icon        string              `bson:"icon,omitempty" json:"icon,omitempty"`
	SortOrder   int                 `bson:"sort_order" json:"sort_order"`
	IsFeatured  bool                `bson:"is_featured" json:"is_featured"`
	Keywords    []string            `bson:"keywords" json:"keywords"`
	BookCount   int                 `bson:"book_count" json:"book_count"`
	Status      Status              `bson:"status" json:"status"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}

func (c *Category) IsActive() bool {
	return c.Status == StatusActive
}

// CanBeAssigned reports whether books may reference this category.
func (c *Category) CanBeAssigned() bool {
	return c.Status == StatusActive
}

// AddKeyword appends a normalized keyword unless already present.
func (c *Category) AddKeyword(keyword string) {
	normalized := strings.ToLower(strings.TrimSpace(keyword))
	if normalized == "" {
		return
	}
	for _, k := range c.Keywords {
		if k == normalized {
			return
		}
	}
	c.Keywords = append(c.Keywords, normalized)
}

// NormalizeKeywords lower-cases, trims and dedupes keywords, preserving
// first occurrence order.
func NormalizeKeywords(keywords []string) []string {
	normalized := []string{}
	seen := map[string]bool{}
	for _, keyword := range keywords {
		k := strings.ToLower(strings.TrimSpace(keyword))
		if k == "" || seen[k] {
			continue
		}
		normalized = append(normalized, k)
		seen[k] = true
	}
	return normalized
}

// NormalizeName collapses internal whitespace runs and trims the ends.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// TreeNode is one node of the nested category tree. Depth starts at 0
// for roots.
type TreeNode struct {
	Category
	Depth    int         `json:"depth"`
	Children []*TreeNode `json:"children"`
}
