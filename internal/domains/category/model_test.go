package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKeywords(t *testing.T) {
	in := []string{"Fiction", "fiction", "  SPACE opera ", "", "  ", "space opera", "aliens"}
	assert.Equal(t, []string{"fiction", "space opera", "aliens"}, NormalizeKeywords(in))
}

func TestNormalizeKeywords_Empty(t *testing.T) {
	assert.Equal(t, []string{}, NormalizeKeywords(nil))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Science Fiction", NormalizeName("  Science   Fiction  "))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestAddKeyword(t *testing.T) {
	c := &Category{}
	c.AddKeyword("  Space ")
	c.AddKeyword("space")
	c.AddKeyword("")
	assert.Equal(t, []string{"space"}, c.Keywords)
}

func TestStatusPredicates(t *testing.T) {
	c := &Category{Status: StatusActive}
	assert.True(t, c.IsActive())
	assert.True(t, c.CanBeAssigned())

	c.Status = StatusDeprecated
	assert.False(t, c.IsActive())
	assert.False(t, c.CanBeAssigned())

	assert.False(t, Status("archived").IsValid())
	assert.True(t, StatusInactive.IsValid())
}

func TestCreateCategoryRequest_Validate(t *testing.T) {
	valid := CreateCategoryRequest{Name: "Science Fiction"}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("name too short", func(t *testing.T) {
		req := valid
		req.Name = "A"
		assert.Error(t, req.Validate())
	})

	t.Run("bad color", func(t *testing.T) {
		req := valid
		req.Color = "red"
		assert.Error(t, req.Validate())

		req.Color = "#12345G"
		assert.Error(t, req.Validate())
	})

	t.Run("good color", func(t *testing.T) {
		req := valid
		req.Color = "#1A2b3C"
		assert.NoError(t, req.Validate())
	})

	t.Run("bad parent id", func(t *testing.T) {
		req := valid
		req.ParentID = "nope"
		assert.Error(t, req.Validate())
	})

	t.Run("bad status", func(t *testing.T) {
		req := valid
		req.Status = "archived"
		assert.Error(t, req.Validate())
	})
}

func TestUpdateCategoryRequest_Validate(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("empty request is valid", func(t *testing.T) {
		assert.NoError(t, UpdateCategoryRequest{}.Validate())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		assert.Error(t, UpdateCategoryRequest{Name: strPtr("")}.Validate())
	})

	t.Run("short name rejected", func(t *testing.T) {
		assert.Error(t, UpdateCategoryRequest{Name: strPtr("A")}.Validate())
	})

	t.Run("empty status rejected", func(t *testing.T) {
		assert.Error(t, UpdateCategoryRequest{Status: strPtr("")}.Validate())
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		assert.Error(t, UpdateCategoryRequest{Status: strPtr("archived")}.Validate())
	})

	t.Run("valid fields accepted", func(t *testing.T) {
		assert.NoError(t, UpdateCategoryRequest{
			Name:   strPtr("Science Fiction"),
			Status: strPtr("inactive"),
		}.Validate())
	})
}

func TestCreateCategoryRequest_ResolveSlug(t *testing.T) {
	t.Run("derived from name", func(t *testing.T) {
		req := CreateCategoryRequest{Name: "Science Fiction!!"}
		slug, err := req.ResolveSlug()
		assert.NoError(t, err)
		assert.Equal(t, "science-fiction", slug)
	})

	t.Run("supplied slug normalized", func(t *testing.T) {
		req := CreateCategoryRequest{Name: "Whatever", Slug: "My--Custom Slug!"}
		slug, err := req.ResolveSlug()
		assert.NoError(t, err)
		assert.Equal(t, "my-custom-slug", slug)
	})

	t.Run("nothing alphanumeric", func(t *testing.T) {
		req := CreateCategoryRequest{Name: "Whatever", Slug: "---"}
		_, err := req.ResolveSlug()
		assert.ErrorIs(t, err, ErrInvalidSlug)
	})
}
