package author

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestGetAge(t *testing.T) {
	t.Run("age at death", func(t *testing.T) {
		a := &Author{
			BirthDate: datePtr(1896, time.September, 24),
			DeathDate: datePtr(1940, time.December, 21),
		}
		age := a.GetAge()
		require.NotNil(t, age)
		assert.Equal(t, 44, *age)
	})

	t.Run("birthday not yet reached in death year", func(t *testing.T) {
		a := &Author{
			BirthDate: datePtr(1900, time.June, 15),
			DeathDate: datePtr(1950, time.June, 14),
		}
		age := a.GetAge()
		require.NotNil(t, age)
		assert.Equal(t, 49, *age)
	})

	t.Run("birthday exactly on death day", func(t *testing.T) {
		a := &Author{
			BirthDate: datePtr(1900, time.June, 15),
			DeathDate: datePtr(1950, time.June, 15),
		}
		age := a.GetAge()
		require.NotNil(t, age)
		assert.Equal(t, 50, *age)
	})

	t.Run("unknown birth date", func(t *testing.T) {
		a := &Author{}
		assert.Nil(t, a.GetAge())
	})

	t.Run("living author", func(t *testing.T) {
		a := &Author{BirthDate: datePtr(1980, time.January, 1)}
		age := a.GetAge()
		require.NotNil(t, age)
		assert.GreaterOrEqual(t, *age, 46)
	})
}

func TestFilterSocialMedia(t *testing.T) {
	in := map[string]string{
		"Twitter":   "@writer",
		"GOODREADS": "writer",
		"myspace":   "writer",
		"linkedin":  "in/writer",
	}

	out := FilterSocialMedia(in)

	assert.Equal(t, map[string]string{
		"twitter":   "@writer",
		"goodreads": "writer",
		"linkedin":  "in/writer",
	}, out)
}

func TestFilterSocialMedia_Nil(t *testing.T) {
	assert.Equal(t, map[string]string{}, FilterSocialMedia(nil))
}

func TestAddGenreAndAward(t *testing.T) {
	a := &Author{}

	a.AddGenre("fiction")
	a.AddGenre("fiction")
	a.AddGenre("")
	a.AddGenre("satire")
	assert.Equal(t, []string{"fiction", "satire"}, a.Genres)

	a.AddAward("Pulitzer Prize")
	a.AddAward("Pulitzer Prize")
	assert.Equal(t, []string{"Pulitzer Prize"}, a.Awards)
}

func TestStatus(t *testing.T) {
	assert.True(t, StatusActive.IsValid())
	assert.True(t, StatusDeceased.IsValid())
	assert.False(t, Status("retired").IsValid())

	a := &Author{Status: StatusActive}
	assert.True(t, a.IsActive())
	a.Status = StatusInactive
	assert.False(t, a.IsActive())
}

func TestCreateAuthorRequest_Validate(t *testing.T) {
	valid := CreateAuthorRequest{Name: "Kurt Vonnegut"}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("name too short", func(t *testing.T) {
		req := valid
		req.Name = "K"
		assert.Error(t, req.Validate())
	})

	t.Run("bad email", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})

	t.Run("bad website scheme", func(t *testing.T) {
		req := valid
		req.Website = "ftp://example.com"
		assert.Error(t, req.Validate())
	})

	t.Run("https website accepted", func(t *testing.T) {
		req := valid
		req.Website = "https://example.com"
		assert.NoError(t, req.Validate())
	})

	t.Run("birth date in the future", func(t *testing.T) {
		req := valid
		future := time.Now().UTC().Add(48 * time.Hour)
		req.BirthDate = &future
		assert.ErrorIs(t, req.Validate(), ErrBirthDateInFuture)
	})

	t.Run("death date not after birth date", func(t *testing.T) {
		req := valid
		req.BirthDate = datePtr(1950, time.March, 1)
		req.DeathDate = datePtr(1950, time.March, 1)
		assert.ErrorIs(t, req.Validate(), ErrDeathBeforeBirth)
	})

	t.Run("bad status", func(t *testing.T) {
		req := valid
		req.Status = "retired"
		assert.Error(t, req.Validate())
	})
}

func TestUpdateAuthorRequest_Validate(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("empty request is valid", func(t *testing.T) {
		assert.NoError(t, UpdateAuthorRequest{}.Validate())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		assert.Error(t, UpdateAuthorRequest{Name: strPtr("")}.Validate())
	})

	t.Run("short name rejected", func(t *testing.T) {
		assert.Error(t, UpdateAuthorRequest{Name: strPtr("K")}.Validate())
	})

	t.Run("empty status rejected", func(t *testing.T) {
		assert.Error(t, UpdateAuthorRequest{Status: strPtr("")}.Validate())
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		assert.Error(t, UpdateAuthorRequest{Status: strPtr("retired")}.Validate())
	})

	t.Run("valid status accepted", func(t *testing.T) {
		assert.NoError(t, UpdateAuthorRequest{Status: strPtr("deceased")}.Validate())
	})

	t.Run("valid name accepted", func(t *testing.T) {
		assert.NoError(t, UpdateAuthorRequest{Name: strPtr("Kurt Vonnegut")}.Validate())
	})
}

func TestCreateAuthorRequest_ToAuthor(t *testing.T) {
	now := time.Now().UTC()
	req := CreateAuthorRequest{
		Name:        "Ursula K. Le Guin",
		SocialMedia: map[string]string{"Twitter": "@ursula", "tumblr": "x"},
	}

	a := req.ToAuthor(now)

	assert.Equal(t, StatusActive, a.Status)
	assert.Equal(t, 0, a.BookCount)
	assert.Equal(t, []string{}, a.Genres)
	assert.Equal(t, []string{}, a.Awards)
	assert.Equal(t, map[string]string{"twitter": "@ursula"}, a.SocialMedia)
	assert.Equal(t, now, a.CreatedAt)
	assert.Equal(t, now, a.UpdatedAt)
}
