package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID(uuid.NewString()))
	assert.False(t, IsValidID("12345"))
	assert.False(t, IsValidID(""))
}

func TestIsValidGender(t *testing.T) {
	assert.True(t, IsValidGender("male"))
	assert.True(t, IsValidGender("FEMALE"))
	assert.True(t, IsValidGender("  other  "))
	assert.False(t, IsValidGender(""))
	assert.False(t, IsValidGender("robot"))
}

func TestIsValidImageURL(t *testing.T) {
	valid := []string{
		"https://example.com/photo.jpg",
		"http://example.com/photo.jpeg",
		"https://cdn.example.com/a/b/c.png",
		"https://example.com/photo.gif",
		"https://example.com/photo.webp",
		"https://example.com/PHOTO.JPG",
		"  https://example.com/photo.jpg  ",
	}
	for _, u := range valid {
		assert.True(t, IsValidImageURL(u), u)
	}

	invalid := []string{
		"",
		"example.com/photo.jpg",
		"ftp://example.com/photo.jpg",
		"https://example.com/document.pdf",
		"https://example.com/photo.jpg?size=large",
	}
	for _, u := range invalid {
		assert.False(t, IsValidImageURL(u), u)
	}
}

func TestIsValidInstagramID(t *testing.T) {
	assert.True(t, IsValidInstagramID(""))
	assert.True(t, IsValidInstagramID("john.doe"))
	assert.True(t, IsValidInstagramID("user_99"))
	assert.True(t, IsValidInstagramID(strings.Repeat("a", 30)))
	assert.False(t, IsValidInstagramID(strings.Repeat("a", 31)))
	assert.False(t, IsValidInstagramID("has spaces"))
	assert.False(t, IsValidInstagramID("emoji✨"))
	assert.False(t, IsValidInstagramID("dash-ed"))
}

func TestIsValidSortField(t *testing.T) {
	for _, f := range SortFields {
		assert.True(t, IsValidSortField(f), f)
	}
	// API field names are camelCase and case-sensitive
	assert.False(t, IsValidSortField("rollnumber"))
	assert.False(t, IsValidSortField("password"))
	assert.False(t, IsValidSortField(""))
}

func TestIsValidSortOrder(t *testing.T) {
	assert.True(t, IsValidSortOrder("asc"))
	assert.True(t, IsValidSortOrder("DESC"))
	assert.False(t, IsValidSortOrder("sideways"))
	assert.False(t, IsValidSortOrder(""))
}

func TestCheckStudentFields(t *testing.T) {
	t.Run("valid fields produce no errors", func(t *testing.T) {
		errs := CheckStudentFields("cs2021001", "https://example.com/p.jpg", "male", "john.doe")
		assert.Empty(t, errs)
	})

	t.Run("optional instagram id may be empty", func(t *testing.T) {
		errs := CheckStudentFields("cs2021001", "https://example.com/p.jpg", "female", "")
		assert.Empty(t, errs)
	})

	t.Run("every violation is reported", func(t *testing.T) {
		errs := CheckStudentFields("", "https://example.com/p.pdf", "robot", "has spaces")
		assert.Equal(t, []string{
			MsgRollNumberRequired,
			MsgImageURLFormat,
			MsgGenderInvalid,
			MsgInstagramIDFormat,
		}, errs)
	})

	t.Run("missing image url reported as required", func(t *testing.T) {
		errs := CheckStudentFields("cs2021001", "", "male", "")
		assert.Equal(t, []string{MsgImageURLRequired}, errs)
	})
}
