// Package validation holds the field rules for student records. The request
// middleware and the service layer both call into this package so the rules
// live in exactly one place.
package validation

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Validation rule patterns
var (
	// ImageURLPattern requires an http(s) URL ending in a known image extension
	ImageURLPattern = `^https?://.+\.(jpg|jpeg|png|gif|webp)$`

	// InstagramIDPattern - letters, numbers, dots and underscores, max 30 chars
	InstagramIDPattern = `^[a-zA-Z0-9_.]{1,30}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	ImageURL    *regexp.Regexp
	InstagramID *regexp.Regexp
}{
	ImageURL:    regexp.MustCompile(`(?i)` + ImageURLPattern),
	InstagramID: regexp.MustCompile(InstagramIDPattern),
}

// Genders is the closed set of accepted gender values (stored lower-case).
var Genders = []string{"male", "female", "other"}

// SortFields is the allow-list of fields a listing may be sorted by.
var SortFields = []string{"rollNumber", "upvotes", "gender", "createdAt", "updatedAt"}

// Field error messages shared by the request gate and the service layer.
const (
	MsgRollNumberRequired = "Roll number is required and must be a non-empty string"
	MsgImageURLRequired   = "Image URL is required and must be a non-empty string"
	MsgImageURLFormat     = "Image URL must be a valid HTTP/HTTPS URL ending with .jpg, .jpeg, .png, .gif, or .webp"
	MsgGenderInvalid      = "Gender is required and must be one of: male, female, other"
	MsgInstagramIDFormat  = "Instagram ID must contain only letters, numbers, dots, and underscores (max 30 characters)"
)

// IsValidID reports whether s is a well-formed record identifier (UUID).
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// IsValidGender reports whether g (case-insensitive) is a member of Genders.
func IsValidGender(g string) bool {
	g = strings.ToLower(strings.TrimSpace(g))
	for _, v := range Genders {
		if g == v {
			return true
		}
	}
	return false
}

// IsValidImageURL reports whether the trimmed URL matches the image URL rule.
func IsValidImageURL(u string) bool {
	return CompiledPatterns.ImageURL.MatchString(strings.TrimSpace(u))
}

// IsValidInstagramID reports whether the trimmed handle matches the Instagram
// rule. Empty values are valid, the field is optional.
func IsValidInstagramID(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return true
	}
	return CompiledPatterns.InstagramID.MatchString(id)
}

// IsValidSortField reports whether f is in the sort allow-list (case-sensitive,
// the API uses camelCase field names).
func IsValidSortField(f string) bool {
	for _, v := range SortFields {
		if f == v {
			return true
		}
	}
	return false
}

// IsValidSortOrder reports whether o (case-insensitive) is asc or desc.
func IsValidSortOrder(o string) bool {
	o = strings.ToLower(o)
	return o == "asc" || o == "desc"
}

// CheckStudentFields validates a full set of student fields and returns every
// violation rather than stopping at the first one. instagramID may be empty.
func CheckStudentFields(rollNumber, imageURL, gender, instagramID string) []string {
	var errs []string

	if strings.TrimSpace(rollNumber) == "" {
		errs = append(errs, MsgRollNumberRequired)
	}

	if strings.TrimSpace(imageURL) == "" {
		errs = append(errs, MsgImageURLRequired)
	} else if !IsValidImageURL(imageURL) {
		errs = append(errs, MsgImageURLFormat)
	}

	if !IsValidGender(gender) {
		errs = append(errs, MsgGenderInvalid)
	}

	if !IsValidInstagramID(instagramID) {
		errs = append(errs, MsgInstagramIDFormat)
	}

	return errs
}
