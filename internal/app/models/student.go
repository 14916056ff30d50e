package models

import (
	"time"

	"github.com/google/uuid"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID          uuid.UUID `json:"id" db:"id"`
	RollNumber  string    `json:"rollNumber" db:"roll_number" example:"CS2021001"`
	ImageURL    string    `json:"imageUrl" db:"image_url" example:"https://example.com/photo.jpg"`
	Gender      string    `json:"gender" db:"gender" example:"male" enums:"male,female,other"`
	InstagramID *string   `json:"instagramId" db:"instagram_id"` // nil when the student has no handle
	Upvotes     int       `json:"upvotes" db:"upvotes"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// InstagramURL returns the profile URL for the student's Instagram handle,
// or nil when no handle is set.
func (s *Student) InstagramURL() *string {
	if s.InstagramID == nil || *s.InstagramID == "" {
		return nil
	}
	url := "https://instagram.com/" + *s.InstagramID
	return &url
}

// GenderCounts holds per-gender active student counts.
type GenderCounts struct {
	Male   int64 `json:"male"`
	Female int64 `json:"female"`
	Other  int64 `json:"other"`
}

// StudentStats aggregates voting statistics over active students.
type StudentStats struct {
	TotalStudents      int64
	GenderDistribution GenderCounts
	TotalVotes         int64
	TopVoted           []Student
}
