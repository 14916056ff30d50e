package dto

import (
	"time"

	"github.com/mert/facesmash/internal/app/models"
)

// CreateStudentRequest represents the body of POST /api/students. Field rules
// are enforced by the validation middleware via pkg/validation, not by
// binding tags, so that all violations are reported together.
type CreateStudentRequest struct {
	RollNumber  string `json:"rollNumber" example:"CS2021001"`
	ImageURL    string `json:"imageUrl" example:"https://example.com/photo.jpg"`
	Gender      string `json:"gender" example:"male" enums:"male,female,other"`
	InstagramID string `json:"instagramId,omitempty" example:"john.doe"`
}

// VoteRequest represents the body of POST /api/students/vote
type VoteRequest struct {
	StudentID string `json:"studentId" validate:"required"`
}

// StudentResponse is the full student representation returned by the API
type StudentResponse struct {
	ID           string    `json:"id"`
	RollNumber   string    `json:"rollNumber"`
	ImageURL     string    `json:"imageUrl"`
	Gender       string    `json:"gender"`
	InstagramID  *string   `json:"instagramId"`
	InstagramURL *string   `json:"instagramUrl"`
	Upvotes      int       `json:"upvotes"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FromStudent converts a models.Student to a StudentResponse
func FromStudent(s *models.Student) StudentResponse {
	if s == nil {
		return StudentResponse{}
	}
	return StudentResponse{
		ID:           s.ID.String(),
		RollNumber:   s.RollNumber,
		ImageURL:     s.ImageURL,
		Gender:       s.Gender,
		InstagramID:  s.InstagramID,
		InstagramURL: s.InstagramURL(),
		Upvotes:      s.Upvotes,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromStudents converts a slice of students
func FromStudents(students []models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, FromStudent(&students[i]))
	}
	return out
}

// RandomStudentsResponse is the body of GET /api/students/random
type RandomStudentsResponse struct {
	Success  bool              `json:"success" example:"true"`
	Students []StudentResponse `json:"students"`
	Filter   string            `json:"filter" example:"all"`
}

// VotedStudent is the trimmed student block in a vote confirmation
type VotedStudent struct {
	ID         string `json:"id"`
	RollNumber string `json:"rollNumber"`
	Upvotes    int    `json:"upvotes"`
}

// VoteResponse is the body of POST /api/students/vote
type VoteResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message" example:"Vote recorded successfully"`
	Student VotedStudent `json:"student"`
}

// ListFilters echoes the effective filters of a listing back to the caller
type ListFilters struct {
	Gender    string `json:"gender" example:"all"`
	Search    string `json:"search" example:""`
	SortBy    string `json:"sortBy" example:"upvotes"`
	SortOrder string `json:"sortOrder" example:"desc"`
}

// ListStudentsResponse is the body of GET /api/students
type ListStudentsResponse struct {
	Success    bool              `json:"success" example:"true"`
	Students   []StudentResponse `json:"students"`
	Pagination Pagination        `json:"pagination"`
	Filters    ListFilters       `json:"filters"`
}

// CreateStudentResponse is the body of POST /api/students
type CreateStudentResponse struct {
	Success bool            `json:"success" example:"true"`
	Message string          `json:"message" example:"Student added successfully"`
	Student StudentResponse `json:"student"`
}

// UpdateStudentResponse is the body of PUT /api/students/:id
type UpdateStudentResponse struct {
	Success bool            `json:"success" example:"true"`
	Message string          `json:"message" example:"Student updated successfully"`
	Student StudentResponse `json:"student"`
}

// DeactivatedStudent is the trimmed student block in a soft-delete confirmation
type DeactivatedStudent struct {
	ID         string `json:"id"`
	RollNumber string `json:"rollNumber"`
	IsActive   bool   `json:"isActive"`
}

// DeleteStudentResponse is the body of DELETE /api/students/:id
type DeleteStudentResponse struct {
	Success bool               `json:"success" example:"true"`
	Message string             `json:"message" example:"Student deactivated successfully"`
	Student DeactivatedStudent `json:"student"`
}

// TopVotedStudent is a leaderboard entry in the statistics response
type TopVotedStudent struct {
	ID          string  `json:"id"`
	RollNumber  string  `json:"rollNumber"`
	Upvotes     int     `json:"upvotes"`
	Gender      string  `json:"gender"`
	InstagramID *string `json:"instagramId"`
}

// Stats is the aggregate block of GET /api/students/stats
type Stats struct {
	TotalStudents      int64               `json:"totalStudents"`
	GenderDistribution models.GenderCounts `json:"genderDistribution"`
	TotalVotes         int64               `json:"totalVotes"`
	TopVoted           []TopVotedStudent   `json:"topVoted"`
}

// StatsResponse is the body of GET /api/students/stats
type StatsResponse struct {
	Success bool  `json:"success" example:"true"`
	Stats   Stats `json:"stats"`
}

// FromStudentStats converts aggregate statistics to the response block
func FromStudentStats(s *models.StudentStats) Stats {
	if s == nil {
		return Stats{}
	}
	top := make([]TopVotedStudent, 0, len(s.TopVoted))
	for i := range s.TopVoted {
		st := &s.TopVoted[i]
		top = append(top, TopVotedStudent{
			ID:          st.ID.String(),
			RollNumber:  st.RollNumber,
			Upvotes:     st.Upvotes,
			Gender:      st.Gender,
			InstagramID: st.InstagramID,
		})
	}
	return Stats{
		TotalStudents:      s.TotalStudents,
		GenderDistribution: s.GenderDistribution,
		TotalVotes:         s.TotalVotes,
		TopVoted:           top,
	}
}
