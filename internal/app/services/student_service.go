package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mert/facesmash/internal/app/models"
	"github.com/mert/facesmash/internal/app/repositories"
	"github.com/mert/facesmash/internal/metrics"
	"github.com/mert/facesmash/internal/pkg/apperrors"
	"github.com/mert/facesmash/internal/pkg/validation"
)

const (
	// DefaultPairSize is how many candidates a comparison round needs.
	DefaultPairSize = 2
	// MaxSampleSize caps a single random-sampling request.
	MaxSampleSize = 10
)

// StudentStore is the persistence surface the student service depends on.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	ExistsByRollNumber(ctx context.Context, rollNumber string) (bool, error)
	List(ctx context.Context, params repositories.ListParams) ([]models.Student, int64, error)
	Random(ctx context.Context, gender string, count int) ([]models.Student, error)
	IncrementUpvotes(ctx context.Context, id uuid.UUID) (int, error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*models.Student, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*models.Student, error)
	Stats(ctx context.Context) (*models.StudentStats, error)
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	GetRandomStudents(ctx context.Context, gender string, count int) ([]models.Student, error)
	Vote(ctx context.Context, id uuid.UUID) (*models.Student, error)
	ListStudents(ctx context.Context, params repositories.ListParams) ([]models.Student, int64, error)
	CreateStudent(ctx context.Context, rollNumber, imageURL, gender, instagramID string) (*models.Student, error)
	UpdateStudent(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*models.Student, error)
	DeactivateStudent(ctx context.Context, id uuid.UUID) (*models.Student, error)
	GetStats(ctx context.Context) (*models.StudentStats, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	repo StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(repo StudentStore) StudentService {
	return &studentServiceImpl{repo: repo}
}

// GetRandomStudents returns count uniformly sampled active students. An
// unrecognized gender value is ignored rather than rejected, matching the
// sampling contract: the filter only narrows when it names a real gender.
func (s *studentServiceImpl) GetRandomStudents(ctx context.Context, gender string, count int) ([]models.Student, error) {
	if count < 1 {
		count = DefaultPairSize
	}
	if count > MaxSampleSize {
		count = MaxSampleSize
	}

	filter := ""
	if validation.IsValidGender(gender) {
		filter = strings.ToLower(strings.TrimSpace(gender))
	}

	students, err := s.repo.Random(ctx, filter, count)
	if err != nil {
		return nil, fmt.Errorf("error sampling students: %w", err)
	}

	if len(students) < DefaultPairSize {
		msg := fmt.Sprintf("Only %d student(s) available", len(students))
		if gender != "" {
			msg += " for gender: " + gender
		}
		return nil, apperrors.NewCustomError(apperrors.ErrInsufficientCandidates, msg)
	}

	return students, nil
}

// Vote increments the student's upvote counter by exactly one and returns the
// student carrying the new counter value. The active check and the increment
// are separate store operations; the increment itself is atomic in the store,
// so concurrent votes never lose updates.
func (s *studentServiceImpl) Vote(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !student.IsActive {
		return nil, apperrors.ErrStudentInactive
	}

	upvotes, err := s.repo.IncrementUpvotes(ctx, id)
	if err != nil {
		return nil, err
	}

	student.Upvotes = upvotes
	metrics.VotesTotal.WithLabelValues(student.Gender).Inc()
	return student, nil
}

// ListStudents returns a page of active students plus the total match count.
func (s *studentServiceImpl) ListStudents(ctx context.Context, params repositories.ListParams) ([]models.Student, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}
	if !validation.IsValidSortField(params.SortBy) {
		params.SortBy = "upvotes"
	}
	if !validation.IsValidSortOrder(params.SortOrder) {
		params.SortOrder = "desc"
	}
	if !validation.IsValidGender(params.Gender) {
		params.Gender = ""
	} else {
		params.Gender = strings.ToLower(strings.TrimSpace(params.Gender))
	}

	students, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing students: %w", err)
	}
	return students, total, nil
}

// CreateStudent persists a new active student with zero upvotes. The
// pre-insert roll number check is advisory; the store's uniqueness constraint
// is the authoritative guard against races.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, rollNumber, imageURL, gender, instagramID string) (*models.Student, error) {
	if errs := validation.CheckStudentFields(rollNumber, imageURL, gender, instagramID); len(errs) > 0 {
		return nil, apperrors.NewValidationError("Please check the following errors:", errs)
	}

	student := &models.Student{
		RollNumber: strings.TrimSpace(rollNumber),
		ImageURL:   strings.TrimSpace(imageURL),
		Gender:     strings.ToLower(strings.TrimSpace(gender)),
	}
	if handle := strings.TrimSpace(instagramID); handle != "" {
		student.InstagramID = &handle
	}

	exists, err := s.repo.ExistsByRollNumber(ctx, student.RollNumber)
	if err != nil {
		return nil, fmt.Errorf("error checking roll number: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateRollNumber
	}

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// updatableFields maps patchable API field names to their columns. Identifier,
// timestamp and upvote fields are deliberately absent: they can only change
// through the store or the vote operation.
var updatableFields = map[string]string{
	"rollNumber":  "roll_number",
	"imageUrl":    "image_url",
	"gender":      "gender",
	"instagramId": "instagram_id",
	"isActive":    "is_active",
}

// UpdateStudent applies a partial patch to a student. Attempts to set the
// identifier, timestamps, upvotes or unknown fields are stripped; the
// remaining values are re-validated with the same rules used at creation.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*models.Student, error) {
	columnPatch := make(map[string]interface{})
	var errs []string

	for field, value := range patch {
		column, ok := updatableFields[field]
		if !ok {
			continue
		}

		switch field {
		case "rollNumber":
			str, ok := value.(string)
			if !ok || strings.TrimSpace(str) == "" {
				errs = append(errs, validation.MsgRollNumberRequired)
				continue
			}
			columnPatch[column] = strings.TrimSpace(str)

		case "imageUrl":
			str, ok := value.(string)
			if !ok || strings.TrimSpace(str) == "" {
				errs = append(errs, validation.MsgImageURLRequired)
				continue
			}
			if !validation.IsValidImageURL(str) {
				errs = append(errs, validation.MsgImageURLFormat)
				continue
			}
			columnPatch[column] = strings.TrimSpace(str)

		case "gender":
			str, ok := value.(string)
			if !ok || !validation.IsValidGender(str) {
				errs = append(errs, validation.MsgGenderInvalid)
				continue
			}
			columnPatch[column] = strings.ToLower(strings.TrimSpace(str))

		case "instagramId":
			if value == nil {
				columnPatch[column] = nil
				continue
			}
			str, ok := value.(string)
			if !ok || !validation.IsValidInstagramID(str) {
				errs = append(errs, validation.MsgInstagramIDFormat)
				continue
			}
			if handle := strings.TrimSpace(str); handle == "" {
				columnPatch[column] = nil
			} else {
				columnPatch[column] = handle
			}

		case "isActive":
			b, ok := value.(bool)
			if !ok {
				errs = append(errs, "isActive must be a boolean")
				continue
			}
			columnPatch[column] = b
		}
	}

	if len(errs) > 0 {
		return nil, apperrors.NewValidationError("Please check the following errors:", errs)
	}

	if len(columnPatch) == 0 {
		// Nothing survived stripping; behave like a no-op update
		return s.repo.GetByID(ctx, id)
	}

	return s.repo.Update(ctx, id, columnPatch)
}

// DeactivateStudent soft deletes a student by flipping is_active. There is no
// hard delete path.
func (s *studentServiceImpl) DeactivateStudent(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	return s.repo.Deactivate(ctx, id)
}

// GetStats aggregates statistics over active students.
func (s *studentServiceImpl) GetStats(ctx context.Context) (*models.StudentStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving stats: %w", err)
	}
	return stats, nil
}
