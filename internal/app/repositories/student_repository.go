package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mert/facesmash/internal/app/models"
	"github.com/mert/facesmash/internal/pkg/apperrors"
	"github.com/mert/facesmash/internal/pkg/dberrors"
	"github.com/mert/facesmash/internal/pkg/helpers"
	"github.com/mert/facesmash/internal/pkg/logger"
)

// studentColumns is the canonical scan order for student rows.
var studentColumns = []string{
	"id", "roll_number", "image_url", "gender", "instagram_id",
	"upvotes", "is_active", "created_at", "updated_at",
}

// sortColumns maps API sort field names to table columns.
var sortColumns = map[string]string{
	"rollNumber": "roll_number",
	"upvotes":    "upvotes",
	"gender":     "gender",
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
}

// ListParams describes a listing over active students.
type ListParams struct {
	Page      int
	Limit     int
	Gender    string // lower-cased enum value, empty for all
	Search    string // case-insensitive substring match on roll_number
	SortBy    string // API field name from the sort allow-list
	SortOrder string // asc or desc
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row, s *models.Student) error {
	return row.Scan(
		&s.ID, &s.RollNumber, &s.ImageURL, &s.Gender, &s.InstagramID,
		&s.Upvotes, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
}

// Create inserts a new active student with zero upvotes and fills in the
// store-assigned identifier and timestamps.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("roll_number", "image_url", "gender", "instagram_id").
		Values(student.RollNumber, student.ImageURL, student.Gender, student.InstagramID).
		Suffix("RETURNING id, upvotes, is_active, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.Upvotes, &student.IsActive,
		&student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateRollNumber
		}
		logger.Error().Err(err).Str("rollNumber", student.RollNumber).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID, regardless of active state.
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	if err := scanStudent(r.db.QueryRow(ctx, sql, args...), student); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id.String()).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// ExistsByRollNumber reports whether any student (active or not) already has
// the given roll number.
func (r *StudentRepository) ExistsByRollNumber(ctx context.Context, rollNumber string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(squirrel.Eq{"roll_number": rollNumber}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build student existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("rollNumber", rollNumber).Msg("Error checking student existence")
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// escapeLike escapes LIKE wildcards in a user-supplied search term.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}

// List retrieves a page of active students with filtering, search and sorting,
// along with the total number of matching rows.
func (r *StudentRepository) List(ctx context.Context, params ListParams) ([]models.Student, int64, error) {
	query := r.sb.Select(studentColumns...).
		Column("COUNT(*) OVER()").
		From("students").
		Where(squirrel.Eq{"is_active": true})

	if params.Gender != "" {
		query = query.Where(squirrel.Eq{"gender": params.Gender})
	}
	if params.Search != "" {
		query = query.Where(squirrel.ILike{"roll_number": "%" + escapeLike(params.Search) + "%"})
	}

	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = "upvotes"
	}
	direction := "DESC"
	if strings.EqualFold(params.SortOrder, "asc") {
		direction = "ASC"
	}

	query = query.OrderBy(column + " " + direction).
		Limit(uint64(params.Limit)).
		Offset(helpers.CalculateOffset(params.Page, params.Limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, 0, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	var total int64
	for rows.Next() {
		var s models.Student
		err := rows.Scan(
			&s.ID, &s.RollNumber, &s.ImageURL, &s.Gender, &s.InstagramID,
			&s.Upvotes, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, total, nil
}

// Random retrieves up to count uniformly sampled active students, optionally
// restricted to a gender. Sampling is delegated to the store.
func (r *StudentRepository) Random(ctx context.Context, gender string, count int) ([]models.Student, error) {
	query := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"is_active": true})

	if gender != "" {
		query = query.Where(squirrel.Eq{"gender": gender})
	}

	sql, args, err := query.OrderBy("random()").Limit(uint64(count)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build random students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing random students query")
		return nil, fmt.Errorf("error sampling students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var s models.Student
		err := rows.Scan(
			&s.ID, &s.RollNumber, &s.ImageURL, &s.Gender, &s.InstagramID,
			&s.Upvotes, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// IncrementUpvotes adds exactly one upvote to the student and returns the new
// counter. The increment happens in the store, so concurrent votes never lose
// updates.
func (r *StudentRepository) IncrementUpvotes(ctx context.Context, id uuid.UUID) (int, error) {
	sql, args, err := r.sb.Update("students").
		Set("upvotes", squirrel.Expr("upvotes + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING upvotes").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build vote query: %w", err)
	}

	var upvotes int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&upvotes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id.String()).Msg("Error executing vote query")
		return 0, fmt.Errorf("error recording vote: %w", err)
	}

	return upvotes, nil
}

// Update applies a column patch to a student and returns the updated row.
// updated_at is always refreshed.
func (r *StudentRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*models.Student, error) {
	setMap := make(map[string]interface{}, len(patch)+1)
	for column, value := range patch {
		setMap[column] = value
	}
	setMap["updated_at"] = squirrel.Expr("now()")

	sql, args, err := r.sb.Update("students").
		SetMap(setMap).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(studentColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update student query: %w", err)
	}

	student := &models.Student{}
	if err := scanStudent(r.db.QueryRow(ctx, sql, args...), student); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		if dberrors.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicateRollNumber
		}
		logger.Error().Err(err).Str("studentID", id.String()).Msg("Error executing update student query")
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return student, nil
}

// Deactivate flips is_active to false without removing the row. The record
// stays addressable by id for administrative updates.
func (r *StudentRepository) Deactivate(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	sql, args, err := r.sb.Update("students").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(studentColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build deactivate student query: %w", err)
	}

	student := &models.Student{}
	if err := scanStudent(r.db.QueryRow(ctx, sql, args...), student); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id.String()).Msg("Error executing deactivate student query")
		return nil, fmt.Errorf("error deactivating student: %w", err)
	}

	return student, nil
}

// Stats aggregates counts and vote totals over active students and returns
// the top ten by upvotes.
func (r *StudentRepository) Stats(ctx context.Context) (*models.StudentStats, error) {
	sql, args, err := r.sb.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE gender = 'male')",
		"COUNT(*) FILTER (WHERE gender = 'female')",
		"COUNT(*) FILTER (WHERE gender = 'other')",
		"COALESCE(SUM(upvotes), 0)",
	).
		From("students").
		Where(squirrel.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build stats query: %w", err)
	}

	stats := &models.StudentStats{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&stats.TotalStudents,
		&stats.GenderDistribution.Male,
		&stats.GenderDistribution.Female,
		&stats.GenderDistribution.Other,
		&stats.TotalVotes,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing stats query")
		return nil, fmt.Errorf("error aggregating stats: %w", err)
	}

	topVoted, err := r.topVoted(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.TopVoted = topVoted

	return stats, nil
}

func (r *StudentRepository) topVoted(ctx context.Context, limit int) ([]models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("upvotes DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build top voted query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing top voted query")
		return nil, fmt.Errorf("error querying top voted students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var s models.Student
		err := rows.Scan(
			&s.ID, &s.RollNumber, &s.ImageURL, &s.Gender, &s.InstagramID,
			&s.Upvotes, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}
