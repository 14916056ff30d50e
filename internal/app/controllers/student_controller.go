package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mert/facesmash/internal/app/models/dto"
	"github.com/mert/facesmash/internal/app/repositories"
	"github.com/mert/facesmash/internal/app/services"
	"github.com/mert/facesmash/internal/middleware"
	"github.com/mert/facesmash/internal/pkg/helpers"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetRandomStudents returns a random pair of students for comparison
// @Summary Get random students
// @Description Returns uniformly sampled active students for a comparison round, optionally restricted to a gender
// @Tags students
// @Accept json
// @Produce json
// @Param gender query string false "Gender filter" Enums(male, female, other)
// @Param count query int false "Number of students to sample (1-10)" default(2)
// @Success 200 {object} dto.RandomStudentsResponse "Random students"
// @Failure 404 {object} dto.ErrorResponse "Fewer than two candidates available"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/random [get]
func (c *StudentController) GetRandomStudents(ctx *gin.Context) {
	gender := ctx.Query("gender")

	count, err := strconv.Atoi(ctx.DefaultQuery("count", "2"))
	if err != nil {
		count = services.DefaultPairSize
	}

	students, err := c.studentService.GetRandomStudents(ctx, gender, count)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filter := gender
	if filter == "" {
		filter = "all"
	}

	ctx.JSON(http.StatusOK, dto.RandomStudentsResponse{
		Success:  true,
		Students: dto.FromStudents(students),
		Filter:   filter,
	})
}

// Vote records a vote for a student
// @Summary Vote for a student
// @Description Increments the upvote counter of an active student by one
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.VoteRequest true "Vote target"
// @Success 200 {object} dto.VoteResponse "Vote recorded"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed student ID, or inactive student"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/vote [post]
func (c *StudentController) Vote(ctx *gin.Context) {
	id := ctx.MustGet(middleware.ContextKeyStudentID).(uuid.UUID)

	student, err := c.studentService.Vote(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.VoteResponse{
		Success: true,
		Message: "Vote recorded successfully",
		Student: dto.VotedStudent{
			ID:         student.ID.String(),
			RollNumber: student.RollNumber,
			Upvotes:    student.Upvotes,
		},
	})
}

// ListStudents returns a page of active students
// @Summary List students
// @Description Returns active students with pagination, gender filtering, roll number search and sorting
// @Tags students
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size (1-100)" default(20)
// @Param gender query string false "Gender filter" Enums(male, female, other)
// @Param search query string false "Case-insensitive substring match on roll number"
// @Param sortBy query string false "Sort field" Enums(rollNumber, upvotes, gender, createdAt, updatedAt) default(upvotes)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc) default(desc)
// @Success 200 {object} dto.ListStudentsResponse "Student page"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	params := ctx.MustGet(middleware.ContextKeyListQuery).(repositories.ListParams)

	students, total, err := c.studentService.ListStudents(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filterGender := params.Gender
	if filterGender == "" {
		filterGender = "all"
	}

	ctx.JSON(http.StatusOK, dto.ListStudentsResponse{
		Success:    true,
		Students:   dto.FromStudents(students),
		Pagination: helpers.NewPagination(total, params.Page, params.Limit, len(students)),
		Filters: dto.ListFilters{
			Gender:    filterGender,
			Search:    params.Search,
			SortBy:    params.SortBy,
			SortOrder: params.SortOrder,
		},
	})
}

// CreateStudent adds a new student
// @Summary Create a student
// @Description Creates a new active student with zero upvotes
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.CreateStudentResponse "Student created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Roll number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	req := ctx.MustGet(middleware.ContextKeyCreateRequest).(dto.CreateStudentRequest)

	student, err := c.studentService.CreateStudent(ctx, req.RollNumber, req.ImageURL, req.Gender, req.InstagramID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateStudentResponse{
		Success: true,
		Message: "Student added successfully",
		Student: dto.FromStudent(student),
	})
}

// GetStats returns voting statistics
// @Summary Get statistics
// @Description Returns active student counts, gender distribution, total votes and the top ten most voted students
// @Tags students
// @Accept json
// @Produce json
// @Success 200 {object} dto.StatsResponse "Statistics"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/stats [get]
func (c *StudentController) GetStats(ctx *gin.Context) {
	stats, err := c.studentService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatsResponse{
		Success: true,
		Stats:   dto.FromStudentStats(stats),
	})
}

// UpdateStudent applies a partial patch to a student
// @Summary Update a student
// @Description Applies a partial update; identifier, timestamp and upvote fields in the patch are ignored
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID" Format(uuid)
// @Param request body object true "Partial student patch"
// @Success 200 {object} dto.UpdateStudentResponse "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID or validation failed"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id := ctx.MustGet(middleware.ContextKeyStudentID).(uuid.UUID)

	var patch map[string]interface{}
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Validation failed",
			"Request body must be a JSON object",
		))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateStudentResponse{
		Success: true,
		Message: "Student updated successfully",
		Student: dto.FromStudent(student),
	})
}

// DeleteStudent soft deletes a student
// @Summary Deactivate a student
// @Description Sets isActive to false; the record remains addressable by id
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID" Format(uuid)
// @Success 200 {object} dto.DeleteStudentResponse "Student deactivated"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id := ctx.MustGet(middleware.ContextKeyStudentID).(uuid.UUID)

	student, err := c.studentService.DeactivateStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteStudentResponse{
		Success: true,
		Message: "Student deactivated successfully",
		Student: dto.DeactivatedStudent{
			ID:         student.ID.String(),
			RollNumber: student.RollNumber,
			IsActive:   student.IsActive,
		},
	})
}
