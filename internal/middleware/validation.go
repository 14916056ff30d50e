package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mert/facesmash/internal/app/models/dto"
	"github.com/mert/facesmash/internal/app/repositories"
	"github.com/mert/facesmash/internal/pkg/helpers"
	"github.com/mert/facesmash/internal/pkg/validation"
)

var validate = validator.New()

// Context keys under which validated request data is stored for the handlers.
const (
	ContextKeyStudentID     = "studentID"
	ContextKeyCreateRequest = "createRequest"
	ContextKeyListQuery     = "listQuery"
)

// ValidateID rejects requests whose :id path parameter is not a well-formed
// record identifier. The parsed id is stored in the context.
func ValidateID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				"Invalid ID format",
				"The provided ID is not a valid student identifier",
			))
			return
		}

		c.Set(ContextKeyStudentID, id)
		c.Next()
	}
}

// ValidateStudentCreation checks a creation body and accumulates every
// violation into a single response instead of failing on the first one.
func ValidateStudentCreation() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateStudentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				"Validation failed",
				"Request body must be valid JSON",
			))
			return
		}

		errs := validation.CheckStudentFields(req.RollNumber, req.ImageURL, req.Gender, req.InstagramID)
		if len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				"Validation failed",
				"Please check the following errors:",
			).WithDetails(errs))
			return
		}

		c.Set(ContextKeyCreateRequest, req)
		c.Next()
	}
}

// ValidateVote requires a studentId field carrying a well-formed identifier.
func ValidateVote() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.VoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				"Student ID is required",
				"Please provide a valid student ID to vote for",
			))
			return
		}

		if err := validate.Struct(req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				"Student ID is required",
				"Please provide a valid student ID to vote for",
			))
			return
		}

		id, err := uuid.Parse(req.StudentID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				"Invalid student ID format",
				"The provided student ID is not a valid student identifier",
			))
			return
		}

		c.Set(ContextKeyStudentID, id)
		c.Next()
	}
}

// ValidateStudentQuery validates listing query parameters, accumulating all
// violations, and stores the normalized query (gender and sort order lowered)
// for the handler.
func ValidateStudentQuery() gin.HandlerFunc {
	return func(c *gin.Context) {
		var errs []string

		if page := c.Query("page"); page != "" {
			if n, err := strconv.Atoi(page); err != nil || n < 1 {
				errs = append(errs, "Page must be a positive integer")
			}
		}

		if limit := c.Query("limit"); limit != "" {
			if n, err := strconv.Atoi(limit); err != nil || n < 1 || n > helpers.MaxPageSize {
				errs = append(errs, "Limit must be a positive integer between 1 and 100")
			}
		}

		gender := c.Query("gender")
		if gender != "" && !validation.IsValidGender(gender) {
			errs = append(errs, "Gender must be one of: male, female, other")
		}

		sortBy := c.Query("sortBy")
		if sortBy != "" && !validation.IsValidSortField(sortBy) {
			errs = append(errs, "Sort field must be one of: "+strings.Join(validation.SortFields, ", "))
		}

		sortOrder := c.Query("sortOrder")
		if sortOrder != "" && !validation.IsValidSortOrder(sortOrder) {
			errs = append(errs, `Sort order must be either "asc" or "desc"`)
		}

		if len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				"Query validation failed",
				"Please check the following errors:",
			).WithDetails(errs))
			return
		}

		page, limit := helpers.ParsePaginationParams(c)
		params := repositories.ListParams{
			Page:      page,
			Limit:     limit,
			Gender:    strings.ToLower(gender),
			Search:    c.Query("search"),
			SortBy:    c.DefaultQuery("sortBy", "upvotes"),
			SortOrder: strings.ToLower(c.DefaultQuery("sortOrder", "desc")),
		}

		c.Set(ContextKeyListQuery, params)
		c.Next()
	}
}
