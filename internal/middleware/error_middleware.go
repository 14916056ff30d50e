package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mert/facesmash/internal/app/models/dto"
	"github.com/mert/facesmash/internal/pkg/apperrors"
)

// HandleAPIError maps a service or store error to the nearest HTTP response.
// Every failure path produces an {error, message, details?} body; anything
// unrecognized is surfaced as a 500 with the underlying message.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := err.Error()
	var details []string
	if errors.As(err, &custom) {
		message = custom.Message
		details = custom.Details
	}

	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Student not found", "The specified student does not exist"))

	case errors.Is(err, apperrors.ErrInsufficientCandidates):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Not enough students found", message))

	case errors.Is(err, apperrors.ErrStudentInactive):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student is inactive", "Cannot vote for inactive students"))

	case errors.Is(err, apperrors.ErrDuplicateRollNumber):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Student already exists", message))

	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Validation failed", message).WithDetails(details))

	case errors.Is(err, apperrors.ErrInvalidID):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid ID format", message))

	case errors.Is(err, apperrors.ErrMissingField):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required field", message))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err.Error()))
	}
}
