package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mert/facesmash/internal/app/models/dto"
	"github.com/mert/facesmash/internal/app/repositories"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestValidateID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var captured uuid.UUID
	router := gin.New()
	router.GET("/students/:id", ValidateID(), func(c *gin.Context) {
		captured = c.MustGet(ContextKeyStudentID).(uuid.UUID)
		c.Status(http.StatusOK)
	})

	t.Run("well formed id passes through", func(t *testing.T) {
		id := uuid.New()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/students/"+id.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id, captured)
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/students/not-a-uuid", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid ID format", decodeError(t, w).Error)
	})
}

func TestValidateStudentCreation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/students", ValidateStudentCreation(), func(c *gin.Context) {
		req := c.MustGet(ContextKeyCreateRequest).(dto.CreateStudentRequest)
		c.JSON(http.StatusOK, req)
	})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/students", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid body passes through", func(t *testing.T) {
		w := post(`{"rollNumber":"cs2021001","imageUrl":"https://example.com/p.jpg","gender":"male"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		w := post(`{"rollNumber":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Validation failed", decodeError(t, w).Error)
	})

	t.Run("all violations reported together", func(t *testing.T) {
		w := post(`{"rollNumber":"","imageUrl":"https://example.com/p.pdf","gender":"robot","instagramId":"has spaces!"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeError(t, w)
		assert.Equal(t, "Validation failed", resp.Error)
		assert.Equal(t, "Please check the following errors:", resp.Message)
		assert.Len(t, resp.Details, 4)
	})

	t.Run("uppercase image extension accepted", func(t *testing.T) {
		w := post(`{"rollNumber":"cs2021001","imageUrl":"https://example.com/p.JPG","gender":"female"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestValidateVote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/vote", ValidateVote(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/vote", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid id passes through", func(t *testing.T) {
		w := post(`{"studentId":"` + uuid.NewString() + `"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing student id", func(t *testing.T) {
		w := post(`{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Student ID is required", decodeError(t, w).Error)
	})

	t.Run("malformed student id", func(t *testing.T) {
		w := post(`{"studentId":"12345"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid student ID format", decodeError(t, w).Error)
	})
}

func TestValidateStudentQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var captured repositories.ListParams
	router := gin.New()
	router.GET("/students", ValidateStudentQuery(), func(c *gin.Context) {
		captured = c.MustGet(ContextKeyListQuery).(repositories.ListParams)
		c.Status(http.StatusOK)
	})

	get := func(query string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/students"+query, nil)
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("defaults when no query given", func(t *testing.T) {
		w := get("")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, repositories.ListParams{
			Page: 1, Limit: 20, SortBy: "upvotes", SortOrder: "desc",
		}, captured)
	})

	t.Run("normalizes gender and sort order case", func(t *testing.T) {
		w := get("?gender=FEMALE&sortOrder=ASC&sortBy=rollNumber")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "female", captured.Gender)
		assert.Equal(t, "asc", captured.SortOrder)
		assert.Equal(t, "rollNumber", captured.SortBy)
	})

	t.Run("all violations reported together", func(t *testing.T) {
		w := get("?page=0&limit=1000&gender=robot&sortBy=password&sortOrder=sideways")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeError(t, w)
		assert.Equal(t, "Query validation failed", resp.Error)
		assert.Len(t, resp.Details, 5)
		assert.Contains(t, resp.Details, `Sort order must be either "asc" or "desc"`)
	})

	t.Run("non numeric page", func(t *testing.T) {
		w := get("?page=abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Details, "Page must be a positive integer")
	})
}
