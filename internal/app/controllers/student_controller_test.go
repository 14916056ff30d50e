package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mert/facesmash/internal/app/models"
	"github.com/mert/facesmash/internal/app/models/dto"
	"github.com/mert/facesmash/internal/app/repositories"
	"github.com/mert/facesmash/internal/middleware"
	"github.com/mert/facesmash/internal/pkg/apperrors"
)

type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) GetRandomStudents(ctx context.Context, gender string, count int) ([]models.Student, error) {
	args := m.Called(ctx, gender, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Student), args.Error(1)
}

func (m *MockStudentService) Vote(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) ListStudents(ctx context.Context, params repositories.ListParams) ([]models.Student, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Student), args.Get(1).(int64), args.Error(2)
}

func (m *MockStudentService) CreateStudent(ctx context.Context, rollNumber, imageURL, gender, instagramID string) (*models.Student, error) {
	args := m.Called(ctx, rollNumber, imageURL, gender, instagramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) UpdateStudent(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*models.Student, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) DeactivateStudent(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) GetStats(ctx context.Context) (*models.StudentStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentStats), args.Error(1)
}

func newTestRouter(svc *MockStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewStudentController(svc)

	router := gin.New()
	students := router.Group("/api/students")
	{
		students.GET("/random", ctrl.GetRandomStudents)
		students.POST("/vote", middleware.ValidateVote(), ctrl.Vote)
		students.GET("/stats", ctrl.GetStats)
		students.GET("", middleware.ValidateStudentQuery(), ctrl.ListStudents)
		students.POST("", middleware.ValidateStudentCreation(), ctrl.CreateStudent)
		students.PUT("/:id", middleware.ValidateID(), ctrl.UpdateStudent)
		students.DELETE("/:id", middleware.ValidateID(), ctrl.DeleteStudent)
	}
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGetRandomStudentsEndpoint(t *testing.T) {
	t.Run("returns a pair with the filter echoed", func(t *testing.T) {
		svc := new(MockStudentService)
		svc.On("GetRandomStudents", mock.Anything, "female", 2).Return([]models.Student{
			{ID: uuid.New(), RollNumber: "cs2021001", Gender: "female", IsActive: true},
			{ID: uuid.New(), RollNumber: "cs2021002", Gender: "female", IsActive: true},
		}, nil)

		router := newTestRouter(svc)
		w := doJSON(router, http.MethodGet, "/api/students/random?gender=female", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.RandomStudentsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Len(t, resp.Students, 2)
		assert.Equal(t, "female", resp.Filter)
	})

	t.Run("filter defaults to all", func(t *testing.T) {
		svc := new(MockStudentService)
		svc.On("GetRandomStudents", mock.Anything, "", 2).Return([]models.Student{
			{ID: uuid.New()}, {ID: uuid.New()},
		}, nil)

		router := newTestRouter(svc)
		w := doJSON(router, http.MethodGet, "/api/students/random", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.RandomStudentsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "all", resp.Filter)
	})

	t.Run("insufficient candidates maps to 404", func(t *testing.T) {
		svc := new(MockStudentService)
		svc.On("GetRandomStudents", mock.Anything, "", 2).Return(nil,
			apperrors.NewCustomError(apperrors.ErrInsufficientCandidates, "Only 1 student(s) available"))

		router := newTestRouter(svc)
		w := doJSON(router, http.MethodGet, "/api/students/random", "")

		require.Equal(t, http.StatusNotFound, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Not enough students found", resp.Error)
		assert.Equal(t, "Only 1 student(s) available", resp.Message)
	})
}

func TestVoteEndpoint(t *testing.T) {
	t.Run("successful vote", func(t *testing.T) {
		id := uuid.New()
		svc := new(MockStudentService)
		svc.On("Vote", mock.Anything, id).Return(&models.Student{
			ID: id, RollNumber: "cs2021001", Upvotes: 8, IsActive: true,
		}, nil)

		router := newTestRouter(svc)
		w := doJSON(router, http.MethodPost, "/api/students/vote", `{"studentId":"`+id.String()+`"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.VoteResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Vote recorded successfully", resp.Message)
		assert.Equal(t, 8, resp.Student.Upvotes)
	})

	t.Run("unknown student maps to 404", func(t *testing.T) {
		id := uuid.New()
		svc := new(MockStudentService)
		svc.On("Vote", mock.Anything, id).Return(nil, apperrors.ErrStudentNotFound)

		router := newTestRouter(svc)
		w := doJSON(router, http.MethodPost, "/api/students/vote", `{"studentId":"`+id.String()+`"}`)

		require.Equal(t, http.StatusNotFound, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Student not found", resp.Error)
	})

	t.Run("inactive student maps to 400", func(t *testing.T) {
		id := uuid.New()
		svc := new(MockStudentService)
		svc.On("Vote", mock.Anything, id).Return(nil, apperrors.ErrStudentInactive)

		router := newTestRouter(svc)
		w := doJSON(router, http.MethodPost, "/api/students/vote", `{"studentId":"`+id.String()+`"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Student is inactive", resp.Error)
	})

	t.Run("malformed id never reaches the service", func(t *testing.T) {
		svc := new(MockStudentService)
		router := newTestRouter(svc)

		w := doJSON(router, http.MethodPost, "/api/students/vote", `{"studentId":"nope"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Vote", mock.Anything, mock.Anything)
	})
}

func TestListStudentsEndpoint(t *testing.T) {
	svc := new(MockStudentService)
	svc.On("ListStudents", mock.Anything, repositories.ListParams{
		Page: 2, Limit: 10, Gender: "male", SortBy: "upvotes", SortOrder: "desc",
	}).Return([]models.Student{
		{ID: uuid.New(), RollNumber: "cs2021001", Gender: "male"},
	}, int64(11), nil)

	router := newTestRouter(svc)
	w := doJSON(router, http.MethodGet, "/api/students?page=2&limit=10&gender=male", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListStudentsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Students, 1)
	assert.Equal(t, 2, resp.Pagination.Current)
	assert.Equal(t, 2, resp.Pagination.Total)
	assert.Equal(t, int64(11), resp.Pagination.TotalStudents)
	assert.Equal(t, "male", resp.Filters.Gender)
	assert.Equal(t, "upvotes", resp.Filters.SortBy)
}

func TestCreateStudentEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockStudentService)
		svc.On("CreateStudent", mock.Anything, "cs2021001", "https://example.com/p.jpg", "male", "").
			Return(&models.Student{ID: uuid.New(), RollNumber: "cs2021001", Gender: "male", IsActive: true}, nil)

		router := newTestRouter(svc)
		w := doJSON(router, http.MethodPost, "/api/students",
			`{"rollNumber":"cs2021001","imageUrl":"https://example.com/p.jpg","gender":"male"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp dto.CreateStudentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Student added successfully", resp.Message)
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		svc := new(MockStudentService)
		svc.On("CreateStudent", mock.Anything, "cs2021001", "https://example.com/p.jpg", "male", "").
			Return(nil, apperrors.ErrDuplicateRollNumber)

		router := newTestRouter(svc)
		w := doJSON(router, http.MethodPost, "/api/students",
			`{"rollNumber":"cs2021001","imageUrl":"https://example.com/p.jpg","gender":"male"}`)

		require.Equal(t, http.StatusConflict, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Student already exists", resp.Error)
	})

	t.Run("invalid body never reaches the service", func(t *testing.T) {
		svc := new(MockStudentService)
		router := newTestRouter(svc)

		w := doJSON(router, http.MethodPost, "/api/students", `{"rollNumber":""}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "CreateStudent",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateStudentEndpoint(t *testing.T) {
	id := uuid.New()
	svc := new(MockStudentService)
	svc.On("UpdateStudent", mock.Anything, id, map[string]interface{}{
		"gender": "female",
	}).Return(&models.Student{ID: id, Gender: "female", IsActive: true}, nil)

	router := newTestRouter(svc)
	w := doJSON(router, http.MethodPut, "/api/students/"+id.String(), `{"gender":"female"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.UpdateStudentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Student updated successfully", resp.Message)
	assert.Equal(t, "female", resp.Student.Gender)
}

func TestDeleteStudentEndpoint(t *testing.T) {
	t.Run("deactivates", func(t *testing.T) {
		id := uuid.New()
		svc := new(MockStudentService)
		svc.On("DeactivateStudent", mock.Anything, id).Return(&models.Student{
			ID: id, RollNumber: "cs2021001", IsActive: false,
		}, nil)

		router := newTestRouter(svc)
		w := doJSON(router, http.MethodDelete, "/api/students/"+id.String(), "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.DeleteStudentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Student deactivated successfully", resp.Message)
		assert.False(t, resp.Student.IsActive)
	})

	t.Run("malformed id rejected before the service", func(t *testing.T) {
		svc := new(MockStudentService)
		router := newTestRouter(svc)

		w := doJSON(router, http.MethodDelete, "/api/students/nope", "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "DeactivateStudent", mock.Anything, mock.Anything)
	})
}

func TestGetStatsEndpoint(t *testing.T) {
	svc := new(MockStudentService)
	svc.On("GetStats", mock.Anything).Return(&models.StudentStats{
		TotalStudents:      3,
		GenderDistribution: models.GenderCounts{Male: 2, Female: 1},
		TotalVotes:         15,
		TopVoted: []models.Student{
			{ID: uuid.New(), RollNumber: "cs2021001", Upvotes: 10, Gender: "male"},
		},
	}, nil)

	router := newTestRouter(svc)
	w := doJSON(router, http.MethodGet, "/api/students/stats", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(3), resp.Stats.TotalStudents)
	assert.Equal(t, int64(15), resp.Stats.TotalVotes)
	require.Len(t, resp.Stats.TopVoted, 1)
	assert.Equal(t, 10, resp.Stats.TopVoted[0].Upvotes)
}
