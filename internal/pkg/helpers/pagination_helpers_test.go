package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFor(rawQuery string) (int, int) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/students?"+rawQuery, nil)
	return ParsePaginationParams(c)
}

func TestParsePaginationParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 20},
		{"explicit values", "page=3&limit=50", 3, 50},
		{"zero page falls back", "page=0", 1, 20},
		{"negative limit falls back", "limit=-5", 1, 20},
		{"limit above maximum falls back", "limit=1000", 1, 20},
		{"limit at maximum kept", "limit=100", 1, 100},
		{"non numeric values fall back", "page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := paramsFor(tt.query)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPagination(t *testing.T) {
	t.Run("partial last page", func(t *testing.T) {
		p := NewPagination(250, 3, 100, 50)
		assert.Equal(t, 3, p.Current)
		assert.Equal(t, 3, p.Total)
		assert.Equal(t, 50, p.Count)
		assert.Equal(t, int64(250), p.TotalStudents)
	})

	t.Run("empty result set", func(t *testing.T) {
		p := NewPagination(0, 1, 20, 0)
		assert.Equal(t, 0, p.Total)
		assert.Equal(t, int64(0), p.TotalStudents)
	})

	t.Run("exact multiple of page size", func(t *testing.T) {
		p := NewPagination(40, 1, 20, 20)
		assert.Equal(t, 2, p.Total)
	})
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, uint64(0), CalculateOffset(1, 20))
	assert.Equal(t, uint64(40), CalculateOffset(3, 20))
	assert.Equal(t, uint64(0), CalculateOffset(0, 20))
}
