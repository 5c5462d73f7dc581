package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 24},
		{"explicit", "page=3&limit=10", 3, 10},
		{"zero page clamps", "page=0", 1, 24},
		{"negative limit clamps", "limit=-5", 1, 24},
		{"limit capped", "limit=5000", 1, 100},
		{"garbage falls back", "page=abc&limit=xyz", 1, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := FromContext(queryContext(t, tt.query))
			if q.Page != tt.wantPage || q.Limit != tt.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d",
					q.Page, q.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}
