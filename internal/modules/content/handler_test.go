package content

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sevenxleaks/core/internal/middleware"
	"go.uber.org/zap"
)

func TestSearchRoutesRejectMissingAPIKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// A nil service: routes mounted ahead of the handler must stop the
	// request before it is ever reached.
	h := NewHandler(nil, nil, zap.NewNop())
	h.RegisterRoutes(r, middleware.APIKey("front-key"), middleware.HTTPCache(nil, 0))

	for _, path := range []string{"/freecontent/search", "/vipcontent/search"} {
		req := httptest.NewRequest(http.MethodGet, path+"?page=1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s without key: status = %d, want 401", path, w.Code)
		}
		if got := w.Header().Get("x-svx-cache"); got != "" {
			t.Errorf("%s without key: unexpected cache header %q", path, got)
		}
	}
}
