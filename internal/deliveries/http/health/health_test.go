package health

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/ezfinancial/go-entry-engine/internal/common/log"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func newHealthRouter(t *testing.T) *echo.Echo {
	t.Helper()
	t.Parallel()

	app := echo.New()
	apiGroup := app.Group("/api")
	New(apiGroup)

	return app
}

func Test_Handler_healthCheck(t *testing.T) {
	router := newHealthRouter(t)

	tests := []struct {
		name      string
		urlCalled string
		wantRes   string
		wantCode  int
	}{
		{
			name:      "liveness on the bare health path",
			urlCalled: "/api/health",
			wantRes:   `{"kind":"health","status":"server is up and running"}`,
			wantCode:  200,
		},
		{
			name:      "liveness",
			urlCalled: "/api/health/liveness",
			wantRes:   `{"kind":"health","status":"server is up and running"}`,
			wantCode:  200,
		},
		{
			name:      "readiness",
			urlCalled: "/api/health/readiness",
			wantRes:   `{"kind":"health","status":"ready"}`,
			wantCode:  200,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.urlCalled, nil)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.Equal(t, tt.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}
