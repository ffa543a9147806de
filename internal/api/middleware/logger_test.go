package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/whiskers/catgraph/pkg/logger"
)

func TestRequestLogger_CarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	e.Use(echomiddleware.RequestID())
	e.Use(RequestLogger(log))
	e.GET("/ping", func(c echo.Context) error {
		logger.FromContext(c.Request().Context()).Info().Msg("inside handler")
		return c.NoContent(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	requestID := rec.Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		t.Fatal("expected a request id header")
	}

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), buf.String())
	}
	for _, line := range lines {
		var entry map[string]any
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("invalid log line: %v", err)
		}
		if entry["request_id"] != requestID {
			t.Fatalf("expected request_id %q, got %v", requestID, entry["request_id"])
		}
	}

	var access map[string]any
	_ = json.Unmarshal(lines[1], &access)
	if access["status"] != float64(http.StatusTeapot) {
		t.Fatalf("expected status 418 in access log, got %v", access["status"])
	}
}

func TestRequestLogger_CommitsHandlerError(t *testing.T) {
	var buf bytes.Buffer

	e := echo.New()
	e.Use(RequestLogger(zerolog.New(&buf)))
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"status":401`)) {
		t.Fatalf("expected access log with status 401, got %s", buf.String())
	}
}
