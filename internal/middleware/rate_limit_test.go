package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func rateLimitedRouter(perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, perMin)

	r := gin.New()
	r.POST("/chat", mw.RateLimit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doPost(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	t.Run("Sixth Request Within A Minute Is Rejected", func(t *testing.T) {
		r := rateLimitedRouter(5)

		for i := 0; i < 5; i++ {
			if w := doPost(r, "10.0.0.1:1234"); w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
			}
		}

		w := doPost(r, "10.0.0.1:1234")
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
		if body := w.Body.String(); body == "" || body[0] != '{' {
			t.Errorf("expected JSON detail body, got %q", body)
		}
	})

	t.Run("Clients Are Limited Independently", func(t *testing.T) {
		r := rateLimitedRouter(5)

		for i := 0; i < 5; i++ {
			doPost(r, "10.0.0.1:1234")
		}
		if w := doPost(r, "10.0.0.1:1234"); w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected first client throttled, got %d", w.Code)
		}

		if w := doPost(r, "10.0.0.2:1234"); w.Code != http.StatusOK {
			t.Errorf("expected second client unaffected, got %d", w.Code)
		}
	})

	t.Run("Disabled When Budget Is Zero", func(t *testing.T) {
		r := rateLimitedRouter(0)
		for i := 0; i < 20; i++ {
			if w := doPost(r, "10.0.0.1:1234"); w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
			}
		}
	})
}
