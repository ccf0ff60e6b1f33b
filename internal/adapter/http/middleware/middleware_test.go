package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fieldtech/internal/usecase/interfaces"
	"fieldtech/pkg/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"gin":    GetRequestID(c),
			"ctx":    logger.RequestID(c.Request.Context()),
			"client": ClientRequestID(c),
		})
	})

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Header().Get(RequestIDHeader) != "req-42" {
			t.Fatalf("expected echoed id, got %q", w.Header().Get(RequestIDHeader))
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["gin"] != "req-42" || body["ctx"] != "req-42" || body["client"] != "req-42" {
			t.Fatalf("unexpected ids %v", body)
		}
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["gin"] == "" || body["gin"] != w.Header().Get(RequestIDHeader) {
			t.Fatalf("expected generated id, got %v", body)
		}
		if body["client"] != "" {
			t.Fatalf("expected no client id, got %q", body["client"])
		}
	})
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWriter(logger.Config{Level: "info", Format: "text"}, &buf)

	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	tests := []struct {
		path  string
		level string
	}{
		{"/ok", "level=INFO"},
		{"/bad", "level=WARN"},
		{"/boom", "level=ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			buf.Reset()
			req := httptest.NewRequest(http.MethodGet, tt.path+"?status=pendiente", nil)
			req.Header.Set(RequestIDHeader, "req-log")
			router.ServeHTTP(httptest.NewRecorder(), req)

			out := buf.String()
			for _, want := range []string{"request completed", tt.level, "request_id=req-log", "status=pendiente"} {
				if !strings.Contains(out, want) {
					t.Errorf("expected %q in log output: %s", want, out)
				}
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWriter(logger.Config{Level: "error", Format: "json"}, &buf)

	router := gin.New()
	router.Use(RequestID())
	router.Use(Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-panic")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Code != "INTERNAL_ERROR" || body.Details["request_id"] != "req-panic" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Fatalf("expected panic to be logged: %s", buf.String())
	}
}

type stubVerifier map[string]interfaces.SessionUser

func (s stubVerifier) Verify(token string) (interfaces.SessionUser, error) {
	u, ok := s[token]
	if !ok {
		return interfaces.SessionUser{}, errors.New("bad token")
	}
	return u, nil
}

func TestAuth(t *testing.T) {
	verifier := stubVerifier{"good": {ID: 3, Email: "tech@example.com"}}

	router := gin.New()
	router.Use(Auth(verifier))
	router.GET("/test", func(c *gin.Context) {
		user, ok := GetUser(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, user)
	})

	tests := []struct {
		name           string
		header         string
		cookie         string
		expectedStatus int
	}{
		{"bearer token", "Bearer good", "", http.StatusOK},
		{"lower-case scheme", "bearer good", "", http.StatusOK},
		{"session cookie", "", "good", http.StatusOK},
		{"missing credentials", "", "", http.StatusUnauthorized},
		{"invalid format", "good", "", http.StatusUnauthorized},
		{"invalid token", "Bearer nope", "", http.StatusUnauthorized},
		{"bad header wins over cookie", "Token good", "good", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if w.Code == http.StatusOK && !strings.Contains(w.Body.String(), "tech@example.com") {
				t.Fatalf("expected user in body, got %s", w.Body.String())
			}
		})
	}
}

func TestGetUser_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := GetUser(c); ok {
		t.Fatal("expected no user")
	}
}

func TestRateLimit(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	router := gin.New()
	router.Use(RateLimit(limiter))
	router.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 3; i++ {
		if code := send("192.168.1.1"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}
	if code := send("192.168.1.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
	if code := send("192.168.1.2"); code != http.StatusOK {
		t.Fatalf("expected other ip to pass, got %d", code)
	}

	now = now.Add(20 * time.Second)
	if code := send("192.168.1.1"); code != http.StatusOK {
		t.Fatalf("expected a refilled token, got %d", code)
	}
}
