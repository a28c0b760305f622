package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"guide-backend/internal/shared/telemetry"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	prev := telemetry.SetLogger(zap.New(core))
	defer telemetry.SetLogger(prev)

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.GET("/api/v1/careers/types/:code/recommendations", func(c *gin.Context) {
		c.Set("mbti", "INTJ")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/careers/types/INTJ/recommendations", nil)
	req.Header.Set("X-Request-Id", "req-42")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	entries := logs.FilterMessage("request.complete").All()
	if len(entries) != 1 {
		t.Fatalf("expected one request log, got %d", len(entries))
	}
	payload := entries[0].ContextMap()

	required := []string{"request_id", "method", "path", "route", "status", "duration_ms"}
	for _, key := range required {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if payload["request_id"] != "req-42" {
		t.Fatalf("unexpected request_id: %v", payload["request_id"])
	}
	if payload["route"] != "/api/v1/careers/types/:code/recommendations" {
		t.Fatalf("unexpected route: %v", payload["route"])
	}
	if payload["mbti"] != "INTJ" {
		t.Fatalf("unexpected mbti: %v", payload["mbti"])
	}
	if resp.Header().Get("X-Request-Id") != "req-42" {
		t.Fatalf("expected request id echoed in header")
	}
}

func TestRequestIDGenerated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	var seen string
	router.GET("/x", func(c *gin.Context) {
		seen = RequestIDFromContext(c)
		c.Status(http.StatusOK)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/x", nil))
	if len(seen) != 36 {
		t.Fatalf("expected uuid request id, got %q", seen)
	}
	if resp.Header().Get("X-Request-Id") != seen {
		t.Fatalf("header and context request id differ")
	}
}

func TestRecoveryReturnsInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	prev := telemetry.SetLogger(zap.New(core))
	defer telemetry.SetLogger(prev)

	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if logs.FilterMessage("panic").Len() != 1 {
		t.Fatalf("expected panic to be logged")
	}
}
