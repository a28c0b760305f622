package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRequestCounts(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/careers", "200"))
	ObserveRequest("/careers", http.StatusOK, 3*time.Millisecond)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/careers", "200"))
	if after-before != 1 {
		t.Fatalf("expected counter to grow by 1, got %v", after-before)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	RecommendationsTotal.WithLabelValues("INTJ").Inc()

	r := gin.New()
	r.GET("/metrics", Handler())
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "guide_recommendations_total") {
		t.Fatalf("expected recommendation counter in output")
	}
}
