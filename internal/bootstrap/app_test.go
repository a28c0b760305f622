package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guide-backend/internal/shared/config"
)

func testConfig() config.Config {
	cfg := config.Defaults()
	cfg.RateLimit.Rate = 0
	return cfg
}

func newApp(t *testing.T, cfg config.Config) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := Build(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func get(app *App, target string) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, target, nil))
	return resp
}

func TestHealth(t *testing.T) {
	app := newApp(t, testConfig())

	resp := get(app, "/api/v1/health")
	require.Equal(t, http.StatusOK, resp.Code)
	var payload struct {
		OK      bool           `json:"ok"`
		Content map[string]int `json:"content"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.OK)
	assert.Equal(t, 16, payload.Content["types"])
}

func TestCareersPage(t *testing.T) {
	app := newApp(t, testConfig())

	preview := get(app, "/careers")
	require.Equal(t, http.StatusOK, preview.Code)
	assert.Contains(t, preview.Body.String(), "간단 리포트")

	q := url.Values{}
	q.Set("mbti", "INTJ")
	q.Add("interests", "IT/개발")
	q.Set("count", "3")
	q.Set("go", "1")
	resp := get(app, "/careers?"+q.Encode())
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, "1. 데이터 사이언티스트")
	assert.NotContains(t, body, "4. ")
	assert.Contains(t, body, `value="IT/개발" checked`)

	bad := get(app, "/careers?mbti=ABCD&go=1")
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestResortsPage(t *testing.T) {
	app := newApp(t, testConfig())

	q := url.Values{}
	q.Set("mode", "car")
	q.Set("max", "100")
	q.Set("sources", "1")
	resp := get(app, "/resorts?"+q.Encode())
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, "곤지암리조트 스키장")
	assert.NotContains(t, body, "모나 용평 리조트")
	assert.Contains(t, body, "서울 성동구 옥수동")
	assert.Contains(t, body, "근거 힌트")

	empty := get(app, "/resorts?mode=public&max=60")
	require.Equal(t, http.StatusOK, empty.Code)
	assert.Contains(t, empty.Body.String(), "최대 시간을 늘리거나 이동수단을 바꿔보세요")
}

func TestShoulderPage(t *testing.T) {
	app := newApp(t, testConfig())

	q := url.Values{}
	q.Set("symptom", "팔을 옆으로 들어 올릴 때 중간 구간(약 60–120°)에서만 아픔 (통증호)")
	q.Set("trauma", "1")
	resp := get(app, "/shoulder?"+q.Encode())
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Equal(t, 1, strings.Count(body, `class="warning"`))
	assert.Contains(t, body, "통증호 검사")
	assert.Contains(t, body, "진단을 대신하지 않습니다")
}

func TestMetricsAndNoRoute(t *testing.T) {
	app := newApp(t, testConfig())
	get(app, "/api/v1/careers/types")

	resp := get(app, "/metrics")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "guide_http_requests_total")

	missing := get(app, "/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Contains(t, missing.Body.String(), "not_found")
}

func TestRedisBackedRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Redis.Addr = mr.Addr()
	cfg.RateLimit.Rate = 1
	cfg.RateLimit.Burst = 2
	app := newApp(t, cfg)

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, get(app, "/api/v1/resorts").Code)
	}
	limited := get(app, "/api/v1/resorts")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))

	health := get(app, "/api/v1/health")
	require.Equal(t, http.StatusOK, health.Code)
	assert.Contains(t, health.Body.String(), `"redis":"ok"`)
}

func TestBuildFailsForMissingContentDir(t *testing.T) {
	cfg := testConfig()
	cfg.Content.Source = "dir"
	cfg.Content.Dir = t.TempDir()
	_, err := Build(cfg)
	assert.Error(t, err)

	cfg.Content.Source = "s3"
	cfg.Content.S3Bucket = ""
	_, err = Build(cfg)
	assert.ErrorContains(t, err, "content.s3_bucket")
}
