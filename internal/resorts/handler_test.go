package resorts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guide-backend/internal/content"
	"guide-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		require.NoError(t, v.RegisterValidation(TravelModeTag, ValidateTravelMode))
	}
	b, err := content.LoadEmbedded()
	require.NoError(t, err)
	r := gin.New()
	NewHandler(NewService(b, config.Defaults().Resorts)).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestHandlerSearch(t *testing.T) {
	r := newTestRouter(t)

	q := url.Values{}
	q.Set("mode", "자가용")
	q.Set("max", "100")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/resorts/search?"+q.Encode(), nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var res SearchResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, ModeCar, res.Mode)
	assert.Equal(t, 100, res.MaxMinutes)
	require.NotEmpty(t, res.Matches)
	for _, m := range res.Matches {
		require.NotNil(t, m.Minutes)
		assert.LessOrEqual(t, m.Minutes.Max, 100)
		assert.Contains(t, m.SearchURL, "https://map.naver.com/p/search/")
	}
	assert.Equal(t, "곤지암리조트 스키장", res.Matches[0].Name)
}

func TestHandlerSearchDefaults(t *testing.T) {
	r := newTestRouter(t)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/resorts/search", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var res SearchResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, ModeCar, res.Mode)
	assert.Equal(t, DefaultMaxMinutes, res.MaxMinutes)
}

func TestHandlerSearchValidation(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/resorts/search?mode=plane",
		"/api/v1/resorts/search?max=5000",
		"/api/v1/resorts/search?max=0",
		"/api/v1/resorts/search?max=-5",
		"/api/v1/resorts/search?buckets=expert",
	} {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equalf(t, http.StatusBadRequest, resp.Code, path)
		assert.Containsf(t, resp.Body.String(), "validation_error", path)
	}
}

func TestHandlerList(t *testing.T) {
	r := newTestRouter(t)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/resorts", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Resorts []Listing `json:"resorts"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Resorts, 7)
	for _, l := range payload.Resorts {
		if l.Name == "휘닉스 파크(휘닉스 평창)" {
			assert.Equal(t, BucketUnknown, l.Bucket)
			assert.Equal(t, "데이터 부족", l.BucketLabel)
		}
	}
}
