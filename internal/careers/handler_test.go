package careers

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

	"guide-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		require.NoError(t, v.RegisterValidation(TypeCodeTag, ValidateTypeCode))
	}
	r := gin.New()
	NewHandler(NewService(loadBundle(t), config.CareersConfig{})).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestHandlerRecommendations(t *testing.T) {
	r := newTestRouter(t)

	q := url.Values{}
	q.Set("count", "3")
	q.Add("interests", "IT/개발")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/careers/types/intj/recommendations?"+q.Encode(), nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Pack struct {
			Code string `json:"code"`
		} `json:"pack"`
		Recommendations []Card `json:"recommendations"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "INTJ", payload.Pack.Code)
	require.Len(t, payload.Recommendations, 3)
	assert.Equal(t, "데이터 사이언티스트", payload.Recommendations[0].Name)
}

func TestHandlerErrors(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{name: "unknown type", path: "/api/v1/careers/types/ABCD", status: http.StatusNotFound, code: "not_found"},
		{name: "count too large", path: "/api/v1/careers/types/INTJ/recommendations?count=99", status: http.StatusBadRequest, code: "validation_error"},
		{name: "count not a number", path: "/api/v1/careers/types/INTJ/recommendations?count=abc", status: http.StatusBadRequest, code: "validation_error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.Equal(t, tc.status, resp.Code)

			var payload struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
			assert.Equal(t, tc.code, payload.Error.Code)
		})
	}
}

func TestHandlerListings(t *testing.T) {
	r := newTestRouter(t)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/careers/types", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	var types struct {
		Types []string `json:"types"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&types))
	assert.Len(t, types.Types, 16)

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/careers/interests", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "IT/개발")
}
