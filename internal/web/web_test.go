package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	for _, name := range []string{"index.html", "careers.html", "resorts.html", "shoulder.html", "head", "foot"} {
		assert.NotNilf(t, tmpl.Lookup(name), "missing template %s", name)
	}
}

func TestPctFunc(t *testing.T) {
	pct := funcs["pct"].(func(*int) string)
	v := 35
	assert.Equal(t, "35%", pct(&v))
	assert.Equal(t, "—", pct(nil))
}

func TestInstallServesIndexAndStatic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, Install(r))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	for _, tl := range tools {
		assert.Contains(t, body, `href="`+tl.Path+`"`)
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, strings.Contains(resp.Body.String(), "#0B63F6"))
}
