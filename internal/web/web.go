package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"pct": func(p *int) string {
		if p == nil {
			return "—"
		}
		return fmt.Sprintf("%d%%", *p)
	},
	"inc": func(i int) int { return i + 1 },
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// Static serves the embedded stylesheet.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Install sets the HTML renderer, static files and the index page on r.
func Install(r *gin.Engine) error {
	t, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(t)
	r.StaticFS("/static", Static())
	r.GET("/", index)
	return nil
}

type tool struct {
	Path        string
	Icon        string
	Title       string
	Description string
}

var tools = []tool{
	{Path: "/careers", Icon: "🧭", Title: "MBTI 진로 추천", Description: "유형과 관심 분야로 어울리는 직업을 골라 봅니다."},
	{Path: "/resorts", Icon: "🎿", Title: "스키장 거리·난이도", Description: "이동수단과 최대 소요시간으로 갈 만한 스키장을 찾습니다."},
	{Path: "/shoulder", Icon: "💪", Title: "어깨 통증 검사·운동", Description: "증상에 맞는 이학적 검사와 집에서 하는 운동을 정리합니다."},
}

func index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Tools": tools})
}
