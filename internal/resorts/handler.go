package resorts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"guide-backend/internal/shared/server/respond"
	"guide-backend/internal/shared/util"
)

// TravelModeTag is the validator tag for travel mode values.
const TravelModeTag = "travelmode"

const (
	sliderMin  = 60
	sliderMax  = 240
	sliderStep = 10
)

// ValidateTravelMode is the validator.Func behind TravelModeTag. Empty values pass.
func ValidateTravelMode(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if v == "" {
		return true
	}
	_, err := ParseMode(v)
	return err == nil
}

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resort API routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resorts", h.list)
	rg.GET("/resorts/search", h.search)
}

// RegisterPages attaches the resort HTML page.
func (h *Handler) RegisterPages(r gin.IRoutes) {
	r.GET("/resorts", h.page)
}

func (h *Handler) list(c *gin.Context) {
	respond.OK(c, gin.H{"resorts": h.Svc.All()})
}

type searchQuery struct {
	Mode    string   `form:"mode" binding:"omitempty,travelmode"`
	Max     *int     `form:"max" binding:"omitempty,min=1,max=1440"`
	Buckets []string `form:"buckets"`
}

func (h *Handler) search(c *gin.Context) {
	var req searchQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid search parameters", gin.H{"modes": modeKeys()})
		return
	}
	q, err := ParseQuery(req.Mode, req.Max, util.SplitParams(req.Buckets))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Set("mode", string(q.Mode))

	res, err := h.Svc.Search(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, res)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnknownMode):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{"modes": modeKeys()})
	case errors.Is(err, ErrUnknownBucket):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{"buckets": Buckets})
	case errors.Is(err, ErrInvalidLimit):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to search resorts", nil)
	}
}

func modeKeys() []string {
	out := make([]string, 0, len(Modes))
	for _, m := range Modes {
		out = append(out, string(m))
	}
	return out
}

type pageQuery struct {
	Origin  string   `form:"origin"`
	Mode    string   `form:"mode" binding:"omitempty,travelmode"`
	Max     *int     `form:"max" binding:"omitempty,min=60,max=240"`
	Buckets []string `form:"buckets"`
	Sources string   `form:"sources"`
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type pageView struct {
	Origin      string
	Modes       []option
	Buckets     []option
	Max         int
	SliderMin   int
	SliderMax   int
	SliderStep  int
	ShowSources bool
	Result      SearchResult
	Error       string
}

func (h *Handler) page(c *gin.Context) {
	status := http.StatusOK
	view := pageView{
		Origin:     h.Svc.DefaultOrigin,
		SliderMin:  sliderMin,
		SliderMax:  sliderMax,
		SliderStep: sliderStep,
	}

	var req pageQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		status = http.StatusBadRequest
		view.Error = "입력값을 확인해 주세요. 최대 소요시간은 60~240분 사이입니다."
		req = pageQuery{}
	}
	if origin := util.NormalizeInput(req.Origin); origin != "" {
		view.Origin = origin
	}
	view.ShowSources = req.Sources != ""

	q, err := ParseQuery(req.Mode, req.Max, util.SplitParams(req.Buckets))
	if err != nil {
		status = http.StatusBadRequest
		view.Error = "알 수 없는 이동수단 또는 난이도 값입니다."
		q, _ = ParseQuery("", nil, nil)
	}
	view.Max = q.MaxMinutes

	for _, m := range Modes {
		view.Modes = append(view.Modes, option{Value: string(m), Label: m.Label(), Selected: m == q.Mode})
	}
	accepted := map[Bucket]bool{}
	for _, b := range q.Buckets {
		accepted[b] = true
	}
	for _, b := range Buckets {
		view.Buckets = append(view.Buckets, option{
			Value:    string(b),
			Label:    b.Label(),
			Selected: len(accepted) == 0 || accepted[b],
		})
	}

	res, err := h.Svc.Search(c.Request.Context(), q)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to search resorts", nil)
		return
	}
	view.Result = res
	c.HTML(status, "resorts.html", view)
}
