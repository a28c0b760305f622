package shoulder

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"guide-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches shoulder API routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/shoulder/symptoms", h.symptoms)
	rg.GET("/shoulder/lookup", h.lookup)
}

// RegisterPages attaches the shoulder HTML page.
func (h *Handler) RegisterPages(r gin.IRoutes) {
	r.GET("/shoulder", h.page)
}

func (h *Handler) symptoms(c *gin.Context) {
	respond.OK(c, gin.H{"symptoms": h.Svc.Symptoms(), "disclaimer": Disclaimer})
}

type lookupQuery struct {
	Symptom string `form:"symptom" binding:"required"`
	Trauma  bool   `form:"trauma"`
	Fever   bool   `form:"fever"`
	Neuro   bool   `form:"neuro"`
}

func (q lookupQuery) flags() Flags {
	return Flags{Trauma: q.Trauma, Fever: q.Fever, Neuro: q.Neuro}
}

func (h *Handler) lookup(c *gin.Context) {
	var q lookupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "symptom is required", nil)
		return
	}
	res, err := h.Svc.Lookup(c.Request.Context(), q.Symptom, q.flags())
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownSymptom):
			respond.Error(c, http.StatusNotFound, "not_found", "unknown symptom", gin.H{"symptoms": h.Svc.Symptoms()})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to look up symptom", nil)
		}
		return
	}
	respond.OK(c, gin.H{"result": res, "disclaimer": Disclaimer})
}

type pageQuery struct {
	Symptom string `form:"symptom"`
	Trauma  bool   `form:"trauma"`
	Fever   bool   `form:"fever"`
	Neuro   bool   `form:"neuro"`
}

type pageView struct {
	Symptoms   []string
	Symptom    string
	Flags      Flags
	Result     Result
	Disclaimer string
	Error      string
}

func (h *Handler) page(c *gin.Context) {
	view := pageView{Symptoms: h.Svc.Symptoms(), Disclaimer: Disclaimer}
	if len(view.Symptoms) > 0 {
		view.Symptom = view.Symptoms[0]
	}

	status := http.StatusOK
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		status = http.StatusBadRequest
		view.Error = "입력값을 확인해 주세요."
		q = pageQuery{}
	}
	if q.Symptom != "" {
		view.Symptom = q.Symptom
	}
	view.Flags = Flags{Trauma: q.Trauma, Fever: q.Fever, Neuro: q.Neuro}

	res, err := h.Svc.Lookup(c.Request.Context(), view.Symptom, view.Flags)
	if err != nil {
		status = http.StatusNotFound
		view.Error = "목록에 없는 증상입니다. 목록에서 골라 주세요."
	}
	view.Result = res
	c.HTML(status, "shoulder.html", view)
}
