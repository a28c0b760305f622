package careers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"guide-backend/internal/content"
	"guide-backend/internal/shared/server/respond"
	"guide-backend/internal/shared/util"
)

// TypeCodeTag is the validator tag for four-letter type codes.
const TypeCodeTag = "mbti"

const (
	pageCountMin = 3
	pageCountMax = 10
)

// ValidateTypeCode is the validator.Func behind TypeCodeTag. Empty values pass.
func ValidateTypeCode(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || ValidTypeCode(v)
}

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches career API routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/careers/types", h.listTypes)
	rg.GET("/careers/types/:code", h.getType)
	rg.GET("/careers/types/:code/recommendations", h.recommend)
	rg.GET("/careers/interests", h.listInterests)
}

// RegisterPages attaches the career HTML page.
func (h *Handler) RegisterPages(r gin.IRoutes) {
	r.GET("/careers", h.page)
}

func (h *Handler) listTypes(c *gin.Context) {
	respond.OK(c, gin.H{"types": h.Svc.Types()})
}

func (h *Handler) listInterests(c *gin.Context) {
	respond.OK(c, gin.H{"interests": h.Svc.Interests()})
}

func (h *Handler) getType(c *gin.Context) {
	pack, err := h.Svc.Pack(c.Param("code"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, pack)
}

type recommendQuery struct {
	Count     int      `form:"count" binding:"omitempty,min=1,max=30"`
	Interests []string `form:"interests"`
}

func (h *Handler) recommend(c *gin.Context) {
	var q recommendQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "count must be between 1 and 30", nil)
		return
	}
	code := NormalizeCode(c.Param("code"))
	c.Set("mbti", code)

	res, err := h.Svc.Recommend(c.Request.Context(), code, util.SplitParams(q.Interests), q.Count)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, res)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnknownType):
		respond.Error(c, http.StatusNotFound, "not_found", "unknown personality type", gin.H{"types": h.Svc.Types()})
	case errors.Is(err, ErrInvalidCount):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to build recommendations", nil)
	}
}

type pageQuery struct {
	MBTI      string   `form:"mbti" binding:"omitempty,mbti"`
	Interests []string `form:"interests"`
	Count     int      `form:"count" binding:"omitempty,min=3,max=10"`
	Go        string   `form:"go"`
}

type pageView struct {
	Types     []string
	Interests []content.InterestTag
	Selected  map[string]bool
	MBTI      string
	Count     int
	CountMin  int
	CountMax  int
	Result    Result
	Error     string
}

func (h *Handler) page(c *gin.Context) {
	view := pageView{
		Types:     h.Svc.Types(),
		Interests: h.Svc.Interests(),
		Selected:  map[string]bool{},
		Count:     DefaultViewSize,
		CountMin:  pageCountMin,
		CountMax:  pageCountMax,
	}
	if len(view.Types) > 0 {
		view.MBTI = view.Types[0]
	}

	status := http.StatusOK
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		status = http.StatusBadRequest
		view.Error = "입력값을 확인해 주세요. MBTI는 4글자 유형, 추천 개수는 3~10 사이입니다."
		q = pageQuery{}
	}
	if q.MBTI != "" {
		view.MBTI = NormalizeCode(q.MBTI)
	}
	if q.Count != 0 {
		view.Count = q.Count
	}
	interests := util.SplitParams(q.Interests)
	for _, it := range interests {
		view.Selected[it] = true
	}

	var (
		res Result
		err error
	)
	if q.Go != "" {
		res, err = h.Svc.Recommend(c.Request.Context(), view.MBTI, interests, view.Count)
	} else {
		res, err = h.Svc.Preview(view.MBTI)
	}
	if err != nil {
		status = http.StatusNotFound
		view.Error = "알 수 없는 MBTI 유형입니다."
	}
	view.Result = res
	c.HTML(status, "careers.html", view)
}
