package careers

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"guide-backend/internal/content"
	"guide-backend/internal/shared/config"
	"guide-backend/internal/shared/metrics"
	"guide-backend/internal/shared/util"
)

const maxCount = 30

var typeCodePattern = regexp.MustCompile(`^[EI][NS][TF][JP]$`)

// Card is one rendered recommendation.
type Card struct {
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Environment string `json:"environment"`
	StudyTip    string `json:"studyTip"`
}

// Result is a pack together with its ranked cards.
type Result struct {
	Pack      content.CareerPack `json:"pack"`
	Interests []string           `json:"interests"`
	Cards     []Card             `json:"recommendations"`
	Scored    bool               `json:"scored"`
}

// Service answers career questions over a content bundle.
type Service struct {
	Bundle       *content.Bundle
	MatchWeight  int
	DefaultCount int
}

// NewService constructs a Service.
func NewService(b *content.Bundle, cfg config.CareersConfig) *Service {
	weight := cfg.MatchWeight
	if weight <= 0 {
		weight = DefaultMatchWeight
	}
	count := cfg.DefaultCount
	if count <= 0 {
		count = DefaultViewSize
	}
	return &Service{Bundle: b, MatchWeight: weight, DefaultCount: count}
}

// NormalizeCode upper-cases and trims a type code.
func NormalizeCode(raw string) string {
	return strings.ToUpper(util.NormalizeInput(raw))
}

// Types lists the known type codes.
func (s *Service) Types() []string {
	return s.Bundle.TypeCodes()
}

// Interests lists the interest tags in table order.
func (s *Service) Interests() []content.InterestTag {
	return s.Bundle.Interests
}

// Pack returns the career pack for a type code.
func (s *Service) Pack(code string) (content.CareerPack, error) {
	code = NormalizeCode(code)
	pack, ok := s.Bundle.CareerPack(code)
	if !ok {
		return content.CareerPack{}, fmt.Errorf("%w: %q", ErrUnknownType, code)
	}
	return pack, nil
}

// Recommend ranks a pack's careers for the given interests. A zero count uses the configured default.
func (s *Service) Recommend(ctx context.Context, code string, interests []string, count int) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if count == 0 {
		count = s.DefaultCount
	}
	if count < 0 || count > maxCount {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	pack, err := s.Pack(code)
	if err != nil {
		return Result{}, err
	}
	selected := util.NormalizeList(interests)
	metrics.RecommendationsTotal.WithLabelValues(pack.Code).Inc()
	return Result{
		Pack:      pack,
		Interests: selected,
		Cards:     cards(pack, Recommend(pack, s.Bundle.Interests, selected, count, s.MatchWeight)),
		Scored:    true,
	}, nil
}

// Preview returns the unscored default view for a pack.
func (s *Service) Preview(code string) (Result, error) {
	pack, err := s.Pack(code)
	if err != nil {
		return Result{}, err
	}
	return Result{Pack: pack, Interests: []string{}, Cards: cards(pack, DefaultView(pack))}, nil
}

func cards(pack content.CareerPack, scored []Scored) []Card {
	out := make([]Card, 0, len(scored))
	for i, s := range scored {
		out = append(out, Card{
			Rank:        i + 1,
			Name:        s.Name,
			Score:       s.Score,
			Environment: pick(pack.Environments, i),
			StudyTip:    pick(pack.StudyTips, i),
		})
	}
	return out
}

// ValidTypeCode reports whether raw looks like a four-letter type code.
func ValidTypeCode(raw string) bool {
	return typeCodePattern.MatchString(NormalizeCode(raw))
}
