package shoulder

import (
	"context"

	"guide-backend/internal/content"
	"guide-backend/internal/shared/metrics"
)

// Service answers symptom lookups over a content bundle.
type Service struct {
	Bundle *content.Bundle
}

// NewService constructs a Service.
func NewService(b *content.Bundle) *Service {
	return &Service{Bundle: b}
}

// Symptoms lists the symptom keys in table order.
func (s *Service) Symptoms() []string {
	return s.Bundle.SymptomKeys()
}

// Lookup resolves one symptom.
func (s *Service) Lookup(ctx context.Context, symptom string, flags Flags) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res, err := Lookup(s.Bundle, symptom, flags)
	if err != nil {
		return Result{}, err
	}
	metrics.SymptomLookupsTotal.WithLabelValues(res.Symptom).Inc()
	return res, nil
}
