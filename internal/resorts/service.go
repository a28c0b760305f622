package resorts

import (
	"context"
	"fmt"

	"guide-backend/internal/content"
	"guide-backend/internal/shared/config"
	"guide-backend/internal/shared/metrics"
)

const (
	// DefaultMaxMinutes is the slider position before the form is touched.
	DefaultMaxMinutes = 180
	// DefaultOrigin is the starting point the travel times were estimated from.
	DefaultOrigin = "서울 성동구 옥수동"
	maxLimit          = 24 * 60
)

// Listing is a resort prepared for display.
type Listing struct {
	Name        string               `json:"name"`
	Icon        string               `json:"icon,omitempty"`
	Region      string               `json:"region"`
	Highlights  []string             `json:"highlights"`
	Minutes     *content.MinuteRange `json:"minutes,omitempty"`
	MinutesText string               `json:"minutesText,omitempty"`
	Car         *content.MinuteRange `json:"car,omitempty"`
	Public      *content.MinuteRange `json:"public,omitempty"`
	KTX         *content.MinuteRange `json:"ktx,omitempty"`
	Difficulty  content.Difficulty   `json:"difficulty"`
	Bucket      Bucket               `json:"bucket"`
	BucketLabel string               `json:"bucketLabel"`
	Note        string               `json:"note,omitempty"`
	SourceHint  string               `json:"sourceHint,omitempty"`
	SearchURL   string               `json:"searchUrl"`
	MapLinks    []content.Link       `json:"mapLinks,omitempty"`
}

// Query is a validated filter request.
type Query struct {
	Mode       TravelMode
	MaxMinutes int
	Buckets    []Bucket
}

// SearchResult is the outcome of one filter run.
type SearchResult struct {
	Mode       TravelMode `json:"mode"`
	ModeLabel  string     `json:"modeLabel"`
	MaxMinutes int        `json:"maxMinutes"`
	Buckets    []Bucket   `json:"buckets"`
	Matches    []Listing  `json:"matches"`
}

// Service filters the resort table.
type Service struct {
	Resorts        []content.Resort
	Thresholds     Thresholds
	SearchTemplate string
	DefaultOrigin  string
}

// NewService constructs a Service.
func NewService(b *content.Bundle, cfg config.ResortsConfig) *Service {
	tmpl := cfg.MapSearchTemplate
	if tmpl == "" {
		tmpl = DefaultSearchTemplate
	}
	origin := cfg.DefaultOrigin
	if origin == "" {
		origin = DefaultOrigin
	}
	return &Service{
		Resorts:        b.Resorts,
		Thresholds:     ThresholdsFrom(cfg),
		SearchTemplate: tmpl,
		DefaultOrigin:  origin,
	}
}

// ParseQuery turns raw request values into a Query. An empty mode means car and a nil
// maxMinutes means DefaultMaxMinutes. A given limit must lie in 1..1440.
func ParseQuery(mode string, maxMinutes *int, buckets []string) (Query, error) {
	q := Query{Mode: ModeCar, MaxMinutes: DefaultMaxMinutes, Buckets: []Bucket{}}
	if mode != "" {
		m, err := ParseMode(mode)
		if err != nil {
			return Query{}, err
		}
		q.Mode = m
	}
	if maxMinutes != nil {
		if *maxMinutes < 1 || *maxMinutes > maxLimit {
			return Query{}, fmt.Errorf("%w: %d", ErrInvalidLimit, *maxMinutes)
		}
		q.MaxMinutes = *maxMinutes
	}
	for _, raw := range buckets {
		b, err := ParseBucket(raw)
		if err != nil {
			return Query{}, err
		}
		q.Buckets = append(q.Buckets, b)
	}
	return q, nil
}

// All lists every resort in table order.
func (s *Service) All() []Listing {
	out := make([]Listing, 0, len(s.Resorts))
	for _, r := range s.Resorts {
		l := s.listing(r, Classify(r.Difficulty, s.Thresholds))
		l.Car, l.Public, l.KTX = r.Car, r.Public, r.KTX
		out = append(out, l)
	}
	return out
}

// Search runs the filter for q.
func (s *Service) Search(ctx context.Context, q Query) (SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return SearchResult{}, err
	}
	matches := Filter(s.Resorts, q.Mode, q.MaxMinutes, q.Buckets, s.Thresholds)
	metrics.ResortMatches.WithLabelValues(string(q.Mode)).Observe(float64(len(matches)))

	out := make([]Listing, 0, len(matches))
	for _, m := range matches {
		rng := m.Range
		l := s.listing(m.Resort, m.Bucket)
		l.Minutes = &rng
		l.MinutesText = FormatRange(&rng)
		out = append(out, l)
	}
	return SearchResult{
		Mode:       q.Mode,
		ModeLabel:  q.Mode.Label(),
		MaxMinutes: q.MaxMinutes,
		Buckets:    q.Buckets,
		Matches:    out,
	}, nil
}

func (s *Service) listing(r content.Resort, b Bucket) Listing {
	return Listing{
		Name:        r.Name,
		Icon:        r.Icon,
		Region:      r.Region,
		Highlights:  r.Highlights,
		Difficulty:  r.Difficulty,
		Bucket:      b,
		BucketLabel: b.Label(),
		Note:        r.Note,
		SourceHint:  r.SourceHint,
		SearchURL:   SearchLink(s.SearchTemplate, r.Name),
		MapLinks:    r.MapLinks,
	}
}
