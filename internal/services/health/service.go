package health

import (
	"context"
	"time"

	"guide-backend/internal/content"
)

// Pinger is a dependency that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Status is the health payload.
type Status struct {
	OK      bool           `json:"ok"`
	Content map[string]int `json:"content"`
	Redis   string         `json:"redis,omitempty"`
}

// Service encapsulates health-related checks.
type Service struct {
	Bundle *content.Bundle
	Redis  Pinger
}

// NewService constructs a new health service. redis may be nil.
func NewService(b *content.Bundle, redis Pinger) *Service {
	return &Service{Bundle: b, Redis: redis}
}

// Status reports content table sizes and, when configured, Redis reachability. An unreachable
// Redis degrades rate limiting only, so it does not flip OK.
func (s *Service) Status(ctx context.Context) Status {
	st := Status{OK: s.Bundle != nil, Content: map[string]int{}}
	if s.Bundle != nil {
		st.Content["types"] = len(s.Bundle.Types)
		st.Content["interests"] = len(s.Bundle.Interests)
		st.Content["symptoms"] = len(s.Bundle.Symptoms)
		st.Content["tests"] = len(s.Bundle.Tests)
		st.Content["exercises"] = len(s.Bundle.Exercises)
		st.Content["resorts"] = len(s.Bundle.Resorts)
	}
	if s.Redis != nil {
		pingCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		if err := s.Redis.Ping(pingCtx); err != nil {
			st.Redis = "unreachable"
		} else {
			st.Redis = "ok"
		}
	}
	return st
}
