package internal

import (
	"context"
	"fmt"
	"sync"
)

type IOrderIDSource interface {
	Next(context.Context) (string, error)
}

// OrderIDSource hands out YYYYMMDD-SEQ order ids. The sequence restarts every day and
// is seeded from the highest id already stored for that day, so ids stay unique across
// restarts and never depend on wall-clock resolution.
type OrderIDSource struct {
	repo  IRepository
	clock *Clock

	mu  sync.Mutex
	day string
	seq int
}

func NewOrderIDSource(repo IRepository, clock *Clock) *OrderIDSource {
	return &OrderIDSource{repo: repo, clock: clock}
}

func (s *OrderIDSource) Next(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := s.clock.Day(s.clock.Now())
	if day != s.day {
		last, err := s.repo.LastOrderSequence(ctx, day)
		if err != nil {
			return "", err
		}
		s.day, s.seq = day, last
	}

	s.seq++
	return fmt.Sprintf("%s-%03d", s.day, s.seq), nil
}
