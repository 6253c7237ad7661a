package service

import (
	"context"
	"sync"
	"time"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/catalog"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
)

// catalogService caches the reference data for ttl. A zero ttl reloads on
// every call.
type catalogService struct {
	reader contract.CatalogReader
	ttl    time.Duration
	now    func() time.Time

	mu       sync.Mutex
	cached   *entity.Catalog
	loadedAt time.Time
}

func newCatalogService(reader contract.CatalogReader, ttl time.Duration) *catalogService {
	return &catalogService{reader: reader, ttl: ttl, now: time.Now}
}

func (s *catalogService) Catalog(ctx context.Context) (*entity.Catalog, error) {
	s.mu.Lock()
	if s.cached != nil && s.ttl > 0 && s.now().Sub(s.loadedAt) < s.ttl {
		c := s.cached
		s.mu.Unlock()
		return c, nil
	}
	s.mu.Unlock()

	c, err := catalog.Load(ctx, s.reader)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = c
	s.loadedAt = s.now()
	s.mu.Unlock()

	return c, nil
}

// Invalidate forces the next Catalog call to reload.
func (s *catalogService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}
