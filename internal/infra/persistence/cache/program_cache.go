// Package cache wraps the program repository with a short TTL read-through
// cache. Program rows are read on every scan but change rarely, so a few
// seconds of staleness trades well against a primary round trip per earn.
package cache

import (
	"context"
	"sync"
	"time"

	"tally/internal/domain/entity"
	"tally/internal/domain/repository"

	"github.com/google/uuid"
)

type cachedProgram struct {
	program   *entity.LoyaltyProgram
	fetchedAt time.Time
}

// programCache decorates a ProgramRepository. Only the by-public-ID lookup is
// cached; every write invalidates so token rotation and pause/archive take
// effect immediately on this instance and within one TTL elsewhere.
type programCache struct {
	inner repository.ProgramRepository
	ttl   time.Duration

	mu      sync.RWMutex
	entries map[string]cachedProgram
}

// NewProgramCache decorates the given repository with a TTL cache.
// Wired through fx.Decorate so every consumer sees the cached view.
func NewProgramCache(inner repository.ProgramRepository, ttl time.Duration) repository.ProgramRepository {
	return &programCache{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]cachedProgram),
	}
}

// FindProgramByPublicID serves from cache within the TTL, otherwise reads through.
func (c *programCache) FindProgramByPublicID(ctx context.Context, publicID string) (*entity.LoyaltyProgram, error) {
	c.mu.RLock()
	entry, ok := c.entries[publicID]
	c.mu.RUnlock()

	if ok && time.Since(entry.fetchedAt) < c.ttl {
		return entry.program, nil
	}

	program, err := c.inner.FindProgramByPublicID(ctx, publicID)
	if err != nil {
		// Not-found is not cached; a program created moments later must be visible.
		return nil, err
	}

	c.mu.Lock()
	c.entries[publicID] = cachedProgram{program: program, fetchedAt: time.Now()}
	c.mu.Unlock()

	return program, nil
}

// CreateProgram passes through and primes nothing; the first scan warms the cache.
func (c *programCache) CreateProgram(ctx context.Context, program *entity.LoyaltyProgram) error {
	return c.inner.CreateProgram(ctx, program)
}

// FindProgramByID passes through; owner routes are not on the hot path.
func (c *programCache) FindProgramByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyProgram, error) {
	return c.inner.FindProgramByID(ctx, id)
}

// FindProgramsByBusiness passes through.
func (c *programCache) FindProgramsByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.LoyaltyProgram, error) {
	return c.inner.FindProgramsByBusiness(ctx, businessID)
}

// UpdateProgramConfig writes through and invalidates.
func (c *programCache) UpdateProgramConfig(ctx context.Context, program *entity.LoyaltyProgram) error {
	if err := c.inner.UpdateProgramConfig(ctx, program); err != nil {
		return err
	}

	c.invalidateByID(ctx, program.ID)

	return nil
}

// UpdateProgramStatus writes through and invalidates.
func (c *programCache) UpdateProgramStatus(ctx context.Context, id uuid.UUID, status entity.ProgramStatus) error {
	if err := c.inner.UpdateProgramStatus(ctx, id, status); err != nil {
		return err
	}

	c.invalidateByID(ctx, id)

	return nil
}

// UpdateEarnToken writes through and invalidates so a rotated token rejects
// old codes on this instance without waiting out the TTL.
func (c *programCache) UpdateEarnToken(ctx context.Context, id uuid.UUID, earnToken string) error {
	if err := c.inner.UpdateEarnToken(ctx, id, earnToken); err != nil {
		return err
	}

	c.invalidateByID(ctx, id)

	return nil
}

// invalidateByID drops the cache entry keyed by the program's public ID.
// The entries map is keyed by public ID, so resolve it via the scan of cached
// values; the map stays tiny (one entry per active program on this instance).
func (c *programCache) invalidateByID(_ context.Context, id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for publicID, entry := range c.entries {
		if entry.program != nil && entry.program.ID == id {
			delete(c.entries, publicID)

			return
		}
	}
}
