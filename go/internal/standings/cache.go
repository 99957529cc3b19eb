package standings

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/castaway/go/internal/models"
)

type cacheEntry struct {
	seasonID uuid.UUID
	ranked   []models.RankedEntry
	expires  time.Time
}

// Cache holds ranked standings per league for up to a TTL. Any invalidation bumps a version,
// and Put drops results computed against an older version, so a slow computation cannot
// re-insert standings that an invalidation has already declared stale.
type Cache struct {
	mu      sync.RWMutex
	clock   clockwork.Clock
	ttl     time.Duration
	entries map[uuid.UUID]cacheEntry
	version uint64
}

// NewCache creates a Cache. A zero ttl disables caching.
func NewCache(clock clockwork.Clock, ttl time.Duration) *Cache {
	return &Cache{
		clock:   clock,
		ttl:     ttl,
		entries: make(map[uuid.UUID]cacheEntry),
	}
}

// Version returns the invalidation version to pass to Put.
func (c *Cache) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Get returns a copy of a league's cached standings if present and fresh.
func (c *Cache) Get(leagueID uuid.UUID) ([]models.RankedEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[leagueID]
	if !ok || !c.clock.Now().Before(e.expires) {
		return nil, false
	}
	return slices.Clone(e.ranked), true
}

// Put stores a league's standings unless the cache was invalidated after version was read.
func (c *Cache) Put(version uint64, leagueID, seasonID uuid.UUID, ranked []models.RankedEntry) bool {
	if c.ttl <= 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if version != c.version {
		return false
	}
	c.entries[leagueID] = cacheEntry{
		seasonID: seasonID,
		ranked:   slices.Clone(ranked),
		expires:  c.clock.Now().Add(c.ttl),
	}
	return true
}

// InvalidateLeague drops one league's standings.
func (c *Cache) InvalidateLeague(leagueID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	delete(c.entries, leagueID)
}

// InvalidateSeason drops the standings of every league playing a season.
func (c *Cache) InvalidateSeason(seasonID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	for id, e := range c.entries {
		if e.seasonID == seasonID {
			delete(c.entries, id)
		}
	}
}

// Len returns the number of cached leagues, fresh or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
