package standings

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCache_ExpiresAfterTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cache := NewCache(clock, time.Minute)
	league, season := uuid.New(), uuid.New()
	ranked := []models.RankedEntry{{StandingsEntry: entry(u1, 3), Rank: 1}}

	assert.True(t, cache.Put(cache.Version(), league, season, ranked))

	got, ok := cache.Get(league)
	assert.True(t, ok)
	assert.Equal(t, ranked, got)

	clock.Advance(time.Minute)
	_, ok = cache.Get(league)
	assert.False(t, ok)
}

func TestCache_InvalidateSeasonDropsOnlyItsLeagues(t *testing.T) {
	cache := NewCache(clockwork.NewFakeClock(), time.Hour)
	seasonA, seasonB := uuid.New(), uuid.New()
	l1, l2, l3 := uuid.New(), uuid.New(), uuid.New()

	cache.Put(cache.Version(), l1, seasonA, nil)
	cache.Put(cache.Version(), l2, seasonA, nil)
	cache.Put(cache.Version(), l3, seasonB, nil)

	cache.InvalidateSeason(seasonA)

	_, ok := cache.Get(l1)
	assert.False(t, ok)
	_, ok = cache.Get(l2)
	assert.False(t, ok)
	_, ok = cache.Get(l3)
	assert.True(t, ok)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_InvalidateLeague(t *testing.T) {
	cache := NewCache(clockwork.NewFakeClock(), time.Hour)
	league := uuid.New()
	cache.Put(cache.Version(), league, uuid.New(), nil)

	cache.InvalidateLeague(league)

	_, ok := cache.Get(league)
	assert.False(t, ok)
}

func TestCache_PutAfterInvalidationIsDropped(t *testing.T) {
	cache := NewCache(clockwork.NewFakeClock(), time.Hour)
	league := uuid.New()

	version := cache.Version()
	cache.InvalidateLeague(uuid.New())

	assert.False(t, cache.Put(version, league, uuid.New(), nil))
	_, ok := cache.Get(league)
	assert.False(t, ok)
}

func TestCache_ZeroTTLDisablesCaching(t *testing.T) {
	cache := NewCache(clockwork.NewFakeClock(), 0)
	league := uuid.New()

	assert.False(t, cache.Put(cache.Version(), league, uuid.New(), nil))
	_, ok := cache.Get(league)
	assert.False(t, ok)
}

func TestCache_EntriesAreNotShared(t *testing.T) {
	cache := NewCache(clockwork.NewFakeClock(), time.Hour)
	league, season := uuid.New(), uuid.New()
	ranked := []models.RankedEntry{{StandingsEntry: entry(u1, 3), Rank: 1}}

	cache.Put(cache.Version(), league, season, ranked)
	ranked[0].Rank = 99

	got, ok := cache.Get(league)
	assert.True(t, ok)
	assert.Equal(t, 1, got[0].Rank)

	got[0].Rank = 42
	again, _ := cache.Get(league)
	assert.Equal(t, 1, again[0].Rank)
}
