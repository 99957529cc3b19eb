package standings

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id uuid.UUID, total int) models.StandingsEntry {
	return models.StandingsEntry{UserID: id, Total: total, JoinedAt: joined}
}

func ranks(ranked []models.RankedEntry) []uuid.UUID {
	out := make([]uuid.UUID, len(ranked))
	for i, r := range ranked {
		out[i] = r.UserID
	}
	return out
}

func TestRank_OrdersByTotalDescending(t *testing.T) {
	in := []models.StandingsEntry{entry(u1, 100), entry(u2, 150), entry(u3, 75)}

	ranked := NewRanker(nil).Rank(in)

	require.Len(t, ranked, 3)
	assert.Equal(t, []uuid.UUID{u2, u1, u3}, ranks(ranked))
	for i, r := range ranked {
		assert.Equal(t, i+1, r.Rank)
	}
	assert.Equal(t, u1, in[0].UserID, "input is not reordered")
}

func TestRank_EmptyAndSingle(t *testing.T) {
	r := NewRanker(nil)

	assert.Empty(t, r.Rank(nil))

	one := r.Rank([]models.StandingsEntry{entry(u1, 0)})
	require.Len(t, one, 1)
	assert.Equal(t, 1, one[0].Rank)
}

func TestDefaultTieBreak(t *testing.T) {
	t.Run("best episode first", func(t *testing.T) {
		a := entry(u1, 50)
		b := entry(u2, 50)
		b.BestEpisode = 20
		a.BestEpisode = 10

		ranked := NewRanker(nil).Rank([]models.StandingsEntry{a, b})
		assert.Equal(t, []uuid.UUID{u2, u1}, ranks(ranked))
	})

	t.Run("then earlier joiner", func(t *testing.T) {
		a := entry(u1, 50)
		b := entry(u2, 50)
		a.JoinedAt = joined.Add(time.Hour)

		ranked := NewRanker(nil).Rank([]models.StandingsEntry{a, b})
		assert.Equal(t, []uuid.UUID{u2, u1}, ranks(ranked))
	})

	t.Run("then user id", func(t *testing.T) {
		ranked := NewRanker(nil).Rank([]models.StandingsEntry{entry(u3, 50), entry(u1, 50), entry(u2, 50)})
		assert.Equal(t, []uuid.UUID{u1, u2, u3}, ranks(ranked))
		assert.Equal(t, []int{1, 2, 3}, []int{ranked[0].Rank, ranked[1].Rank, ranked[2].Rank})
	})
}

func TestRank_CustomTieBreak(t *testing.T) {
	byNameDesc := func(a, b models.StandingsEntry) int {
		switch {
		case a.DisplayName > b.DisplayName:
			return -1
		case a.DisplayName < b.DisplayName:
			return 1
		}
		return 0
	}
	a := entry(u1, 10)
	a.DisplayName = "Ana"
	b := entry(u2, 10)
	b.DisplayName = "Zed"

	ranked := NewRanker(byNameDesc).Rank([]models.StandingsEntry{a, b})

	assert.Equal(t, []uuid.UUID{u2, u1}, ranks(ranked))
}
