package standings

import (
	"bytes"
	"cmp"
	"slices"

	"github.com/mcdev12/castaway/go/internal/models"
)

// TieBreak orders two entries with equal totals. It returns a negative number when a ranks
// ahead of b, like cmp.Compare.
type TieBreak func(a, b models.StandingsEntry) int

// DefaultTieBreak puts the higher best single-episode score first, then the earlier joiner,
// then the lower user id. It never returns 0 for distinct users, so rankings are fully
// deterministic.
func DefaultTieBreak(a, b models.StandingsEntry) int {
	if c := cmp.Compare(b.BestEpisode, a.BestEpisode); c != 0 {
		return c
	}
	if c := a.JoinedAt.Compare(b.JoinedAt); c != 0 {
		return c
	}
	return bytes.Compare(a.UserID[:], b.UserID[:])
}

// Ranker sorts standings into a leaderboard.
type Ranker struct {
	tieBreak TieBreak
}

// NewRanker creates a Ranker. A nil tieBreak uses DefaultTieBreak.
func NewRanker(tieBreak TieBreak) *Ranker {
	if tieBreak == nil {
		tieBreak = DefaultTieBreak
	}
	return &Ranker{tieBreak: tieBreak}
}

// Rank sorts by total descending, breaking ties with the ranker's TieBreak, and numbers the
// result 1..n by position. Equal totals still get distinct ranks. The input is not modified.
func (r *Ranker) Rank(entries []models.StandingsEntry) []models.RankedEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b models.StandingsEntry) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return r.tieBreak(a, b)
	})

	ranked := make([]models.RankedEntry, len(sorted))
	for i, e := range sorted {
		ranked[i] = models.RankedEntry{StandingsEntry: e, Rank: i + 1}
	}
	return ranked
}
