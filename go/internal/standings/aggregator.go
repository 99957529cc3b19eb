// Package standings derives per-user league totals from the scoring ledger and ranks them.
//
// Compute is a pure function of its inputs: the same members, ownerships, week totals and
// cutoff always produce the same entries. Everything stateful (loading, caching, cross-instance
// invalidation) lives around it.
package standings

import (
	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/models"
)

// Ownership attributes a castaway's points to a user for some weeks.
type Ownership interface {
	Owner() uuid.UUID
	Castaway() uuid.UUID
	// Covers reports whether the castaway belongs to the owner in week.
	Covers(week int) bool
}

// DraftAssignment owns a castaway from week 1 onward.
type DraftAssignment struct {
	UserID     uuid.UUID
	CastawayID uuid.UUID
}

func (d DraftAssignment) Owner() uuid.UUID    { return d.UserID }
func (d DraftAssignment) Castaway() uuid.UUID { return d.CastawayID }
func (d DraftAssignment) Covers(week int) bool {
	return week >= 1
}

// WeeklyPick owns a castaway for exactly one week.
type WeeklyPick struct {
	UserID     uuid.UUID
	CastawayID uuid.UUID
	Week       int
}

func (w WeeklyPick) Owner() uuid.UUID    { return w.UserID }
func (w WeeklyPick) Castaway() uuid.UUID { return w.CastawayID }
func (w WeeklyPick) Covers(week int) bool {
	return week == w.Week
}

// Cutoff decides whether a castaway's points in a week may be attributed at all.
type Cutoff interface {
	Counts(castawayID uuid.UUID, week int) bool
}

// NoCutoff attributes every week.
type NoCutoff struct{}

func (NoCutoff) Counts(uuid.UUID, int) bool { return true }

// EliminationCutoff stops attributing a castaway's points after the week it was eliminated.
// The elimination week itself still counts. Castaways missing from the map are still playing.
type EliminationCutoff struct {
	EliminatedWeek map[uuid.UUID]int
}

func (c EliminationCutoff) Counts(castawayID uuid.UUID, week int) bool {
	last, eliminated := c.EliminatedWeek[castawayID]
	return !eliminated || week <= last
}

// CutoffFor returns the cutoff a league's policy asks for.
func CutoffFor(policy models.OwnershipCutoff, castaways []models.Castaway) Cutoff {
	if policy != models.OwnershipCutoffEliminationWeek {
		return NoCutoff{}
	}
	weeks := make(map[uuid.UUID]int)
	for _, c := range castaways {
		if c.Eliminated && c.EliminatedWeek != nil {
			weeks[c.ID] = *c.EliminatedWeek
		}
	}
	return EliminationCutoff{EliminatedWeek: weeks}
}

// Compute sums, for every member, the week totals of the castaways they own in that week.
// Members owning nothing, or owning castaways that never scored, get a total of 0. Ownerships
// of non-members are ignored. Entries come back in member order.
func Compute(members []models.Member, ownerships []Ownership, totals []models.CastawayWeekTotal, cutoff Cutoff) []models.StandingsEntry {
	if cutoff == nil {
		cutoff = NoCutoff{}
	}

	byCastaway := make(map[uuid.UUID][]models.CastawayWeekTotal)
	for _, t := range totals {
		byCastaway[t.CastawayID] = append(byCastaway[t.CastawayID], t)
	}

	weekly := make(map[uuid.UUID]map[int]int, len(members))
	for _, m := range members {
		weekly[m.UserID] = make(map[int]int)
	}
	for _, own := range ownerships {
		weeks, member := weekly[own.Owner()]
		if !member {
			continue
		}
		for _, t := range byCastaway[own.Castaway()] {
			if own.Covers(t.Week) && cutoff.Counts(t.CastawayID, t.Week) {
				weeks[t.Week] += t.Points
			}
		}
	}

	entries := make([]models.StandingsEntry, len(members))
	for i, m := range members {
		entry := models.StandingsEntry{
			UserID:      m.UserID,
			DisplayName: m.DisplayName,
			JoinedAt:    m.JoinedAt,
		}
		first := true
		for _, points := range weekly[m.UserID] {
			entry.Total += points
			if first || points > entry.BestEpisode {
				entry.BestEpisode = points
				first = false
			}
		}
		entries[i] = entry
	}
	return entries
}
