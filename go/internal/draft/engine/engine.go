// Package engine allocates castaways to users with a snake draft.
//
// The engine is pure: given the same users, pool, rankings and random sequence it
// produces the same assignments in the same order. It performs no I/O.
package engine

import (
	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/apperrors"
)

// Input is everything a draft run needs.
type Input struct {
	// Users in base pick order. Round index 0 picks in this order.
	Users []uuid.UUID

	// Castaways is the full draftable pool.
	Castaways []uuid.UUID

	// Rankings maps a user to their preferred castaways, best first.
	// Missing or empty rankings are replaced by a shuffle of the pool.
	Rankings map[uuid.UUID][]uuid.UUID

	PicksPerUser int
}

// Assignment is one castaway handed to one user.
type Assignment struct {
	UserID     uuid.UUID `json:"user_id"`
	CastawayID uuid.UUID `json:"castaway_id"`
	Round      int       `json:"round"`       // 1-based
	PickNumber int       `json:"pick_number"` // 1-based position in the draft
}

// RunDraft runs a snake draft over in.
//
// Each user takes the highest-ranked castaway still available. A user whose ranking has
// no available castaway left gets no pick that round. The draft stops as soon as the pool
// is empty.
func RunDraft(in Input, rng RandomSource) ([]Assignment, error) {
	if in.PicksPerUser < 0 {
		return nil, apperrors.Validation("picks_per_user", "must not be negative, got %d", in.PicksPerUser)
	}
	if err := checkUnique("users", in.Users); err != nil {
		return nil, err
	}
	if err := checkUnique("castaways", in.Castaways); err != nil {
		return nil, err
	}

	assignments := []Assignment{}
	if len(in.Users) == 0 || len(in.Castaways) == 0 || in.PicksPerUser == 0 {
		return assignments, nil
	}

	rankings, err := resolveRankings(in, rng)
	if err != nil {
		return nil, err
	}

	available := make(map[uuid.UUID]struct{}, len(in.Castaways))
	for _, id := range in.Castaways {
		available[id] = struct{}{}
	}

	for roundIdx := 0; roundIdx < in.PicksPerUser; roundIdx++ {
		for _, userID := range SnakeOrder(in.Users, roundIdx) {
			if len(available) == 0 {
				return assignments, nil
			}
			castawayID, ok := bestAvailable(rankings[userID], available)
			if !ok {
				continue
			}
			delete(available, castawayID)
			assignments = append(assignments, Assignment{
				UserID:     userID,
				CastawayID: castawayID,
				Round:      roundIdx + 1,
				PickNumber: len(assignments) + 1,
			})
		}
		if len(available) == 0 {
			break
		}
	}

	return assignments, nil
}

// SnakeOrder returns the pick order for a 0-based round index: even rounds use the base
// order, odd rounds reverse it.
func SnakeOrder(users []uuid.UUID, roundIdx int) []uuid.UUID {
	order := make([]uuid.UUID, len(users))
	if roundIdx%2 == 0 {
		copy(order, users)
		return order
	}
	for i, id := range users {
		order[len(users)-1-i] = id
	}
	return order
}

// resolveRankings returns a ranking for every user, shuffling the pool for users without one.
// Shuffles are drawn in base user order so a fixed seed reproduces the same draft.
func resolveRankings(in Input, rng RandomSource) (map[uuid.UUID][]uuid.UUID, error) {
	resolved := make(map[uuid.UUID][]uuid.UUID, len(in.Users))
	for _, userID := range in.Users {
		if ranking := in.Rankings[userID]; len(ranking) > 0 {
			resolved[userID] = ranking
			continue
		}
		if rng == nil {
			return nil, apperrors.Validation("random_source", "required when user %s has no ranking", userID)
		}
		resolved[userID] = Shuffle(in.Castaways, rng)
	}
	return resolved, nil
}

func bestAvailable(ranking []uuid.UUID, available map[uuid.UUID]struct{}) (uuid.UUID, bool) {
	for _, id := range ranking {
		if _, ok := available[id]; ok {
			return id, true
		}
	}
	return uuid.Nil, false
}

func checkUnique(field string, ids []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return apperrors.Validation(field, "duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
