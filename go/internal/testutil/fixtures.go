package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/models"
)

// Fixtures inserts rows straight through sqlc, bypassing the domain apps.
type Fixtures struct {
	t *testing.T
	Q *db.Queries
	n int
}

func NewFixtures(t *testing.T, pool *pgxpool.Pool) *Fixtures {
	return &Fixtures{t: t, Q: db.New(pool)}
}

func (f *Fixtures) name(prefix string) string {
	f.n++
	return fmt.Sprintf("%s %d", prefix, f.n)
}

func (f *Fixtures) must(err error, what string) {
	f.t.Helper()
	if err != nil {
		f.t.Fatalf("fixture %s: %v", what, err)
	}
}

func (f *Fixtures) Season() uuid.UUID {
	f.t.Helper()
	s, err := f.Q.UpsertSeason(context.Background(), f.name("Season"))
	f.must(err, "season")
	return s.ID
}

func (f *Fixtures) User() uuid.UUID {
	f.t.Helper()
	u, err := f.Q.CreateUser(context.Background(), f.name("Player"))
	f.must(err, "user")
	return u.ID
}

// League creates a league with no members. picksPerUser and mode apply to drafting.
func (f *Fixtures) League(seasonID uuid.UUID, maxPlayers, picksPerUser int, mode models.ScoringMode) uuid.UUID {
	f.t.Helper()
	l, err := f.Q.CreateLeague(context.Background(), db.CreateLeagueParams{
		Name:            f.name("League"),
		SeasonID:        seasonID,
		MaxPlayers:      int32(maxPlayers),
		PicksPerUser:    int32(picksPerUser),
		ScoringMode:     string(mode),
		OwnershipCutoff: string(models.OwnershipCutoffNone),
	})
	f.must(err, "league")
	return l.ID
}

func (f *Fixtures) Castaway(seasonID uuid.UUID) uuid.UUID {
	f.t.Helper()
	c, err := f.Q.UpsertCastaway(context.Background(), db.UpsertCastawayParams{
		SeasonID: seasonID,
		Name:     f.name("Castaway"),
	})
	f.must(err, "castaway")
	return c.ID
}

func (f *Fixtures) Episode(seasonID uuid.UUID, week int) uuid.UUID {
	f.t.Helper()
	e, err := f.Q.UpsertEpisode(context.Background(), db.UpsertEpisodeParams{
		SeasonID: seasonID,
		Week:     int32(week),
		Title:    fmt.Sprintf("Week %d", week),
	})
	f.must(err, "episode")
	return e.ID
}

func (f *Fixtures) Rule(points int) uuid.UUID {
	f.t.Helper()
	r, err := f.Q.UpsertScoringRule(context.Background(), db.UpsertScoringRuleParams{
		Code:       fmt.Sprintf("RULE_%d", f.n+1),
		Points:     int32(points),
		Category:   string(models.RuleCategoryChallenge),
		IsNegative: points < 0,
	})
	f.n++
	f.must(err, "rule")
	return r.ID
}
