package scoring_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/draft"
	"github.com/mcdev12/castaway/go/internal/membership"
	"github.com/mcdev12/castaway/go/internal/models"
	"github.com/mcdev12/castaway/go/internal/scoring"
	"github.com/mcdev12/castaway/go/internal/standings"
	"github.com/mcdev12/castaway/go/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerEnv struct {
	scoring   *scoring.App
	standings *standings.App
	league    uuid.UUID
	u1, u2    uuid.UUID
	c1, c2    uuid.UUID
	episode   uuid.UUID
	immunity  uuid.UUID
	idol      uuid.UUID
}

// newLedgerEnv builds a two-member league where u1 drafted c1 and u2 drafted c2.
func newLedgerEnv(t *testing.T) *ledgerEnv {
	t.Helper()
	pool := testutil.Postgres(t)
	fx := testutil.NewFixtures(t, pool)
	ctx := context.Background()
	clock := clockwork.NewRealClock()
	q := db.New(pool)

	cache := standings.NewCache(clock, time.Hour)
	standingsApp := standings.NewApp(standings.NewRepository(q, pool), nil, cache)
	members := membership.NewApp(membership.NewRepository(q, pool), clock, standingsApp)
	drafts := draft.NewApp(draft.NewRepository(q, pool), clock, nil, standingsApp)

	season := fx.Season()
	env := &ledgerEnv{
		scoring:   scoring.NewApp(scoring.NewRepository(q, pool), clock, standingsApp),
		standings: standingsApp,
		league:    fx.League(season, 4, 1, models.ScoringModeDraft),
		u1:        fx.User(),
		u2:        fx.User(),
		c1:        fx.Castaway(season),
		c2:        fx.Castaway(season),
		episode:   fx.Episode(season, 1),
		immunity:  fx.Rule(10),
		idol:      fx.Rule(25),
	}

	for _, u := range []uuid.UUID{env.u1, env.u2} {
		_, err := members.JoinLeague(ctx, env.league, u, "")
		require.NoError(t, err)
	}
	_, err := drafts.ManualAssign(ctx, env.league, env.u1, env.c1, 1)
	require.NoError(t, err)
	_, err = drafts.ManualAssign(ctx, env.league, env.u2, env.c2, 1)
	require.NoError(t, err)
	return env
}

func (e *ledgerEnv) totals(t *testing.T) map[uuid.UUID]int {
	t.Helper()
	ranked, err := e.standings.GetStandings(context.Background(), e.league)
	require.NoError(t, err)
	out := make(map[uuid.UUID]int, len(ranked))
	for _, r := range ranked {
		out[r.UserID] = r.Total
	}
	return out
}

func TestRecordEpisodeScore_IsIdempotent(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	for range 3 {
		_, err := env.scoring.RecordEpisodeScore(ctx, env.episode, env.c1, env.immunity, 1)
		require.NoError(t, err)
	}

	total, err := env.scoring.GetEpisodeTotal(ctx, env.episode, env.c1)
	require.NoError(t, err)
	assert.Equal(t, 10, total)

	rows, err := env.scoring.ListEpisodeScores(ctx, env.episode)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRecordEpisodeScore_CorrectionPropagatesToStandings(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	_, err := env.scoring.RecordEpisodeScore(ctx, env.episode, env.c1, env.immunity, 1)
	require.NoError(t, err)
	_, err = env.scoring.RecordEpisodeScore(ctx, env.episode, env.c1, env.idol, 1)
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int{env.u1: 35, env.u2: 0}, env.totals(t))

	// correction: the idol was found by c2, not c1
	res, err := env.scoring.RecordEpisodeScore(ctx, env.episode, env.c1, env.idol, 0)
	require.NoError(t, err)
	assert.True(t, res.Deleted)
	_, err = env.scoring.RecordEpisodeScore(ctx, env.episode, env.c2, env.idol, 1)
	require.NoError(t, err)

	assert.Equal(t, map[uuid.UUID]int{env.u1: 10, env.u2: 25}, env.totals(t))

	ranked, err := env.standings.GetStandings(ctx, env.league)
	require.NoError(t, err)
	assert.Equal(t, env.u2, ranked[0].UserID)
	assert.Equal(t, 1, ranked[0].Rank)
}

func TestFinalizeEpisode_LocksScoring(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	_, err := env.scoring.RecordEpisodeScore(ctx, env.episode, env.c1, env.immunity, 2)
	require.NoError(t, err)

	ep, err := env.scoring.FinalizeEpisode(ctx, env.episode)
	require.NoError(t, err)
	assert.True(t, ep.IsFinalized())

	_, err = env.scoring.RecordEpisodeScore(ctx, env.episode, env.c1, env.immunity, 3)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	_, err = env.scoring.FinalizeEpisode(ctx, env.episode)
	assert.True(t, apperrors.IsConflict(err))

	total, err := env.scoring.GetEpisodeTotal(ctx, env.episode, env.c1)
	require.NoError(t, err)
	assert.Equal(t, 20, total)
}
