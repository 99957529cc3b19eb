package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = uuid.New()
	}
	return out
}

// sequenceSource replays recorded draws, wrapping each into range.
type sequenceSource struct {
	values []int
	next   int
}

func (s *sequenceSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func TestSnakeOrder(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	users := []uuid.UUID{a, b, c, d}

	assert.Equal(t, []uuid.UUID{a, b, c, d}, SnakeOrder(users, 0))
	assert.Equal(t, []uuid.UUID{d, c, b, a}, SnakeOrder(users, 1))
	assert.Equal(t, []uuid.UUID{a, b, c, d}, SnakeOrder(users, 2))
	assert.Equal(t, []uuid.UUID{a, b, c, d}, users, "base order must not be mutated")
}

func TestRunDraft_RankingRespected(t *testing.T) {
	user := uuid.New()
	pool := ids(5)
	x, y, z := pool[2], pool[0], pool[4]

	got, err := RunDraft(Input{
		Users:        []uuid.UUID{user},
		Castaways:    pool,
		Rankings:     map[uuid.UUID][]uuid.UUID{user: {x, y, z}},
		PicksPerUser: 1,
	}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Assignment{UserID: user, CastawayID: x, Round: 1, PickNumber: 1}, got[0])
}

func TestRunDraft_PartialRanking(t *testing.T) {
	user := uuid.New()
	pool := ids(10)
	ranked := []uuid.UUID{pool[7], pool[3], pool[9]}

	got, err := RunDraft(Input{
		Users:        []uuid.UUID{user},
		Castaways:    pool,
		Rankings:     map[uuid.UUID][]uuid.UUID{user: ranked},
		PicksPerUser: 3,
	}, NewSeededSource(1))
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, a := range got {
		assert.Equal(t, ranked[i], a.CastawayID)
		assert.Equal(t, i+1, a.Round)
	}
}

func TestRunDraft_ExhaustedRankingGetsNoFallback(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	pool := ids(4)

	got, err := RunDraft(Input{
		Users:     []uuid.UUID{first, second},
		Castaways: pool,
		Rankings: map[uuid.UUID][]uuid.UUID{
			first:  {pool[0], pool[1]},
			second: {pool[0]},
		},
		PicksPerUser: 2,
	}, NewSeededSource(1))
	require.NoError(t, err)

	// round 1: first takes pool[0], second has nothing left in its ranking.
	// round 2 (reversed): second still has nothing, first takes pool[1].
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0].UserID)
	assert.Equal(t, pool[0], got[0].CastawayID)
	assert.Equal(t, first, got[1].UserID)
	assert.Equal(t, pool[1], got[1].CastawayID)
	assert.Equal(t, 2, got[1].Round)
}

func TestRunDraft_SnakeAssignmentOrder(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	pool := ids(4)
	ranking := []uuid.UUID{pool[0], pool[1], pool[2], pool[3]}

	got, err := RunDraft(Input{
		Users:        []uuid.UUID{a, b},
		Castaways:    pool,
		Rankings:     map[uuid.UUID][]uuid.UUID{a: ranking, b: ranking},
		PicksPerUser: 2,
	}, nil)
	require.NoError(t, err)

	want := []Assignment{
		{UserID: a, CastawayID: pool[0], Round: 1, PickNumber: 1},
		{UserID: b, CastawayID: pool[1], Round: 1, PickNumber: 2},
		{UserID: b, CastawayID: pool[2], Round: 2, PickNumber: 3},
		{UserID: a, CastawayID: pool[3], Round: 2, PickNumber: 4},
	}
	assert.Equal(t, want, got)
}

func TestRunDraft_NoDuplicatesAndPickBound(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		users := ids(4)
		pool := ids(18)
		rankings := map[uuid.UUID][]uuid.UUID{
			users[0]: {pool[0], pool[1], pool[2]},
			users[2]: {pool[0], pool[5]},
		}

		got, err := RunDraft(Input{Users: users, Castaways: pool, Rankings: rankings, PicksPerUser: 4}, NewSeededSource(seed))
		require.NoError(t, err)

		seen := map[uuid.UUID]bool{}
		perUser := map[uuid.UUID]int{}
		for _, a := range got {
			require.False(t, seen[a.CastawayID], "castaway %s assigned twice (seed %d)", a.CastawayID, seed)
			seen[a.CastawayID] = true
			perUser[a.UserID]++
		}
		for _, u := range users {
			assert.LessOrEqual(t, perUser[u], 4)
		}
		// shuffled users rank the whole pool, so they always fill every round
		assert.Equal(t, 4, perUser[users[1]])
		assert.Equal(t, 4, perUser[users[3]])
	}
}

func TestRunDraft_StopsWhenPoolExhausted(t *testing.T) {
	users := ids(3)
	pool := ids(4)

	got, err := RunDraft(Input{Users: users, Castaways: pool, PicksPerUser: 5}, NewSeededSource(7))
	require.NoError(t, err)
	require.Len(t, got, 4)

	// the fourth pick falls in round 2, which runs in reverse order
	assert.Equal(t, users[2], got[3].UserID)
	assert.Equal(t, 2, got[3].Round)
}

func TestRunDraft_Deterministic(t *testing.T) {
	users := ids(5)
	pool := ids(20)
	in := Input{Users: users, Castaways: pool, PicksPerUser: 3}

	first, err := RunDraft(in, NewSeededSource(99))
	require.NoError(t, err)
	second, err := RunDraft(in, NewSeededSource(99))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	recorded := []int{3, 1, 4, 1, 5, 9, 2, 6}
	r1, err := RunDraft(in, &sequenceSource{values: recorded})
	require.NoError(t, err)
	r2, err := RunDraft(in, &sequenceSource{values: recorded})
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestRunDraft_EmptyInputs(t *testing.T) {
	got, err := RunDraft(Input{Users: nil, Castaways: ids(3), PicksPerUser: 2}, NewSeededSource(1))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	got, err = RunDraft(Input{Users: ids(3), Castaways: nil, PicksPerUser: 2}, NewSeededSource(1))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = RunDraft(Input{Users: ids(3), Castaways: ids(3), PicksPerUser: 0}, NewSeededSource(1))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRunDraft_RejectsBadInput(t *testing.T) {
	dup := uuid.New()
	tests := []struct {
		name  string
		in    Input
		field string
	}{
		{"negative picks", Input{Users: ids(2), Castaways: ids(2), PicksPerUser: -1}, "picks_per_user"},
		{"duplicate user", Input{Users: []uuid.UUID{dup, dup}, Castaways: ids(2), PicksPerUser: 1}, "users"},
		{"duplicate castaway", Input{Users: ids(2), Castaways: []uuid.UUID{dup, dup}, PicksPerUser: 1}, "castaways"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RunDraft(tc.in, NewSeededSource(1))
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tc.field, apperrors.FieldOf(err))
		})
	}
}

func TestRunDraft_MissingRandomSource(t *testing.T) {
	_, err := RunDraft(Input{Users: ids(1), Castaways: ids(2), PicksPerUser: 1}, nil)
	require.Error(t, err)
	assert.Equal(t, "random_source", apperrors.FieldOf(err))
}
