package standings

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/events"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingInvalidator struct {
	leagues []uuid.UUID
	seasons []uuid.UUID
}

func (r *recordingInvalidator) InvalidateLeague(id uuid.UUID) { r.leagues = append(r.leagues, id) }
func (r *recordingInvalidator) InvalidateSeason(id uuid.UUID) { r.seasons = append(r.seasons, id) }

type fakeMsg struct {
	jetstream.Msg
	data   []byte
	acked  bool
	termed bool
}

func (m *fakeMsg) Data() []byte    { return m.data }
func (m *fakeMsg) Subject() string { return "castaway.events.test" }
func (m *fakeMsg) Ack() error      { m.acked = true; return nil }
func (m *fakeMsg) Term() error     { m.termed = true; return nil }

func envelope(t *testing.T, typ events.Type, aggregateID uuid.UUID) []byte {
	t.Helper()
	data, err := json.Marshal(events.Envelope{
		EventID:     uuid.New(),
		EventType:   typ,
		AggregateID: aggregateID,
		Timestamp:   time.Now().UTC(),
		Payload:     json.RawMessage(`{}`),
	})
	require.NoError(t, err)
	return data
}

func TestInvalidator_Apply(t *testing.T) {
	leagueScoped := []events.Type{events.DraftCompleted, events.DraftReset, events.PickAssigned, events.MemberJoined, events.MemberLeft, events.WeeklyPickSubmitted}
	seasonScoped := []events.Type{events.ScoreRecorded, events.EpisodeFinalized, events.CastawayEliminated}

	for _, typ := range leagueScoped {
		t.Run(string(typ), func(t *testing.T) {
			rec := &recordingInvalidator{}
			id := uuid.New()
			require.NoError(t, NewInvalidator(nil, "S", "p", "test", rec).Apply(envelope(t, typ, id)))
			assert.Equal(t, []uuid.UUID{id}, rec.leagues)
			assert.Empty(t, rec.seasons)
		})
	}
	for _, typ := range seasonScoped {
		t.Run(string(typ), func(t *testing.T) {
			rec := &recordingInvalidator{}
			id := uuid.New()
			require.NoError(t, NewInvalidator(nil, "S", "p", "test", rec).Apply(envelope(t, typ, id)))
			assert.Equal(t, []uuid.UUID{id}, rec.seasons)
			assert.Empty(t, rec.leagues)
		})
	}
}

func TestInvalidator_Apply_RejectsBadEnvelopes(t *testing.T) {
	inv := NewInvalidator(nil, "S", "p", "test", &recordingInvalidator{})

	assert.Error(t, inv.Apply([]byte("not json")))
	assert.Error(t, inv.Apply(envelope(t, events.ScoreRecorded, uuid.Nil)))
}

func TestInvalidator_HandleMsg(t *testing.T) {
	rec := &recordingInvalidator{}
	inv := NewInvalidator(nil, "S", "p", "test", rec)

	ok := &fakeMsg{data: envelope(t, events.MemberJoined, uuid.New())}
	inv.handleMsg(ok)
	assert.True(t, ok.acked)
	assert.False(t, ok.termed)

	bad := &fakeMsg{data: []byte("{")}
	inv.handleMsg(bad)
	assert.True(t, bad.termed)
	assert.False(t, bad.acked)
	assert.Len(t, rec.leagues, 1)
}
