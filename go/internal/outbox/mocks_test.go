package outbox

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/mock"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) FetchUnsentByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error) {
	args := m.Called(ctx, id)

	var ev *OutboxEvent
	if args.Get(0) != nil {
		ev = args.Get(0).(*OutboxEvent)
	}
	return ev, args.Error(1)
}

func (m *mockStore) FetchUnsent(ctx context.Context, limit int) ([]OutboxEvent, error) {
	args := m.Called(ctx, limit)

	var evs []OutboxEvent
	if args.Get(0) != nil {
		evs = args.Get(0).([]OutboxEvent)
	}
	return evs, args.Error(1)
}

func (m *mockStore) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type fakeNotifier struct {
	ch     chan *pq.Notification
	closed bool
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{ch: make(chan *pq.Notification, 4)}
}

func (f *fakeNotifier) NotificationChannel() <-chan *pq.Notification { return f.ch }
func (f *fakeNotifier) Ping() error                                  { return nil }
func (f *fakeNotifier) Close() error                                 { f.closed = true; return nil }
