package counter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uibridge/internal/bridge"
	"github.com/bnema/uibridge/internal/domain/entity"
	"github.com/bnema/uibridge/internal/logging"
	"github.com/bnema/uibridge/internal/runtime/counter"
)

type descriptor struct{}

type stateSink struct {
	mu    sync.Mutex
	state map[string]string
}

func (s *stateSink) Apply(_ context.Context, action entity.Action) {
	if action.Kind != entity.ActionSetState {
		return
	}
	s.mu.Lock()
	s.state[action.Key] = action.Value
	s.mu.Unlock()
}

func (s *stateSink) get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state[key]
}

func setup(t *testing.T) (*counter.Document, *bridge.Factory) {
	t.Helper()
	doc := counter.New()
	f := bridge.NewFactory(bridge.WithOnClose(doc.Forget))
	require.NoError(t, doc.Register(f.Router()))
	return doc, f
}

func open(t *testing.T, f *bridge.Factory) (*bridge.Session, *stateSink) {
	t.Helper()
	sink := &stateSink{state: make(map[string]string)}
	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
	s := f.CreateSession(ctx, descriptor{}, descriptor{}, descriptor{}, bridge.WithActionSink(sink))
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s, sink
}

func flush(t *testing.T, s *bridge.Session) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Flush(ctx))
}

func TestDocument_CountsAndSaves(t *testing.T) {
	doc, f := setup(t)
	s, sink := open(t, f)
	fwd := s.Forwarder()

	fwd.SendEvent(counter.EventIncrement)
	fwd.SendEvent(counter.EventIncrement)
	fwd.SendEvent(counter.EventIncrement)
	fwd.SendEvent(counter.EventDecrement)
	flush(t, s)

	snap, ok := doc.Snapshot(s.ID())
	require.True(t, ok)
	assert.Equal(t, counter.Snapshot{Value: 2, Dirty: true}, snap)
	assert.Equal(t, "2", sink.get(counter.KeyCount))
	assert.Equal(t, "true", sink.get(counter.KeyDirty))

	fwd.SendEvent(counter.EventSave)
	flush(t, s)

	snap, _ = doc.Snapshot(s.ID())
	assert.Equal(t, counter.Snapshot{Value: 2, Dirty: false, Saves: 1}, snap)
	assert.Equal(t, "false", sink.get(counter.KeyDirty))
	assert.Equal(t, "saved 2 (#1)", sink.get(counter.KeyStatus))

	fwd.SendEvent(counter.EventSave)
	flush(t, s)
	snap, _ = doc.Snapshot(s.ID())
	assert.Equal(t, 1, snap.Saves, "saving a clean document is not a new save")
}

func TestDocument_ResetAndClose(t *testing.T) {
	doc, f := setup(t)
	s, sink := open(t, f)
	fwd := s.Forwarder()

	fwd.SendEvent(counter.EventReset)
	flush(t, s)
	snap, _ := doc.Snapshot(s.ID())
	assert.False(t, snap.Dirty, "resetting zero changes nothing")

	fwd.SendEvent(counter.EventIncrement)
	fwd.SendEvent(counter.EventReset)
	fwd.SendEvent(counter.EventClose)
	flush(t, s)

	snap, _ = doc.Snapshot(s.ID())
	assert.Equal(t, 0, snap.Value)
	assert.True(t, snap.Dirty)
	assert.Equal(t, "0", sink.get(counter.KeyCount))
	assert.Equal(t, "closed with unsaved changes", sink.get(counter.KeyStatus))
}

func TestDocument_SessionsAreIndependent(t *testing.T) {
	doc, f := setup(t)
	a, _ := open(t, f)
	b, _ := open(t, f)

	a.Forwarder().SendEvent(counter.EventIncrement)
	b.Forwarder().SendEvent(counter.EventDecrement)
	b.Forwarder().SendEvent(counter.EventDecrement)
	flush(t, a)
	flush(t, b)

	snapA, _ := doc.Snapshot(a.ID())
	snapB, _ := doc.Snapshot(b.ID())
	assert.Equal(t, 1, snapA.Value)
	assert.Equal(t, -2, snapB.Value)
}

func TestDocument_SessionsAreIndependentUnderFixedClock(t *testing.T) {
	doc := counter.New()
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	f := bridge.NewFactory(bridge.WithOnClose(doc.Forget), bridge.WithClock(func() time.Time { return fixed }))
	require.NoError(t, doc.Register(f.Router()))

	sessions := make([]*bridge.Session, 50)
	for i := range sessions {
		sessions[i], _ = open(t, f)
	}
	sessions[0].Forwarder().SendEvent(counter.EventIncrement)
	for _, s := range sessions {
		flush(t, s)
	}

	snap, _ := doc.Snapshot(sessions[0].ID())
	assert.Equal(t, 1, snap.Value)
	for _, s := range sessions[1:] {
		require.NotEqual(t, sessions[0].ID(), s.ID())
		other, _ := doc.Snapshot(s.ID())
		assert.Equal(t, 0, other.Value)
	}
}

func TestDocument_ForgetsClosedSessions(t *testing.T) {
	doc, f := setup(t)
	s, _ := open(t, f)

	s.Forwarder().SendEvent(counter.EventIncrement)
	require.NoError(t, s.Close(context.Background()))

	_, ok := doc.Snapshot(s.ID())
	assert.False(t, ok)
}

func TestDocument_RegisterTwiceFails(t *testing.T) {
	doc := counter.New()
	r := bridge.NewRouter()
	require.NoError(t, doc.Register(r))

	err := doc.Register(r)
	require.ErrorIs(t, err, entity.ErrHandlerExists)
	assert.Len(t, r.Names(), 5)
}
