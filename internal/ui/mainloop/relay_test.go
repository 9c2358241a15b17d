package mainloop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uibridge/internal/domain/entity"
)

type fakeLoop struct {
	queue []func()
}

func (l *fakeLoop) post(fn func()) { l.queue = append(l.queue, fn) }

func (l *fakeLoop) runAll() {
	for len(l.queue) > 0 {
		fn := l.queue[0]
		l.queue = l.queue[1:]
		fn()
	}
}

func TestRelay_PreservesStructuralOrder(t *testing.T) {
	loop := &fakeLoop{}
	var applied []entity.ActionKind
	r := NewRelay(loop.post, func(a entity.Action) { applied = append(applied, a.Kind) })

	for _, a := range entity.BootstrapActions(entity.Descriptors{Window: 1, View: 2, ViewModel: 3}) {
		r.Apply(context.Background(), a)
	}
	require.Empty(t, applied, "nothing may run off the main loop")

	loop.runAll()
	assert.Equal(t, []entity.ActionKind{
		entity.ActionCreateWindow,
		entity.ActionCreateView,
		entity.ActionSetRootView,
		entity.ActionOpenWindow,
	}, applied)
}

func TestRelay_CoalescesStateByKey(t *testing.T) {
	loop := &fakeLoop{}
	state := map[string]string{}
	calls := 0
	r := NewRelay(loop.post, func(a entity.Action) {
		calls++
		state[a.Key] = a.Value
	})

	for _, v := range []string{"1", "2", "3"} {
		r.Apply(context.Background(), entity.SetState("counter", v))
	}
	r.Apply(context.Background(), entity.SetState("status", "saved"))
	loop.runAll()

	assert.Equal(t, 2, calls)
	assert.Equal(t, uint64(2), r.Coalesced())
	assert.Equal(t, map[string]string{"counter": "3", "status": "saved"}, state)
}

func TestRelay_StateDoesNotOvertakeStructuralActions(t *testing.T) {
	loop := &fakeLoop{}
	var applied []string
	r := NewRelay(loop.post, func(a entity.Action) {
		if a.Kind == entity.ActionSetState {
			applied = append(applied, a.Key+"="+a.Value)
			return
		}
		applied = append(applied, string(a.Kind))
	})

	r.Apply(context.Background(), entity.SetState("status", "v1"))
	r.Apply(context.Background(), entity.Action{Kind: entity.ActionCloseWindow})
	r.Apply(context.Background(), entity.SetState("status", "v2"))
	r.Apply(context.Background(), entity.SetState("status", "v3"))
	loop.runAll()

	assert.Equal(t, []string{"status=v1", string(entity.ActionCloseWindow), "status=v3"}, applied)
	assert.Equal(t, uint64(1), r.Coalesced())
}

func TestRelay_DestroyDropsQueuedActions(t *testing.T) {
	loop := &fakeLoop{}
	calls := 0
	r := NewRelay(loop.post, func(entity.Action) { calls++ })

	r.Apply(context.Background(), entity.Action{Kind: entity.ActionOpenWindow})
	r.Apply(context.Background(), entity.SetState("k", "v"))
	r.Destroy()
	r.Apply(context.Background(), entity.Action{Kind: entity.ActionCloseWindow})
	loop.runAll()

	assert.Zero(t, calls)
}
