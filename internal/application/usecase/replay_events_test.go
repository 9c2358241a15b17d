package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uibridge/internal/application/port"
	"github.com/bnema/uibridge/internal/bridge"
	"github.com/bnema/uibridge/internal/domain/entity"
)

type replayClass struct{ name string }

func TestReplayEventsUseCase_DeliversInOrder(t *testing.T) {
	ctx := testContext()

	router := bridge.NewRouter()
	require.NoError(t, router.RegisterFunc("ping", func(_ context.Context, ev entity.Event, out port.ActionEmitter) error {
		out.Emit(entity.SetState("last", string(ev.Name)))
		return nil
	}))
	factory := bridge.NewFactory(bridge.WithRouter(router))

	var (
		mu      sync.Mutex
		actions []entity.Action
	)
	sink := port.ActionSinkFunc(func(_ context.Context, a entity.Action) {
		mu.Lock()
		defer mu.Unlock()
		actions = append(actions, a)
	})

	out, err := NewReplayEventsUseCase(factory).Execute(ctx, ReplayEventsInput{
		Window:    replayClass{"window"},
		View:      replayClass{"view"},
		ViewModel: replayClass{"model"},
		Events:    []string{"ping", "", "# comment", "  unknown  ", "ping"},
		Sink:      sink,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, out.Sent)
	require.Len(t, out.Events, 3)
	assert.Equal(t, entity.EventName("ping"), out.Events[0].Name)
	assert.Equal(t, entity.EventName("unknown"), out.Events[1].Name)
	assert.Equal(t, uint64(3), out.Events[2].Seq)
	assert.Equal(t, uint64(3), out.Info.Delivered)
	assert.Zero(t, factory.Len())

	mu.Lock()
	defer mu.Unlock()
	var kinds []entity.ActionKind
	for _, a := range actions {
		kinds = append(kinds, a.Kind)
	}
	assert.Equal(t, []entity.ActionKind{
		entity.ActionCreateWindow,
		entity.ActionCreateView,
		entity.ActionSetRootView,
		entity.ActionOpenWindow,
		entity.ActionSetState,
		entity.ActionSetState,
		entity.ActionCloseWindow,
	}, kinds)
}

func TestReplayEventsUseCase_RequiresDescriptors(t *testing.T) {
	_, err := NewReplayEventsUseCase(bridge.NewFactory()).Execute(testContext(), ReplayEventsInput{
		Window: replayClass{"window"},
	})
	assert.Error(t, err)
}
