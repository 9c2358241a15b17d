package entity_test

import (
	"testing"
	"time"

	"github.com/bnema/uibridge/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type windowClass struct{}
type viewClass struct{}
type viewModelClass struct{}

func TestSessionID_Short(t *testing.T) {
	assert.Equal(t, "a7b3", entity.SessionID("20251217_205106_a7b3").Short())
	assert.Equal(t, "abc", entity.SessionID("abc").Short())
}

func TestHandle_IsZero(t *testing.T) {
	assert.True(t, entity.Handle{}.IsZero())
	assert.False(t, entity.Handle{Index: 0, Generation: 1}.IsZero())
	assert.Equal(t, "3#2", entity.Handle{Index: 3, Generation: 2}.String())
}

func TestDescriptors_Validate(t *testing.T) {
	valid := entity.Descriptors{Window: windowClass{}, View: viewClass{}, ViewModel: viewModelClass{}}
	require.NoError(t, valid.Validate())

	missingView := entity.Descriptors{Window: windowClass{}, ViewModel: viewModelClass{}}
	err := missingView.Validate()
	require.ErrorIs(t, err, entity.ErrNilDescriptor)
	assert.Contains(t, err.Error(), "view class")

	require.ErrorIs(t, entity.Descriptors{}.Validate(), entity.ErrNilDescriptor)
}

func TestDescriptorLabel(t *testing.T) {
	assert.Equal(t, "entity_test.windowClass", entity.DescriptorLabel(windowClass{}))
	assert.Equal(t, "<nil>", entity.DescriptorLabel(nil))
}

func TestForwarderState_String(t *testing.T) {
	assert.Equal(t, "bound", entity.ForwarderBound.String())
	assert.Equal(t, "detached", entity.ForwarderDetached.String())
}

func TestBootstrapActions_ThreadDescriptorsThrough(t *testing.T) {
	d := entity.Descriptors{Window: windowClass{}, View: viewClass{}, ViewModel: viewModelClass{}}

	actions := entity.BootstrapActions(d)
	require.Len(t, actions, 4)
	assert.Equal(t, entity.ActionCreateWindow, actions[0].Kind)
	assert.Equal(t, windowClass{}, actions[0].Class)
	assert.Equal(t, entity.ActionCreateView, actions[1].Kind)
	assert.Equal(t, viewClass{}, actions[1].Class)
	assert.Equal(t, viewModelClass{}, actions[1].Model)
	assert.Equal(t, entity.ActionSetRootView, actions[2].Kind)
	assert.Equal(t, entity.ActionOpenWindow, actions[3].Kind)
}

func TestNewJournalRecord_NormalizesTime(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	ev := entity.Event{Seq: 7, Name: "save.clicked", ReceivedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, loc)}

	rec := entity.NewJournalRecord("20260102_030405_beef", ev)
	assert.Equal(t, uint64(7), rec.Seq)
	assert.Equal(t, time.UTC, rec.ReceivedAt.Location())
	assert.Empty(t, rec.ID)
}
