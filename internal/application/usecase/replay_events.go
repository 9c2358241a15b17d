package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/uibridge/internal/application/port"
	"github.com/bnema/uibridge/internal/bridge"
	"github.com/bnema/uibridge/internal/domain/entity"
	"github.com/bnema/uibridge/internal/logging"
)

// ReplayEventsUseCase feeds a scripted list of events through a fresh
// session, the same way a window would.
type ReplayEventsUseCase struct {
	factory *bridge.Factory
}

// NewReplayEventsUseCase creates a new ReplayEventsUseCase.
func NewReplayEventsUseCase(factory *bridge.Factory) *ReplayEventsUseCase {
	return &ReplayEventsUseCase{factory: factory}
}

// ReplayEventsInput contains the window to emulate and the events to send.
type ReplayEventsInput struct {
	Window    entity.ClassDescriptor
	View      entity.ClassDescriptor
	ViewModel entity.ClassDescriptor

	// Events are sent in order. Blank lines and lines starting with '#'
	// are skipped.
	Events []string

	// Sink receives the session's actions. Optional.
	Sink port.ActionSink
}

// ReplayEventsOutput contains the replay results.
type ReplayEventsOutput struct {
	SessionID entity.SessionID
	Sent      int
	Events    []entity.Event
	Info      entity.SessionInfo
}

// Execute creates the session, sends every event, then closes the session
// once all of them were handled.
func (uc *ReplayEventsUseCase) Execute(ctx context.Context, input ReplayEventsInput) (*ReplayEventsOutput, error) {
	if input.Window == nil || input.View == nil || input.ViewModel == nil {
		return nil, errors.New("replay needs window, view and view model descriptors")
	}

	var opts []bridge.SessionOption
	if input.Sink != nil {
		opts = append(opts, bridge.WithActionSink(input.Sink))
	}
	session := uc.factory.CreateSession(ctx, input.Window, input.View, input.ViewModel, opts...)
	forwarder := session.Forwarder()

	sent := 0
	for _, line := range input.Events {
		name := strings.TrimSpace(line)
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		forwarder.SendEvent(name)
		sent++
	}

	if err := session.Close(ctx); err != nil {
		return nil, fmt.Errorf("close replay session %s: %w", session.ID(), err)
	}

	logging.FromContext(ctx).Debug().
		Str("session_id", string(session.ID())).
		Int("sent", sent).
		Msg("replay finished")

	return &ReplayEventsOutput{
		SessionID: session.ID(),
		Sent:      sent,
		Events:    session.Events(),
		Info:      session.Info(),
	}, nil
}
