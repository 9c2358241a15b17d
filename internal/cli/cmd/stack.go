package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/uibridge/internal/application/usecase"
	"github.com/bnema/uibridge/internal/bridge"
	"github.com/bnema/uibridge/internal/cli"
	"github.com/bnema/uibridge/internal/infrastructure/metrics"
	"github.com/bnema/uibridge/internal/logging"
	"github.com/bnema/uibridge/internal/runtime/counter"
	"github.com/bnema/uibridge/internal/runtime/script"
)

// bridgeStack is the runtime side shared by run and replay.
type bridgeStack struct {
	Factory  *bridge.Factory
	Counter  *counter.Document
	Script   *script.Runtime
	Recorder *metrics.Recorder
}

type stackOptions struct {
	scriptPath string
	metrics    bool
	noJournal  bool
}

// newBridgeStack registers the counter document and the optional script on
// one router and builds the factory around it. Script handlers replace
// counter handlers of the same name.
func newBridgeStack(ctx context.Context, app *cli.App, opts stackOptions) (*bridgeStack, error) {
	cfg := app.Config
	log := logging.FromContext(ctx)

	router := bridge.NewRouter()
	doc := counter.New()
	if err := doc.Register(router); err != nil {
		return nil, fmt.Errorf("register counter handlers: %w", err)
	}

	stack := &bridgeStack{Counter: doc}

	scriptPath := opts.scriptPath
	if scriptPath == "" {
		scriptPath = cfg.Script.Path
	}
	if scriptPath != "" {
		rt, err := script.Load(ctx, scriptPath)
		if err != nil {
			return nil, err
		}
		for _, name := range rt.Events() {
			router.Unregister(name)
		}
		if err := rt.Register(router); err != nil {
			return nil, fmt.Errorf("register script handlers: %w", err)
		}
		stack.Script = rt
		log.Info().Str("script", scriptPath).Strs("events", rt.Events()).Msg("script loaded")
	}

	factoryOpts := []bridge.FactoryOption{
		bridge.WithRouter(router),
		bridge.WithEventLogLimit(cfg.Bridge.EventLogLimit),
		bridge.WithOnClose(doc.Forget),
	}

	if opts.metrics && cfg.Metrics.Enabled {
		stack.Recorder = metrics.NewRecorder()
		factoryOpts = append(factoryOpts, bridge.WithMetrics(stack.Recorder))
	}

	if cfg.Journal.Enabled && !opts.noJournal {
		if err := app.EnsureJournalDir(); err != nil {
			return nil, err
		}
		journal := app.Journal()
		out, err := usecase.NewPruneJournalUseCase(journal).Execute(ctx, usecase.PruneJournalInput{
			RetentionDays: cfg.Journal.RetentionDays,
		})
		if err != nil {
			return nil, err
		}
		log.Debug().Int64("pruned", out.Deleted).Str("path", cfg.Journal.Path).Msg("journal ready")
		factoryOpts = append(factoryOpts, bridge.WithJournal(journal))
	}

	stack.Factory = bridge.NewFactory(factoryOpts...)
	return stack, nil
}
