package app

import (
	"context"
	"fmt"
	"log/slog"

	"FakeNewsTrainer/internal/config"
	"FakeNewsTrainer/internal/infrastructure/artifact"
	"FakeNewsTrainer/internal/infrastructure/dataset"
	"FakeNewsTrainer/internal/infrastructure/history"
	"FakeNewsTrainer/internal/logging"
	"FakeNewsTrainer/internal/ports"
	"FakeNewsTrainer/internal/textproc"
	"FakeNewsTrainer/internal/usecase"
)

// Application wires configs to the training use case.
type Application struct {
	cfg     config.Config
	trainer *usecase.Trainer
	closers []func() error
}

// New builds a runnable application instance. Loading the linguistic
// resources happens once here, before any stage runs.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	resources, err := textproc.LoadResources()
	if err != nil {
		return nil, fmt.Errorf("load linguistic resources: %w", err)
	}
	normalizer := textproc.NewNormalizer(resources)

	loader := dataset.NewLoader(cfg.Dataset.URL, cfg.Dataset.CacheDir, nil,
		baseLogger.With("component", "dataset"))
	store := artifact.NewStore(cfg.Output.Dir)

	app := &Application{cfg: cfg}

	var recorder ports.RunRecorder
	if cfg.History.Path != "" {
		sqlite, err := history.NewSQLiteRecorder(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("open run history: %w", err)
		}
		recorder = sqlite
		app.closers = append(app.closers, sqlite.Close)
	}

	app.trainer = usecase.NewTrainer(usecase.TrainerDeps{
		Source:     loader,
		Normalizer: normalizer,
		Store:      store,
		Recorder:   recorder,
		Logger:     baseLogger.With("component", "trainer"),
	}, cfg.Trainer, cfg.Output)

	return app, nil
}

// Run performs a single training job.
func (a *Application) Run(ctx context.Context) error {
	if a.trainer == nil {
		return nil
	}
	return a.trainer.Run(ctx)
}

// Close releases held resources.
func (a *Application) Close() error {
	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
