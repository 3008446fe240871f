package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"FakeNewsTrainer/internal/config"
	"FakeNewsTrainer/internal/domain"
	"FakeNewsTrainer/internal/model"
	"FakeNewsTrainer/internal/ports"
	"FakeNewsTrainer/internal/textproc"
)

// TrainerDeps wires all driven adapters into the training job.
type TrainerDeps struct {
	Source     ports.DatasetSource
	Normalizer *textproc.Normalizer
	Store      ports.ArtifactStore
	Recorder   ports.RunRecorder
	Logger     *slog.Logger
}

// Trainer implements the linear fit-and-report workflow:
// load, normalize, train, evaluate, persist, record.
type Trainer struct {
	source     ports.DatasetSource
	normalizer *textproc.Normalizer
	store      ports.ArtifactStore
	recorder   ports.RunRecorder
	logger     *slog.Logger
	trainCfg   config.TrainerConfig
	outputCfg  config.OutputConfig
}

// NewTrainer constructs the orchestration component.
func NewTrainer(deps TrainerDeps, trainCfg config.TrainerConfig, outputCfg config.OutputConfig) *Trainer {
	return &Trainer{
		source:     deps.Source,
		normalizer: deps.Normalizer,
		store:      deps.Store,
		recorder:   deps.Recorder,
		logger:     deps.Logger,
		trainCfg:   trainCfg,
		outputCfg:  outputCfg,
	}
}

// Run executes one training job end to end. Any stage error aborts the run.
func (t *Trainer) Run(ctx context.Context) error {
	startedAt := time.Now()

	records, err := t.source.FetchCorpus(ctx)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	t.info("dataset loaded", "rows", len(records))

	normalized := t.normalizer.NormalizeAll(records)
	t.info("text normalized", "rows", len(normalized), "dropped", len(records)-len(normalized))

	pipeline, report, err := model.Train(normalized, t.normalizer, model.Config{
		MaxFeatures:  t.trainCfg.MaxFeatures,
		NEstimators:  t.trainCfg.NEstimators,
		TestFraction: t.trainCfg.TestFraction,
		Seed:         t.trainCfg.Seed,
	})
	if err != nil {
		return fmt.Errorf("train model: %w", err)
	}

	fmt.Println("\nRandom Forest Classification Report:")
	fmt.Println(report.String())

	if err := t.store.Save(pipeline, t.outputCfg.ModelName, &report); err != nil {
		return fmt.Errorf("save model %s: %w", t.outputCfg.ModelName, err)
	}
	t.info("model saved", "name", t.outputCfg.ModelName, "accuracy", report.Accuracy)

	if t.recorder != nil {
		run := domain.TrainingRun{
			ModelName:  t.outputCfg.ModelName,
			Rows:       len(normalized),
			Accuracy:   report.Accuracy,
			StartedAt:  startedAt,
			FinishedAt: time.Now(),
			SavedBy:    savedBy(),
		}
		if err := t.recorder.RecordRun(ctx, run); err != nil {
			// Audit history stays best-effort; the artifact is already on disk.
			t.warn("record run failed", "error", err)
		}
	}

	return nil
}

func savedBy() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "unknown"
}

func (t *Trainer) info(msg string, args ...any) {
	if t.logger != nil {
		t.logger.Info(msg, args...)
	}
}

func (t *Trainer) warn(msg string, args ...any) {
	if t.logger != nil {
		t.logger.Warn(msg, args...)
	}
}
