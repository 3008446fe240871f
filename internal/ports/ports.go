package ports

import (
	"context"

	"FakeNewsTrainer/internal/domain"
	"FakeNewsTrainer/internal/model"
)

// DatasetSource acquires the labeled corpus from the configured origin.
type DatasetSource interface {
	FetchCorpus(ctx context.Context) ([]domain.Record, error)
}

// ArtifactStore persists a fitted pipeline with its metadata sidecar.
type ArtifactStore interface {
	Save(pipeline *model.Pipeline, name string, metrics *domain.Report) error
}

// RunRecorder appends a completed training run to the audit history.
type RunRecorder interface {
	RecordRun(ctx context.Context, run domain.TrainingRun) error
}
