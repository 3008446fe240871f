package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"FakeNewsTrainer/internal/config"
	"FakeNewsTrainer/internal/domain"
	"FakeNewsTrainer/internal/infrastructure/artifact"
	"FakeNewsTrainer/internal/textproc"
)

type staticSource struct {
	records []domain.Record
	err     error
}

func (s *staticSource) FetchCorpus(ctx context.Context) ([]domain.Record, error) {
	return s.records, s.err
}

type memoryRecorder struct {
	runs []domain.TrainingRun
}

func (m *memoryRecorder) RecordRun(ctx context.Context, run domain.TrainingRun) error {
	m.runs = append(m.runs, run)
	return nil
}

type identityLemmatizer struct{}

func (identityLemmatizer) Lemma(word string) string { return word }

func tenRowCorpus() []domain.Record {
	var records []domain.Record
	for i := 0; i < 5; i++ {
		records = append(records, domain.Record{
			Text:  fmt.Sprintf("alien hoax conspiracy shocking secret %d", i),
			Label: domain.LabelFake,
		})
		records = append(records, domain.Record{
			Text:  fmt.Sprintf("government policy economy parliament budget %d", i),
			Label: domain.LabelTrue,
		})
	}
	return records
}

func testTrainer(t *testing.T, source *staticSource, dir string, recorder *memoryRecorder) *Trainer {
	t.Helper()

	res := textproc.NewResources([]string{"the", "a"}, identityLemmatizer{})
	deps := TrainerDeps{
		Source:     source,
		Normalizer: textproc.NewNormalizer(res),
		Store:      artifact.NewStore(dir),
	}
	if recorder != nil {
		deps.Recorder = recorder
	}

	trainCfg := config.TrainerConfig{MaxFeatures: 50, NEstimators: 100, TestFraction: 0.2, Seed: 42}
	outputCfg := config.OutputConfig{Dir: dir, ModelName: "random_forest"}
	return NewTrainer(deps, trainCfg, outputCfg)
}

func TestRunEndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	recorder := &memoryRecorder{}
	trainer := testTrainer(t, &staticSource{records: tenRowCorpus()}, dir, recorder)

	if err := trainer.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "random_forest.pkl"))
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("artifact is empty")
	}

	raw, err := os.ReadFile(filepath.Join(dir, "random_forest_metadata.json"))
	if err != nil {
		t.Fatalf("metadata missing: %v", err)
	}
	var meta map[string]json.RawMessage
	if err := json.Unmarshal(raw, &meta); err != nil {
		t.Fatalf("unmarshal metadata: %v", err)
	}

	var nEstimators int
	json.Unmarshal(meta["n_estimators"], &nEstimators)
	if nEstimators != 100 {
		t.Fatalf("n_estimators = %d", nEstimators)
	}
	var randomState int64
	json.Unmarshal(meta["random_state"], &randomState)
	if randomState != 42 {
		t.Fatalf("random_state = %d", randomState)
	}

	var perf map[string]json.RawMessage
	if err := json.Unmarshal(meta["performance"], &perf); err != nil {
		t.Fatalf("unmarshal performance: %v", err)
	}
	for _, class := range []string{"0", "1"} {
		if _, ok := perf[class]; !ok {
			t.Fatalf("performance missing class %s: %s", class, meta["performance"])
		}
	}

	if len(recorder.runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(recorder.runs))
	}
	if recorder.runs[0].Rows != 10 || recorder.runs[0].ModelName != "random_forest" {
		t.Fatalf("unexpected run record: %+v", recorder.runs[0])
	}
}

func TestRunFailsOnSourceError(t *testing.T) {
	t.Parallel()

	trainer := testTrainer(t, &staticSource{err: fmt.Errorf("source unreachable")}, t.TempDir(), nil)
	if err := trainer.Run(context.Background()); err == nil {
		t.Fatalf("expected error when the source fails")
	}
}

func TestRunFailsOnSingleClass(t *testing.T) {
	t.Parallel()

	var records []domain.Record
	for i := 0; i < 6; i++ {
		records = append(records, domain.Record{
			Text:  fmt.Sprintf("alien hoax %d", i),
			Label: domain.LabelFake,
		})
	}

	trainer := testTrainer(t, &staticSource{records: records}, t.TempDir(), nil)
	if err := trainer.Run(context.Background()); err == nil {
		t.Fatalf("expected error for single-class corpus")
	}
}
