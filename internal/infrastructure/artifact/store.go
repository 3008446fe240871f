// Package artifact writes the trained pipeline and its JSON metadata sidecar
// to the output directory, and loads them back for inference.
package artifact

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"FakeNewsTrainer/internal/domain"
	"FakeNewsTrainer/internal/model"
	"FakeNewsTrainer/internal/ports"
	"FakeNewsTrainer/internal/textproc"
)

// Store persists pipelines under a fixed directory.
type Store struct {
	dir string
}

var _ ports.ArtifactStore = (*Store)(nil)

// NewStore targets the given output directory; it is created on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes `<name>.pkl` (gob-encoded pipeline state) and
// `<name>_metadata.json`. A nil metrics simply omits the performance field.
// Write failures surface unmodified; partial files are not cleaned up.
func (s *Store) Save(pipeline *model.Pipeline, name string, metrics *domain.Report) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	modelPath := filepath.Join(s.dir, name+".pkl")
	file, err := os.Create(modelPath)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(file).Encode(pipeline.Snapshot()); err != nil {
		file.Close()
		return fmt.Errorf("encode pipeline: %w", err)
	}
	if err := file.Close(); err != nil {
		return err
	}

	metadata := buildMetadata(pipeline, name, metrics)
	raw, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	metadataPath := filepath.Join(s.dir, name+"_metadata.json")
	if err := os.WriteFile(metadataPath, raw, 0o644); err != nil {
		return err
	}

	return nil
}

// Load reconstructs a runnable pipeline from a saved artifact, rebinding the
// normalizer to the provided resource bundle.
func (s *Store) Load(name string, res *textproc.Resources) (*model.Pipeline, error) {
	file, err := os.Open(filepath.Join(s.dir, name+".pkl"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var snap model.Snapshot
	if err := gob.NewDecoder(file).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode pipeline: %w", err)
	}
	return model.Restore(snap, res)
}

func buildMetadata(pipeline *model.Pipeline, name string, metrics *domain.Report) domain.Metadata {
	forest := pipeline.Forest()

	maxDepth := any("None")
	if depth := forest.MaxDepth(); depth != nil {
		maxDepth = *depth
	}

	return domain.Metadata{
		ModelName:     name,
		ModelType:     "RandomForest",
		Description:   "Random Forest model for fake news detection",
		FeaturesUsed:  "text content (TF-IDF)",
		SavedOn:       time.Now().Format(time.RFC3339),
		SavedBy:       savedBy(),
		PipelineSteps: pipeline.Steps(),
		NEstimators:   forest.NEstimators,
		MaxDepth:      maxDepth,
		RandomState:   forest.RandomState,
		Performance:   metrics,
	}
}

func savedBy() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "unknown"
}
