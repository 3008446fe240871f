package model

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"FakeNewsTrainer/internal/domain"
	"FakeNewsTrainer/internal/feature"
	"FakeNewsTrainer/internal/textproc"
)

// smokeInput is the literal document every fitted pipeline must classify
// without error before it is returned.
const smokeInput = "test article"

// Config carries the training hyperparameters.
type Config struct {
	MaxFeatures  int
	NEstimators  int
	TestFraction float64
	Seed         int64
}

// Train fits the vectorizer and classifier on normalized records and
// evaluates on the held-out partition. The split happens before the
// vectorizer is fitted, so test-set vocabulary statistics never leak into
// training. Returns the composed pipeline and the evaluation report.
func Train(records []domain.Record, normalizer *textproc.Normalizer, cfg Config) (*Pipeline, domain.Report, error) {
	if len(records) == 0 {
		return nil, domain.Report{}, fmt.Errorf("train: empty dataset")
	}
	if err := checkBothClasses(records); err != nil {
		return nil, domain.Report{}, err
	}

	trainIdx, testIdx := splitIndices(len(records), cfg.TestFraction, cfg.Seed)

	trainDocs := make([]string, len(trainIdx))
	trainLabels := make([]int, len(trainIdx))
	for i, idx := range trainIdx {
		trainDocs[i] = records[idx].CleanText
		trainLabels[i] = int(records[idx].Label)
	}

	vectorizer := feature.NewVectorizer(cfg.MaxFeatures)
	if err := vectorizer.Fit(trainDocs); err != nil {
		return nil, domain.Report{}, fmt.Errorf("train: %w", err)
	}

	trainX, err := vectorizer.Transform(trainDocs)
	if err != nil {
		return nil, domain.Report{}, fmt.Errorf("train: %w", err)
	}

	forest := NewRandomForest(cfg.NEstimators, cfg.Seed)
	if err := forest.Fit(denseRows(trainX, vectorizer.NumFeatures()), trainLabels); err != nil {
		return nil, domain.Report{}, fmt.Errorf("train: %w", err)
	}

	actual := make([]domain.Label, len(testIdx))
	predicted := make([]domain.Label, len(testIdx))
	for i, idx := range testIdx {
		actual[i] = records[idx].Label
		predicted[i] = domain.Label(forest.Predict(vectorizer.TransformOne(records[idx].CleanText)))
	}
	report := buildReport(actual, predicted)

	pipeline := NewPipeline(normalizer, vectorizer, forest)
	if _, err := pipeline.Predict(smokeInput); err != nil {
		return nil, domain.Report{}, fmt.Errorf("pipeline smoke test: %w", err)
	}

	return pipeline, report, nil
}

func checkBothClasses(records []domain.Record) error {
	var fakeCount, trueCount int
	for _, rec := range records {
		switch rec.Label {
		case domain.LabelFake:
			fakeCount++
		case domain.LabelTrue:
			trueCount++
		default:
			return fmt.Errorf("train: unexpected label %d", rec.Label)
		}
	}
	if fakeCount == 0 || trueCount == 0 {
		return fmt.Errorf("train: dataset contains a single label class (fake=%d, true=%d)", fakeCount, trueCount)
	}
	return nil
}

// denseRows expands a sparse feature matrix into the dense rows the forest
// implementation consumes.
func denseRows(m *sparse.CSR, cols int) [][]float64 {
	rows, _ := m.Dims()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		m.DoRowNonZero(i, func(_, j int, v float64) {
			row[j] = v
		})
		out[i] = row
	}
	return out
}
