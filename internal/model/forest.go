// Package model fits and evaluates the tree-ensemble classifier and composes
// the exported inference pipeline.
package model

import (
	"fmt"

	randomforest "github.com/malaschitz/randomForest"
)

// RandomForest wraps the tree-ensemble implementation with the fixed
// hyperparameters the job trains with. Fields are exported so the fitted
// ensemble serializes with the artifact.
type RandomForest struct {
	NEstimators int
	RandomState int64
	Model       randomforest.Forest
}

// NewRandomForest configures an unfitted ensemble.
func NewRandomForest(nEstimators int, randomState int64) *RandomForest {
	return &RandomForest{NEstimators: nEstimators, RandomState: randomState}
}

// Fit trains the ensemble on dense feature rows and integer labels.
func (rf *RandomForest) Fit(x [][]float64, y []int) error {
	if len(x) == 0 || len(x) != len(y) {
		return fmt.Errorf("fit forest: %d feature rows for %d labels", len(x), len(y))
	}
	rf.Model = randomforest.Forest{}
	rf.Model.Data = randomforest.ForestData{X: x, Class: y}
	rf.Model.Train(rf.NEstimators)
	return nil
}

// Predict returns the majority-vote class for one feature row.
func (rf *RandomForest) Predict(row []float64) int {
	votes := rf.Model.Vote(row)
	best := 0
	for class, p := range votes {
		if p > votes[best] {
			best = class
		}
	}
	return best
}

// MaxDepth reports the configured depth limit; the ensemble grows trees
// unbounded, so this is always nil and serialized as "None" in metadata.
func (rf *RandomForest) MaxDepth() *int {
	return nil
}
