package model

import (
	"fmt"
	"reflect"

	"FakeNewsTrainer/internal/domain"
	"FakeNewsTrainer/internal/feature"
	"FakeNewsTrainer/internal/textproc"
)

// Pipeline is the fitted composition exported for inference: normalize,
// vectorize, classify. The normalizer is an explicit first stage so the
// inference path applies exactly the preprocessing used during training.
type Pipeline struct {
	normalizer *textproc.Normalizer
	vectorizer *feature.Vectorizer
	forest     *RandomForest
}

// Snapshot is the serializable state of a fitted pipeline. The normalizer's
// linguistic resources are reconstructed at load time from its spec.
type Snapshot struct {
	Normalizer textproc.Spec
	Vectorizer *feature.Vectorizer
	Forest     *RandomForest
}

// NewPipeline composes fitted stages.
func NewPipeline(normalizer *textproc.Normalizer, vectorizer *feature.Vectorizer, forest *RandomForest) *Pipeline {
	return &Pipeline{normalizer: normalizer, vectorizer: vectorizer, forest: forest}
}

// Restore rebuilds a runnable pipeline from a decoded snapshot and a loaded
// resource bundle.
func Restore(snap Snapshot, res *textproc.Resources) (*Pipeline, error) {
	if snap.Vectorizer == nil || snap.Forest == nil {
		return nil, fmt.Errorf("restore pipeline: incomplete snapshot")
	}
	normalizer := textproc.NewNormalizerWithSpec(res, snap.Normalizer)
	return NewPipeline(normalizer, snap.Vectorizer, snap.Forest), nil
}

// Predict classifies one raw document.
func (p *Pipeline) Predict(text string) (domain.Label, error) {
	if p.normalizer == nil || p.vectorizer == nil || p.forest == nil {
		return 0, fmt.Errorf("predict: pipeline is not fitted")
	}
	clean := p.normalizer.Clean(text)
	row := p.vectorizer.TransformOne(clean)
	return domain.Label(p.forest.Predict(row)), nil
}

// Snapshot extracts the serializable state.
func (p *Pipeline) Snapshot() Snapshot {
	return Snapshot{
		Normalizer: p.normalizer.Spec(),
		Vectorizer: p.vectorizer,
		Forest:     p.forest,
	}
}

// Forest exposes the fitted classifier for metadata introspection.
func (p *Pipeline) Forest() *RandomForest {
	return p.forest
}

// Steps lists the ordered stages as {name, type} pairs, types resolved by
// reflection on the stage values.
func (p *Pipeline) Steps() []domain.PipelineStep {
	return []domain.PipelineStep{
		{Name: "normalize", Type: typeName(p.normalizer)},
		{Name: "tfidf", Type: typeName(p.vectorizer)},
		{Name: "clf", Type: typeName(p.forest)},
	}
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
