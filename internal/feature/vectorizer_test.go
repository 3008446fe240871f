package feature

import (
	"math"
	"testing"
)

func TestFitCapsVocabularyByDocumentFrequency(t *testing.T) {
	t.Parallel()

	docs := []string{
		"apple banana cherry",
		"apple banana",
		"apple",
	}

	v := NewVectorizer(2)
	if err := v.Fit(docs); err != nil {
		t.Fatalf("Fit error: %v", err)
	}

	if v.NumFeatures() != 2 {
		t.Fatalf("expected 2 features, got %d", v.NumFeatures())
	}
	if _, ok := v.Vocabulary["apple"]; !ok {
		t.Fatalf("most frequent term missing from vocabulary: %v", v.Vocabulary)
	}
	if _, ok := v.Vocabulary["banana"]; !ok {
		t.Fatalf("second term missing from vocabulary: %v", v.Vocabulary)
	}
	if _, ok := v.Vocabulary["cherry"]; ok {
		t.Fatalf("capped term should be absent: %v", v.Vocabulary)
	}
}

func TestFitBreaksTiesAlphabetically(t *testing.T) {
	t.Parallel()

	v := NewVectorizer(1)
	if err := v.Fit([]string{"zebra apple"}); err != nil {
		t.Fatalf("Fit error: %v", err)
	}
	if _, ok := v.Vocabulary["apple"]; !ok {
		t.Fatalf("tie should resolve to the alphabetically first term, got %v", v.Vocabulary)
	}
}

func TestTransformRowsAreL2Normalized(t *testing.T) {
	t.Parallel()

	docs := []string{"apple banana apple", "banana cherry"}
	v := NewVectorizer(0)
	if err := v.Fit(docs); err != nil {
		t.Fatalf("Fit error: %v", err)
	}

	m, err := v.Transform(docs)
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}

	rows, cols := m.Dims()
	if rows != 2 || cols != v.NumFeatures() {
		t.Fatalf("unexpected shape %dx%d", rows, cols)
	}

	for i := 0; i < rows; i++ {
		var norm float64
		m.DoRowNonZero(i, func(_, _ int, val float64) {
			norm += val * val
		})
		if math.Abs(math.Sqrt(norm)-1) > 1e-9 {
			t.Fatalf("row %d norm = %f, want 1", i, math.Sqrt(norm))
		}
	}
}

func TestTransformOneIgnoresUnknownTerms(t *testing.T) {
	t.Parallel()

	v := NewVectorizer(0)
	if err := v.Fit([]string{"apple banana"}); err != nil {
		t.Fatalf("Fit error: %v", err)
	}

	row := v.TransformOne("durian elderberry")
	for j, val := range row {
		if val != 0 {
			t.Fatalf("expected zero vector, got %f at %d", val, j)
		}
	}
}

func TestFitDeterministic(t *testing.T) {
	t.Parallel()

	docs := []string{"apple banana cherry", "banana cherry", "cherry apple apple"}

	a := NewVectorizer(2)
	b := NewVectorizer(2)
	if err := a.Fit(docs); err != nil {
		t.Fatalf("Fit error: %v", err)
	}
	if err := b.Fit(docs); err != nil {
		t.Fatalf("Fit error: %v", err)
	}

	if len(a.Vocabulary) != len(b.Vocabulary) {
		t.Fatalf("vocabulary size differs: %d vs %d", len(a.Vocabulary), len(b.Vocabulary))
	}
	for term, j := range a.Vocabulary {
		if b.Vocabulary[term] != j {
			t.Fatalf("column for %s differs: %d vs %d", term, j, b.Vocabulary[term])
		}
		if a.IDF[j] != b.IDF[j] {
			t.Fatalf("idf for %s differs", term)
		}
	}
}

func TestTransformUnfitted(t *testing.T) {
	t.Parallel()

	v := NewVectorizer(10)
	if _, err := v.Transform([]string{"apple"}); err == nil {
		t.Fatalf("expected error transforming with unfitted vectorizer")
	}
}

func TestFitEmptyCorpus(t *testing.T) {
	t.Parallel()

	v := NewVectorizer(10)
	if err := v.Fit(nil); err == nil {
		t.Fatalf("expected error fitting empty corpus")
	}
}
