// Package feature implements sparse TF-IDF term weighting over cleaned text.
package feature

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/james-bowman/sparse"
)

// Vectorizer maps cleaned documents to L2-normalized TF-IDF vectors over a
// vocabulary capped by document frequency. Fields are exported so a fitted
// vectorizer serializes with the model artifact.
type Vectorizer struct {
	MaxFeatures int
	Vocabulary  map[string]int
	IDF         []float64
}

// NewVectorizer creates an unfitted vectorizer with the given vocabulary cap.
func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{MaxFeatures: maxFeatures}
}

// Fit learns the vocabulary and inverse document frequencies from the
// training documents only. Terms are ranked by document frequency, ties
// broken alphabetically, and the top MaxFeatures retained.
func (v *Vectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return fmt.Errorf("fit vectorizer: no documents")
	}

	docFreq := map[string]int{}
	for _, doc := range docs {
		seen := map[string]struct{}{}
		for _, term := range strings.Fields(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			docFreq[term]++
		}
	}
	if len(docFreq) == 0 {
		return fmt.Errorf("fit vectorizer: documents contain no terms")
	}

	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if docFreq[terms[i]] != docFreq[terms[j]] {
			return docFreq[terms[i]] > docFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		terms = terms[:v.MaxFeatures]
	}

	// Column order is alphabetical over the retained terms, so the fitted
	// vocabulary does not depend on map iteration.
	sort.Strings(terms)
	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	n := float64(len(docs))
	for j, term := range terms {
		v.Vocabulary[term] = j
		v.IDF[j] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	return nil
}

// Transform maps documents into a sparse CSR matrix using the fitted
// vocabulary. Terms outside the vocabulary are ignored.
func (v *Vectorizer) Transform(docs []string) (*sparse.CSR, error) {
	if v.Vocabulary == nil {
		return nil, fmt.Errorf("transform: vectorizer is not fitted")
	}

	dok := sparse.NewDOK(len(docs), v.NumFeatures())
	for i, doc := range docs {
		for j, weight := range v.rowWeights(doc) {
			dok.Set(i, j, weight)
		}
	}
	return dok.ToCSR(), nil
}

// TransformOne produces a dense feature row for a single document, the
// shape the classifier consumes at inference time.
func (v *Vectorizer) TransformOne(doc string) []float64 {
	row := make([]float64, v.NumFeatures())
	for j, weight := range v.rowWeights(doc) {
		row[j] = weight
	}
	return row
}

// NumFeatures returns the fitted vocabulary size.
func (v *Vectorizer) NumFeatures() int {
	return len(v.Vocabulary)
}

// rowWeights computes the L2-normalized TF-IDF weights of one document,
// keyed by column index.
func (v *Vectorizer) rowWeights(doc string) map[int]float64 {
	counts := map[int]float64{}
	for _, term := range strings.Fields(doc) {
		if j, ok := v.Vocabulary[term]; ok {
			counts[j]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	var norm float64
	for j, tf := range counts {
		w := tf * v.IDF[j]
		counts[j] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return nil
	}
	for j := range counts {
		counts[j] /= norm
	}
	return counts
}
