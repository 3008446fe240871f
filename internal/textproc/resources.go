package textproc

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

//go:embed data/stopwords_en.txt
var stopwordData string

// Lemmatizer reduces an inflected word to its dictionary base form.
type Lemmatizer interface {
	Lemma(word string) string
}

// Resources bundles the static linguistic data the normalizer needs:
// a stopword set and a lemma dictionary. It is immutable after creation
// and safe to share.
type Resources struct {
	stopwords map[string]struct{}
	lemmas    Lemmatizer
}

// LoadResources builds the bundle from the embedded English stopword list
// and the golem English lemma dictionary. Called once at startup.
func LoadResources() (*Resources, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load lemma dictionary: %w", err)
	}
	return NewResources(strings.Fields(stopwordData), lem), nil
}

// NewResources wires an explicit stopword list and lemmatizer, which keeps
// the normalizer testable with a fixed resource set.
func NewResources(stopwords []string, lemmas Lemmatizer) *Resources {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Resources{stopwords: set, lemmas: lemmas}
}

// IsStopword reports whether the lowercase form of w is in the stopword set.
func (r *Resources) IsStopword(w string) bool {
	_, ok := r.stopwords[strings.ToLower(w)]
	return ok
}

// Lemma returns the base form of w. A word the dictionary cannot resolve
// passes through unchanged.
func (r *Resources) Lemma(w string) string {
	if r.lemmas == nil {
		return w
	}
	if lemma := r.lemmas.Lemma(w); lemma != "" {
		return lemma
	}
	return w
}
