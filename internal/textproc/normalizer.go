package textproc

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	prose "github.com/jdkato/prose/v2"

	"FakeNewsTrainer/internal/domain"
)

// Spec captures the normalizer configuration that travels with a saved
// artifact, so a loaded pipeline reconstructs the same preprocessing.
type Spec struct {
	Language  string
	StripHTML bool
}

// DefaultSpec is the configuration used for training.
func DefaultSpec() Spec {
	return Spec{Language: "en", StripHTML: true}
}

// Normalizer turns raw article text into a cleaned, lemmatized token string.
type Normalizer struct {
	res  *Resources
	spec Spec
}

// NewNormalizer wires the resource bundle with the default spec.
func NewNormalizer(res *Resources) *Normalizer {
	return &Normalizer{res: res, spec: DefaultSpec()}
}

// NewNormalizerWithSpec restores a normalizer from a persisted spec.
func NewNormalizerWithSpec(res *Resources, spec Spec) *Normalizer {
	return &Normalizer{res: res, spec: spec}
}

// Spec returns the persisted configuration of this normalizer.
func (n *Normalizer) Spec() Spec {
	return n.spec
}

// NormalizeAll drops records with missing text, fills Tokens and CleanText
// on the rest, and preserves input order. A record whose tokens are all
// filtered out keeps an empty CleanText rather than being dropped.
func (n *Normalizer) NormalizeAll(records []domain.Record) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Text) == "" {
			continue
		}
		rec.Tokens = n.Tokens(rec.Text)
		rec.CleanText = strings.Join(rec.Tokens, " ")
		out = append(out, rec)
	}
	return out
}

// Clean normalizes a single raw string. This is the inference-time entry
// point used by the composed pipeline.
func (n *Normalizer) Clean(text string) string {
	return strings.Join(n.Tokens(text), " ")
}

// Tokens runs the full token pipeline: markup strip, tokenize, lowercase,
// stopword filter, alphabetic filter, lemmatize.
func (n *Normalizer) Tokens(text string) []string {
	if n.spec.StripHTML {
		text = stripMarkup(text)
	}

	var tokens []string
	for _, tok := range tokenize(text) {
		word := strings.ToLower(tok)
		if n.res.IsStopword(word) {
			continue
		}
		if !alphabetic(word) {
			continue
		}
		tokens = append(tokens, n.res.Lemma(word))
	}
	return tokens
}

// tokenize splits text with the prose English tokenizer. If the tokenizer
// rejects the input the record is not abandoned: whitespace splitting is
// the fallback.
func tokenize(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return strings.Fields(text)
	}

	docTokens := doc.Tokens()
	tokens := make([]string, 0, len(docTokens))
	for _, tok := range docTokens {
		tokens = append(tokens, tok.Text)
	}
	return tokens
}

// stripMarkup extracts visible text when the input carries HTML tags;
// plain text passes through untouched.
func stripMarkup(text string) string {
	if !strings.ContainsRune(text, '<') || !strings.ContainsRune(text, '>') {
		return text
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return text
	}
	return doc.Text()
}

func alphabetic(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
