package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ClassMetrics holds precision/recall/F1 for one class of the held-out set.
type ClassMetrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1-score"`
	Support   int     `json:"support"`
}

// Report is the evaluation result on the test partition.
type Report struct {
	Labels    []Label
	PerClass  map[Label]ClassMetrics
	Accuracy  float64
	Macro     ClassMetrics
	Weighted  ClassMetrics
	Confusion [2][2]int
}

// MarshalJSON renders the report as a flat object keyed by class label,
// with accuracy and the macro/weighted aggregates alongside.
func (r Report) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.PerClass)+3)
	for label, metrics := range r.PerClass {
		out[fmt.Sprintf("%d", label)] = metrics
	}
	out["accuracy"] = r.Accuracy
	out["macro avg"] = r.Macro
	out["weighted avg"] = r.Weighted
	return json.Marshal(out)
}

// String formats the report for console output, one row per class plus
// aggregates and the confusion matrix.
func (r Report) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%14s %9s %9s %9s %9s\n", "", "precision", "recall", "f1-score", "support"))
	b.WriteString("\n")
	for _, label := range r.Labels {
		m := r.PerClass[label]
		b.WriteString(fmt.Sprintf("%14d %9.2f %9.2f %9.2f %9d\n", label, m.Precision, m.Recall, m.F1, m.Support))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%14s %9s %9s %9.2f %9d\n", "accuracy", "", "", r.Accuracy, r.Macro.Support))
	b.WriteString(fmt.Sprintf("%14s %9.2f %9.2f %9.2f %9d\n", "macro avg", r.Macro.Precision, r.Macro.Recall, r.Macro.F1, r.Macro.Support))
	b.WriteString(fmt.Sprintf("%14s %9.2f %9.2f %9.2f %9d\n", "weighted avg", r.Weighted.Precision, r.Weighted.Recall, r.Weighted.F1, r.Weighted.Support))
	b.WriteString("\n")
	b.WriteString("Confusion matrix:\n")
	b.WriteString(fmt.Sprintf("%14s %9d %9d\n", "", LabelFake, LabelTrue))
	b.WriteString(fmt.Sprintf("%14d %9d %9d\n", LabelFake, r.Confusion[0][0], r.Confusion[0][1]))
	b.WriteString(fmt.Sprintf("%14d %9d %9d\n", LabelTrue, r.Confusion[1][0], r.Confusion[1][1]))
	return b.String()
}
