package model

import "FakeNewsTrainer/internal/domain"

// buildReport computes per-class precision/recall/F1, accuracy, macro and
// support-weighted averages, and the confusion matrix from test-set
// predictions. Labels must be 0 or 1.
func buildReport(actual, predicted []domain.Label) domain.Report {
	report := domain.Report{
		Labels:   []domain.Label{domain.LabelFake, domain.LabelTrue},
		PerClass: map[domain.Label]domain.ClassMetrics{},
	}

	var correct int
	for i := range actual {
		report.Confusion[actual[i]][predicted[i]]++
		if actual[i] == predicted[i] {
			correct++
		}
	}
	total := len(actual)
	if total > 0 {
		report.Accuracy = float64(correct) / float64(total)
	}

	for _, label := range report.Labels {
		tp := float64(report.Confusion[label][label])
		fp := float64(report.Confusion[1-label][label])
		fn := float64(report.Confusion[label][1-label])

		var m domain.ClassMetrics
		m.Support = report.Confusion[label][0] + report.Confusion[label][1]
		if tp+fp > 0 {
			m.Precision = tp / (tp + fp)
		}
		if tp+fn > 0 {
			m.Recall = tp / (tp + fn)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		report.PerClass[label] = m
	}

	for _, label := range report.Labels {
		m := report.PerClass[label]
		report.Macro.Precision += m.Precision / float64(len(report.Labels))
		report.Macro.Recall += m.Recall / float64(len(report.Labels))
		report.Macro.F1 += m.F1 / float64(len(report.Labels))
		if total > 0 {
			weight := float64(m.Support) / float64(total)
			report.Weighted.Precision += m.Precision * weight
			report.Weighted.Recall += m.Recall * weight
			report.Weighted.F1 += m.F1 * weight
		}
	}
	report.Macro.Support = total
	report.Weighted.Support = total

	return report
}
