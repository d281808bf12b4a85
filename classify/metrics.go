package classify

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/studytube/studytube/videos"
)

// Evaluation holds test-set metrics for one trained back end.
type Evaluation struct {
	Backend  string
	Accuracy float64
	Classes  [2]ClassMetrics

	// Confidence summary over the test set, confidence = |p - 0.5| * 2.
	MeanConfidence float64
	MinConfidence  float64
	MaxConfidence  float64
}

// ClassMetrics holds per-class precision/recall/F1 and support.
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Evaluate scores the model on the test set and computes accuracy,
// per-class metrics and a confidence summary.
func Evaluate(m Model, X [][]float64, y []int) Evaluation {
	ev := Evaluation{Backend: m.Name()}

	var correct int
	var confusion [2][2]int // [truth][predicted]
	confidences := make([]float64, 0, len(X))
	for i, x := range X {
		p := m.PredictProba(x)
		pred := 0
		if p > 0.5 {
			pred = 1
		}
		if pred == y[i] {
			correct++
		}
		confusion[y[i]][pred]++
		confidences = append(confidences, 2*abs(p-0.5))
	}
	if len(X) > 0 {
		ev.Accuracy = float64(correct) / float64(len(X))
		ev.MeanConfidence, _ = stats.Mean(confidences)
		ev.MinConfidence, _ = stats.Min(confidences)
		ev.MaxConfidence, _ = stats.Max(confidences)
	}

	for c := 0; c < 2; c++ {
		truePos := confusion[c][c]
		falsePos := confusion[1-c][c]
		falseNeg := confusion[c][1-c]
		cm := ClassMetrics{Support: confusion[c][0] + confusion[c][1]}
		if truePos+falsePos > 0 {
			cm.Precision = float64(truePos) / float64(truePos+falsePos)
		}
		if truePos+falseNeg > 0 {
			cm.Recall = float64(truePos) / float64(truePos+falseNeg)
		}
		if cm.Precision+cm.Recall > 0 {
			cm.F1 = 2 * cm.Precision * cm.Recall / (cm.Precision + cm.Recall)
		}
		ev.Classes[c] = cm
	}
	return ev
}

// String renders the evaluation as a classification report.
func (ev Evaluation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Accuracy: %.4f\n", ev.Accuracy)
	fmt.Fprintf(&b, "%-15s %9s %9s %9s %9s\n", "", "precision", "recall", "f1", "support")
	for c := 0; c < 2; c++ {
		cm := ev.Classes[c]
		fmt.Fprintf(&b, "%-15s %9.4f %9.4f %9.4f %9d\n",
			videos.LabelName(c), cm.Precision, cm.Recall, cm.F1, cm.Support)
	}
	fmt.Fprintf(&b, "Confidence: mean %.4f, min %.4f, max %.4f\n",
		ev.MeanConfidence, ev.MinConfidence, ev.MaxConfidence)
	return b.String()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
