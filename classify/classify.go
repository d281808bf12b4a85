// Package classify implements the interchangeable classifier back ends.
// Every back end is fit against the same TF-IDF features and scored by
// the probability it assigns to the educational class.
package classify

import "math"

// Back end names, as they appear on the command line and in model file
// names.
const (
	NaiveBayesName         = "naive_bayes"
	LogisticRegressionName = "logistic_regression"
	RandomForestName       = "random_forest"
	NeuralNetworkName      = "neural_network"
)

// Seed fixes every source of randomness in training (splits, bootstrap
// sampling, weight init) so repeated runs produce identical models.
const Seed = 42

// Model is a trainable binary classifier.
type Model interface {
	// Name returns the back end name.
	Name() string
	// Fit trains the model on feature vectors X with labels y in {0,1}.
	Fit(X [][]float64, y []int)
	// PredictProba returns the probability that x belongs to class 1.
	PredictProba(x []float64) float64
}

// Predict thresholds PredictProba at 0.5.
func Predict(m Model, x []float64) int {
	if m.PredictProba(x) > 0.5 {
		return 1
	}
	return 0
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// logSumExp computes log(sum(exp(xs))) without overflowing.
func logSumExp(xs []float64) float64 {
	max := math.Inf(-1)
	for _, x := range xs {
		if x > max {
			max = x
		}
	}
	if math.IsInf(max, -1) {
		return max
	}
	var sum float64
	for _, x := range xs {
		sum += math.Exp(x - max)
	}
	return max + math.Log(sum)
}

func dot(a, b []float64) float64 {
	var d float64
	for i := range a {
		d += a[i] * b[i]
	}
	return d
}
