package classify

// Logistic regression defaults: a fixed iteration budget of full-batch
// gradient descent with mild L2 regularization. Training is
// deterministic: weights start at zero and the data order is fixed.
const (
	lrIterations   = 1000
	lrLearningRate = 0.5
	lrL2           = 1e-4
)

// LogisticRegression is a binary logistic regression classifier.
// Coefs and Intercept are exported both for gob persistence and for the
// extension export, where they become the JSON coefficient vector.
type LogisticRegression struct {
	Coefs     []float64
	Intercept float64

	Iterations   int
	LearningRate float64
	L2           float64
}

// NewLogisticRegression returns an untrained logistic regression model
// with the default training schedule.
func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{
		Iterations:   lrIterations,
		LearningRate: lrLearningRate,
		L2:           lrL2,
	}
}

// Name implements Model.
func (lr *LogisticRegression) Name() string { return LogisticRegressionName }

// Fit trains by full-batch gradient descent on the logistic loss.
func (lr *LogisticRegression) Fit(X [][]float64, y []int) {
	if len(X) == 0 {
		return
	}
	numFeatures := len(X[0])
	lr.Coefs = make([]float64, numFeatures)
	lr.Intercept = 0

	n := float64(len(X))
	grad := make([]float64, numFeatures)
	for it := 0; it < lr.Iterations; it++ {
		for j := range grad {
			grad[j] = 0
		}
		var gradIntercept float64

		for i, x := range X {
			err := sigmoid(dot(lr.Coefs, x)+lr.Intercept) - float64(y[i])
			for j, f := range x {
				grad[j] += err * f
			}
			gradIntercept += err
		}

		for j := range lr.Coefs {
			lr.Coefs[j] -= lr.LearningRate * (grad[j]/n + lr.L2*lr.Coefs[j])
		}
		lr.Intercept -= lr.LearningRate * gradIntercept / n
	}
}

// PredictProba returns sigmoid(w·x + b).
func (lr *LogisticRegression) PredictProba(x []float64) float64 {
	return sigmoid(dot(lr.Coefs, x) + lr.Intercept)
}
