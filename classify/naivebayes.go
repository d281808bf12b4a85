package classify

import "math"

const nbAlpha = 1.0 // Laplace smoothing

// NaiveBayes is a multinomial naive bayes classifier over nonnegative
// features. Fields are exported for gob persistence.
type NaiveBayes struct {
	// FeatureLogProb[c][j] = log p(feature j | class c)
	FeatureLogProb [2][]float64
	// ClassLogPrior[c] = log p(class c)
	ClassLogPrior [2]float64
}

// NewNaiveBayes returns an untrained multinomial naive bayes model.
func NewNaiveBayes() *NaiveBayes {
	return &NaiveBayes{}
}

// Name implements Model.
func (nb *NaiveBayes) Name() string { return NaiveBayesName }

// Fit estimates smoothed per-class feature log-probabilities and class
// log-priors from the training set.
func (nb *NaiveBayes) Fit(X [][]float64, y []int) {
	if len(X) == 0 {
		return
	}
	numFeatures := len(X[0])

	var classCounts [2]float64
	var featureCounts [2][]float64
	for c := range featureCounts {
		featureCounts[c] = make([]float64, numFeatures)
	}

	for i, x := range X {
		c := y[i]
		classCounts[c]++
		for j, f := range x {
			featureCounts[c][j] += f
		}
	}

	total := classCounts[0] + classCounts[1]
	for c := 0; c < 2; c++ {
		nb.ClassLogPrior[c] = math.Log(classCounts[c] / total)

		var sum float64
		for _, f := range featureCounts[c] {
			sum += f
		}
		denom := math.Log(sum + nbAlpha*float64(numFeatures))
		nb.FeatureLogProb[c] = make([]float64, numFeatures)
		for j, f := range featureCounts[c] {
			nb.FeatureLogProb[c][j] = math.Log(f+nbAlpha) - denom
		}
	}
}

// PredictProba returns the posterior probability of class 1 given the
// feature vector, p(1|x) = exp(l1) / (exp(l0) + exp(l1)) for the joint
// log-likelihoods of the two classes.
func (nb *NaiveBayes) PredictProba(x []float64) float64 {
	l0 := nb.ClassLogPrior[0] + dot(x, nb.FeatureLogProb[0])
	l1 := nb.ClassLogPrior[1] + dot(x, nb.FeatureLogProb[1])
	return math.Exp(l1 - logSumExp([]float64{l0, l1}))
}
