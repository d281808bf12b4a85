package export

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studytube/studytube/classify"
	"github.com/studytube/studytube/videos"
)

// handArtifact is small enough to score by hand: three unigrams with
// unit IDF weights.
func handArtifact() *Artifact {
	intercept := -0.1
	return &Artifact{
		Type:         classify.LogisticRegressionName,
		Coefficients: []float64{-2, 1.5, 1.5},
		Intercept:    &intercept,
		Vocabulary:   map[string]int{"funny": 0, "python": 1, "tutorial": 2},
		IDF:          []float64{1, 1, 1},
		MaxFeatures:  3,
		NGramRange:   [2]int{1, 1},
	}
}

func TestScorerHandComputed(t *testing.T) {
	s, err := NewScorer(handArtifact())
	require.NoError(t, err)

	// "python tutorial": both terms present with weight 1, L2 norm
	// sqrt(2), so z = 2*1.5/sqrt(2) - 0.1.
	res := s.Score("Python Tutorial", "")
	z := 3/math.Sqrt(2) - 0.1
	assert.InDelta(t, 1/(1+math.Exp(-z)), res.Probability, 1e-12)
	assert.Equal(t, videos.LabelEducational, res.Prediction)
	assert.InDelta(t, math.Abs(res.Probability-0.5)*2, res.Confidence, 1e-12)

	// "funny": single negative term, z = -2 - 0.1.
	res = s.Score("FUNNY!!!", "")
	z = -2.1
	assert.InDelta(t, 1/(1+math.Exp(-z)), res.Probability, 1e-12)
	assert.Equal(t, videos.LabelEntertainment, res.Prediction)
}

func TestScorerIgnoresUnknownTerms(t *testing.T) {
	s, err := NewScorer(handArtifact())
	require.NoError(t, err)

	with := s.Score("python tutorial", "")
	padded := s.Score("python tutorial", "quantum zebra xylophone")
	assert.Equal(t, with.Probability, padded.Probability)
}

func TestScorerZeroVector(t *testing.T) {
	s, err := NewScorer(handArtifact())
	require.NoError(t, err)

	// nothing in vocabulary: score falls back to the intercept alone
	res := s.Score("quantum zebra", "")
	assert.InDelta(t, 1/(1+math.Exp(0.1)), res.Probability, 1e-12)
	assert.Equal(t, videos.LabelEntertainment, res.Prediction)
}

func TestScorerRepeatedTermCountsOnce(t *testing.T) {
	s, err := NewScorer(handArtifact())
	require.NoError(t, err)

	once := s.Score("python tutorial", "")
	twice := s.Score("python python tutorial tutorial", "")
	assert.Equal(t, once.Probability, twice.Probability)
}

func TestScorerEndToEndLogisticRegression(t *testing.T) {
	sm := trainedPair(t, classify.LogisticRegressionName)
	a, err := FromSavedModel(sm)
	require.NoError(t, err)
	s, err := NewScorer(a)
	require.NoError(t, err)

	edu := s.Score("Python Tutorial for Beginners", "learn programming")
	ent := s.Score("Funny Cat Compilation", "try not to laugh")

	assert.Equal(t, videos.LabelEducational, edu.Prediction)
	assert.Equal(t, videos.LabelEntertainment, ent.Prediction)
	for _, r := range []Result{edu, ent} {
		assert.True(t, r.Probability >= 0 && r.Probability <= 1)
		assert.True(t, r.Confidence >= 0 && r.Confidence <= 1)
	}
}

func TestScorerEndToEndNaiveBayes(t *testing.T) {
	sm := trainedPair(t, classify.NaiveBayesName)
	a, err := FromSavedModel(sm)
	require.NoError(t, err)
	s, err := NewScorer(a)
	require.NoError(t, err)

	// the export keeps positive-class parameters only, so absolute
	// probabilities are uncalibrated; the ordering still holds
	edu := s.Score("Python Tutorial for Beginners", "learn programming")
	ent := s.Score("Funny Cat Compilation", "try not to laugh")
	assert.True(t, edu.Probability > ent.Probability,
		"educational %f should outscore entertainment %f", edu.Probability, ent.Probability)
}

func TestNewScorerRejectsUnknownType(t *testing.T) {
	_, err := NewScorer(&Artifact{Type: "random_forest"})
	assert.Error(t, err)
}
