package export

import (
	"math"

	"github.com/pkg/errors"
	"github.com/studytube/studytube/classify"
	"github.com/studytube/studytube/text"
	"github.com/studytube/studytube/videos"
)

// Result is one scored video.
type Result struct {
	Prediction  int     // videos.LabelEducational or LabelEntertainment
	Probability float64 // probability of the educational class
	Confidence  float64 // distance from the decision boundary, scaled to [0,1]
}

// Scorer runs the exported artifact the same way the extension's
// JavaScript loader does. Unlike the training-side vectorizer it weights
// each vocabulary term by bare presence times IDF, ignoring repeat
// counts; the two sides must stay in lockstep, so any change here needs
// a matching change in the emitted loader.
type Scorer struct {
	artifact *Artifact
}

// NewScorer wraps an artifact for scoring.
func NewScorer(a *Artifact) (*Scorer, error) {
	switch a.Type {
	case classify.LogisticRegressionName, classify.NaiveBayesName:
	default:
		return nil, errors.Errorf("artifact type %q is not scoreable", a.Type)
	}
	return &Scorer{artifact: a}, nil
}

// Score classifies a title plus optional description.
func (s *Scorer) Score(title, description string) Result {
	feats := s.vectorize(text.Combine(title, description))

	var z float64
	switch s.artifact.Type {
	case classify.LogisticRegressionName:
		for i, f := range feats {
			z += s.artifact.Coefficients[i] * f
		}
		z += *s.artifact.Intercept
	case classify.NaiveBayesName:
		z = *s.artifact.ClassLogPrior
		for i, f := range feats {
			if f > 0 {
				z += s.artifact.FeatureLogProb[i]
			}
		}
	}

	p := 1 / (1 + math.Exp(-z))
	pred := videos.LabelEntertainment
	if p > 0.5 {
		pred = videos.LabelEducational
	}
	return Result{
		Prediction:  pred,
		Probability: p,
		Confidence:  math.Abs(p-0.5) * 2,
	}
}

// vectorize is the artifact-side feature pipeline: presence times IDF
// per vocabulary term, then L2 normalization unless the vector is zero.
func (s *Scorer) vectorize(doc string) []float64 {
	a := s.artifact
	feats := make([]float64, len(a.IDF))
	terms := text.Terms(a.NGramRange[0], a.NGramRange[1], text.Tokenize(doc))
	for _, t := range terms {
		if idx, exists := a.Vocabulary[t]; exists {
			feats[idx] = a.IDF[idx]
		}
	}

	var norm float64
	for _, f := range feats {
		norm += f * f
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range feats {
			feats[i] /= norm
		}
	}
	return feats
}
