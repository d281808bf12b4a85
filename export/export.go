package export

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/studytube/studytube/classify"
)

// Artifact is the JSON model blob consumed by the browser extension.
// Exactly one of the (Coefficients, Intercept) and (FeatureLogProb,
// ClassLogPrior) pairs is populated, selected by Type.
//
// The naive bayes export carries only the positive-class parameters, so
// its scores are an uncalibrated approximation of the full posterior.
type Artifact struct {
	Type           string         `json:"type"`
	Coefficients   []float64      `json:"coefficients,omitempty"`
	Intercept      *float64       `json:"intercept,omitempty"`
	FeatureLogProb []float64      `json:"feature_log_prob,omitempty"`
	ClassLogPrior  *float64       `json:"class_log_prior,omitempty"`
	Vocabulary     map[string]int `json:"vocabulary"`
	IDF            []float64      `json:"idf"`
	MaxFeatures    int            `json:"max_features"`
	NGramRange     [2]int         `json:"ngram_range"`
}

// FromSavedModel flattens a persisted (vectorizer, model) pair into the
// extension artifact. Only the linear back ends have a coefficient form
// the extension can score; the rest are rejected.
func FromSavedModel(sm *classify.SavedModel) (*Artifact, error) {
	a := &Artifact{
		Vocabulary:  sm.Vectorizer.Vocabulary,
		IDF:         sm.Vectorizer.IDF,
		MaxFeatures: sm.Vectorizer.MaxFeatures,
		NGramRange:  [2]int{sm.Vectorizer.NGramMin, sm.Vectorizer.NGramMax},
	}

	switch m := sm.Model.(type) {
	case *classify.LogisticRegression:
		a.Type = classify.LogisticRegressionName
		a.Coefficients = m.Coefs
		intercept := m.Intercept
		a.Intercept = &intercept
	case *classify.NaiveBayes:
		a.Type = classify.NaiveBayesName
		a.FeatureLogProb = m.FeatureLogProb[1]
		prior := m.ClassLogPrior[1]
		a.ClassLogPrior = &prior
	default:
		return nil, errors.Errorf("%s is unsupported for export", sm.Model.Name())
	}
	return a, nil
}

// Marshal renders the artifact as the extension expects it: 2-space
// indented, object keys sorted, so re-exporting the same pair is
// byte-identical.
func (a *Artifact) Marshal() ([]byte, error) {
	buf, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling model artifact")
	}
	return append(buf, '\n'), nil
}

// Write stores the artifact at path, creating parent directories.
func (a *Artifact) Write(path string) error {
	buf, err := a.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "creating export dir for %s", path)
	}
	if err := ioutil.WriteFile(path, buf, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// ReadArtifact loads a previously exported artifact.
func ReadArtifact(path string) (*Artifact, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	var a Artifact
	if err := json.Unmarshal(buf, &a); err != nil {
		return nil, errors.Wrapf(err, "unmarshaling %s", path)
	}
	return &a, nil
}
