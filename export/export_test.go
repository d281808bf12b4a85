package export

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studytube/studytube/classify"
	"github.com/studytube/studytube/tfidf"
)

var (
	trainDocs = []string{
		"python tutorial for beginners learn programming",
		"javascript course learn javascript from scratch",
		"machine learning explained full course",
		"calculus lesson introduction to derivatives",
		"funny cat compilation best funny cats",
		"comedy compilation try not to laugh",
		"epic fail compilation funny moments",
		"prank videos gone wrong funny reactions",
	}
	trainLabels = []int{1, 1, 1, 1, 0, 0, 0, 0}
)

func trainedPair(t *testing.T, backend string) *classify.SavedModel {
	t.Helper()
	v := tfidf.Fit(trainDocs, tfidf.DefaultMaxFeatures, 1, 2)
	X := v.TransformAll(trainDocs)

	var m classify.Model
	switch backend {
	case classify.LogisticRegressionName:
		m = classify.NewLogisticRegression()
	case classify.NaiveBayesName:
		m = classify.NewNaiveBayes()
	default:
		t.Fatalf("no fixture for backend %s", backend)
	}
	m.Fit(X, trainLabels)
	return &classify.SavedModel{Backend: backend, Model: m, Vectorizer: v}
}

func TestFromSavedModelLogisticRegression(t *testing.T) {
	sm := trainedPair(t, classify.LogisticRegressionName)
	a, err := FromSavedModel(sm)
	require.NoError(t, err)

	assert.Equal(t, classify.LogisticRegressionName, a.Type)
	assert.Len(t, a.Coefficients, sm.Vectorizer.NumFeatures())
	require.NotNil(t, a.Intercept)
	assert.Nil(t, a.FeatureLogProb)
	assert.Nil(t, a.ClassLogPrior)
	assert.Equal(t, [2]int{1, 2}, a.NGramRange)
	assert.Equal(t, sm.Vectorizer.Vocabulary, a.Vocabulary)
}

func TestFromSavedModelNaiveBayes(t *testing.T) {
	sm := trainedPair(t, classify.NaiveBayesName)
	a, err := FromSavedModel(sm)
	require.NoError(t, err)

	assert.Equal(t, classify.NaiveBayesName, a.Type)
	assert.Len(t, a.FeatureLogProb, sm.Vectorizer.NumFeatures())
	require.NotNil(t, a.ClassLogPrior)
	assert.Nil(t, a.Coefficients)
	assert.Nil(t, a.Intercept)

	nb := sm.Model.(*classify.NaiveBayes)
	assert.Equal(t, nb.FeatureLogProb[1], a.FeatureLogProb)
	assert.Equal(t, nb.ClassLogPrior[1], *a.ClassLogPrior)
}

func TestFromSavedModelUnsupported(t *testing.T) {
	v := tfidf.Fit(trainDocs, tfidf.DefaultMaxFeatures, 1, 2)
	rf := classify.NewRandomForest()
	rf.Fit(v.TransformAll(trainDocs), trainLabels)

	_, err := FromSavedModel(&classify.SavedModel{
		Backend:    classify.RandomForestName,
		Model:      rf,
		Vectorizer: v,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported for export")
}

func TestMarshalDeterministic(t *testing.T) {
	sm := trainedPair(t, classify.LogisticRegressionName)
	a, err := FromSavedModel(sm)
	require.NoError(t, err)

	first, err := a.Marshal()
	require.NoError(t, err)
	second, err := a.Marshal()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "export")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	sm := trainedPair(t, classify.LogisticRegressionName)
	a, err := FromSavedModel(sm)
	require.NoError(t, err)

	path := filepath.Join(dir, "model_for_extension.json")
	require.NoError(t, a.Write(path))

	back, err := ReadArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, a.Type, back.Type)
	assert.Equal(t, a.Coefficients, back.Coefficients)
	assert.Equal(t, *a.Intercept, *back.Intercept)
	assert.Equal(t, a.Vocabulary, back.Vocabulary)
	assert.Equal(t, a.IDF, back.IDF)
	assert.Equal(t, a.NGramRange, back.NGramRange)

	// re-exporting the same pair must reproduce the file byte for byte
	buf1, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, a.Write(path))
	buf2, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf1, buf2)
}

func TestWriteJSLoader(t *testing.T) {
	dir, err := ioutil.TempDir("", "export")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "model_loader.js")
	require.NoError(t, WriteJSLoader(path))

	buf, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(buf), "class VideoClassifier")
	assert.Contains(t, string(buf), "loadVideoClassifier")
}
