package classify

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "models")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	v, X := fixtureFeatures(t)
	lr := NewLogisticRegression()
	lr.Fit(X, fixtureLabels)

	path := ModelPath(dir, LogisticRegressionName)
	require.NoError(t, Save(path, &SavedModel{
		Backend:    LogisticRegressionName,
		Model:      lr,
		Vectorizer: v,
	}))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, LogisticRegressionName, loaded.Backend)
	assert.Equal(t, v.Vocabulary, loaded.Vectorizer.Vocabulary)

	// the reloaded pair must reproduce the original predictions exactly
	for _, doc := range fixtureDocs {
		exp := lr.PredictProba(v.Transform(doc))
		act := loaded.Model.PredictProba(loaded.Vectorizer.Transform(doc))
		assert.Equal(t, exp, act)
	}
}

func TestSaveLoadNaiveBayes(t *testing.T) {
	dir, err := ioutil.TempDir("", "models")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	v, X := fixtureFeatures(t)
	nb := NewNaiveBayes()
	nb.Fit(X, fixtureLabels)

	path := ModelPath(dir, NaiveBayesName)
	require.NoError(t, Save(path, &SavedModel{
		Backend:    NaiveBayesName,
		Model:      nb,
		Vectorizer: v,
	}))

	loaded, err := Load(path)
	require.NoError(t, err)
	_, isNB := loaded.Model.(*NaiveBayes)
	assert.True(t, isNB)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does/not/exist.gob")
	assert.Error(t, err)
}

func TestListModels(t *testing.T) {
	dir, err := ioutil.TempDir("", "models")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "naive_bayes_model.gob"), []byte{}, 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "logistic_regression_model.gob"), []byte{}, 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte{}, 0644))

	backends := ListModels(dir)
	assert.ElementsMatch(t, []string{"naive_bayes", "logistic_regression"}, backends)
}
