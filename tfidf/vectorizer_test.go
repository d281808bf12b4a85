package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var corpus = []string{
	"python tutorial",
	"funny cats",
	"python basics",
}

func TestFitVocabulary(t *testing.T) {
	v := Fit(corpus, DefaultMaxFeatures, 1, 2)

	// 5 unigrams + 3 bigrams
	assert.Equal(t, 8, v.NumFeatures())
	assert.Len(t, v.IDF, len(v.Vocabulary))

	// indices are assigned in alphabetical term order
	idxBasics, exists := v.Vocabulary["basics"]
	require.True(t, exists)
	assert.Equal(t, 0, idxBasics)
	_, exists = v.Vocabulary["python tutorial"]
	assert.True(t, exists)
}

func TestFitIDFWeights(t *testing.T) {
	v := Fit(corpus, DefaultMaxFeatures, 1, 2)

	// "python" appears in 2 of 3 docs, "tutorial" in 1 of 3
	expPython := math.Log(4.0/3.0) + 1
	expTutorial := math.Log(4.0/2.0) + 1

	assert.InDelta(t, expPython, v.IDF[v.Vocabulary["python"]], 1e-12)
	assert.InDelta(t, expTutorial, v.IDF[v.Vocabulary["tutorial"]], 1e-12)
}

func TestFitMaxFeatures(t *testing.T) {
	v := Fit(corpus, 3, 1, 2)

	// "python" has the highest corpus frequency; the remaining slots go
	// to the alphabetically first of the count-1 terms.
	assert.Equal(t, 3, v.NumFeatures())
	assert.Equal(t, map[string]int{"basics": 0, "cats": 1, "python": 2}, v.Vocabulary)
}

func TestTransformL2Normalized(t *testing.T) {
	v := Fit(corpus, DefaultMaxFeatures, 1, 2)

	feats := v.Transform("Python Tutorial for Beginners")
	var norm float64
	for _, f := range feats {
		norm += f * f
	}
	assert.InDelta(t, 1.0, norm, 1e-12)
}

func TestTransformOutOfVocabulary(t *testing.T) {
	v := Fit(corpus, DefaultMaxFeatures, 1, 2)

	// fully out-of-vocabulary text vectorizes to the zero vector
	feats := v.Transform("quantum chromodynamics")
	for _, f := range feats {
		assert.Zero(t, f)
	}

	// unknown tokens alongside known ones contribute nothing
	withOOV := v.Transform("python zzzzz")
	onlyKnown := v.Transform("python")
	assert.Equal(t, onlyKnown, withOOV)
}

func TestTransformDoesNotRefit(t *testing.T) {
	v := Fit(corpus, DefaultMaxFeatures, 1, 2)

	vocabBefore := make(map[string]int, len(v.Vocabulary))
	for term, idx := range v.Vocabulary {
		vocabBefore[term] = idx
	}
	idfBefore := append([]float64(nil), v.IDF...)

	v.Transform("some never seen before terms")
	v.TransformAll([]string{"more unseen text", "python tutorial"})

	assert.Equal(t, vocabBefore, v.Vocabulary)
	assert.Equal(t, idfBefore, v.IDF)
}

func TestFitDeterministic(t *testing.T) {
	v1 := Fit(corpus, DefaultMaxFeatures, 1, 2)
	v2 := Fit(corpus, DefaultMaxFeatures, 1, 2)
	assert.Equal(t, v1, v2)
}
