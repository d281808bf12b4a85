// Package tfidf implements the TF-IDF vectorizer shared by every
// classifier back end. A Vectorizer is fit exactly once, on the training
// split, and its state (vocabulary and IDF weights) is frozen from then
// on: the test split and every later prediction go through Transform
// against that same state, never through a refit.
package tfidf

import (
	"math"
	"sort"

	"github.com/studytube/studytube/text"
)

// Default fitting parameters: unigrams and bigrams, vocabulary capped at
// the 5000 most frequent terms.
const (
	DefaultMaxFeatures = 5000
	DefaultNGramMin    = 1
	DefaultNGramMax    = 2
)

// Vectorizer holds the frozen vectorization state. All fields are
// exported so the state survives gob round trips with the persisted
// models.
type Vectorizer struct {
	// Vocabulary maps a term (unigram or bigram) to its feature index.
	Vocabulary map[string]int
	// IDF holds the inverse-document-frequency weight per feature,
	// indexed like Vocabulary.
	IDF []float64

	MaxFeatures int
	NGramMin    int
	NGramMax    int
}

// Fit learns a vocabulary and IDF weights from the given documents.
// Vocabulary selection keeps the MaxFeatures terms with the highest total
// corpus frequency, breaking ties alphabetically, and assigns feature
// indices in alphabetical term order. Both rules make refitting the same
// corpus reproduce the identical state.
func Fit(docs []string, maxFeatures, ngramMin, ngramMax int) *Vectorizer {
	termCounts := make(map[string]int)
	docCounts := make(map[string]int)
	for _, doc := range docs {
		terms := text.Terms(ngramMin, ngramMax, text.Tokenize(doc))
		seen := make(map[string]struct{})
		for _, t := range terms {
			termCounts[t]++
			if _, dup := seen[t]; !dup {
				docCounts[t]++
				seen[t] = struct{}{}
			}
		}
	}

	selected := selectVocabulary(termCounts, maxFeatures)

	v := &Vectorizer{
		Vocabulary:  make(map[string]int, len(selected)),
		IDF:         make([]float64, len(selected)),
		MaxFeatures: maxFeatures,
		NGramMin:    ngramMin,
		NGramMax:    ngramMax,
	}
	n := float64(len(docs))
	for i, term := range selected {
		v.Vocabulary[term] = i
		// smooth idf: pretend one extra document contains every term
		v.IDF[i] = math.Log((1+n)/(1+float64(docCounts[term]))) + 1
	}
	return v
}

// selectVocabulary returns the terms that make the cut, sorted
// alphabetically for index assignment.
func selectVocabulary(termCounts map[string]int, maxFeatures int) []string {
	terms := make([]string, 0, len(termCounts))
	for t := range termCounts {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if termCounts[terms[i]] != termCounts[terms[j]] {
			return termCounts[terms[i]] > termCounts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if maxFeatures > 0 && len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)
	return terms
}

// NumFeatures returns the size of the learned feature space.
func (v *Vectorizer) NumFeatures() int {
	return len(v.IDF)
}

// Transform vectorizes one document against the frozen state: term
// counts weighted by IDF, L2-normalized. Terms outside the vocabulary
// contribute nothing.
func (v *Vectorizer) Transform(doc string) []float64 {
	feats := make([]float64, len(v.IDF))
	terms := text.Terms(v.NGramMin, v.NGramMax, text.Tokenize(doc))
	for _, t := range terms {
		if idx, exists := v.Vocabulary[t]; exists {
			feats[idx] += v.IDF[idx]
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

// TransformAll vectorizes a batch of documents.
func (v *Vectorizer) TransformAll(docs []string) [][]float64 {
	X := make([][]float64, len(docs))
	for i, doc := range docs {
		X[i] = v.Transform(doc)
	}
	return X
}
