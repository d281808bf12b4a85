package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNGrams(t *testing.T) {
	toks := []string{"python", "tutorial", "for", "beginners"}

	assert.Equal(t, []string{"python", "tutorial", "for", "beginners"}, NGrams(1, toks))
	assert.Equal(t, []string{"python tutorial", "tutorial for", "for beginners"}, NGrams(2, toks))
	assert.Nil(t, NGrams(5, toks))
	assert.Nil(t, NGrams(0, toks))
	assert.Nil(t, NGrams(1, nil))
}

func TestTerms(t *testing.T) {
	toks := []string{"funny", "cat", "compilation"}
	exp := []string{
		"funny", "cat", "compilation",
		"funny cat", "cat compilation",
	}
	assert.Equal(t, exp, Terms(1, 2, toks))

	// unigrams only
	assert.Equal(t, []string{"funny", "cat", "compilation"}, Terms(1, 1, toks))
}
