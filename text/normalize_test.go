package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	exp := "python tutorial for beginners"
	act := Normalize("Python Tutorial for Beginners!")
	assert.Equal(t, exp, act)

	exp = "dont miss this 10 tips"
	act = Normalize("Don't miss this: 10 tips!!!")
	assert.Equal(t, exp, act)

	exp = "funny cat compilation"
	act = Normalize("  Funny\t\tCat   Compilation\n")
	assert.Equal(t, exp, act)

	assert.Equal(t, "", Normalize("¯\\_(ツ)_/¯"))
	assert.Equal(t, "", Normalize(""))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Python Tutorial for Beginners",
		"Best FUNNY cat videos of 2024!!",
		"Machine Learning — Explained",
		"   lots\tof\nwhitespace   ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "normalizing twice must match normalizing once for %q", in)
	}
}

func TestTokenize(t *testing.T) {
	toks := Tokenize("Learn Python programming, from scratch.")
	assert.Equal(t, []string{"learn", "python", "programming", "from", "scratch"}, toks)

	assert.Empty(t, Tokenize("!!!"))
}

func TestCombine(t *testing.T) {
	assert.Equal(t, "a title a description", Combine("a title", "a description"))
	assert.Equal(t, "a title", Combine("a title", ""))
}
