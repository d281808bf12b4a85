package text

import "strings"

// NGrams constructs the n-grams (of order n) for the given token stream.
// Each n-gram is returned as its tokens joined by single spaces. Returns
// nil when the stream is shorter than n.
func NGrams(n int, toks []string) []string {
	if n < 1 || len(toks) < n {
		return nil
	}
	grams := make([]string, 0, len(toks)-n+1)
	for i := 0; i+n <= len(toks); i++ {
		grams = append(grams, strings.Join(toks[i:i+n], " "))
	}
	return grams
}

// Terms returns every n-gram of order minN through maxN for the given
// token stream, lower orders first. This is the term stream the
// vectorizer and the exported scorer both consume; the two must stay in
// lockstep or vocabulary lookups silently drift.
func Terms(minN, maxN int, toks []string) []string {
	var terms []string
	for n := minN; n <= maxN; n++ {
		terms = append(terms, NGrams(n, toks)...)
	}
	return terms
}
