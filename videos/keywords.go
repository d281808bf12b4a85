package videos

import (
	"strings"

	"github.com/montanaflynn/stats"
)

// Fixed keyword lists for the informational per-row counts. These counts
// are reported in the dataset summary but are never fed into the
// vectorizer: the exported models see TF-IDF features only.
var (
	eduKeywords = []string{
		"tutorial", "lesson", "course", "learn", "explain", "guide",
		"how to", "introduction", "basics", "advanced", "concept",
	}
	entKeywords = []string{
		"funny", "comedy", "prank", "fail", "compilation", "reaction",
		"vlog", "challenge", "gameplay", "music video", "song",
	}
)

// RowStats holds the informational features computed for a single example.
type RowStats struct {
	TitleLength int
	DescLength  int
	WordCount   int
	EduKeywords int
	EntKeywords int
}

// Stats computes the informational features for one example. Keyword
// counts use substring matching against the normalized combined text, so
// "how to" matches inside "how to cook".
func (v Video) Stats() RowStats {
	combined := v.CombinedText()
	return RowStats{
		TitleLength: len(v.Title),
		DescLength:  len(v.Description),
		WordCount:   len(strings.Fields(combined)),
		EduKeywords: countKeywords(combined, eduKeywords),
		EntKeywords: countKeywords(combined, entKeywords),
	}
}

func countKeywords(s string, keywords []string) int {
	var n int
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			n++
		}
	}
	return n
}

// Summary describes a labeled dataset.
type Summary struct {
	Total         int
	Educational   int
	Entertainment int

	MeanWordCount   float64
	MeanEduKeywords float64
	MeanEntKeywords float64
}

// Summarize computes dataset-level stats for the trainer's report.
func Summarize(vids []Video) Summary {
	s := Summary{Total: len(vids)}
	var words, edu, ent []float64
	for _, v := range vids {
		if v.Label == LabelEducational {
			s.Educational++
		} else {
			s.Entertainment++
		}
		rs := v.Stats()
		words = append(words, float64(rs.WordCount))
		edu = append(edu, float64(rs.EduKeywords))
		ent = append(ent, float64(rs.EntKeywords))
	}
	if len(vids) > 0 {
		s.MeanWordCount, _ = stats.Mean(words)
		s.MeanEduKeywords, _ = stats.Mean(edu)
		s.MeanEntKeywords, _ = stats.Mean(ent)
	}
	return s
}
