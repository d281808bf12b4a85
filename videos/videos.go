// Package videos defines the labeled training example and its on-disk CSV
// form, which is the only interface between the collector and the trainer.
package videos

import (
	"math/rand"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/studytube/studytube/text"
)

// Labels for the two classes.
const (
	LabelEntertainment = 0
	LabelEducational   = 1
)

// Video is one labeled example. Label is the ground truth class
// (1 = educational, 0 = entertainment). Rows are immutable once written.
type Video struct {
	VideoID     string `csv:"video_id"`
	Title       string `csv:"title"`
	Description string `csv:"description"`
	Label       int    `csv:"label"`
	URL         string `csv:"url"`
}

// CombinedText returns the normalized title+description text that gets
// vectorized.
func (v Video) CombinedText() string {
	return text.Normalize(text.Combine(v.Title, v.Description))
}

// LabelName returns the human readable class name for a label.
func LabelName(label int) string {
	if label == LabelEducational {
		return "Educational"
	}
	return "Entertainment"
}

// ReadCSV loads labeled examples from a CSV with columns
// video_id,title,description,label,url.
func ReadCSV(path string) ([]Video, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	var vids []Video
	if err := gocsv.UnmarshalFile(f, &vids); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return vids, nil
}

// WriteCSV writes labeled examples to path, overwriting any existing file.
func WriteCSV(path string, vids []Video) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&vids, f); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// Split partitions examples into train and test sets, stratified by label
// so both sets keep the class balance of the full set. The seed fixes the
// shuffle, so the same inputs always produce the same split.
func Split(vids []Video, testPct float64, seed int64) (train, test []Video) {
	byLabel := make(map[int][]Video)
	for _, v := range vids {
		byLabel[v.Label] = append(byLabel[v.Label], v)
	}

	var labels []int
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	rnd := rand.New(rand.NewSource(seed))
	for _, label := range labels {
		group := byLabel[label]
		perm := rnd.Perm(len(group))
		cutoff := int(testPct * float64(len(group)))
		for i, idx := range perm {
			if i < cutoff {
				test = append(test, group[idx])
			} else {
				train = append(train, group[idx])
			}
		}
	}
	return train, test
}
