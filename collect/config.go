package collect

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Queries holds the search phrases for each class.
type Queries struct {
	Educational   []string `yaml:"educational"`
	Entertainment []string `yaml:"entertainment"`
}

// DefaultQueries returns the built-in query lists.
func DefaultQueries() Queries {
	return Queries{
		Educational: []string{
			"python tutorial",
			"javascript course",
			"machine learning explained",
			"calculus lesson",
			"physics lecture",
			"history documentary",
			"programming tutorial",
			"math tutorial",
			"chemistry explained",
		},
		Entertainment: []string{
			"funny videos",
			"comedy compilation",
			"music video",
			"gaming highlights",
			"prank videos",
			"vlog",
			"challenge video",
			"reaction video",
		},
	}
}

// LoadQueries reads query lists from a YAML file, falling back to the
// defaults when path is empty or does not exist. A list left empty in
// the file keeps its default.
func LoadQueries(path string) (Queries, error) {
	q := DefaultQueries()
	if path == "" {
		return q, nil
	}

	buf, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return q, nil
	}
	if err != nil {
		return q, errors.Wrapf(err, "reading %s", path)
	}

	var loaded Queries
	if err := yaml.Unmarshal(buf, &loaded); err != nil {
		return q, errors.Wrapf(err, "parsing %s", path)
	}
	if len(loaded.Educational) > 0 {
		q.Educational = loaded.Educational
	}
	if len(loaded.Entertainment) > 0 {
		q.Entertainment = loaded.Entertainment
	}
	return q, nil
}
