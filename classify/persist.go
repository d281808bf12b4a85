package classify

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/studytube/studytube/tfidf"
)

func init() {
	gob.Register(&NaiveBayes{})
	gob.Register(&LogisticRegression{})
	gob.Register(&RandomForest{})
	gob.Register(&NeuralNetwork{})
}

// SavedModel is the persisted (vectorizer, model) pair. The gob encoding
// is opaque to everything outside this package's Load path; the extension
// export is the only cross-language artifact.
type SavedModel struct {
	Backend    string
	Model      Model
	Vectorizer *tfidf.Vectorizer
}

// ModelPath returns the conventional location of a persisted pair.
func ModelPath(dir, backend string) string {
	return filepath.Join(dir, backend+"_model.gob")
}

// Save writes the pair to path, creating parent directories as needed.
func Save(path string, sm *SavedModel) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "creating model dir for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(sm); err != nil {
		return errors.Wrapf(err, "encoding model to %s", path)
	}
	return nil
}

// Load reads a persisted pair back.
func Load(path string) (*SavedModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	var sm SavedModel
	if err := gob.NewDecoder(f).Decode(&sm); err != nil {
		return nil, errors.Wrapf(err, "decoding model from %s", path)
	}
	return &sm, nil
}

// ListModels returns the backend names that have a persisted pair in dir.
func ListModels(dir string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, "*_model.gob"))
	if err != nil {
		return nil
	}
	var backends []string
	for _, m := range matches {
		base := filepath.Base(m)
		backends = append(backends, base[:len(base)-len("_model.gob")])
	}
	return backends
}
