package export

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// jsLoader is the extension-side scorer. It must implement the exact
// pipeline in Scorer.vectorize and Scorer.Score against the JSON
// artifact; the two are pinned together by the tests in this package.
const jsLoader = `// Loads the exported classifier artifact and scores videos in-page.

class VideoClassifier {
    constructor(modelData) {
        this.modelType = modelData.type;
        this.vocabulary = modelData.vocabulary;
        this.idf = modelData.idf;
        this.maxFeatures = modelData.max_features;
        this.ngramRange = modelData.ngram_range;

        if (this.modelType === 'logistic_regression') {
            this.coefficients = modelData.coefficients;
            this.intercept = modelData.intercept;
        } else if (this.modelType === 'naive_bayes') {
            this.featureLogProb = modelData.feature_log_prob;
            this.classLogPrior = modelData.class_log_prior;
        }
    }

    // Must match the training-side normalization exactly.
    preprocessText(text) {
        return text.toLowerCase()
            .replace(/[^a-z0-9\s]/g, '')
            .replace(/\s+/g, ' ')
            .trim();
    }

    extractNgrams(text, n) {
        const words = text.split(' ');
        const ngrams = [];
        for (let i = 0; i <= words.length - n; i++) {
            ngrams.push(words.slice(i, i + n).join(' '));
        }
        return ngrams;
    }

    // Presence times IDF per vocabulary term, L2-normalized.
    vectorize(text) {
        const processed = this.preprocessText(text);
        const features = new Array(this.idf.length).fill(0);

        const ngrams = [];
        for (let n = this.ngramRange[0]; n <= this.ngramRange[1]; n++) {
            ngrams.push(...this.extractNgrams(processed, n));
        }

        ngrams.forEach(ngram => {
            const index = this.vocabulary[ngram];
            if (index !== undefined) {
                features[index] = this.idf[index];
            }
        });

        const norm = Math.sqrt(features.reduce((sum, x) => sum + x * x, 0));
        if (norm > 0) {
            return features.map(x => x / norm);
        }
        return features;
    }

    predict(title, description = '') {
        const features = this.vectorize(description ? title + ' ' + description : title);

        let score;
        if (this.modelType === 'logistic_regression') {
            score = this.intercept;
            for (let i = 0; i < features.length; i++) {
                score += this.coefficients[i] * features[i];
            }
        } else if (this.modelType === 'naive_bayes') {
            // Positive-class parameters only; uncalibrated.
            score = this.classLogPrior;
            for (let i = 0; i < features.length; i++) {
                if (features[i] > 0) {
                    score += this.featureLogProb[i];
                }
            }
        } else {
            return null;
        }

        const probability = 1 / (1 + Math.exp(-score));
        return {
            prediction: probability > 0.5 ? 1 : 0,
            probability: probability,
            confidence: Math.abs(probability - 0.5) * 2
        };
    }
}

async function loadVideoClassifier() {
    try {
        const response = await fetch(chrome.runtime.getURL('models/model_for_extension.json'));
        const modelData = await response.json();
        return new VideoClassifier(modelData);
    } catch (error) {
        console.error('Error loading model:', error);
        return null;
    }
}

if (typeof module !== 'undefined' && module.exports) {
    module.exports = { VideoClassifier, loadVideoClassifier };
}
`

// WriteJSLoader emits the JavaScript companion next to the artifact.
func WriteJSLoader(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "creating loader dir for %s", path)
	}
	if err := ioutil.WriteFile(path, []byte(jsLoader), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
