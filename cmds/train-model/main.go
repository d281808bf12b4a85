package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	arg "github.com/alexflint/go-arg"
	"github.com/studytube/studytube/classify"
	"github.com/studytube/studytube/tfidf"
	"github.com/studytube/studytube/videos"
)

const testFraction = 0.2

func fail(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	args := struct {
		CSV    string `help:"labeled videos CSV"`
		Models string `help:"output directory for trained models"`
		Neural bool   `help:"also train the neural network back end"`
	}{
		CSV:    "data/labeled/videos.csv",
		Models: "models",
	}
	arg.MustParse(&args)

	if _, err := os.Stat(args.CSV); os.IsNotExist(err) {
		fmt.Printf("Error: %s not found!\n", args.CSV)
		fmt.Println("Run collect-videos first to create the data file.")
		return
	}

	fmt.Printf("Loading data from %s...\n", args.CSV)
	vids, err := videos.ReadCSV(args.CSV)
	fail(err)
	if len(vids) == 0 {
		fmt.Println("Error: no rows in the CSV")
		return
	}

	summary := videos.Summarize(vids)
	fmt.Printf("Loaded %d videos\n", summary.Total)
	fmt.Printf("Educational: %d, Entertainment: %d\n", summary.Educational, summary.Entertainment)
	fmt.Printf("Mean words per video: %.1f (edu keywords %.1f, ent keywords %.1f)\n",
		summary.MeanWordCount, summary.MeanEduKeywords, summary.MeanEntKeywords)

	train, test := videos.Split(vids, testFraction, classify.Seed)
	fmt.Printf("\nTraining set: %d samples\n", len(train))
	fmt.Printf("Test set: %d samples\n", len(test))

	trainDocs := make([]string, len(train))
	trainLabels := make([]int, len(train))
	for i, v := range train {
		trainDocs[i] = v.CombinedText()
		trainLabels[i] = v.Label
	}
	testDocs := make([]string, len(test))
	testLabels := make([]int, len(test))
	for i, v := range test {
		testDocs[i] = v.CombinedText()
		testLabels[i] = v.Label
	}

	// fit once on the train split; the test split only gets transformed
	vectorizer := tfidf.Fit(trainDocs, tfidf.DefaultMaxFeatures, tfidf.DefaultNGramMin, tfidf.DefaultNGramMax)
	X := vectorizer.TransformAll(trainDocs)
	Xtest := vectorizer.TransformAll(testDocs)
	fmt.Printf("\nVocabulary: %d features\n", vectorizer.NumFeatures())

	models := []classify.Model{
		classify.NewNaiveBayes(),
		classify.NewLogisticRegression(),
		classify.NewRandomForest(),
	}
	if args.Neural {
		models = append(models, classify.NewNeuralNetwork())
	}

	var evals []classify.Evaluation
	for _, m := range models {
		fmt.Printf("\n=== Training %s ===\n", m.Name())
		m.Fit(X, trainLabels)

		ev := classify.Evaluate(m, Xtest, testLabels)
		fmt.Print(ev)
		evals = append(evals, ev)

		path := classify.ModelPath(args.Models, m.Name())
		fail(classify.Save(path, &classify.SavedModel{
			Backend:    m.Name(),
			Model:      m,
			Vectorizer: vectorizer,
		}))
		fmt.Printf("Model saved to %s\n", path)
	}

	sort.SliceStable(evals, func(i, j int) bool {
		return evals[i].Accuracy > evals[j].Accuracy
	})

	fmt.Println("\n==================================================")
	fmt.Println("MODEL COMPARISON")
	fmt.Println("==================================================")
	for _, ev := range evals {
		fmt.Printf("%-20s: %.4f\n", ev.Backend, ev.Accuracy)
	}

	fmt.Println("\nRECOMMENDATION:")
	fmt.Printf("Best model: %s (%.4f)\n", evals[0].Backend, evals[0].Accuracy)
	fmt.Println("For the extension, weigh accuracy against artifact size and inference speed.")

	chartPath := filepath.Join(args.Models, "comparison.png")
	if err := classify.WriteComparisonChart(chartPath, evals); err != nil {
		log.Printf("Error writing comparison chart: %v", err)
	} else {
		fmt.Printf("Comparison chart written to %s\n", chartPath)
	}
}
