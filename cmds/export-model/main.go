package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	arg "github.com/alexflint/go-arg"
	"github.com/studytube/studytube/classify"
	"github.com/studytube/studytube/export"
)

func fail(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	args := struct {
		Model  string `help:"back end to export: naive_bayes, logistic_regression or random_forest"`
		Models string `help:"directory of trained models"`
		Out    string `help:"artifact output path"`
	}{
		Model:  classify.LogisticRegressionName,
		Models: "models",
		Out:    "models/model_for_extension.json",
	}
	arg.MustParse(&args)

	switch args.Model {
	case classify.NaiveBayesName, classify.LogisticRegressionName, classify.RandomForestName:
	default:
		fmt.Printf("Unknown model type: %s\n", args.Model)
		return
	}

	path := classify.ModelPath(args.Models, args.Model)
	sm, err := classify.Load(path)
	if err != nil {
		fmt.Printf("Model not found: %s\n", path)
		fmt.Println("Train models first with: train-model")
		return
	}

	artifact, err := export.FromSavedModel(sm)
	if err != nil {
		fmt.Printf("Export failed: %v\n", err)
		return
	}

	fail(artifact.Write(args.Out))

	info, err := os.Stat(args.Out)
	fail(err)
	fmt.Printf("Model exported to %s\n", args.Out)
	fmt.Printf("File size: %.2f KB\n", float64(info.Size())/1024)

	loaderPath := filepath.Join(filepath.Dir(args.Out), "model_loader.js")
	fail(export.WriteJSLoader(loaderPath))
	fmt.Printf("JavaScript model loader created: %s\n", loaderPath)
}
