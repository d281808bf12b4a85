package main

import (
	"fmt"

	arg "github.com/alexflint/go-arg"
	"github.com/studytube/studytube/classify"
	"github.com/studytube/studytube/videos"
)

func main() {
	args := struct {
		Title       string `arg:"positional,required" help:"video title"`
		Description string `arg:"positional" help:"video description (optional)"`
		Backend     string `arg:"positional" help:"model back end"`
		Models      string `help:"directory of trained models"`
	}{
		Backend: classify.LogisticRegressionName,
		Models:  "models",
	}
	arg.MustParse(&args)

	fmt.Printf("Title: %s\n", args.Title)
	if args.Description != "" {
		desc := args.Description
		if len(desc) > 100 {
			desc = desc[:100] + "..."
		}
		fmt.Printf("Description: %s\n", desc)
	}
	fmt.Printf("Model: %s\n", args.Backend)
	fmt.Println("--------------------------------------------------")

	path := classify.ModelPath(args.Models, args.Backend)
	sm, err := classify.Load(path)
	if err != nil {
		fmt.Printf("Model not found: %s\n", path)
		if available := classify.ListModels(args.Models); len(available) > 0 {
			fmt.Println("Available models:")
			for _, name := range available {
				fmt.Printf("  - %s\n", name)
			}
		} else {
			fmt.Println("Train models first with: train-model")
		}
		return
	}

	combined := videos.Video{Title: args.Title, Description: args.Description}.CombinedText()
	p := sm.Model.PredictProba(sm.Vectorizer.Transform(combined))
	prediction := videos.LabelEntertainment
	if p > 0.5 {
		prediction = videos.LabelEducational
	}

	fmt.Printf("\nPrediction: %s\n", videos.LabelName(prediction))
	fmt.Printf("Confidence: %.2f%%\n", p*100)
}
