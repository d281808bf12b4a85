package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	arg "github.com/alexflint/go-arg"
	"github.com/studytube/studytube/collect"
	"github.com/studytube/studytube/videos"
)

func fail(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	args := struct {
		Count   int    `help:"number of videos to collect"`
		APIKey  string `arg:"--api-key" help:"YouTube Data API key (optional)"`
		Queries string `help:"YAML file with query lists (optional)"`
		Out     string `help:"labeled CSV path"`
		RawDir  string `arg:"--raw-dir" help:"raw fetch cache directory"`
	}{
		Count:  100,
		Out:    "data/labeled/videos.csv",
		RawDir: "data/raw",
	}
	arg.MustParse(&args)

	if args.APIKey == "" {
		// no key: seed a template CSV for manual labeling instead
		created, err := collect.WriteTemplateCSV(args.Out)
		fail(err)
		if !created {
			fmt.Printf("%s already exists. Add more rows manually.\n", args.Out)
			return
		}
		fmt.Printf("Created template CSV at %s\n", args.Out)
		fmt.Println("Please manually add video data with labels:")
		fmt.Println("  - Label 1 = Educational")
		fmt.Println("  - Label 0 = Entertainment")
		return
	}

	queries, err := collect.LoadQueries(args.Queries)
	fail(err)

	cache, err := collect.OpenRawCache(args.RawDir)
	if err != nil {
		log.Printf("Raw cache unavailable: %v", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	col := &collect.Collector{
		Client: collect.NewClient(args.APIKey),
		Cache:  cache,
	}

	perQuery := args.Count / (len(queries.Educational) + len(queries.Entertainment))
	if perQuery < 1 {
		perQuery = 1
	}

	vids, err := col.Collect(context.Background(), queries, perQuery)
	if err != nil {
		fmt.Printf("Collection failed: %v\n", err)
		return
	}

	fail(os.MkdirAll(filepath.Dir(args.Out), 0755))
	fail(videos.WriteCSV(args.Out, vids))

	var edu, ent int
	for _, v := range vids {
		if v.Label == videos.LabelEducational {
			edu++
		} else {
			ent++
		}
	}
	fmt.Printf("Collected %d educational and %d entertainment videos\n", edu, ent)
	fmt.Printf("Saved to %s\n", args.Out)
}
