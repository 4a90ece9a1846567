package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"encuesta-analytics/internal/seed"
	"encuesta-analytics/internal/survey"
)

func main() {
	surveyPath := flag.String("survey", "", "Path to the survey schema JSON file (required)")
	scenario := flag.String("scenario", "", "Scenario preset; empty auto-detects from the survey slug")
	count := flag.Int("count", 100, "Number of response records to generate")
	seedValue := flag.Int64("seed", 0, "Random seed; 0 derives one from the clock")
	outPath := flag.String("out", "./responses.json", "Output file for the generated records")
	flag.Parse()

	if *surveyPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -survey is required")
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*surveyPath)
	if err != nil {
		fmt.Printf("Failed to open survey: %v\n", err)
		os.Exit(1)
	}
	s, err := survey.LoadSurvey(f)
	f.Close()
	if err != nil {
		fmt.Printf("Failed to load survey: %v\n", err)
		os.Exit(1)
	}

	cfg := seed.GeneratorConfig{
		Count:    *count,
		Scenario: *scenario,
		Seed:     *seedValue,
		Now:      time.Now(),
	}

	resolved := seed.ResolveScenario(s, cfg.Scenario)
	fmt.Printf("Generating %d records for %q (scenario: %s) to %s...\n", cfg.Count, s.Slug, resolved.Label, *outPath)

	payloads := seed.Generate(s, cfg)

	out, err := os.Create(*outPath)
	if err != nil {
		fmt.Printf("Failed to create output file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payloads); err != nil {
		fmt.Printf("Failed to write records: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
