package analytics

import (
	"encuesta-analytics/internal/survey"
)

// DefaultDemoCount is the dataset size used when the caller does not ask
// for a specific one.
const DefaultDemoCount = 100

// Generator produces synthetic response payloads for a survey. The engine
// treats it as a black box: how records are fabricated is the producer's
// business, the point is that demo data flows through the exact same
// pipeline as live data.
type Generator func(s *survey.Survey, count int, scenario string) []survey.ResponsePayload

// DemoOptions selects the dataset size and the scenario hint handed to the
// generator.
type DemoOptions struct {
	Count    int
	Scenario string
}

// DemoDataset is a generated record set kept around so the caller can
// re-filter and re-aggregate without regenerating.
type DemoDataset struct {
	Payloads []survey.ResponsePayload
}

// GenerateDemoDataset runs the generator once for the survey.
func GenerateDemoDataset(s *survey.Survey, generate Generator, opts DemoOptions) DemoDataset {
	count := opts.Count
	if count <= 0 {
		count = DefaultDemoCount
	}
	return DemoDataset{Payloads: generate(s, count, opts.Scenario)}
}

// BuildDemoAnalytics aggregates a demo dataset through the live pipeline.
func BuildDemoAnalytics(s *survey.Survey, dataset DemoDataset, filters Filters) Result {
	return BuildAnalytics(s, dataset.Payloads, filters)
}
