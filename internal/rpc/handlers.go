package rpc

import (
	"encoding/json"
	"fmt"
	"os"

	"encuesta-analytics/internal/analytics"
	"encuesta-analytics/internal/survey"

	"github.com/rs/zerolog/log"
)

func (s *Server) handleLoadSurvey(path string) (interface{}, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open survey file: %w", err)
	}
	defer f.Close()

	loaded, err := survey.LoadSurvey(f)
	if err != nil {
		return nil, err
	}
	s.survey = loaded
	log.Info().Str("slug", loaded.Slug).Int("questions", len(loaded.Questions)).Msg("Survey loaded")

	return map[string]interface{}{
		"slug":      loaded.Slug,
		"titulo":    loaded.Title,
		"preguntas": len(loaded.Questions),
	}, nil
}

func (s *Server) handleLoadResponses(path string) (interface{}, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open responses file: %w", err)
	}
	defer f.Close()

	payloads, err := survey.LoadPayloads(f)
	if err != nil {
		return nil, err
	}
	s.payloads = payloads
	log.Info().Int("records", len(payloads)).Msg("Responses loaded")

	return map[string]interface{}{"records": len(payloads)}, nil
}

func (s *Server) handleGenerateDemo(count int, scenario string) (interface{}, error) {
	if s.survey == nil {
		return nil, fmt.Errorf("no survey loaded; call load_survey first")
	}
	if count <= 0 {
		count = s.cfg.DemoCount
	}
	if scenario == "" {
		scenario = s.cfg.DemoScenario
	}

	dataset := analytics.GenerateDemoDataset(s.survey, s.generate, analytics.DemoOptions{Count: count, Scenario: scenario})
	s.payloads = dataset.Payloads
	log.Info().Int("records", len(dataset.Payloads)).Str("scenario", scenario).Msg("Demo dataset generated")

	return map[string]interface{}{
		"records":  len(dataset.Payloads),
		"scenario": scenario,
	}, nil
}

func (s *Server) requireDataset() error {
	if s.survey == nil {
		return fmt.Errorf("no survey loaded; call load_survey first")
	}
	if s.payloads == nil {
		return fmt.Errorf("no responses loaded; call load_responses or generate_demo first")
	}
	return nil
}

func (s *Server) handleGetSummary(filters analytics.Filters) (interface{}, error) {
	if err := s.requireDataset(); err != nil {
		return nil, err
	}
	filtered := analytics.ApplyFilters(s.payloads, filters)
	return analytics.BuildSummary(s.survey, filtered), nil
}

func (s *Server) handleGetTimeseries(filters analytics.Filters) (interface{}, error) {
	if err := s.requireDataset(); err != nil {
		return nil, err
	}
	return analytics.BuildTimeseries(analytics.ApplyFilters(s.payloads, filters)), nil
}

func (s *Server) handleGetHeatmap(filters analytics.Filters) (interface{}, error) {
	if err := s.requireDataset(); err != nil {
		return nil, err
	}
	return analytics.BuildHeatmap(analytics.ApplyFilters(s.payloads, filters)), nil
}

func (s *Server) handleMergeSummary(primaryArg, fallbackArg interface{}) (interface{}, error) {
	primary, err := summaryFromArg(primaryArg)
	if err != nil {
		return nil, fmt.Errorf("primary: %w", err)
	}
	fallback, err := summaryFromArg(fallbackArg)
	if err != nil {
		return nil, fmt.Errorf("fallback: %w", err)
	}
	merged := analytics.MergeSummary(primary, fallback)
	if merged == nil {
		return map[string]interface{}{}, nil
	}
	return merged, nil
}

// summaryFromArg round-trips a loosely-typed tool argument into the merge
// document form, keeping omitted scalars distinguishable from zeros. A
// missing argument is valid: the reconciler treats absence as input.
func summaryFromArg(arg interface{}) (*analytics.SummaryDocument, error) {
	if arg == nil {
		return nil, nil
	}
	raw, err := json.Marshal(arg)
	if err != nil {
		return nil, err
	}
	var doc analytics.SummaryDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("not a summary document: %w", err)
	}
	return &doc, nil
}
