package analytics

import (
	"fmt"
	"math"

	"encuesta-analytics/internal/survey"
)

// BuildSummary aggregates already-filtered payloads into the summary
// report. Filtering happens exactly once, upstream; total_respuestas is
// always the length of the slice handed in, independent of per-question
// tallies.
func BuildSummary(s *survey.Survey, payloads []survey.ResponsePayload) Summary {
	unique := make(map[string]struct{})
	var completion float64

	for _, payload := range payloads {
		unique[dedupeKey(payload, len(unique))] = struct{}{}
		completion += completionRatio(payload)
	}

	participants := len(unique)
	if participants == 0 {
		participants = len(payloads)
	}
	rate := 0.0
	if len(payloads) > 0 {
		rate = completion / float64(len(payloads))
	}

	return Summary{
		TotalResponses:     len(payloads),
		UniqueParticipants: participants,
		CompletionRate:     rate,
		Questions:          AggregateQuestions(s, payloads),
		Channels:           BuildChannelBreakdown(payloads),
		UTMs:               BuildUTMBreakdown(payloads),
		Demographics:       BuildDemographicBreakdowns(payloads, len(payloads)),
	}
}

// dedupeKey prefers the national id, then the phone. Anonymous records get
// a key derived from the running set size, so two anonymous submissions
// are never the same participant.
func dedupeKey(payload survey.ResponsePayload, seen int) string {
	if dni, ok := cleanPtr(payload.DNI); ok {
		return "dni:" + dni
	}
	if phone, ok := cleanPtr(payload.Phone); ok {
		return "phone:" + phone
	}
	return fmt.Sprintf("anon:%d", seen)
}

// completionRatio treats a record without measurable counts as fully
// completed, and clamps measured ratios into [0, 1].
func completionRatio(payload survey.ResponsePayload) float64 {
	if payload.Metadata == nil || payload.Metadata.TotalQuestions == nil || *payload.Metadata.TotalQuestions <= 0 {
		return 1
	}
	total := *payload.Metadata.TotalQuestions
	answered := total
	if payload.Metadata.AnsweredQuestions != nil {
		answered = *payload.Metadata.AnsweredQuestions
	}
	return math.Min(1, math.Max(0, float64(answered)/float64(total)))
}

// BuildAnalytics is the whole pipeline: filter once, then run every
// builder over the same subset.
func BuildAnalytics(s *survey.Survey, payloads []survey.ResponsePayload, filters Filters) Result {
	filtered := ApplyFilters(payloads, filters)
	return Result{
		Summary:    BuildSummary(s, filtered),
		Timeseries: BuildTimeseries(filtered),
		Heatmap:    BuildHeatmap(filtered),
	}
}
