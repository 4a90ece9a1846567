package analytics

import (
	"math"
	"sort"

	"encuesta-analytics/internal/survey"
)

// BuildTimeseries buckets payloads by the UTC calendar day of their
// submission timestamp. Records without a parseable timestamp are
// excluded, not bucketed into a sentinel day. The fixed-width ISO day
// format makes the lexicographic sort chronological.
func BuildTimeseries(payloads []survey.ResponsePayload) []TimeseriesPoint {
	counts := make(map[string]int)
	for _, payload := range payloads {
		submitted, ok := submissionTime(payload)
		if !ok {
			continue
		}
		counts[submitted.UTC().Format("2006-01-02")]++
	}

	points := make([]TimeseriesPoint, 0, len(counts))
	for day, count := range counts {
		points = append(points, TimeseriesPoint{Date: day, Responses: count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// BuildHeatmap extracts one unit-weight point per payload whose location
// carries finite coordinates. No deduplication or clustering happens here.
func BuildHeatmap(payloads []survey.ResponsePayload) []HeatmapPoint {
	var points []HeatmapPoint
	for _, payload := range payloads {
		if payload.Metadata == nil || payload.Metadata.Demographics == nil {
			continue
		}
		location := payload.Metadata.Demographics.Location
		if location == nil || location.Lat == nil || location.Lng == nil {
			continue
		}
		lat, lng := *location.Lat, *location.Lng
		if !isFinite(lat) || !isFinite(lng) {
			continue
		}
		points = append(points, HeatmapPoint{Lat: lat, Lng: lng, Responses: 1})
	}
	return points
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
