package analytics

import (
	"encuesta-analytics/internal/survey"
)

// valueExtractor pulls one raw dimension value from a payload. ok=false
// skips the record for that dimension without creating a bucket.
type valueExtractor func(payload survey.ResponsePayload) (string, bool)

// bucketValues is the one grouping routine behind every breakdown: bucket
// by comparison key, keep the first raw spelling as the display label,
// count, and compute the percentage against the total the caller threads
// through (the full filtered record count, never re-derived per
// dimension).
func bucketValues(payloads []survey.ResponsePayload, extract valueExtractor, total int) []BreakdownItem {
	type bucket struct {
		label string
		count int
	}
	index := make(map[string]int)
	var ordered []*bucket

	for _, payload := range payloads {
		raw, ok := extract(payload)
		if !ok {
			continue
		}
		value, ok := CleanString(raw)
		if !ok {
			continue
		}
		key := ComparisonKey(value)
		if key == "" {
			key = value
		}
		pos, seen := index[key]
		if !seen {
			ordered = append(ordered, &bucket{label: value})
			pos = len(ordered) - 1
			index[key] = pos
		}
		ordered[pos].count++
	}

	if len(ordered) == 0 {
		return nil
	}
	items := make([]BreakdownItem, 0, len(ordered))
	for _, b := range ordered {
		items = append(items, BreakdownItem{
			Key:        b.label,
			Label:      b.label,
			Responses:  b.count,
			Percentage: percentage(b.count, total),
		})
	}
	return items
}

// BuildChannelBreakdown counts payloads per submission channel. Channel is
// the one required analytic dimension: records without one land in the
// literal "otros" bucket instead of being excluded.
func BuildChannelBreakdown(payloads []survey.ResponsePayload) []ChannelCount {
	items := bucketValues(payloads, func(payload survey.ResponsePayload) (string, bool) {
		if value, ok := cleanPtr(payload.Channel); ok {
			return value, true
		}
		return "otros", true
	}, len(payloads))

	counts := make([]ChannelCount, 0, len(items))
	for _, item := range items {
		counts = append(counts, ChannelCount{Channel: item.Label, Responses: item.Responses})
	}
	return counts
}

// BuildUTMBreakdown buckets payloads on the (source, campaign) pair.
// Source defaults to "sin_fuente"; campaign stays absent when the record
// carried none.
func BuildUTMBreakdown(payloads []survey.ResponsePayload) []UTMCount {
	type utmBucket struct {
		source   string
		campaign *string
		count    int
	}
	index := make(map[string]int)
	var ordered []*utmBucket

	for _, payload := range payloads {
		source := "sin_fuente"
		if value, ok := cleanPtr(payload.UTMSource); ok {
			source = value
		}
		var campaign *string
		campaignKey := ""
		if value, ok := cleanPtr(payload.UTMCampaign); ok {
			campaign = &value
			campaignKey = ComparisonKey(value)
			if campaignKey == "" {
				campaignKey = value
			}
		}
		sourceKey := ComparisonKey(source)
		if sourceKey == "" {
			sourceKey = source
		}

		key := sourceKey + "|" + campaignKey
		pos, seen := index[key]
		if !seen {
			ordered = append(ordered, &utmBucket{source: source, campaign: campaign})
			pos = len(ordered) - 1
			index[key] = pos
		}
		ordered[pos].count++
	}

	counts := make([]UTMCount, 0, len(ordered))
	for _, b := range ordered {
		counts = append(counts, UTMCount{Source: b.source, Campaign: b.campaign, Responses: b.count})
	}
	return counts
}

func demographicValue(pick func(d *survey.Demographics) *string) valueExtractor {
	return func(payload survey.ResponsePayload) (string, bool) {
		if payload.Metadata == nil || payload.Metadata.Demographics == nil {
			return "", false
		}
		return cleanPtr(pick(payload.Metadata.Demographics))
	}
}

func locationValue(pick func(l *survey.Location) *string) valueExtractor {
	return func(payload survey.ResponsePayload) (string, bool) {
		if payload.Metadata == nil || payload.Metadata.Demographics == nil || payload.Metadata.Demographics.Location == nil {
			return "", false
		}
		return cleanPtr(pick(payload.Metadata.Demographics.Location))
	}
}

var demographicDimensions = []struct {
	name    string
	extract valueExtractor
}{
	{"genero", demographicValue(func(d *survey.Demographics) *string { return d.Gender })},
	{"rango_etario", demographicValue(func(d *survey.Demographics) *string { return d.AgeRange })},
	{"nivel_educativo", demographicValue(func(d *survey.Demographics) *string { return d.Education })},
	{"situacion_laboral", demographicValue(func(d *survey.Demographics) *string { return d.Employment })},
	{"ocupacion", demographicValue(func(d *survey.Demographics) *string { return d.Occupation })},
	{"tiempo_residencia", demographicValue(func(d *survey.Demographics) *string { return d.Residency })},
	{"pais", locationValue(func(l *survey.Location) *string { return l.Country })},
	{"provincia", locationValue(func(l *survey.Location) *string { return l.Province })},
	{"ciudad", locationValue(func(l *survey.Location) *string { return l.City })},
	{"barrio", locationValue(func(l *survey.Location) *string { return l.Neighborhood })},
}

// BuildDemographicBreakdowns runs the bucket routine once per supported
// dimension. A dimension appears in the map only when at least one record
// supplied a value for it; total is the filtered record count shared by
// every dimension's percentages.
func BuildDemographicBreakdowns(payloads []survey.ResponsePayload, total int) map[string][]BreakdownItem {
	result := make(map[string][]BreakdownItem)
	for _, dimension := range demographicDimensions {
		if items := bucketValues(payloads, dimension.extract, total); len(items) > 0 {
			result[dimension.name] = items
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
