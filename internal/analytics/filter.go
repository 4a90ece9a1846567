package analytics

import (
	"time"

	"encuesta-analytics/internal/survey"
)

// Filters carries one optional criterion per filterable dimension, using
// the same field names the remote analytics endpoint accepts so local and
// remote computation stay interchangeable. An empty field imposes no
// constraint; it never means "match empty".
type Filters struct {
	From         string `json:"desde,omitempty"`
	To           string `json:"hasta,omitempty"`
	Channel      string `json:"canal,omitempty"`
	UTMSource    string `json:"utm_source,omitempty"`
	UTMCampaign  string `json:"utm_campaign,omitempty"`
	Gender       string `json:"genero,omitempty"`
	AgeRange     string `json:"rango_etario,omitempty"`
	Country      string `json:"pais,omitempty"`
	Province     string `json:"provincia,omitempty"`
	City         string `json:"ciudad,omitempty"`
	Neighborhood string `json:"barrio,omitempty"`
}

// IsZero reports whether no criterion is populated.
func (f Filters) IsZero() bool {
	return f == Filters{}
}

// matchesValue applies one scalar criterion with comparison-key equality.
// An empty criterion is vacuously true; a criterion that normalizes to
// nothing matches no record.
func matchesValue(value *string, criterion string) bool {
	if criterion == "" {
		return true
	}
	want := ComparisonKey(criterion)
	if want == "" {
		return false
	}
	if value == nil {
		return false
	}
	return ComparisonKey(*value) == want
}

func submissionTime(payload survey.ResponsePayload) (time.Time, bool) {
	if payload.Metadata == nil {
		return time.Time{}, false
	}
	return ParseDate(payload.Metadata.SubmittedAt)
}

// ApplyFilters returns the order-preserving subset of payloads matching
// every populated criterion. Pure and idempotent: re-filtering the result
// with the same criteria returns it unchanged.
func ApplyFilters(payloads []survey.ResponsePayload, filters Filters) []survey.ResponsePayload {
	if len(payloads) == 0 || filters.IsZero() {
		return payloads
	}

	from, hasFrom := ParseDate(filters.From)
	to, hasTo := ParseDate(filters.To)

	kept := make([]survey.ResponsePayload, 0, len(payloads))
	for _, payload := range payloads {
		if matchesPayload(payload, filters, from, hasFrom, to, hasTo) {
			kept = append(kept, payload)
		}
	}
	return kept
}

func matchesPayload(payload survey.ResponsePayload, filters Filters, from time.Time, hasFrom bool, to time.Time, hasTo bool) bool {
	if !matchesValue(payload.Channel, filters.Channel) {
		return false
	}
	if !matchesValue(payload.UTMSource, filters.UTMSource) {
		return false
	}
	if !matchesValue(payload.UTMCampaign, filters.UTMCampaign) {
		return false
	}

	var demographics *survey.Demographics
	if payload.Metadata != nil {
		demographics = payload.Metadata.Demographics
	}
	var gender, ageRange *string
	var location *survey.Location
	if demographics != nil {
		gender = demographics.Gender
		ageRange = demographics.AgeRange
		location = demographics.Location
	}
	if !matchesValue(gender, filters.Gender) {
		return false
	}
	if !matchesValue(ageRange, filters.AgeRange) {
		return false
	}

	var country, province, city, neighborhood *string
	if location != nil {
		country = location.Country
		province = location.Province
		city = location.City
		neighborhood = location.Neighborhood
	}
	if !matchesValue(country, filters.Country) {
		return false
	}
	if !matchesValue(province, filters.Province) {
		return false
	}
	if !matchesValue(city, filters.City) {
		return false
	}
	if !matchesValue(neighborhood, filters.Neighborhood) {
		return false
	}

	if hasFrom || hasTo {
		// A record without a parseable timestamp never passes a dated
		// filter; silently passing would misattribute it to the range.
		submitted, ok := submissionTime(payload)
		if !ok {
			return false
		}
		if hasFrom && submitted.Before(from) {
			return false
		}
		if hasTo && submitted.After(to) {
			return false
		}
	}

	return true
}
