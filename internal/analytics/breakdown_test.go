package analytics

import (
	"testing"

	"encuesta-analytics/internal/survey"
)

func TestBuildChannelBreakdown(t *testing.T) {
	payloads := []survey.ResponsePayload{
		newPayload(withChannel("WhatsApp")),
		newPayload(withChannel("whatsapp")),
		newPayload(withChannel("web")),
		newPayload(),
		newPayload(withChannel("   ")),
	}

	counts := BuildChannelBreakdown(payloads)
	if len(counts) != 3 {
		t.Fatalf("got %d channels, want 3", len(counts))
	}

	byChannel := make(map[string]int)
	for _, count := range counts {
		byChannel[count.Channel] = count.Responses
	}
	// First spelling wins the label; casings fold into one bucket.
	if byChannel["WhatsApp"] != 2 {
		t.Errorf("WhatsApp = %d, want 2", byChannel["WhatsApp"])
	}
	if byChannel["otros"] != 2 {
		t.Errorf("otros = %d, want 2 (missing and blank channels)", byChannel["otros"])
	}

	total := 0
	for _, count := range counts {
		total += count.Responses
	}
	if total != len(payloads) {
		t.Errorf("channel counts sum to %d, want %d", total, len(payloads))
	}
}

func TestBuildUTMBreakdown(t *testing.T) {
	payloads := []survey.ResponsePayload{
		newPayload(withUTM("fb", "otono-2025")),
		newPayload(withUTM("FB", "Otoño-2025")),
		newPayload(withUTM("fb", "")),
		newPayload(withUTM("", "")),
	}

	counts := BuildUTMBreakdown(payloads)
	if len(counts) != 3 {
		t.Fatalf("got %d UTM buckets, want 3", len(counts))
	}

	paired := counts[0]
	if paired.Source != "fb" || paired.Campaign == nil || *paired.Campaign != "otono-2025" {
		t.Errorf("first bucket = %+v, want fb/otono-2025", paired)
	}
	if paired.Responses != 2 {
		t.Errorf("case- and accent-variant pair split buckets: %d, want 2", paired.Responses)
	}

	sourceOnly := counts[1]
	if sourceOnly.Source != "fb" || sourceOnly.Campaign != nil {
		t.Errorf("campaign-less bucket = %+v, want fb with absent campaign", sourceOnly)
	}

	unsourced := counts[2]
	if unsourced.Source != "sin_fuente" || unsourced.Campaign != nil {
		t.Errorf("default bucket = %+v, want sin_fuente", unsourced)
	}
}

func TestBuildDemographicBreakdowns(t *testing.T) {
	payloads := []survey.ResponsePayload{
		newPayload(withGender("Femenino"), withCity("Godoy Cruz")),
		newPayload(withGender("femenino")),
		newPayload(withGender("masculino")),
		newPayload(withChannel("web")),
	}

	breakdowns := BuildDemographicBreakdowns(payloads, len(payloads))

	genero, ok := breakdowns["genero"]
	if !ok {
		t.Fatal("genero dimension missing")
	}
	if len(genero) != 2 {
		t.Fatalf("genero has %d buckets, want 2", len(genero))
	}
	if genero[0].Label != "Femenino" || genero[0].Responses != 2 {
		t.Errorf("genero[0] = %+v, want Femenino x2 with first-seen label", genero[0])
	}
	// Percentages divide by the full filtered count, not by how many
	// records answered this dimension: 2 of 4 records.
	if !approx(genero[0].Percentage, 50) {
		t.Errorf("genero[0].Percentage = %f, want 50", genero[0].Percentage)
	}

	ciudad, ok := breakdowns["ciudad"]
	if !ok {
		t.Fatal("ciudad dimension missing")
	}
	if len(ciudad) != 1 || !approx(ciudad[0].Percentage, 25) {
		t.Errorf("ciudad = %+v, want one 25%% bucket", ciudad)
	}

	if _, ok := breakdowns["rango_etario"]; ok {
		t.Error("dimension with no values should be omitted")
	}
}

func TestBuildDemographicBreakdownsPercentageBound(t *testing.T) {
	payloads := []survey.ResponsePayload{
		newPayload(withGender("femenino")),
		newPayload(withGender("masculino")),
		newPayload(),
		newPayload(),
	}

	breakdowns := BuildDemographicBreakdowns(payloads, len(payloads))
	sum := 0.0
	for _, item := range breakdowns["genero"] {
		sum += item.Percentage
	}
	if sum > 100+1e-9 {
		t.Errorf("dimension percentages sum to %f, must not exceed 100", sum)
	}
}

func TestBuildDemographicBreakdownsEmpty(t *testing.T) {
	payloads := []survey.ResponsePayload{newPayload(withChannel("web"))}
	if got := BuildDemographicBreakdowns(payloads, 1); got != nil {
		t.Errorf("expected nil map when no dimension has values, got %v", got)
	}
}
