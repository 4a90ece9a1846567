package seed

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"encuesta-analytics/internal/survey"
)

func demoSurvey(policy string) *survey.Survey {
	return &survey.Survey{
		Slug:             "clima-urbano-2025",
		Title:            "Clima urbano 2025",
		UniquenessPolicy: policy,
		Questions: []survey.Question{
			{
				ID:    1,
				Order: 1,
				Kind:  survey.SingleChoice,
				Text:  "¿Cómo se traslada habitualmente?",
				Options: []survey.Option{
					{ID: 10, Text: "Bicicleta"},
					{ID: 11, Text: "Colectivo"},
				},
			},
			{
				ID:    2,
				Order: 2,
				Kind:  survey.MultipleChoice,
				Text:  "¿Qué mejoras priorizaría?",
				Options: []survey.Option{
					{ID: 20, Text: "Arbolado"},
					{ID: 21, Text: "Ciclovías"},
					{ID: 22, Text: "Iluminación"},
				},
			},
			{ID: 3, Order: 3, Kind: survey.OpenText, Text: "Comentarios"},
		},
	}
}

func fixedConfig(count int) GeneratorConfig {
	return GeneratorConfig{
		Count: count,
		Seed:  42,
		Now:   time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC),
	}
}

func TestGenerateCount(t *testing.T) {
	payloads := Generate(demoSurvey(""), fixedConfig(25))
	if len(payloads) != 25 {
		t.Errorf("generated %d payloads, want 25", len(payloads))
	}
}

func TestGenerateCountFloor(t *testing.T) {
	if got := Generate(demoSurvey(""), fixedConfig(0)); len(got) != 1 {
		t.Errorf("zero count generated %d payloads, want 1", len(got))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first := Generate(demoSurvey("por_dni"), fixedConfig(10))
	second := Generate(demoSurvey("por_dni"), fixedConfig(10))
	if diff := cmp.Diff(first, second, cmp.AllowUnexported(survey.Ref{})); diff != "" {
		t.Errorf("same seed produced different datasets:\n%s", diff)
	}
}

func TestGeneratePayloadShape(t *testing.T) {
	payloads := Generate(demoSurvey(""), fixedConfig(10))

	for i, payload := range payloads {
		if payload.Channel == nil || *payload.Channel == "" {
			t.Fatalf("payload %d has no channel", i)
		}
		if payload.Metadata == nil || payload.Metadata.SubmittedAt == "" {
			t.Fatalf("payload %d has no submission timestamp", i)
		}
		if _, err := time.Parse(time.RFC3339, payload.Metadata.SubmittedAt); err != nil {
			t.Fatalf("payload %d timestamp %q not RFC3339: %v", i, payload.Metadata.SubmittedAt, err)
		}
		demo := payload.Metadata.Demographics
		if demo == nil || demo.Gender == nil || demo.Location == nil {
			t.Fatalf("payload %d missing demographics", i)
		}
		if demo.Location.Lat == nil || demo.Location.Lng == nil {
			t.Fatalf("payload %d missing coordinates", i)
		}
		if len(payload.Answers) != 3 {
			t.Fatalf("payload %d has %d answers, want one per question", i, len(payload.Answers))
		}
	}
}

func TestGenerateSubmissionWindow(t *testing.T) {
	now := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)
	payloads := Generate(demoSurvey(""), GeneratorConfig{Count: 50, Seed: 7, Now: now})

	floor := now.AddDate(0, 0, -submissionWindowDays)
	for i, payload := range payloads {
		submitted, err := time.Parse(time.RFC3339, payload.Metadata.SubmittedAt)
		if err != nil {
			t.Fatal(err)
		}
		if submitted.After(now) || submitted.Before(floor) {
			t.Errorf("payload %d submitted %s outside the %d-day window", i, submitted, submissionWindowDays)
		}
	}
}

func TestGenerateUniquenessPolicies(t *testing.T) {
	t.Run("PorDNI", func(t *testing.T) {
		payloads := Generate(demoSurvey("por_dni"), fixedConfig(20))
		seen := make(map[string]bool)
		for i, payload := range payloads {
			if payload.DNI == nil {
				t.Fatalf("payload %d missing DNI", i)
			}
			if seen[*payload.DNI] {
				t.Fatalf("duplicate DNI %s", *payload.DNI)
			}
			seen[*payload.DNI] = true
			if payload.Phone != nil {
				t.Fatalf("payload %d carries a phone under por_dni", i)
			}
		}
	})

	t.Run("PorPhone", func(t *testing.T) {
		payloads := Generate(demoSurvey("por_phone"), fixedConfig(20))
		seen := make(map[string]bool)
		for i, payload := range payloads {
			if payload.Phone == nil {
				t.Fatalf("payload %d missing phone", i)
			}
			if seen[*payload.Phone] {
				t.Fatalf("duplicate phone %s", *payload.Phone)
			}
			seen[*payload.Phone] = true
			if !strings.HasPrefix(*payload.Phone, "11") {
				t.Errorf("phone %s missing area prefix", *payload.Phone)
			}
		}
	})

	t.Run("Anonymous", func(t *testing.T) {
		payloads := Generate(demoSurvey(""), fixedConfig(5))
		for i, payload := range payloads {
			if payload.DNI != nil || payload.Phone != nil {
				t.Fatalf("payload %d carries identity without a policy", i)
			}
		}
	})
}

func TestGenerateAnswerRefs(t *testing.T) {
	payloads := Generate(demoSurvey(""), fixedConfig(30))
	declared := map[int]map[int]bool{
		1: {10: true, 11: true},
		2: {20: true, 21: true, 22: true},
	}

	for _, payload := range payloads {
		for _, answer := range payload.Answers {
			questionID, ok := answer.QuestionID.Int()
			if !ok {
				t.Fatal("generated answer with uncoercible question id")
			}
			if questionID == 3 {
				if answer.FreeText == nil || strings.TrimSpace(*answer.FreeText) == "" {
					t.Fatal("open answer without text")
				}
				continue
			}
			options := declared[questionID]
			if len(answer.OptionIDs) == 0 {
				t.Fatalf("choice answer for question %d without options", questionID)
			}
			picked := make(map[int]bool)
			for _, ref := range answer.OptionIDs {
				id, ok := ref.Int()
				if !ok || !options[id] {
					t.Fatalf("question %d picked undeclared option %v", questionID, ref)
				}
				if picked[id] {
					t.Fatalf("question %d picked option %d twice", questionID, id)
				}
				picked[id] = true
			}
			if questionID == 1 && len(answer.OptionIDs) != 1 {
				t.Fatalf("single-choice answer picked %d options", len(answer.OptionIDs))
			}
		}
	}
}

func TestResolveScenario(t *testing.T) {
	tests := []struct {
		name     string
		slug     string
		hint     string
		expected string
	}{
		{"ExplicitHint", "anything", "mendoza-agua-2026", "Agenda hídrica 2026"},
		{"SlugMatch", "junin-ciudad-sustentable-2025", "", "Demo sustentabilidad Junín 2025"},
		{"VotoSlug", "intencion-voto-municipal-2025", "", "Intención de voto Mendoza 2025"},
		{"CostoVidaHint", "anything", "mendoza-costo-vida-2025", "Costo de vida Hogares 2025"},
		{"CostoVidaSlug", "consulta-inflacion-hogar-2025", "", "Costo de vida Hogares 2025"},
		{"UnknownFallsBack", "otra-consulta", "", baseScenario.Label},
		{"UnknownHintFallsBack", "otra-consulta", "no-such-preset", baseScenario.Label},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &survey.Survey{Slug: tt.slug}
			scenario := ResolveScenario(s, tt.hint)
			if scenario.Label != tt.expected {
				t.Errorf("scenario label = %q, want %q", scenario.Label, tt.expected)
			}
			if len(scenario.Channels) == 0 || len(scenario.Clusters) == 0 {
				t.Error("resolved scenario missing defaulted tables")
			}
		})
	}
}

func TestScenarioPresetTables(t *testing.T) {
	t.Run("CostoVidaInheritsBaseClusters", func(t *testing.T) {
		scenario := ResolveScenario(nil, "mendoza-costo-vida-2025")
		if len(scenario.Clusters) != len(baseScenario.Clusters) {
			t.Errorf("clusters = %d, want base default %d", len(scenario.Clusters), len(baseScenario.Clusters))
		}
		if len(scenario.UTMs) != 3 || scenario.UTMs[1].campaign != "termometro-precios" {
			t.Errorf("UTMs = %+v", scenario.UTMs)
		}
	})

	t.Run("VotoCarriesFullTables", func(t *testing.T) {
		scenario := ResolveScenario(nil, "mendoza-intencion-voto-2025")
		if len(scenario.Clusters) != 4 {
			t.Errorf("clusters = %d, want 4 including Las Heras", len(scenario.Clusters))
		}
		if _, ok := scenario.QuestionBias[3]; !ok {
			t.Error("question 3 bias table missing")
		}
		if len(scenario.OpenAnswers) != 4 {
			t.Errorf("open answers = %d, want 4", len(scenario.OpenAnswers))
		}
	})
}

func TestResolveScenarioMunicipalityOverride(t *testing.T) {
	s := &survey.Survey{Slug: "otra-consulta", MunicipalityName: "Tunuyán"}
	scenario := ResolveScenario(s, "")
	if scenario.MunicipalityLabel != "Tunuyán" {
		t.Errorf("MunicipalityLabel = %q, want survey override", scenario.MunicipalityLabel)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Eficiencia energética y luminarias LED", "eficiencia-energetica-y-luminarias-led"},
		{"¿Muy útil? Debería ser una prioridad", "muy-util-deberia-ser-una-prioridad"},
		{"  espacios   múltiples  ", "espacios-multiples"},
	}
	for _, tt := range tests {
		if got := slugify(tt.input); got != tt.expected {
			t.Errorf("slugify(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestScenarioBiasSteersAnswers(t *testing.T) {
	question := demoSurvey("").Questions[0]
	scenario := baseScenario
	scenario.QuestionBias = map[int]map[string]float64{
		1: {"bicicleta": 100, "colectivo": 0.0001},
	}
	rng := rand.New(rand.NewSource(99))

	bicicleta := 0
	for i := 0; i < 200; i++ {
		ids := selectOptions(question, scenario, rng)
		if len(ids) != 1 {
			t.Fatalf("single-choice draw returned %d ids", len(ids))
		}
		if ids[0] == 10 {
			bicicleta++
		}
	}
	if bicicleta < 190 {
		t.Errorf("heavy bias picked Bicicleta only %d/200 times", bicicleta)
	}
}

func TestPickIndexDegradesToUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := make(map[int]bool)
	for i := 0; i < 100; i++ {
		seen[pickIndex(rng, []float64{0, 0, 0})] = true
	}
	if len(seen) != 3 {
		t.Errorf("all-zero weights reached %d of 3 slots", len(seen))
	}
}
