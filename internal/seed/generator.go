package seed

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"encuesta-analytics/internal/analytics"
	"encuesta-analytics/internal/survey"
)

// GeneratorConfig controls one synthetic dataset run. Seed and Now are
// injectable so tests and repeated demos are reproducible.
type GeneratorConfig struct {
	Count    int
	Scenario string
	Seed     int64
	Now      time.Time
}

const submissionWindowDays = 21

// Generate fabricates response payloads for the survey, sampling channels,
// UTM pairs, demographics, geographic clusters, and biased answers from
// the resolved scenario. The payloads come back in the exact shape live
// submissions arrive in, so they flow through the same analytics pipeline.
func Generate(s *survey.Survey, cfg GeneratorConfig) []survey.ResponsePayload {
	count := cfg.Count
	if count <= 0 {
		count = 1
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	seedValue := cfg.Seed
	if seedValue == 0 {
		seedValue = now.UnixNano()
	}
	rng := rand.New(rand.NewSource(seedValue))

	scenario := ResolveScenario(s, cfg.Scenario)
	payloads := make([]survey.ResponsePayload, 0, count)

	for i := 0; i < count; i++ {
		cluster := scenario.Clusters[pickCluster(rng, scenario.Clusters)]
		lat, lng := randomCoordinate(rng, cluster.Lat, cluster.Lng, cluster.RadiusKm)

		channel := pickChoice(rng, scenario.Channels)
		gender := pickChoice(rng, scenario.Genders)
		ageRange := pickChoice(rng, scenario.AgeRanges)
		education := pickChoice(rng, scenario.Education)
		employment := pickChoice(rng, scenario.Employment)
		occupation := pickChoice(rng, scenario.Occupations)
		residency := pickChoice(rng, scenario.Residency)
		utm := scenario.UTMs[pickUTM(rng, scenario.UTMs)]

		answers := buildAnswers(s, scenario, rng, i)
		submittedAt := now.Add(-time.Duration(rng.Int63n(submissionWindowDays*24)) * time.Hour)

		payload := survey.ResponsePayload{
			Channel: survey.String(channel.value),
			Answers: answers,
			Metadata: &survey.Metadata{
				Channel:           channel.value,
				SubmittedAt:       submittedAt.UTC().Format(time.RFC3339),
				TotalQuestions:    survey.Int(len(answers)),
				AnsweredQuestions: survey.Int(len(answers)),
				Demographics: &survey.Demographics{
					Gender:     survey.String(gender.value),
					AgeRange:   survey.String(ageRange.value),
					Education:  survey.String(education.value),
					Employment: survey.String(employment.value),
					Occupation: survey.String(occupation.value),
					Residency:  survey.String(residency.value),
					Location: &survey.Location{
						Lat:          survey.Float(roundCoord(lat)),
						Lng:          survey.Float(roundCoord(lng)),
						Precision:    "gps",
						Origin:       "gps",
						Country:      survey.String("Argentina"),
						Province:     survey.String(cluster.Province),
						City:         survey.String(cluster.City),
						Neighborhood: survey.String(cluster.Neighborhood),
					},
				},
			},
		}
		if gender.detail != "" {
			payload.Metadata.Demographics.GenderDetail = survey.String(gender.detail)
		}
		if utm.source != "" {
			payload.UTMSource = survey.String(utm.source)
		}
		if utm.campaign != "" {
			payload.UTMCampaign = survey.String(utm.campaign)
		}

		switch s.UniquenessPolicy {
		case "por_dni":
			payload.DNI = survey.String(strconv.Itoa(30000000 + i))
		case "por_phone":
			payload.Phone = survey.String(fmt.Sprintf("11%08d", 50000000+i))
		}

		payloads = append(payloads, payload)
	}
	return payloads
}

// ResolveScenario picks the scenario for an explicit hint, or matches the
// survey slug against the known demo campaigns, falling back to the base
// profile.
func ResolveScenario(s *survey.Survey, hint string) Scenario {
	name := strings.TrimSpace(hint)
	if name == "" && s != nil {
		for _, matcher := range slugMatchers {
			if strings.Contains(s.Slug, matcher.fragment) {
				name = matcher.preset
				break
			}
		}
	}
	preset, ok := scenarioPresets[name]
	if !ok {
		scenario := baseScenario
		if s != nil && strings.TrimSpace(s.MunicipalityName) != "" {
			scenario.MunicipalityLabel = s.MunicipalityName
		}
		return scenario
	}
	scenario := preset.withDefaults(baseScenario)
	if s != nil && strings.TrimSpace(s.MunicipalityName) != "" {
		scenario.MunicipalityLabel = s.MunicipalityName
	}
	return scenario
}

func buildAnswers(s *survey.Survey, scenario Scenario, rng *rand.Rand, index int) []survey.Answer {
	questions := s.Questions
	answers := make([]survey.Answer, 0, len(questions))
	for _, question := range questions {
		if question.Kind == survey.OpenText {
			pool := scenario.OpenAnswers
			if len(pool) == 0 {
				pool = baseOpenAnswers
			}
			answers = append(answers, survey.Answer{
				QuestionID: survey.NewRef(question.ID),
				FreeText:   survey.String(pool[index%len(pool)]),
			})
			continue
		}

		ids := selectOptions(question, scenario, rng)
		if len(ids) == 0 {
			continue
		}
		refs := make([]survey.Ref, 0, len(ids))
		for _, id := range ids {
			refs = append(refs, survey.NewRef(id))
		}
		answers = append(answers, survey.Answer{QuestionID: survey.NewRef(question.ID), OptionIDs: refs})
	}
	return answers
}

// selectOptions samples declared options, honoring the scenario's
// per-question bias keyed by slugified option text.
func selectOptions(question survey.Question, scenario Scenario, rng *rand.Rand) []int {
	if len(question.Options) == 0 {
		return nil
	}
	bias := scenario.QuestionBias[question.Order]
	weights := make([]float64, len(question.Options))
	for i, option := range question.Options {
		weights[i] = 1
		if bias != nil {
			if w, ok := bias[slugify(optionBiasText(option))]; ok {
				weights[i] = w
			}
		}
	}

	if question.Kind != survey.MultipleChoice {
		return []int{question.Options[pickIndex(rng, weights)].ID}
	}

	minSel := clampInt(intOr(question.MinSelections, 1), 1, len(question.Options))
	maxSel := clampInt(intOr(question.MaxSelections, len(question.Options)), minSel, len(question.Options))
	want := minSel + rng.Intn(maxSel-minSel+1)

	pool := make([]int, len(question.Options))
	for i := range pool {
		pool[i] = i
	}
	poolWeights := append([]float64(nil), weights...)

	var ids []int
	for len(ids) < want && len(pool) > 0 {
		slot := pickIndex(rng, poolWeights)
		ids = append(ids, question.Options[pool[slot]].ID)
		pool = append(pool[:slot], pool[slot+1:]...)
		poolWeights = append(poolWeights[:slot], poolWeights[slot+1:]...)
	}
	return ids
}

func optionBiasText(option survey.Option) string {
	if strings.TrimSpace(option.Text) != "" {
		return option.Text
	}
	if strings.TrimSpace(option.Value) != "" {
		return option.Value
	}
	return strconv.Itoa(option.ID)
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(value string) string {
	folded := analytics.FoldDiacritics(strings.ToLower(value))
	return strings.Trim(slugStrip.ReplaceAllString(folded, "-"), "-")
}

// pickIndex does a weighted draw over parallel weights. Non-positive
// weights are ignored; an all-zero table degrades to uniform.
func pickIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}
	target := rng.Float64() * total
	cursor := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cursor += w
		if target <= cursor {
			return i
		}
	}
	return len(weights) - 1
}

func pickCluster(rng *rand.Rand, clusters []Cluster) int {
	weights := make([]float64, len(clusters))
	for i, cluster := range clusters {
		weights[i] = cluster.Weight
	}
	return pickIndex(rng, weights)
}

func pickUTM(rng *rand.Rand, utms []utmChoice) int {
	weights := make([]float64, len(utms))
	for i, utm := range utms {
		weights[i] = utm.weight
	}
	return pickIndex(rng, weights)
}

func pickChoice(rng *rand.Rand, choices []choice) choice {
	if len(choices) == 0 {
		return choice{}
	}
	weights := make([]float64, len(choices))
	for i, c := range choices {
		weights[i] = c.weight
	}
	return choices[pickIndex(rng, weights)]
}

// randomCoordinate samples uniformly inside a disc around the cluster
// center. 1 degree of latitude ~ 111 km.
func randomCoordinate(rng *rand.Rand, lat, lng, radiusKm float64) (float64, float64) {
	if radiusKm <= 0 {
		radiusKm = 2.5
	}
	radiusDeg := (radiusKm / 111) * math.Sqrt(rng.Float64())
	theta := rng.Float64() * 2 * math.Pi
	deltaLat := radiusDeg * math.Cos(theta)
	denominator := math.Cos(lat * math.Pi / 180)
	if denominator == 0 {
		denominator = 1
	}
	deltaLng := radiusDeg * math.Sin(theta) / denominator
	return lat + deltaLat, lng + deltaLng
}

func roundCoord(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func clampInt(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
