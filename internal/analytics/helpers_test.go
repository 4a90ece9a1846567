package analytics

import (
	"encuesta-analytics/internal/survey"
)

// payloadOpt mutates a response under construction; the builders below keep
// the test tables readable.
type payloadOpt func(*survey.ResponsePayload)

func newPayload(opts ...payloadOpt) survey.ResponsePayload {
	payload := survey.ResponsePayload{}
	for _, opt := range opts {
		opt(&payload)
	}
	return payload
}

func withChannel(channel string) payloadOpt {
	return func(p *survey.ResponsePayload) { p.Channel = survey.String(channel) }
}

func withUTM(source, campaign string) payloadOpt {
	return func(p *survey.ResponsePayload) {
		if source != "" {
			p.UTMSource = survey.String(source)
		}
		if campaign != "" {
			p.UTMCampaign = survey.String(campaign)
		}
	}
}

func withDNI(dni string) payloadOpt {
	return func(p *survey.ResponsePayload) { p.DNI = survey.String(dni) }
}

func withPhone(phone string) payloadOpt {
	return func(p *survey.ResponsePayload) { p.Phone = survey.String(phone) }
}

func withSubmittedAt(at string) payloadOpt {
	return func(p *survey.ResponsePayload) {
		ensureMetadata(p).SubmittedAt = at
	}
}

func withProgress(answered, total int) payloadOpt {
	return func(p *survey.ResponsePayload) {
		meta := ensureMetadata(p)
		meta.AnsweredQuestions = survey.Int(answered)
		meta.TotalQuestions = survey.Int(total)
	}
}

func withGender(gender string) payloadOpt {
	return func(p *survey.ResponsePayload) {
		ensureDemographics(p).Gender = survey.String(gender)
	}
}

func withAgeRange(ageRange string) payloadOpt {
	return func(p *survey.ResponsePayload) {
		ensureDemographics(p).AgeRange = survey.String(ageRange)
	}
}

func withCity(city string) payloadOpt {
	return func(p *survey.ResponsePayload) {
		ensureLocation(p).City = survey.String(city)
	}
}

func withCoords(lat, lng float64) payloadOpt {
	return func(p *survey.ResponsePayload) {
		loc := ensureLocation(p)
		loc.Lat = survey.Float(lat)
		loc.Lng = survey.Float(lng)
	}
}

func withChoiceAnswer(questionID int, optionIDs ...int) payloadOpt {
	return func(p *survey.ResponsePayload) {
		answer := survey.Answer{QuestionID: survey.NewRef(questionID)}
		for _, id := range optionIDs {
			answer.OptionIDs = append(answer.OptionIDs, survey.NewRef(id))
		}
		p.Answers = append(p.Answers, answer)
	}
}

func withOpenAnswer(questionID int, text string) payloadOpt {
	return func(p *survey.ResponsePayload) {
		p.Answers = append(p.Answers, survey.Answer{
			QuestionID: survey.NewRef(questionID),
			FreeText:   survey.String(text),
		})
	}
}

func ensureMetadata(p *survey.ResponsePayload) *survey.Metadata {
	if p.Metadata == nil {
		p.Metadata = &survey.Metadata{}
	}
	return p.Metadata
}

func ensureDemographics(p *survey.ResponsePayload) *survey.Demographics {
	meta := ensureMetadata(p)
	if meta.Demographics == nil {
		meta.Demographics = &survey.Demographics{}
	}
	return meta.Demographics
}

func ensureLocation(p *survey.ResponsePayload) *survey.Location {
	demo := ensureDemographics(p)
	if demo.Location == nil {
		demo.Location = &survey.Location{}
	}
	return demo.Location
}

// testSurvey is a small two-question schema shared across aggregation
// tests: one single-choice, one multiple-choice, one open question.
func testSurvey() *survey.Survey {
	return &survey.Survey{
		Slug:  "clima-urbano-2025",
		Title: "Clima urbano 2025",
		Questions: []survey.Question{
			{
				ID:   1,
				Kind: survey.SingleChoice,
				Text: "¿Cómo se traslada habitualmente?",
				Options: []survey.Option{
					{ID: 10, Text: "Bicicleta"},
					{ID: 11, Text: "Colectivo"},
					{ID: 12, Text: "Auto"},
				},
			},
			{
				ID:   2,
				Kind: survey.MultipleChoice,
				Text: "¿Qué mejoras priorizaría?",
				Options: []survey.Option{
					{ID: 20, Text: "Arbolado"},
					{ID: 21, Text: "Ciclovías"},
					{ID: 22, Text: "Iluminación"},
				},
			},
			{
				ID:   3,
				Kind: survey.OpenText,
				Text: "Comentarios",
			},
		},
	}
}
