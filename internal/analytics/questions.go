package analytics

import (
	"fmt"
	"strconv"

	"encuesta-analytics/internal/survey"
)

// questionAccumulator tallies one question while records stream through.
// Options keep their declaration order; undeclared options are appended in
// discovery order with synthetic ids.
type questionAccumulator struct {
	id      int
	text    string
	total   int
	options []OptionResult
	index   map[string]int
}

func (acc *questionAccumulator) increment(key string, id int, hasID bool, label string) {
	pos, seen := acc.index[key]
	if !seen {
		optionID := id
		if !hasID {
			optionID = -(len(acc.options) + 1)
		}
		acc.options = append(acc.options, OptionResult{OptionID: optionID, Text: label})
		pos = len(acc.options) - 1
		acc.index[key] = pos
	}
	acc.options[pos].Responses++
}

func (acc *questionAccumulator) label(key, fallback string) string {
	if pos, ok := acc.index[key]; ok {
		return acc.options[pos].Text
	}
	return fallback
}

// questionSet holds the accumulators in emission order with id lookup.
type questionSet struct {
	ordered []*questionAccumulator
	byID    map[int]*questionAccumulator
}

func newQuestionSet(s *survey.Survey) *questionSet {
	qs := &questionSet{byID: make(map[int]*questionAccumulator)}
	for _, question := range s.Questions {
		acc := &questionAccumulator{
			id:      question.ID,
			text:    question.Text,
			options: []OptionResult{},
			index:   make(map[string]int),
		}
		for _, option := range question.Options {
			key := strconv.Itoa(option.ID)
			if _, dup := acc.index[key]; dup {
				continue
			}
			acc.options = append(acc.options, OptionResult{OptionID: option.ID, Text: option.Text})
			acc.index[key] = len(acc.options) - 1
		}
		qs.ordered = append(qs.ordered, acc)
		qs.byID[question.ID] = acc
	}
	return qs
}

// ensure returns the accumulator for id, creating a placeholder entry for
// question ids the schema never declared. Those answers are tallied, not
// dropped.
func (qs *questionSet) ensure(id int) *questionAccumulator {
	if acc, ok := qs.byID[id]; ok {
		return acc
	}
	acc := &questionAccumulator{
		id:      id,
		text:    fmt.Sprintf("Pregunta %d", id),
		options: []OptionResult{},
		index:   make(map[string]int),
	}
	qs.ordered = append(qs.ordered, acc)
	qs.byID[id] = acc
	return acc
}

// AggregateQuestions builds the per-question tallies over already-filtered
// payloads. One record increments a question's answered total once, then
// every selected option once; free-text answers become synthetic options
// keyed by the literal text, one bucket per distinct string.
func AggregateQuestions(s *survey.Survey, payloads []survey.ResponsePayload) []QuestionResult {
	qs := newQuestionSet(s)

	for _, payload := range payloads {
		for _, answer := range payload.Answers {
			questionID, ok := answer.QuestionID.Int()
			if !ok {
				// Uncoerceable question id: drop this single answer only.
				continue
			}
			acc := qs.ensure(questionID)
			acc.total++

			if len(answer.OptionIDs) > 0 {
				for _, ref := range answer.OptionIDs {
					key := ref.Key()
					if key == "" {
						continue
					}
					id, hasID := ref.Int()
					acc.increment(key, id, hasID, acc.label(key, fmt.Sprintf("Opción %s", key)))
				}
				continue
			}

			if answer.FreeText != nil {
				if trimmed, ok := CleanString(*answer.FreeText); ok {
					acc.increment("open:"+*answer.FreeText, 0, false, trimmed)
				}
			}
		}
	}

	results := make([]QuestionResult, 0, len(qs.ordered))
	for _, acc := range qs.ordered {
		result := QuestionResult{
			QuestionID:   acc.id,
			Text:         acc.text,
			TotalAnswers: acc.total,
			Options:      acc.options,
		}
		if acc.total > 0 {
			votes := 0
			for _, option := range acc.options {
				votes += option.Responses
			}
			if votes == 0 {
				votes = acc.total
			}
			for i := range result.Options {
				result.Options[i].Percentage = percentage(result.Options[i].Responses, votes)
			}
		}
		results = append(results, result)
	}
	return results
}

// percentage never yields NaN: a zero denominator is 0%, not an error.
func percentage(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
