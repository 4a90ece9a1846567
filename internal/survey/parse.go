package survey

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

// rawPayload decodes the superset of field spellings seen in exported
// record lists. The storage layer historically attached the submission
// timestamp at the record root under several names; the canonical home is
// metadata.submittedAt, so the aliases are folded in here, once, instead
// of being resolved all over the aggregation code.
type rawPayload struct {
	ResponsePayload
	RespondedAt string `json:"respondido_at,omitempty"`
	CreatedAt   string `json:"creado_at,omitempty"`
	CreatedAtEn string `json:"created_at,omitempty"`
}

func (raw rawPayload) resolve() ResponsePayload {
	payload := raw.ResponsePayload

	alias := raw.RespondedAt
	if alias == "" {
		alias = raw.CreatedAt
	}
	if alias == "" {
		alias = raw.CreatedAtEn
	}
	if alias == "" {
		return payload
	}

	if payload.Metadata == nil {
		payload.Metadata = &Metadata{}
	} else {
		meta := *payload.Metadata
		payload.Metadata = &meta
	}
	if strings.TrimSpace(payload.Metadata.SubmittedAt) == "" {
		payload.Metadata.SubmittedAt = alias
	}
	return payload
}

// LoadSurvey decodes a survey schema document.
func LoadSurvey(r io.Reader) (*Survey, error) {
	var s Survey
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode survey: %w", err)
	}
	return &s, nil
}

// LoadPayloads decodes a response record list, either a bare JSON array or
// the list-endpoint envelope {"data": [...]}. Records are decoded one by
// one: a malformed element is skipped and logged, it never aborts the run.
func LoadPayloads(r io.Reader) ([]ResponsePayload, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read payloads: %w", err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		var envelope struct {
			Data []json.RawMessage `json:"data"`
		}
		if envErr := json.Unmarshal(body, &envelope); envErr != nil {
			return nil, fmt.Errorf("decode payload list: %w", err)
		}
		elements = envelope.Data
	}

	payloads := make([]ResponsePayload, 0, len(elements))
	for i, element := range elements {
		var raw rawPayload
		if err := json.Unmarshal(element, &raw); err != nil {
			log.Debug().Err(err).Int("index", i).Msg("Skipping malformed response record")
			continue
		}
		payloads = append(payloads, raw.resolve())
	}
	return payloads, nil
}
