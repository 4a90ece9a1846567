package analytics

// SummaryDocument is a summary as it arrives at the reconciler: a loosely
// populated document where an omitted scalar is distinguishable from an
// explicit zero. Remote endpoints routinely send partial documents
// (sections without header totals, or totals without sections).
type SummaryDocument struct {
	TotalResponses     *int                       `json:"total_respuestas,omitempty"`
	UniqueParticipants *int                       `json:"participantes_unicos,omitempty"`
	CompletionRate     *float64                   `json:"tasa_completitud,omitempty"`
	Questions          []QuestionResult           `json:"preguntas,omitempty"`
	Channels           []ChannelCount             `json:"canales,omitempty"`
	UTMs               []UTMCount                 `json:"utms,omitempty"`
	Demographics       map[string][]BreakdownItem `json:"demografia,omitempty"`
}

// Document converts a fully computed summary into the merge input form.
func (s *Summary) Document() *SummaryDocument {
	if s == nil {
		return nil
	}
	return &SummaryDocument{
		TotalResponses:     &s.TotalResponses,
		UniqueParticipants: &s.UniqueParticipants,
		CompletionRate:     &s.CompletionRate,
		Questions:          s.Questions,
		Channels:           s.Channels,
		UTMs:               s.UTMs,
		Demographics:       s.Demographics,
	}
}

// MergeSummary reconciles a remotely computed summary with a locally
// computed fallback. The primary wins every field it actually carries;
// scalars the primary omits and array or map sections it left empty are
// backfilled from the fallback. Total by construction: absence is a valid
// input, not an error.
func MergeSummary(primary, fallback *SummaryDocument) *Summary {
	if primary == nil && fallback == nil {
		return nil
	}
	if primary == nil {
		primary = &SummaryDocument{}
	}
	if fallback == nil {
		fallback = &SummaryDocument{}
	}

	merged := &Summary{
		TotalResponses:     pickInt(primary.TotalResponses, fallback.TotalResponses),
		UniqueParticipants: pickInt(primary.UniqueParticipants, fallback.UniqueParticipants),
		CompletionRate:     pickFloat(primary.CompletionRate, fallback.CompletionRate),
		Questions:          primary.Questions,
		Channels:           primary.Channels,
		UTMs:               primary.UTMs,
		Demographics:       primary.Demographics,
	}
	if len(merged.Questions) == 0 {
		merged.Questions = fallback.Questions
	}
	if len(merged.Channels) == 0 {
		merged.Channels = fallback.Channels
	}
	if len(merged.UTMs) == 0 {
		merged.UTMs = fallback.UTMs
	}
	if len(merged.Demographics) == 0 {
		merged.Demographics = fallback.Demographics
	}
	return merged
}

func pickInt(primary, fallback *int) int {
	if primary != nil {
		return *primary
	}
	if fallback != nil {
		return *fallback
	}
	return 0
}

func pickFloat(primary, fallback *float64) float64 {
	if primary != nil {
		return *primary
	}
	if fallback != nil {
		return *fallback
	}
	return 0
}

// PickTimeseries returns the primary series when it has data, else the
// fallback. No element-level merging.
func PickTimeseries(primary, fallback []TimeseriesPoint) []TimeseriesPoint {
	if len(primary) > 0 {
		return primary
	}
	return fallback
}

// PickHeatmap returns the primary point set when it has data, else the
// fallback.
func PickHeatmap(primary, fallback []HeatmapPoint) []HeatmapPoint {
	if len(primary) > 0 {
		return primary
	}
	return fallback
}
