package analytics

// OptionResult is one tallied option of a question, including synthesized
// entries for free-text answers and undeclared option ids.
type OptionResult struct {
	OptionID   int     `json:"opcion_id"`
	Text       string  `json:"texto"`
	Responses  int     `json:"respuestas"`
	Percentage float64 `json:"porcentaje"`
}

// QuestionResult carries the tallies of one question. TotalAnswers counts
// answering records; for multiple-choice questions the option counts can
// sum above it because one record contributes to several options, and the
// percentages are computed against that votes-cast sum on purpose.
type QuestionResult struct {
	QuestionID   int            `json:"pregunta_id"`
	Text         string         `json:"texto"`
	TotalAnswers int            `json:"total_respuestas"`
	Options      []OptionResult `json:"opciones"`
}

// ChannelCount is one entry of the channel breakdown.
type ChannelCount struct {
	Channel   string `json:"canal"`
	Responses int    `json:"respuestas"`
}

// UTMCount is one entry of the UTM breakdown, bucketed on the
// (source, campaign) pair. Campaign stays absent when the records never
// carried one.
type UTMCount struct {
	Source    string  `json:"fuente"`
	Campaign  *string `json:"campania,omitempty"`
	Responses int     `json:"respuestas"`
}

// BreakdownItem is one labeled bucket of a demographic dimension. The
// percentage denominator is always the full filtered record count, so a
// sparsely answered dimension visibly sums below 100%.
type BreakdownItem struct {
	Key        string  `json:"clave"`
	Label      string  `json:"etiqueta"`
	Responses  int     `json:"respuestas"`
	Percentage float64 `json:"porcentaje"`
}

// Summary is the aggregated report consumed by dashboards and the CSV
// exporter. Field names and nesting are load-bearing: downstream layers
// pattern-match on them.
type Summary struct {
	TotalResponses     int                        `json:"total_respuestas"`
	UniqueParticipants int                        `json:"participantes_unicos"`
	CompletionRate     float64                    `json:"tasa_completitud"`
	Questions          []QuestionResult           `json:"preguntas"`
	Channels           []ChannelCount             `json:"canales,omitempty"`
	UTMs               []UTMCount                 `json:"utms,omitempty"`
	Demographics       map[string][]BreakdownItem `json:"demografia,omitempty"`
}

// TimeseriesPoint is one day of the submission time series.
type TimeseriesPoint struct {
	Date      string `json:"fecha"`
	Responses int    `json:"respuestas"`
}

// HeatmapPoint is one raw coordinate with unit weight. Clustering into
// denser cells is the map layer's concern.
type HeatmapPoint struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Responses int     `json:"respuestas"`
}

// Result bundles the three analytics shapes produced by one pipeline run.
type Result struct {
	Summary    Summary           `json:"summary"`
	Timeseries []TimeseriesPoint `json:"timeseries"`
	Heatmap    []HeatmapPoint    `json:"heatmap"`
}
