package survey

// QuestionKind enumerates the question types a survey schema may declare.
type QuestionKind string

const (
	SingleChoice   QuestionKind = "opcion_unica"
	MultipleChoice QuestionKind = "multiple"
	OpenText       QuestionKind = "abierta"
)

// Option is one selectable choice of a choice-type question.
type Option struct {
	ID    int    `json:"id"`
	Order int    `json:"orden,omitempty"`
	Text  string `json:"texto"`
	Value string `json:"valor,omitempty"`
}

// Question is one entry of the ordered survey schema.
type Question struct {
	ID            int          `json:"id"`
	Order         int          `json:"orden,omitempty"`
	Kind          QuestionKind `json:"tipo"`
	Text          string       `json:"texto"`
	Required      bool         `json:"obligatoria,omitempty"`
	MinSelections *int         `json:"min_selecciones,omitempty"`
	MaxSelections *int         `json:"max_selecciones,omitempty"`
	Options       []Option     `json:"opciones,omitempty"`
}

// Survey is the immutable schema the engine aggregates against. Only the
// fields the analytics pipeline reads are modeled; unknown document fields
// are ignored on decode.
type Survey struct {
	ID               int        `json:"id,omitempty"`
	Slug             string     `json:"slug"`
	Title            string     `json:"titulo"`
	Kind             string     `json:"tipo,omitempty"`
	UniquenessPolicy string     `json:"politica_unicidad,omitempty"`
	MunicipalityName string     `json:"municipio_nombre,omitempty"`
	Questions        []Question `json:"preguntas"`
}

// Location is the geographic sub-block of the demographics metadata.
// Pointers mark explicit absence: a missing coordinate is not 0,0.
type Location struct {
	Country      *string  `json:"pais,omitempty"`
	Province     *string  `json:"provincia,omitempty"`
	City         *string  `json:"ciudad,omitempty"`
	Neighborhood *string  `json:"barrio,omitempty"`
	PostalCode   *string  `json:"codigoPostal,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	Precision    string   `json:"precision,omitempty"`
	Origin       string   `json:"origen,omitempty"`
}

// Demographics carries the self-reported respondent attributes.
type Demographics struct {
	Gender       *string   `json:"genero,omitempty"`
	GenderDetail *string   `json:"generoDescripcion,omitempty"`
	AgeRange     *string   `json:"rangoEtario,omitempty"`
	Education    *string   `json:"nivelEducativo,omitempty"`
	Employment   *string   `json:"situacionLaboral,omitempty"`
	Occupation   *string   `json:"ocupacion,omitempty"`
	Residency    *string   `json:"tiempoResidencia,omitempty"`
	Location     *Location `json:"ubicacion,omitempty"`
}

// Metadata is the analytics block attached to a response payload.
type Metadata struct {
	Demographics      *Demographics `json:"demographics,omitempty"`
	AnsweredQuestions *int          `json:"answeredQuestions,omitempty"`
	TotalQuestions    *int          `json:"totalQuestions,omitempty"`
	SubmittedAt       string        `json:"submittedAt,omitempty"`
	Channel           string        `json:"canal,omitempty"`
}

// Answer is one answered question inside a response payload. Choice answers
// carry option refs, open answers carry free text.
type Answer struct {
	QuestionID Ref     `json:"pregunta_id"`
	OptionIDs  []Ref   `json:"opcion_ids,omitempty"`
	FreeText   *string `json:"texto_libre,omitempty"`
}

// ResponsePayload is one survey submission. Every field is optional; the
// engine treats absence per-field rather than rejecting the record.
type ResponsePayload struct {
	DNI         *string   `json:"dni,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Channel     *string   `json:"canal,omitempty"`
	UTMSource   *string   `json:"utm_source,omitempty"`
	UTMCampaign *string   `json:"utm_campaign,omitempty"`
	Answers     []Answer  `json:"respuestas"`
	Metadata    *Metadata `json:"metadata,omitempty"`
}
