package seed

// Cluster is a geographic sampling center: generated coordinates fall
// uniformly inside its radius.
type Cluster struct {
	Lat, Lng     float64
	RadiusKm     float64
	Weight       float64
	Neighborhood string
	City         string
	Province     string
}

// choice is one weighted value of a demographic or channel table. Detail
// carries the optional long-form description (generoDescripcion).
type choice struct {
	value  string
	detail string
	weight float64
}

// utmChoice is one weighted (source, campaign) pair. An empty campaign
// stays absent on the generated payload.
type utmChoice struct {
	source   string
	campaign string
	weight   float64
}

// Scenario is one synthetic-population profile. QuestionBias maps a
// question's order to option-slug weights, steering choice answers the way
// a real campaign skews.
type Scenario struct {
	Label             string
	MunicipalityLabel string
	Clusters          []Cluster
	Channels          []choice
	UTMs              []utmChoice
	Genders           []choice
	AgeRanges         []choice
	Education         []choice
	Employment        []choice
	Occupations       []choice
	Residency         []choice
	OpenAnswers       []string
	QuestionBias      map[int]map[string]float64
}

var baseOpenAnswers = []string{
	"Sería ideal sumar un mapa con obras en ejecución y alertas de avance.",
	"Propongo reforzar la iluminación en accesos escolares y avenidas barriales.",
	"Podríamos organizar reuniones itinerantes para acercar programas a los distritos rurales.",
	"Sugiero integrar las consultas con el asistente virtual municipal para acelerar respuestas.",
	"Me gustaría que la app permita seguir cada proyecto con etapas, fotos y votaciones.",
	"Sumaría capacitaciones sobre reciclaje y eficiencia energética en centros comunitarios.",
}

var baseScenario = Scenario{
	Label:             "Escenario demo general",
	MunicipalityLabel: "Ciudad Demo",
	Clusters: []Cluster{
		{Lat: -32.8908, Lng: -68.8272, RadiusKm: 2.2, Weight: 3, Neighborhood: "Centro", City: "Ciudad Demo", Province: "Mendoza"},
		{Lat: -32.9421, Lng: -68.7796, RadiusKm: 2.8, Weight: 2.4, Neighborhood: "Barrio Norte", City: "Ciudad Demo", Province: "Mendoza"},
		{Lat: -32.905, Lng: -68.863, RadiusKm: 2.5, Weight: 1.8, Neighborhood: "Los Alerces", City: "Ciudad Demo", Province: "Mendoza"},
	},
	Channels: []choice{
		{value: "web", weight: 3.2},
		{value: "qr", weight: 2},
		{value: "whatsapp", weight: 3.6},
		{value: "email", weight: 1},
	},
	UTMs: []utmChoice{
		{source: "newsletter", campaign: "participacion-ciudadana", weight: 2.6},
		{source: "whatsapp", campaign: "encuesta-barrial", weight: 3.2},
		{source: "facebook", campaign: "difusion-digital", weight: 1.8},
		{source: "sin_fuente", weight: 1},
	},
	Genders: []choice{
		{value: "femenino", weight: 3.1},
		{value: "masculino", weight: 2.9},
		{value: "no_binario", weight: 0.2, detail: "No binarie / Género fluido"},
		{value: "prefiero_no_decirlo", weight: 0.6},
	},
	AgeRanges: []choice{
		{value: "18-29", weight: 2.2},
		{value: "30-44", weight: 3},
		{value: "45-59", weight: 2.4},
		{value: "60+", weight: 1.6},
	},
	Education: []choice{
		{value: "Secundario completo", weight: 2.6},
		{value: "Terciario o tecnicatura", weight: 2.2},
		{value: "Universitario en curso", weight: 1.8},
		{value: "Universitario completo", weight: 1.6},
		{value: "Postgrado", weight: 0.6},
	},
	Employment: []choice{
		{value: "Empleado/a en relación de dependencia", weight: 2.6},
		{value: "Emprendedor/a o comerciante", weight: 1.8},
		{value: "Estudiante", weight: 1.2},
		{value: "Jubilado/a o pensionado/a", weight: 1},
		{value: "Trabajo informal o changas", weight: 1.4},
		{value: "Sin empleo", weight: 0.8},
	},
	Occupations: []choice{
		{value: "Servicios y turismo", weight: 2},
		{value: "Comercio minorista", weight: 1.8},
		{value: "Docencia", weight: 1.2},
		{value: "Salud", weight: 1},
		{value: "Industria / logística", weight: 1.1},
		{value: "Tecnología / software", weight: 0.8},
		{value: "Productor/a rural", weight: 0.7},
	},
	Residency: []choice{
		{value: "Menos de 2 años", weight: 0.6},
		{value: "Entre 2 y 5 años", weight: 1.2},
		{value: "Entre 6 y 10 años", weight: 1.8},
		{value: "Más de 10 años", weight: 3},
	},
	OpenAnswers: baseOpenAnswers,
}

var scenarioPresets = map[string]Scenario{
	"mendoza-sustentable-2025": {
		Label:             "Demo sustentabilidad Junín 2025",
		MunicipalityLabel: "Junín, Mendoza",
		Clusters: []Cluster{
			{Lat: -33.0865, Lng: -68.4683, RadiusKm: 2.1, Weight: 3.4, Neighborhood: "Centro", City: "Junín", Province: "Mendoza"},
			{Lat: -32.925, Lng: -68.791, RadiusKm: 2.4, Weight: 2.1, Neighborhood: "Los Barriales", City: "Junín", Province: "Mendoza"},
			{Lat: -33.011, Lng: -68.533, RadiusKm: 2.7, Weight: 1.5, Neighborhood: "Phillips", City: "Junín", Province: "Mendoza"},
			{Lat: -32.977, Lng: -68.602, RadiusKm: 2.3, Weight: 1.2, Neighborhood: "La Colonia", City: "Junín", Province: "Mendoza"},
		},
		Channels: []choice{
			{value: "whatsapp", weight: 3.5},
			{value: "web", weight: 2.6},
			{value: "qr", weight: 1.8},
			{value: "email", weight: 0.9},
		},
		UTMs: []utmChoice{
			{source: "newsletter", campaign: "agenda-verde-2025", weight: 2.4},
			{source: "whatsapp", campaign: "ciudad-sustentable", weight: 3.6},
			{source: "instagram", campaign: "junin-sustentable", weight: 1.4},
			{source: "sin_fuente", weight: 0.8},
		},
		OpenAnswers: []string{
			"Instalar paneles solares comunitarios en clubes y escuelas rurales.",
			"Crear un programa de compostaje domiciliario con seguimiento por la app municipal.",
			"Sumar talleres de separación en origen en los distritos productivos.",
			"Integrar sensores para detectar pérdidas de agua en la red y mostrar métricas en tiempo real.",
			"Implementar créditos verdes para pymes que reduzcan consumo energético.",
		},
		QuestionBias: map[int]map[string]float64{
			1: {
				"programas-para-reducir-el-consumo-de-agua":  2.6,
				"eficiencia-energetica-y-luminarias-led":     2.2,
				"fortalecer-puntos-limpios-y-reciclaje":      2.4,
				"huertas-urbanas-y-compostaje-comunitario":   1.6,
				"capacitaciones-sobre-uso-responsable-de-gas": 1,
			},
			2: {
				"muy-util-deberia-ser-una-prioridad":      3.1,
				"util-como-complemento-de-otras-acciones": 2.2,
				"poco-util-frente-a-otras-necesidades":    0.8,
				"no-es-necesario":                         0.4,
			},
			3: {
				"recursos-digitales-interactivos":  2.5,
				"combinacion-de-formatos":          2.2,
				"historietas-y-cuentos-ilustrados": 1.4,
				"libros-y-cuadernos-impresos":      1.1,
			},
		},
	},
	"mendoza-intencion-voto-2025": {
		Label:             "Intención de voto Mendoza 2025",
		MunicipalityLabel: "Área Metropolitana de Mendoza",
		Clusters: []Cluster{
			{Lat: -32.8895, Lng: -68.8458, RadiusKm: 2.4, Weight: 3.5, Neighborhood: "Ciudad", City: "Mendoza", Province: "Mendoza"},
			{Lat: -32.923, Lng: -68.801, RadiusKm: 2.1, Weight: 2.4, Neighborhood: "Godoy Cruz", City: "Mendoza", Province: "Mendoza"},
			{Lat: -32.9805, Lng: -68.7773, RadiusKm: 2.2, Weight: 1.8, Neighborhood: "Maipú Centro", City: "Maipú", Province: "Mendoza"},
			{Lat: -32.898, Lng: -68.812, RadiusKm: 1.9, Weight: 1.6, Neighborhood: "Las Heras", City: "Las Heras", Province: "Mendoza"},
		},
		Channels: []choice{
			{value: "whatsapp", weight: 3.8},
			{value: "web", weight: 2.4},
			{value: "qr", weight: 1.5},
			{value: "email", weight: 0.8},
		},
		UTMs: []utmChoice{
			{source: "whatsapp", campaign: "intencion-voto-2025", weight: 3.4},
			{source: "radio", campaign: "consulta-electoral", weight: 1.1},
			{source: "newsletter", campaign: "agenda-electoral", weight: 1.9},
			{source: "facebook", campaign: "participacion-politica", weight: 1.6},
		},
		QuestionBias: map[int]map[string]float64{
			1: {
				"frente-desarrollo-local":       2.6,
				"alianza-futuro-verde":          1.9,
				"coalicion-seguridad-y-familia": 1.8,
				"todavia-no-lo-deci":            1.2,
			},
			2: {
				"totalmente-definida":               2.2,
				"casi-definida-pero-podria-cambiar": 2.8,
				"estoy-evaluando-opciones":          1.9,
				"necesito-mas-informacion":          1.1,
			},
			3: {
				"trabajo-y-produccion":           2.4,
				"seguridad-ciudadana":            2.2,
				"servicios-publicos-y-urbanismo": 2,
				"educacion-y-primera-infancia":   1.4,
				"ambiente-y-cambio-climatico":    1.3,
			},
		},
		OpenAnswers: []string{
			"Pido debates temáticos transmitidos en vivo para comparar propuestas.",
			"Sería útil un tablero en tiempo real con compromisos y métricas por candidato.",
			"Necesitamos integrar denuncias y datos de seguridad al panel ciudadano.",
			"Solicito compromisos concretos para parques industriales y economía del conocimiento.",
		},
	},
	"mendoza-costo-vida-2025": {
		Label:             "Costo de vida Hogares 2025",
		MunicipalityLabel: "Gran Mendoza",
		Channels: []choice{
			{value: "web", weight: 2.8},
			{value: "whatsapp", weight: 2.6},
			{value: "qr", weight: 1.4},
			{value: "email", weight: 1},
		},
		UTMs: []utmChoice{
			{source: "newsletter", campaign: "inflacion-hogar", weight: 2.6},
			{source: "whatsapp", campaign: "termometro-precios", weight: 3.1},
			{source: "radio", campaign: "panel-economico", weight: 1},
		},
		QuestionBias: map[int]map[string]float64{
			1: {
				"impacto-muy-fuerte-tuviste-que-endeudarte":            2.2,
				"impacto-importante-tuviste-que-ajustar-varios-gastos": 2.8,
				"impacto-moderado-ajustaste-algunos-habitos":           1.6,
				"impacto-bajo-pudiste-mantener-tu-presupuesto":         0.8,
			},
			2: {
				"mayor-oferta-de-precios-cuidados-locales":    2.4,
				"capacitaciones-financieras-y-planificacion":  1.6,
				"ferias-populares-y-compras-comunitarias":     2.1,
				"creditos-a-tasa-subsidiada-para-emprender":   1.7,
			},
		},
		OpenAnswers: []string{
			"Difundir alertas de precios máximos y comercios adheridos en la app.",
			"Crear un club de compras municipal para artículos esenciales.",
			"Integrar beneficios con billeteras digitales y seguimiento de consumo.",
		},
	},
	"mendoza-agua-2026": {
		Label:             "Agenda hídrica 2026",
		MunicipalityLabel: "Cuenca Norte de Mendoza",
		Clusters: []Cluster{
			{Lat: -32.8205, Lng: -68.8014, RadiusKm: 3, Weight: 2.6, Neighborhood: "Costa Canal", City: "Guaymallén", Province: "Mendoza"},
			{Lat: -32.7801, Lng: -68.6342, RadiusKm: 3.4, Weight: 2.2, Neighborhood: "Lavalle Centro", City: "Lavalle", Province: "Mendoza"},
			{Lat: -32.715, Lng: -68.585, RadiusKm: 3.8, Weight: 1.8, Neighborhood: "Jocolí", City: "Lavalle", Province: "Mendoza"},
		},
		UTMs: []utmChoice{
			{source: "whatsapp", campaign: "plan-hidrico-2026", weight: 3.4},
			{source: "newsletter", campaign: "emergencia-hidrica", weight: 2},
			{source: "radio", campaign: "sequias-2026", weight: 1},
		},
		QuestionBias: map[int]map[string]float64{
			1: {
				"muy-preocupado-la-sequia-impacta-en-mi-zona":    3,
				"preocupacion-media-se-necesitan-mas-medidas":    2.4,
				"preocupacion-baja-por-ahora-estamos-cubiertos":  0.8,
				"no-tengo-informacion-suficiente":                0.6,
			},
			2: {
				"obras-de-riego-y-mejora-de-canales":              2.8,
				"programas-de-uso-eficiente-y-reutilizacion":      2.4,
				"monitoreo-con-sensores-y-alertas-en-tiempo-real": 2,
				"educacion-comunitaria-y-capacitaciones":          1.6,
			},
		},
		OpenAnswers: []string{
			"Instalar riego presurizado comunitario con sensores de humedad.",
			"Coordinar turnos de riego inteligentes según caudal disponible.",
			"Crear mesas de agua con productores, cooperativas y municipios.",
		},
	},
}

// slugMatchers auto-select a preset from the survey slug, the way demo
// surveys were wired to their campaign datasets.
var slugMatchers = []struct {
	fragment string
	preset   string
}{
	{"ciudad-sustentable-2025", "mendoza-sustentable-2025"},
	{"intencion-voto-municipal-2025", "mendoza-intencion-voto-2025"},
	{"inflacion-hogar-2025", "mendoza-costo-vida-2025"},
	{"agenda-hidrica-2026", "mendoza-agua-2026"},
}

// withDefaults fills every table the preset left empty from the base
// scenario, so presets only declare what they change.
func (s Scenario) withDefaults(base Scenario) Scenario {
	if s.Label == "" {
		s.Label = base.Label
	}
	if s.MunicipalityLabel == "" {
		s.MunicipalityLabel = base.MunicipalityLabel
	}
	if len(s.Clusters) == 0 {
		s.Clusters = base.Clusters
	}
	if len(s.Channels) == 0 {
		s.Channels = base.Channels
	}
	if len(s.UTMs) == 0 {
		s.UTMs = base.UTMs
	}
	if len(s.Genders) == 0 {
		s.Genders = base.Genders
	}
	if len(s.AgeRanges) == 0 {
		s.AgeRanges = base.AgeRanges
	}
	if len(s.Education) == 0 {
		s.Education = base.Education
	}
	if len(s.Employment) == 0 {
		s.Employment = base.Employment
	}
	if len(s.Occupations) == 0 {
		s.Occupations = base.Occupations
	}
	if len(s.Residency) == 0 {
		s.Residency = base.Residency
	}
	if len(s.OpenAnswers) == 0 {
		s.OpenAnswers = base.OpenAnswers
	}
	if s.QuestionBias == nil {
		s.QuestionBias = base.QuestionBias
	}
	return s
}
