package rpc

var filterProperties = map[string]interface{}{
	"desde":        map[string]interface{}{"type": "string", "description": "Inclusive ISO date lower bound"},
	"hasta":        map[string]interface{}{"type": "string", "description": "Inclusive ISO date upper bound"},
	"canal":        map[string]interface{}{"type": "string"},
	"utm_source":   map[string]interface{}{"type": "string"},
	"utm_campaign": map[string]interface{}{"type": "string"},
	"genero":       map[string]interface{}{"type": "string"},
	"rango_etario": map[string]interface{}{"type": "string"},
	"pais":         map[string]interface{}{"type": "string"},
	"provincia":    map[string]interface{}{"type": "string"},
	"ciudad":       map[string]interface{}{"type": "string"},
	"barrio":       map[string]interface{}{"type": "string"},
}

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name":        "load_survey",
				"description": "Load a survey schema document (JSON file) into the session.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"path": map[string]interface{}{"type": "string", "description": "Path to the survey JSON file"},
					},
					"required": []string{"path"},
				},
			},
			map[string]interface{}{
				"name":        "load_responses",
				"description": "Load a response record list (JSON array or {\"data\": [...]} envelope) into the session. Malformed records are skipped, not fatal.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"path": map[string]interface{}{"type": "string", "description": "Path to the responses JSON file"},
					},
					"required": []string{"path"},
				},
			},
			map[string]interface{}{
				"name":        "generate_demo",
				"description": "Generate a synthetic response dataset for the loaded survey. Demo data flows through the identical aggregation pipeline as live data.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"count":    map[string]interface{}{"type": "integer", "description": "Dataset size (default from DEMO_COUNT)"},
						"scenario": map[string]interface{}{"type": "string", "description": "Scenario preset name; empty auto-detects from the survey slug"},
					},
				},
			},
			map[string]interface{}{
				"name":        "get_summary",
				"description": "Aggregate the loaded records into the summary report (question tallies, channel/UTM/demographic breakdowns), applying the supplied filters once.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": filterProperties,
				},
			},
			map[string]interface{}{
				"name":        "get_timeseries",
				"description": "Bucket the loaded records into a per-day submission time series, applying the supplied filters once.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": filterProperties,
				},
			},
			map[string]interface{}{
				"name":        "get_heatmap",
				"description": "Extract unit-weight coordinate points from the loaded records, applying the supplied filters once.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": filterProperties,
				},
			},
			map[string]interface{}{
				"name":        "merge_summary",
				"description": "Reconcile two summary reports: primary wins per field, empty arrays are backfilled from the fallback. Either side may be absent.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"primary":  map[string]interface{}{"type": "object", "description": "Summary computed remotely"},
						"fallback": map[string]interface{}{"type": "object", "description": "Summary computed locally"},
					},
				},
			},
		},
	}
}
