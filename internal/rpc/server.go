package rpc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"encuesta-analytics/internal/analytics"
	"encuesta-analytics/internal/config"
	"encuesta-analytics/internal/survey"

	"github.com/rs/zerolog/log"
)

// JSONRPCRequest is a standard JSON-RPC request envelope.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// JSONRPCResponse is a standard JSON-RPC response envelope.
type JSONRPCResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// Server holds the loaded survey and record set between tool calls.
// Filtering happens here, once per call, before anything reaches the
// report builder.
type Server struct {
	cfg      *config.AppConfig
	generate analytics.Generator

	survey   *survey.Survey
	payloads []survey.ResponsePayload
}

// NewServer wires the server with its configuration and the demo record
// generator.
func NewServer(cfg *config.AppConfig, generate analytics.Generator) *Server {
	return &Server{cfg: cfg, generate: generate}
}

// Serve runs the JSON-RPC loop over stdio until EOF.
func (s *Server) Serve() error {
	reader := bufio.NewReader(os.Stdin)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		var req JSONRPCRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Error().Err(err).Msg("Failed to unmarshal request")
			continue
		}

		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req JSONRPCRequest) {
	var result interface{}
	var errRes interface{}

	switch req.Method {
	case "initialize":
		result = map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities":    map[string]interface{}{},
			"serverInfo": map[string]interface{}{
				"name":    "encuesta-analytics",
				"version": "0.1.0",
			},
		}
	case "tools/list":
		result = s.listTools()
	case "tools/call":
		result, errRes = s.callTool(req.Params)
	default:
		errRes = map[string]interface{}{
			"code":    -32601,
			"message": fmt.Sprintf("Method %s not found", req.Method),
		}
	}

	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
		Error:   errRes,
	}

	out, _ := json.Marshal(resp)
	fmt.Fprintf(os.Stdout, "%s\n", out)
}

func (s *Server) callTool(params json.RawMessage) (interface{}, interface{}) {
	var call struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, map[string]interface{}{"code": -32602, "message": "Invalid params"}
	}

	var data interface{}
	var err error

	switch call.Name {
	case "load_survey":
		data, err = s.handleLoadSurvey(asString(call.Arguments["path"]))
	case "load_responses":
		data, err = s.handleLoadResponses(asString(call.Arguments["path"]))
	case "generate_demo":
		data, err = s.handleGenerateDemo(asInt(call.Arguments["count"]), asString(call.Arguments["scenario"]))
	case "get_summary":
		data, err = s.handleGetSummary(filtersFromArgs(call.Arguments))
	case "get_timeseries":
		data, err = s.handleGetTimeseries(filtersFromArgs(call.Arguments))
	case "get_heatmap":
		data, err = s.handleGetHeatmap(filtersFromArgs(call.Arguments))
	case "merge_summary":
		data, err = s.handleMergeSummary(call.Arguments["primary"], call.Arguments["fallback"])
	default:
		return nil, map[string]interface{}{"code": -32601, "message": "Tool not found"}
	}

	if err != nil {
		return nil, map[string]interface{}{"code": -32000, "message": err.Error()}
	}

	return map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": s.formatResult(data),
			},
		},
	}, nil
}

func (s *Server) formatResult(data interface{}) string {
	out, _ := json.MarshalIndent(data, "", "  ")
	return string(out)
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt(v interface{}) int {
	// JSON numbers decode as float64.
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	return int(f)
}

func filtersFromArgs(args map[string]interface{}) analytics.Filters {
	return analytics.Filters{
		From:         asString(args["desde"]),
		To:           asString(args["hasta"]),
		Channel:      asString(args["canal"]),
		UTMSource:    asString(args["utm_source"]),
		UTMCampaign:  asString(args["utm_campaign"]),
		Gender:       asString(args["genero"]),
		AgeRange:     asString(args["rango_etario"]),
		Country:      asString(args["pais"]),
		Province:     asString(args["provincia"]),
		City:         asString(args["ciudad"]),
		Neighborhood: asString(args["barrio"]),
	}
}
