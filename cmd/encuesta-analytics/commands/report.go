package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"encuesta-analytics/internal/analytics"
	"encuesta-analytics/internal/survey"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	reportSurveyPath    string
	reportResponsesPath string
	reportDemoCount     int
	reportDemoScenario  string
	reportFilters       analytics.Filters
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build a summary report from a survey schema and a response file",
	Long: `Reads a survey schema and a response record list, applies the requested
filters once, and writes the full analytics result (summary, timeseries,
heatmap) as JSON to stdout. With --demo-count instead of --responses, a
synthetic dataset is generated and aggregated through the same pipeline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		surveyFile, err := os.Open(reportSurveyPath)
		if err != nil {
			return fmt.Errorf("open survey file: %w", err)
		}
		defer surveyFile.Close()

		s, err := survey.LoadSurvey(surveyFile)
		if err != nil {
			return err
		}

		var payloads []survey.ResponsePayload
		switch {
		case reportResponsesPath != "":
			responsesFile, err := os.Open(reportResponsesPath)
			if err != nil {
				return fmt.Errorf("open responses file: %w", err)
			}
			defer responsesFile.Close()
			if payloads, err = survey.LoadPayloads(responsesFile); err != nil {
				return err
			}
		case reportDemoCount > 0:
			dataset := analytics.GenerateDemoDataset(s, analytics.Generator(demoGenerator), analytics.DemoOptions{
				Count:    reportDemoCount,
				Scenario: reportDemoScenario,
			})
			payloads = dataset.Payloads
		default:
			return fmt.Errorf("either --responses or --demo-count is required")
		}

		result := analytics.BuildAnalytics(s, payloads, reportFilters)
		log.Info().
			Int("records", result.Summary.TotalResponses).
			Int("questions", len(result.Summary.Questions)).
			Msg("Report built")

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportSurveyPath, "survey", "", "path to the survey schema JSON file (required)")
	reportCmd.Flags().StringVar(&reportResponsesPath, "responses", "", "path to the response records JSON file")
	reportCmd.Flags().IntVar(&reportDemoCount, "demo-count", 0, "generate this many synthetic records instead of reading --responses")
	reportCmd.Flags().StringVar(&reportDemoScenario, "demo-scenario", "", "scenario preset for synthetic records")
	_ = reportCmd.MarkFlagRequired("survey")

	reportCmd.Flags().StringVar(&reportFilters.From, "desde", "", "inclusive ISO date lower bound")
	reportCmd.Flags().StringVar(&reportFilters.To, "hasta", "", "inclusive ISO date upper bound")
	reportCmd.Flags().StringVar(&reportFilters.Channel, "canal", "", "channel filter")
	reportCmd.Flags().StringVar(&reportFilters.UTMSource, "utm-source", "", "UTM source filter")
	reportCmd.Flags().StringVar(&reportFilters.UTMCampaign, "utm-campaign", "", "UTM campaign filter")
	reportCmd.Flags().StringVar(&reportFilters.Gender, "genero", "", "gender filter")
	reportCmd.Flags().StringVar(&reportFilters.AgeRange, "rango-etario", "", "age range filter")
	reportCmd.Flags().StringVar(&reportFilters.Country, "pais", "", "country filter")
	reportCmd.Flags().StringVar(&reportFilters.Province, "provincia", "", "province filter")
	reportCmd.Flags().StringVar(&reportFilters.City, "ciudad", "", "city filter")
	reportCmd.Flags().StringVar(&reportFilters.Neighborhood, "barrio", "", "neighborhood filter")

	rootCmd.AddCommand(reportCmd)
}
