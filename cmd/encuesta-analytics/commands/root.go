package commands

import (
	"encuesta-analytics/internal/analytics"
	"encuesta-analytics/internal/config"
	"encuesta-analytics/internal/logging"
	"encuesta-analytics/internal/rpc"
	"encuesta-analytics/internal/seed"
	"encuesta-analytics/internal/survey"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

// demoGenerator adapts the scenario seed engine to the opaque generator
// signature the analytics pipeline wraps.
func demoGenerator(s *survey.Survey, count int, scenario string) []survey.ResponsePayload {
	return seed.Generate(s, seed.GeneratorConfig{Count: count, Scenario: scenario})
}

var rootCmd = &cobra.Command{
	Use:   "encuesta-analytics",
	Short: "Survey response aggregation and reconciliation engine",
	Long: `Aggregates raw survey response records into summary reports (question
tallies, channel/UTM/demographic breakdowns, time series, heat-map points)
and reconciles locally computed reports with remotely computed ones.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("encuesta-analytics starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("Analytics server starting stdio loop")
		server := rpc.NewServer(cfg, analytics.Generator(demoGenerator))
		if err := server.Serve(); err != nil {
			log.Fatal().Err(err).Msg("Server loop failed")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
