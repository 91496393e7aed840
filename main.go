package main

import (
	"context"
	"flag"

	"github.com/ArjunAlluri/TrainingStatusApp/internal/app"
	"github.com/ArjunAlluri/TrainingStatusApp/internal/config"
	"github.com/ArjunAlluri/TrainingStatusApp/internal/deployment"
	"github.com/ArjunAlluri/TrainingStatusApp/internal/processing"
	"github.com/ArjunAlluri/TrainingStatusApp/internal/reports"
	"github.com/ArjunAlluri/TrainingStatusApp/internal/roster"
	"github.com/ArjunAlluri/TrainingStatusApp/internal/sheets"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	inputFile := flag.String("input", "trainings.json", "Path to the roster JSON file")
	outputDir := flag.String("output", ".", "Directory for generated report files")
	paramsFile := flag.String("params", "", "Optional YAML file with report parameters")
	publishTarget := flag.String("publish", "", "Optional publish target (user@host:path) for report files")
	flag.Parse()

	log.Info().
		Str("input", *inputFile).
		Str("output", *outputDir).
		Msg("Starting Training Status application")

	// Load configuration
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	path := *paramsFile
	if path == "" {
		path = config.ParamsFileFromEnv()
	}
	params, err := config.LoadReportParams(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load report parameters")
	}

	ctx := context.Background()

	// Ingest the roster: from a Google Sheet when configured, otherwise
	// from the local JSON file
	var people []app.Person
	if cfg.RosterSheetID != "" {
		client, err := sheets.NewClient(ctx, cfg.CredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create sheets client")
		}

		people, err = client.LoadRoster(ctx, cfg.RosterSheetID, "")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load roster from sheet")
		}
	} else {
		people, err = roster.LoadFile(*inputFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load roster file")
		}
	}

	writer, err := reports.NewFileWriter(*outputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare output directory")
	}

	// Run the three reports; any malformed date aborts with no partial output
	processor := processing.NewReportProcessor(writer, params)
	if err := processor.Run(people); err != nil {
		log.Fatal().Err(err).Msg("Failed to generate reports")
	}

	log.Info().
		Int("people", len(people)).
		Int("fiscal_year", params.FiscalYear).
		Msg("Completed training status reports")

	if *publishTarget == "" {
		return
	}

	publisher := deployment.NewReportPublisher(*publishTarget)
	defer publisher.Disconnect()

	if err := publisher.PublishReports(writer.Paths()); err != nil {
		log.Fatal().Err(err).Msg("Failed to publish reports")
	}
}
