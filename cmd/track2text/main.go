package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"track2text/internal/adapters/console"
	"track2text/internal/adapters/geocode"
	"track2text/internal/adapters/report"
	"track2text/internal/adapters/track"
	"track2text/internal/config"
	"track2text/internal/domain"
	"track2text/internal/platform/logging"
	"track2text/internal/platform/obs"
	"track2text/internal/ports"
	"track2text/internal/services"
)

// main is the application composition root.
// It wires the file loaders and geocoding backends behind ports and runs
// the pipeline once: downsample, annotate, extract events, write report.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	input := flag.String("input", "", "Activity file to process (default: newest file in the inbox)")
	output := flag.String("o", "", "Output path (default: next to the input file)")
	debug := flag.Bool("debug", false, "Verbose logging")
	quiet := flag.Bool("quiet", false, "No progress bar")

	// Environment values form the flag defaults, so flags win.
	flag.IntVar(&cfg.MaxSamples, "max-samples", cfg.MaxSamples, "Upper bound on annotated samples")
	flag.Float64Var(&cfg.MinDistanceM, "min-dist", cfg.MinDistanceM, "Minimum distance between samples in meters")
	flag.Float64Var(&cfg.SectionKm, "section-km", cfg.SectionKm, "Section interval in kilometers (0 disables)")
	flag.BoolVar(&cfg.IncludeStartGoal, "start-goal", cfg.IncludeStartGoal, "Include start and finish bullets")
	flag.StringVar(&cfg.Geocoder, "geocoder", cfg.Geocoder, "Provider for road lookups (nominatim or photon)")
	flag.StringVar(&cfg.LocalityGeocoder, "locality-geocoder", cfg.LocalityGeocoder, "Provider for locality lookups")
	flag.IntVar(&cfg.LocalityZoom, "locality-zoom", cfg.LocalityZoom, "Zoom level for locality lookups")
	flag.StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "User-Agent header for geocoding requests")
	flag.StringVar(&cfg.Inbox, "inbox", cfg.Inbox, "Directory scanned for the newest activity file")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := obs.WithRunID(context.Background(), uuid.NewString())

	inputPath := *input
	if inputPath == "" {
		inputPath, err = track.FindNewest(cfg.Inbox)
		if err != nil {
			logger.Fatalw("pick input file", "err", err)
		}
	}

	logger.Infow("processing activity", "run_id", obs.RunID(ctx), "input", inputPath)

	parsed, err := track.Load(inputPath)
	if err != nil {
		logger.Fatalw("load track", "err", err)
	}

	resolver, err := geocode.New(geocode.Options{
		RoadProvider:     cfg.Geocoder,
		LocalityProvider: cfg.LocalityGeocoder,
		LocalityZoom:     cfg.LocalityZoom,
		UserAgent:        cfg.UserAgent,
	}, logger)
	if err != nil {
		logger.Fatalw("build geocode client", "err", err)
	}

	samples, err := services.DownsampleTrack(parsed.Points, cfg.MaxSamples, cfg.MinDistanceM)
	if err != nil {
		logger.Fatalw("downsample track", "err", err)
	}

	logger.Infow("downsampled",
		"run_id", obs.RunID(ctx),
		"trackpoints", len(parsed.Points),
		"samples", len(samples),
	)

	var observer ports.ProgressObserver = ports.NopObserver{}
	var bar *console.Observer
	if !*quiet {
		bar = console.NewObserver(len(samples), os.Stderr)
		observer = bar
	}

	annotated, err := services.AnnotateSamples(ctx, samples, resolver, observer)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		logger.Fatalw("annotate samples", "err", err)
	}

	events := services.ExtractEvents(annotated, cfg.SectionKm, cfg.IncludeStartGoal)

	outPath := *output
	if outPath == "" {
		outPath = report.DefaultPath(inputPath)
	}

	data := report.Data{
		SourceName: filepath.Base(inputPath),
		Summary: domain.Summary{
			TrackPointCount: len(parsed.Points),
			SampleCount:     len(samples),
			TotalDistanceKm: domain.TrackDistanceMeters(parsed.Points) / 1000,
		},
		Metrics: parsed.Metrics,
		Events:  events,
	}

	if err := report.Write(outPath, data); err != nil {
		logger.Fatalw("write report", "err", err)
	}

	logger.Infow("report written",
		"run_id", obs.RunID(ctx),
		"events", len(events),
		"output", outPath,
	)
	fmt.Println("Fertig:", outPath)
}
