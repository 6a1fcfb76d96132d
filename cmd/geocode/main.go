package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"track2text/internal/adapters/geocode"
	"track2text/internal/config"
	"track2text/internal/platform/logging"
	"track2text/internal/ports"
)

// Lookup utility for checking what the configured providers return for a
// single coordinate, raw payload included. Useful when a report names
// the wrong village and the question is whose fault that is.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	lat := flag.Float64("lat", 0, "Latitude")
	lon := flag.Float64("lon", 0, "Longitude")
	purpose := flag.String("purpose", "road", "Lookup purpose: road or locality")
	raw := flag.Bool("raw", false, "Print the raw provider payload as JSON")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var p ports.Purpose
	switch *purpose {
	case "road":
		p = ports.PurposeRoad
	case "locality":
		p = ports.PurposeLocality
	default:
		log.Fatalf("unknown purpose %q, want road or locality", *purpose)
	}

	logger, err := logging.New(false)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	client, err := geocode.New(geocode.Options{
		RoadProvider:     cfg.Geocoder,
		LocalityProvider: cfg.LocalityGeocoder,
		LocalityZoom:     cfg.LocalityZoom,
		UserAgent:        cfg.UserAgent,
	}, logger)
	if err != nil {
		log.Fatal(err)
	}

	addr, err := client.Resolve(context.Background(), *lat, *lon, p)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("road:     %s\n", addr.Road)
	fmt.Printf("place:    %s\n", addr.Place)
	fmt.Printf("district: %s\n", addr.District)

	if *raw && addr.Raw != nil {
		payload, err := json.MarshalIndent(addr.Raw, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(append(payload, '\n'))
	}
}
