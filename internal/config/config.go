package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default politeness signature sent with every geocoding request.
const defaultUserAgent = "track2text/1.0 (local script; contact: none)"

// Run configuration assembled from the environment, then overridden by
// command line flags. Components receive values from here and never read
// the environment themselves.
type Config struct {
	MaxSamples       int
	MinDistanceM     float64
	SectionKm        float64
	IncludeStartGoal bool
	Geocoder         string
	LocalityGeocoder string
	LocalityZoom     int
	UserAgent        string
	Inbox            string
}

// FromEnv builds the configuration from environment variables. Each key
// is read under the TRACK2TEXT_ prefix first, then under the legacy
// GPXER_ prefix kept for setups migrated from the old tool.
func FromEnv() (Config, error) {
	cfg := Config{
		Geocoder:         strings.ToLower(First("nominatim", "TRACK2TEXT_GEOCODER", "GPXER_GEOCODER")),
		LocalityGeocoder: strings.ToLower(First("photon", "TRACK2TEXT_LOCALITY_GEOCODER", "GPXER_LOCALITY_GEOCODER")),
		UserAgent:        First(defaultUserAgent, "TRACK2TEXT_USER_AGENT", "NOMINATIM_USER_AGENT"),
		Inbox:            First("inbox", "TRACK2TEXT_INBOX", "GPXER_INBOX"),
		IncludeStartGoal: First("1", "TRACK2TEXT_INCLUDE_START_GOAL", "GPXER_INCLUDE_START_GOAL") == "1",
	}

	var err error
	if cfg.MaxSamples, err = intEnv(200, "TRACK2TEXT_MAX_SAMPLES", "GPXER_MAX_SAMPLES"); err != nil {
		return Config{}, err
	}
	if cfg.MinDistanceM, err = floatEnv(50, "TRACK2TEXT_MIN_DIST_M", "GPXER_MIN_DIST_M"); err != nil {
		return Config{}, err
	}
	if cfg.SectionKm, err = floatEnv(3, "TRACK2TEXT_SECTION_KM", "GPXER_SECTION_KM"); err != nil {
		return Config{}, err
	}
	if cfg.LocalityZoom, err = intEnv(12, "TRACK2TEXT_LOCALITY_ZOOM", "GPXER_LOCALITY_ZOOM"); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects bounds that would break the pipeline. Called before
// any network client is constructed.
func (c Config) Validate() error {
	if c.MaxSamples < 2 {
		return fmt.Errorf("validate config: max samples must be at least 2 to keep start and finish, got %d", c.MaxSamples)
	}
	if c.MinDistanceM < 0 {
		return fmt.Errorf("validate config: min sample distance must not be negative, got %v", c.MinDistanceM)
	}
	if c.SectionKm < 0 {
		return fmt.Errorf("validate config: section interval must not be negative, got %v", c.SectionKm)
	}
	if c.LocalityZoom < 0 || c.LocalityZoom > 18 {
		return fmt.Errorf("validate config: locality zoom must be between 0 and 18, got %d", c.LocalityZoom)
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		return fmt.Errorf("validate config: user agent must not be empty, geocoding providers reject anonymous clients")
	}
	return nil
}

// First returns the first environment variable set among keys, or the
// fallback when none is.
func First(fallback string, keys ...string) string {
	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
	}
	return fallback
}

func intEnv(fallback int, keys ...string) (int, error) {
	for _, key := range keys {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("read config: %s=%q is not an integer", key, v)
		}
		return n, nil
	}
	return fallback, nil
}

func floatEnv(fallback float64, keys ...string) (float64, error) {
	for _, key := range keys {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("read config: %s=%q is not a number", key, v)
		}
		return f, nil
	}
	return fallback, nil
}
