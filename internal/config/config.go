package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the facility finder.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the public API server.
// - HealthPort: The port for the monitoring server (healthz, metrics).
// - GeocoderProvider: The geocoding provider to use (google, nominatim).
// - GeocoderAPIKey: The API key for the geocoding provider (required for Google).
// - PlacesAPIKey: The API key for the places-search provider.
// - PlacesRateLimit: Requests per second allowed against the places API.
// - GenAIKeys: API keys for the text-generation provider, rotated round-robin.
// - GenAIModel: The generation model identifier.
// - Search: Retention bounds for the per-kind search profiles.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env              string
	Port             int
	HealthPort       int
	GeocoderProvider string
	GeocoderAPIKey   string
	PlacesAPIKey     string
	PlacesRateLimit  int
	GenAIKeys        []string
	GenAIModel       string
	Search           SearchConfig
	Database         PostgresConfig
}

// SearchConfig holds the tunable bounds of the facility search.
type SearchConfig struct {
	HospitalCeiling int     // Maximum hospitals per result set.
	PharmacyCeiling int     // Maximum pharmacies per result set.
	HospitalMaxKm   float64 // Retention radius for hospitals.
	PharmacyMaxKm   float64 // Retention radius for pharmacies.
	PerQueryLimit   int     // Result limit per places query.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// MustLoad loads the configuration from the environment and returns a Config
// struct. It panics when a numeric setting cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:              setDefaultEnv("CAREFINDER_ENV", "production"),
		Port:             mustInt("CAREFINDER_PORT", "8080"),
		HealthPort:       mustInt("CAREFINDER_HEALTH_PORT", "9090"),
		GeocoderProvider: setDefaultEnv("CAREFINDER_GEOCODER", "nominatim"),
		GeocoderAPIKey:   os.Getenv("CAREFINDER_GEOCODER_KEY"),
		PlacesAPIKey:     os.Getenv("CAREFINDER_PLACES_KEY"),
		PlacesRateLimit:  mustInt("CAREFINDER_PLACES_RATE_LIMIT", "5"),
		GenAIKeys:        splitKeys(os.Getenv("CAREFINDER_GENAI_KEYS")),
		GenAIModel:       setDefaultEnv("CAREFINDER_GENAI_MODEL", "llama-3.3-70b-versatile"),
		Search: SearchConfig{
			HospitalCeiling: mustInt("CAREFINDER_HOSPITAL_CEILING", "10"),
			PharmacyCeiling: mustInt("CAREFINDER_PHARMACY_CEILING", "12"),
			HospitalMaxKm:   mustFloat("CAREFINDER_HOSPITAL_MAX_KM", "15"),
			PharmacyMaxKm:   mustFloat("CAREFINDER_PHARMACY_MAX_KM", "10"),
			PerQueryLimit:   mustInt("CAREFINDER_PER_QUERY_LIMIT", "20"),
		},
		Database: PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     setDefaultEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}

func mustInt(key, override string) int {
	value, err := strconv.Atoi(setDefaultEnv(key, override))
	if err != nil {
		panic("failed to parse " + key + " from configuration, must be an integer")
	}

	return value
}

func mustFloat(key, override string) float64 {
	value, err := strconv.ParseFloat(setDefaultEnv(key, override), 64)
	if err != nil {
		panic("failed to parse " + key + " from configuration, must be a number")
	}

	return value
}

func splitKeys(raw string) []string {
	keys := []string{}
	for _, key := range strings.Split(raw, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}

	return keys
}
