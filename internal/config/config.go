package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL   = "http://localhost:5000/api"
	DefaultAssetURL = "http://localhost:5000"
)

// Client is the configuration the browser bundle needs. The SPA host hands it
// to the wasm binary through the go-app environment.
type Client struct {
	APIURL       string
	AssetURL     string
	APITimeout   time.Duration
	PollInterval time.Duration
}

type Config struct {
	Addr     string
	LogLevel string
	Client   Client
	DevAPI   DevAPIConfig
}

type DevAPIConfig struct {
	Addr        string
	DataDir     string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string
	AdminEmails []string
}

// Environment keys shared between the SPA host and the wasm client.
const (
	EnvAPIURL       = "PROMANAGER_API_URL"
	EnvAssetURL     = "PROMANAGER_ASSET_URL"
	EnvAPITimeout   = "PROMANAGER_API_TIMEOUT"
	EnvPollInterval = "PROMANAGER_POLL_INTERVAL"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadDotenv loads the first .env found in the working directory or its two
// parents. A missing file is not an error.
func LoadDotenv() string {
	for _, p := range []string{".env", filepath.Join("..", ".env"), filepath.Join("..", "..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err == nil {
				return p
			}
		}
	}
	return ""
}

func Load() Config {
	return Config{
		Addr:     getEnv("PROMANAGER_ADDR", ":8000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Client:   ClientFrom(os.Getenv),
		DevAPI: DevAPIConfig{
			Addr:        getEnv("DEVAPI_ADDR", ":5000"),
			DataDir:     getEnv("DEVAPI_DATA_DIR", "data"),
			JWTSecret:   getEnv("DEVAPI_JWT_SECRET", "dev-secret-change-me"),
			TokenTTL:    parseDuration(getEnv("DEVAPI_TOKEN_TTL", ""), 7*24*time.Hour),
			CORSOrigins: splitList(getEnv("DEVAPI_CORS_ORIGINS", "http://localhost:8000")),
			AdminEmails: splitList(getEnv("DEVAPI_ADMIN_EMAILS", "")),
		},
	}
}

// ClientFrom builds the client configuration from a lookup function. The host
// passes os.Getenv, the wasm bundle passes app.Getenv.
func ClientFrom(lookup func(string) string) Client {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(lookup(key)); v != "" {
			return v
		}
		return fallback
	}
	return Client{
		APIURL:       strings.TrimRight(get(EnvAPIURL, DefaultAPIURL), "/"),
		AssetURL:     strings.TrimRight(get(EnvAssetURL, DefaultAssetURL), "/"),
		APITimeout:   parseDuration(get(EnvAPITimeout, ""), 15*time.Second),
		PollInterval: parseDuration(get(EnvPollInterval, ""), time.Minute),
	}
}

// Env returns the client configuration as go-app environment entries.
func (c Client) Env() map[string]string {
	return map[string]string{
		EnvAPIURL:       c.APIURL,
		EnvAssetURL:     c.AssetURL,
		EnvAPITimeout:   c.APITimeout.String(),
		EnvPollInterval: c.PollInterval.String(),
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimRight(strings.TrimSpace(p), "/"); v != "" {
			out = append(out, v)
		}
	}
	return out
}
