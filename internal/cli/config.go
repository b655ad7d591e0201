package cli

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/hipolitesport/roster/internal/remote"
	"github.com/hipolitesport/roster/internal/session"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	TokenFile string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values. A .env file in the
// working directory is read first; variables already set take precedence.
func DefaultConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerURL: getEnvOrDefault("ROSTER_SERVER", remote.DefaultBaseURL),
		TokenFile: getEnvOrDefault("ROSTER_TOKEN_FILE", session.DefaultPath()),
		Output:    getEnvOrDefault("ROSTER_OUTPUT", "text"),
		Verbose:   false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
