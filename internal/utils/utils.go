package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv loads .env (if present) and returns the required variables.
func LoadEnv(requiredVars []string) (map[string]string, error) {
	_ = godotenv.Load()

	envVars := make(map[string]string)

	for _, key := range requiredVars {
		value := os.Getenv(key)
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", key)
		}
		envVars[key] = value
	}

	return envVars, nil
}

// OptionalEnv returns the trimmed value of key, or "" when unset.
func OptionalEnv(key string) string {
	_ = godotenv.Load()
	return strings.TrimSpace(os.Getenv(key))
}
