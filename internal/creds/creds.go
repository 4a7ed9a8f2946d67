// Package creds resolves the OpenWeatherMap API key.
package creds

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvVar is the environment variable consulted first.
const EnvVar = "OWM_API_KEY"

// LoadAPIKey resolves the API key from the environment, falling back to a
// .env file beside the executable. Returns an empty string when no key is
// found; it never fails.
func LoadAPIKey() string {
	if key := os.Getenv(EnvVar); key != "" {
		return key
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return LoadAPIKeyFrom(filepath.Join(filepath.Dir(exe), ".env"))
}

// LoadAPIKeyFrom reads the key from the given .env-style file. Missing or
// malformed files yield an empty string.
func LoadAPIKeyFrom(path string) string {
	vars, err := godotenv.Read(path)
	if err != nil {
		return ""
	}
	return vars[EnvVar]
}
