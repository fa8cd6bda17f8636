package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that take precedence over stored preferences.
const (
	EnvFFmpeg      = "CROPPER_FFMPEG"
	EnvFaceCascade = "CROPPER_FACE_CASCADE"
)

// LoadEnv loads KEY=VALUE pairs from the given files (".env" when none are
// given) into the process environment. Variables already set are kept, and
// missing files are not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return err
		}
	}
	return nil
}

// getEnv returns the trimmed value of key, or fallback when unset or blank.
func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetPath returns the path to the user's data directory, creating it if needed.
func GetPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(homeDir, "."+strings.ToLower(ServiceName))
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}
