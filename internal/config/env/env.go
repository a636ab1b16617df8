package env

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Dir is where per-environment .env files live, relative to the working directory.
var Dir = filepath.Join("internal", "config", "env")

// LoadEnv loads environment variables from the first .env file found.
// Candidates are .env.<ENV> under Dir, then .env in the working directory.
// Variables already present in the process environment are never overwritten.
// It returns the path that was loaded, or "" when no file exists.
func LoadEnv() (string, error) {
	name := os.Getenv("ENV")
	if name == "" {
		name = "development"
	}

	candidates := []string{
		filepath.Join(Dir, fmt.Sprintf(".env.%s", name)),
		".env",
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("error loading env file %s: %w", path, err)
		}
		return path, nil
	}

	return "", nil
}
