package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// SDKFileName is the master SDK file written by selection and document exports.
	SDKFileName string
	// OutputDir overrides where SDK files go. Empty means next to the source notes.
	OutputDir string
	// IndividualSuffix is appended to the class name to suggest a per-class file name.
	IndividualSuffix string
	// LanguageTag is passed to the document sink as a syntax hint.
	LanguageTag string
	// WorkerCount bounds parallel parsing in batch exports.
	WorkerCount int
	// NotesExtensions are the file extensions batch exports pick up.
	NotesExtensions []string
	LogLevel        string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		SDKFileName:      getEnv("SDK_FILE_NAME", "custom_SDK.cs"),
		OutputDir:        getEnv("SDK_OUTPUT_DIR", ""),
		IndividualSuffix: getEnv("SDK_INDIVIDUAL_SUFFIX", "_Offsets.cs"),
		LanguageTag:      getEnv("SDK_LANGUAGE_TAG", "cs"),
		WorkerCount:      getEnvInt("WORKER_COUNT", 4),
		NotesExtensions:  getEnvList("NOTES_EXTENSIONS", []string{".txt"}),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// getEnvList reads a comma-separated list, lowercasing and dropping blanks.
func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
