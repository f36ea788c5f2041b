// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Provider names selectable in configuration.
const (
	AnnotatorHeuristic = "heuristic"
	AnnotatorGemini    = "gemini"

	EmbedderHashing = "hashing"
	EmbedderGemini  = "gemini"

	GrammarNeutral   = "neutral"
	GrammarHeuristic = "heuristic"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty"`  // Path to resume text file
	Job    string `json:"job,omitempty"`     // Path to job description text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch job description from

	// Providers
	Annotator      string `json:"annotator,omitempty" validate:"omitempty,oneof=heuristic gemini"`
	Embedder       string `json:"embedder,omitempty" validate:"omitempty,oneof=hashing gemini"`
	GrammarChecker string `json:"grammar_checker,omitempty" validate:"omitempty,oneof=neutral heuristic"`
	EmbeddingModel string `json:"embedding_model,omitempty"`
	APIKey         string `json:"api_key,omitempty"` // Gemini API key

	// Analysis tuning
	SimilarityThreshold float64 `json:"similarity_threshold,omitempty" validate:"gte=0,lte=1"`
	CacheCapacity       int     `json:"cache_capacity,omitempty" validate:"gte=0"`

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"` // Use headless browser for SPA job boards
	Verbose     bool   `json:"verbose,omitempty"`     // Print detailed progress and reports
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for history
}

// DefaultConfig returns the offline-capable defaults: rule-based
// annotation, local embeddings, grammar checking off.
func DefaultConfig() Config {
	return Config{
		Annotator:           AnnotatorHeuristic,
		Embedder:            EmbedderHashing,
		GrammarChecker:      GrammarNeutral,
		SimilarityThreshold: 0.6,
		CacheCapacity:       20,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks field constraints and cross-field rules. Required
// fields are not checked here; CLI flag validation handles those after
// merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Annotator == AnnotatorGemini || c.Embedder == EmbedderGemini {
		if c.APIKey == "" && os.Getenv("GEMINI_API_KEY") == "" {
			return fmt.Errorf("config error: gemini providers require 'api_key' or GEMINI_API_KEY")
		}
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Annotator == "" {
		result.Annotator = defaults.Annotator
	}
	if result.Embedder == "" {
		result.Embedder = defaults.Embedder
	}
	if result.GrammarChecker == "" {
		result.GrammarChecker = defaults.GrammarChecker
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.SimilarityThreshold == 0 {
		result.SimilarityThreshold = defaults.SimilarityThreshold
	}
	if result.CacheCapacity == 0 {
		result.CacheCapacity = defaults.CacheCapacity
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
