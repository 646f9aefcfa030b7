package config

import (
	"os"
	"strconv"
)

// Analysis captures configuration for the eligibility-analysis engine.
type Analysis struct {
	// RulesPath points at a YAML waiting-period rule set. Empty means the
	// built-in defaults.
	RulesPath string
	// BatchConcurrency bounds how many records a batch analysis runs at once.
	BatchConcurrency int
}

// FromEnv builds an Analysis config from environment variables so callers
// stay lean.
func FromEnv() Analysis {
	rulesPath := os.Getenv("EXPUNGE_RULES_PATH")

	concurrency := 4
	if v := os.Getenv("EXPUNGE_BATCH_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			concurrency = n
		}
	}

	return Analysis{
		RulesPath:        rulesPath,
		BatchConcurrency: concurrency,
	}
}
