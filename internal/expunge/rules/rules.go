// Package rules carries the statutory waiting-period table the time analyzer
// computes with. The table is injected configuration: thresholds here are
// data sourced from the legal-rules collaborator, not logic this engine
// owns, so deployments load a reviewed YAML file and the built-in defaults
// exist for tests and development.
package rules

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"recordexpunge/internal/expunge/models"
	dErrors "recordexpunge/pkg/domain-errors"
)

// RuleSet keys waiting periods by charge class and disposition status.
//
// Invariants (enforced by Validate):
//   - every waiting period is non-negative
//   - ConvictionWaitingYears covers every charge class the analyzer can see
type RuleSet struct {
	// ConvictionWaitingYears is the waiting period after a conviction,
	// keyed by charge class.
	ConvictionWaitingYears map[models.ChargeClass]int `yaml:"conviction_waiting_years"`
	// DismissalWaitingYears is the waiting period after a dismissal,
	// acquittal, or no-complaint outcome.
	DismissalWaitingYears int `yaml:"dismissal_waiting_years"`
	// ConflictWindowYears restarts the clock: a later conviction anywhere on
	// the record keeps earlier charges ineligible until this many years
	// after that conviction.
	ConflictWindowYears int `yaml:"conflict_window_years"`
	// IneligibleLevels lists court level texts that are never eligible,
	// matched case-insensitively as substrings of the charge's level.
	IneligibleLevels []string `yaml:"ineligible_levels"`
}

// Default returns the development rule set. Production deployments load the
// reviewed statutory table via Load instead.
func Default() RuleSet {
	return RuleSet{
		ConvictionWaitingYears: map[models.ChargeClass]int{
			models.ClassFelony:      3,
			models.ClassMisdemeanor: 3,
			models.ClassViolation:   1,
			models.ClassInfraction:  1,
			models.ClassUnknown:     3,
		},
		DismissalWaitingYears: 1,
		ConflictWindowYears:   10,
		IneligibleLevels:      []string{"Felony Class A"},
	}
}

// Load reads and validates a YAML rule set from disk.
func Load(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "reading rule set")
	}
	return Parse(data)
}

// Parse decodes and validates a YAML rule set.
func Parse(data []byte) (RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return RuleSet{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "decoding rule set")
	}
	if err := rs.Validate(); err != nil {
		return RuleSet{}, err
	}
	return rs, nil
}

// Validate checks the rule set invariants.
func (rs RuleSet) Validate() error {
	required := []models.ChargeClass{
		models.ClassFelony,
		models.ClassMisdemeanor,
		models.ClassViolation,
		models.ClassInfraction,
		models.ClassUnknown,
	}
	for _, class := range required {
		years, ok := rs.ConvictionWaitingYears[class]
		if !ok {
			return dErrors.Newf(dErrors.CodeInvalidInput,
				"rule set missing conviction waiting period for class %q", class)
		}
		if years < 0 {
			return dErrors.Newf(dErrors.CodeInvalidInput,
				"negative conviction waiting period for class %q", class)
		}
	}
	if rs.DismissalWaitingYears < 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "negative dismissal waiting period")
	}
	if rs.ConflictWindowYears < 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "negative conflict window")
	}
	return nil
}

// LevelIneligible reports whether the charge level text is categorically
// excluded from expungement.
func (rs RuleSet) LevelIneligible(level string) bool {
	normalized := strings.ToLower(level)
	for _, excluded := range rs.IneligibleLevels {
		if excluded != "" && strings.Contains(normalized, strings.ToLower(excluded)) {
			return true
		}
	}
	return false
}
