// Package models contains the shared data types used across promptforge.
package models

// ComplexityTier classifies how much prompt-engineering experience a
// technique assumes from the user.
type ComplexityTier string

const (
	// TierSimple techniques work well without any tuning.
	TierSimple ComplexityTier = "simple"
	// TierIntermediate techniques benefit from a well-formed input prompt.
	TierIntermediate ComplexityTier = "intermediate"
	// TierAdvanced techniques assume familiarity with prompt structure.
	TierAdvanced ComplexityTier = "advanced"
)

// String returns the tier name.
func (t ComplexityTier) String() string {
	return string(t)
}

// Technique is a named prompt-engineering strategy. The catalog of
// techniques is fixed at startup and never mutated at runtime.
type Technique struct {
	// Key is the unique identifier used on the CLI and in the registry.
	Key string
	// Name is the human-readable technique name.
	Name string
	// Description explains when the technique helps.
	Description string
	// Tier indicates the complexity tier of the technique.
	Tier ComplexityTier
}
