package config

// ClassifierConfig holds the medium-signal patterns used to downgrade
// findings whose path or repository name looks like test material.
// An empty list falls back to the built-in defaults.
type ClassifierConfig struct {
	MediumPatterns []string `json:"medium_patterns" yaml:"medium_patterns"`
}

// NewDefaultClassifierConfig creates a new ClassifierConfig with default values.
func NewDefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		MediumPatterns: nil,
	}
}
