package config

// ScannerConfig holds the configuration for the TruffleHog invoker.
type ScannerConfig struct {
	TruffleHogPath           string `json:"trufflehog_path" yaml:"trufflehog_path" validate:"required"`
	TruffleHogTimeoutSeconds int    `json:"trufflehog_timeout_seconds" yaml:"trufflehog_timeout_seconds" validate:"gt=0"`
	OnlyVerified             bool   `json:"only_verified" yaml:"only_verified"`
}

// NewDefaultScannerConfig creates a new ScannerConfig with default values.
func NewDefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		TruffleHogPath:           "trufflehog",
		TruffleHogTimeoutSeconds: 600,
		OnlyVerified:             false,
	}
}
