package config

// GlobalConfig is the root configuration structure, loaded once at startup
// and passed by reference through the call chain. It is not mutated after
// flag overrides are applied.
type GlobalConfig struct {
	GitHubConfig       GitHubConfig       `json:"github_config" yaml:"github_config"`
	ScannerConfig      ScannerConfig      `json:"scanner_config" yaml:"scanner_config"`
	ClassifierConfig   ClassifierConfig   `json:"classifier_config" yaml:"classifier_config"`
	ReporterConfig     ReporterConfig     `json:"reporter_config" yaml:"reporter_config"`
	NotificationConfig NotificationConfig `json:"notification_config" yaml:"notification_config"`
	LogConfig          LogConfig          `json:"log_config" yaml:"log_config"`
}

// NewDefaultGlobalConfig creates a GlobalConfig with default values for all
// sections.
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		GitHubConfig:       NewDefaultGitHubConfig(),
		ScannerConfig:      NewDefaultScannerConfig(),
		ClassifierConfig:   NewDefaultClassifierConfig(),
		ReporterConfig:     NewDefaultReporterConfig(),
		NotificationConfig: NewDefaultNotificationConfig(),
		LogConfig:          NewDefaultLogConfig(),
	}
}
