package config

// LogConfig holds the logger configuration.
type LogConfig struct {
	LogLevel   string `json:"log_level" yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error fatal panic"`
	LogFormat  string `json:"log_format" yaml:"log_format" validate:"omitempty,oneof=console json"`
	LogFile    string `json:"log_file" yaml:"log_file"`
	MaxSizeMB  int    `json:"max_log_size_mb" yaml:"max_log_size_mb" validate:"gt=0"`
	MaxBackups int    `json:"max_log_backups" yaml:"max_log_backups" validate:"gte=0"`
}

// NewDefaultLogConfig creates a new LogConfig with default values.
func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		LogLevel:   "info",
		LogFormat:  "console",
		LogFile:    "",
		MaxSizeMB:  50,
		MaxBackups: 3,
	}
}
