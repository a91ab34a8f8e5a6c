package config

// ReporterConfig holds the configuration for console and file output.
type ReporterConfig struct {
	// OutputDir, when set, receives one JSON array file per severity at the
	// end of the run. Created if missing.
	OutputDir string `json:"output_dir" yaml:"output_dir" validate:"omitempty,dirpath"`
	// Silent suppresses the banner, info chatter and clean-repository lines.
	Silent bool `json:"silent" yaml:"silent"`
}

// NewDefaultReporterConfig creates a new ReporterConfig with default values.
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputDir: "",
		Silent:    false,
	}
}
