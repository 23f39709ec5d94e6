package config

// Default configuration values.
const (
	DefaultInputDirectory  = "."
	DefaultInputPattern    = "output-test-*.txt"
	DefaultOutputDirectory = "."
	DefaultTimestampFormat = "20060102-150405"
	DefaultTopPatterns     = 5
	DefaultTopClasses      = 3
	DefaultMessagePreview  = 100
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyInputDefaults(cfg)
	applyOutputDefaults(cfg)
	applyReportDefaults(cfg)
}

func applyInputDefaults(cfg *Config) {
	if cfg.Input.Directory == "" {
		cfg.Input.Directory = DefaultInputDirectory
	}
	if cfg.Input.Pattern == "" {
		cfg.Input.Pattern = DefaultInputPattern
	}
}

func applyOutputDefaults(cfg *Config) {
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = DefaultOutputDirectory
	}
	if cfg.Output.TimestampFormat == "" {
		cfg.Output.TimestampFormat = DefaultTimestampFormat
	}
}

func applyReportDefaults(cfg *Config) {
	if cfg.Report.TopPatterns == 0 {
		cfg.Report.TopPatterns = DefaultTopPatterns
	}
	if cfg.Report.TopClasses == nil {
		n := DefaultTopClasses
		cfg.Report.TopClasses = &n
	}
	if cfg.Report.MessagePreview == 0 {
		cfg.Report.MessagePreview = DefaultMessagePreview
	}
}
