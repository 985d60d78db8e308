package messages

// Config messages for configuration loading and validation.
const (
	// ConfigReadFailedFmt formats unreadable config file errors.
	ConfigReadFailedFmt        = "failed to read config %s: %w"
	ConfigInvalidFmt           = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt  = "unrecognized keys in %s: %v"
	ConfigLogLevelRequiredFmt  = "%s: log.level must not be empty"
	ConfigLogLevelInvalidFmt   = "%s: log.level %q must be one of panic, fatal, error, warn, info, debug, trace"
	ConfigDiffLinesInvalidFmt  = "%s: preview.diff_lines must be zero or positive (got %d)"
	ConfigResolveHomeFailedFmt = "resolve home directory: %w"
	ConfigExpandPathFailedFmt  = "expand config path %s: %w"

	// LoggingInvalidLevelFmt formats unknown log level errors.
	LoggingInvalidLevelFmt = "invalid log level %q: %w"
)
