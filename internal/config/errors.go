package config

import "errors"

// Validation errors returned by Config.Validate and the key accessors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrInvalidLogFormat    = errors.New("invalid log format")
	ErrInvalidModel        = errors.New("invalid model")
	ErrInvalidDefaults     = errors.New("invalid defaults")
	ErrInvalidReportFormat = errors.New("invalid report format")
	ErrUnsupportedVersion  = errors.New("unsupported config version")
	ErrUnknownKey          = errors.New("unknown configuration key")
)
