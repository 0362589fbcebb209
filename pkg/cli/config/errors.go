package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidConfig  = goerr.New("invalid configuration")
	ErrInvalidLookups = goerr.New("invalid lookup configuration")
	ErrInvalidOutput  = goerr.New("invalid output location")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	OutputKey     = "output"
)
