package config

// NewLogger is exported for testing
var NewLogger = newLogger

// ParseOutput is exported for testing
func ParseOutput(output, defaultName string) (bucket, path string, err error) {
	loc, err := parseOutput(output, defaultName)
	return loc.bucket, loc.path, err
}
