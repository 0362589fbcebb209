package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrRoundNotFound      = errors.New("round not found")
	ErrDelegationNotFound = errors.New("delegation not found")
	ErrDelegateNotFound   = errors.New("delegate not found")

	// Validation errors
	ErrInvalidImport = errors.New("invalid import file")
	ErrInvalidInput  = errors.New("invalid input")

	// Bulk operation errors
	ErrPartialFailure = errors.New("bulk operation partially failed")
)

// Context keys for error values
const (
	RoundIDKey   = "round_id"
	ActionKeyKey = "action_key"
	LineKey      = "line"
	ColumnKey    = "column"
)
