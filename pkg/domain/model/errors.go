package model

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is wrapped by every repository when a record does not exist
var ErrNotFound = goerr.New("not found")

// Context keys for error values
const (
	RoundIDKey      = "round_id"
	ActionKeyKey    = "action_key"
	ProjectIDKey    = "project_id"
	DelegateIDKey   = "delegate_id"
	DelegationIDKey = "delegation_id"
)
