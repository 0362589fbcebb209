package types

import "fmt"

// Visibility controls who may read an action
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
	VisibilitySecret  Visibility = "secret"
)

// IsValid checks if the visibility is known
func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilitySecret:
		return true
	default:
		return false
	}
}

func (v Visibility) String() string {
	return string(v)
}

// ParseVisibility parses a string into a Visibility
func ParseVisibility(s string) (Visibility, error) {
	v := Visibility(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid visibility: %s", s)
	}
	return v, nil
}
