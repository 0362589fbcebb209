package types

import "fmt"

// ActionType is the stored code of an action's kind
type ActionType string

const (
	ActionTypeMission      ActionType = "mission"
	ActionTypeOther        ActionType = "other"
	ActionTypeSecondary    ActionType = "secondary"
	ActionTypeIntelligence ActionType = "intelligence"
)

// AllActionTypes returns all known action types
func AllActionTypes() []ActionType {
	return []ActionType{
		ActionTypeMission,
		ActionTypeOther,
		ActionTypeSecondary,
		ActionTypeIntelligence,
	}
}

// IsMain reports whether the action counts toward a project's main action requirement
func (t ActionType) IsMain() bool {
	return t == ActionTypeMission || t == ActionTypeOther
}

// IsValid checks if the action type is known
func (t ActionType) IsValid() bool {
	switch t {
	case ActionTypeMission,
		ActionTypeOther,
		ActionTypeSecondary,
		ActionTypeIntelligence:
		return true
	default:
		return false
	}
}

func (t ActionType) String() string {
	return string(t)
}

// ParseActionType parses a string into an ActionType
func ParseActionType(s string) (ActionType, error) {
	t := ActionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid action type: %s", s)
	}
	return t, nil
}
