package model

import (
	"strings"

	"github.com/google/uuid"
	"github.com/swiss-game/swiss/pkg/domain/types"
)

type (
	RoundID      string
	DelegateID   string
	DelegationID string
	ProjectID    string
)

// ActionKeySentinel prefixes every generated action key. Spreadsheet tools
// mangle cells starting with it, so it is stripped on export and restored on
// import.
const ActionKeySentinel = "-"

// ActionKey identifies an action within its round (stored form, with sentinel)
type ActionKey string

// NewActionKey generates a time ordered action key
func NewActionKey() ActionKey {
	return ActionKey(ActionKeySentinel + uuid.Must(uuid.NewV7()).String())
}

// External returns the key as written to spreadsheets (sentinel stripped)
func (k ActionKey) External() string {
	return strings.TrimPrefix(string(k), ActionKeySentinel)
}

func (k ActionKey) String() string {
	return string(k)
}

// ActionKeyFromExternal restores the stored key from its spreadsheet form
func ActionKeyFromExternal(id string) ActionKey {
	return ActionKey(ActionKeySentinel + id)
}

// Action is a move submitted by a delegate within a round
type Action struct {
	Key           ActionKey        `json:"key"`
	RoundID       RoundID          `json:"roundId"`
	Delegate      DelegateID       `json:"delegate"`
	Delegation    DelegationID     `json:"delegation"`
	Keyword       string           `json:"keyword"` // empty means no keyword
	Type          types.ActionType `json:"type"`
	DF            float64          `json:"df"`
	Result        string           `json:"result"`
	Visibility    types.Visibility `json:"visibility"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	TargetCountry string           `json:"targetCountry"`
}

// NormalizeKeyword returns the join form of a keyword
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// HasKeyword reports whether the action references a project keyword
func (a *Action) HasKeyword() bool {
	return a.Keyword != ""
}

// MatchesKeyword compares keywords in normalized form. An action without a
// keyword never matches.
func (a *Action) MatchesKeyword(keyword string) bool {
	if !a.HasKeyword() {
		return false
	}
	return NormalizeKeyword(a.Keyword) == NormalizeKeyword(keyword)
}

// IsMain reports whether the action is a main action
func (a *Action) IsMain() bool {
	return a.Type.IsMain()
}

// Reset returns the soft-reset form of the action: only ownership and type
// survive and the action becomes private.
func (a *Action) Reset() *Action {
	return &Action{
		Key:        a.Key,
		RoundID:    a.RoundID,
		Delegate:   a.Delegate,
		Delegation: a.Delegation,
		Type:       a.Type,
		Visibility: types.VisibilityPrivate,
	}
}

// Copy returns a shallow copy of the action
func (a *Action) Copy() *Action {
	c := *a
	return &c
}
