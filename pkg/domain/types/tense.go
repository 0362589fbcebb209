package types

import "fmt"

// Tense is the narrative tense a round is told in
type Tense string

const (
	TensePast    Tense = "past"
	TensePresent Tense = "present"
	TenseFuture  Tense = "future"
)

// IsValid checks if the tense is known
func (t Tense) IsValid() bool {
	switch t {
	case TensePast, TensePresent, TenseFuture:
		return true
	default:
		return false
	}
}

func (t Tense) String() string {
	return string(t)
}

// ParseTense parses a string into a Tense
func ParseTense(s string) (Tense, error) {
	t := Tense(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tense: %s", s)
	}
	return t, nil
}
