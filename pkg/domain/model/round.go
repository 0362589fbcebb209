package model

import (
	"time"

	"github.com/swiss-game/swiss/pkg/domain/types"
)

// Round is a time boxed phase of the game owning its own set of actions
type Round struct {
	ID        RoundID     `json:"id"`
	Name      string      `json:"name"`
	Tense     types.Tense `json:"tense"`
	Deadline  string      `json:"deadline"`
	Size      string      `json:"size"`
	CreatedAt time.Time   `json:"createdAt"`
}

// RoundActions is one round together with its actions, in store order
type RoundActions struct {
	Round   *Round
	Actions []*Action
}
