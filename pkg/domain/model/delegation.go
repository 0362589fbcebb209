package model

// Delegation is a faction delegates play for
type Delegation struct {
	ID   DelegationID `json:"id"`
	Name string       `json:"name"`
	Flag string       `json:"flag"`
}

// Delegate is an individual player
type Delegate struct {
	ID         DelegateID   `json:"id"`
	Name       string       `json:"name"`
	Delegation DelegationID `json:"delegation"`
}

// DelegateRound links a delegate to a round
type DelegateRound struct {
	DelegateID           DelegateID   `json:"delegateId"`
	RoundID              RoundID      `json:"roundId"`
	DelegationID         DelegationID `json:"delegation"`
	AvailableMainActions int          `json:"availableMainActions"`
	MarkedAsSent         bool         `json:"markedAsSent"`
}
