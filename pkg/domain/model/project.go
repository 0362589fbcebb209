package model

// Project is a scoring objective joined to actions by keyword
type Project struct {
	ID           ProjectID  `json:"id"`
	Keyword      string     `json:"keyword"`
	Name         string     `json:"name"`
	Delegate     DelegateID `json:"delegate"`
	DF           float64    `json:"df"`
	MainActions  int        `json:"mainActions"`
	Condition    string     `json:"condition"`
	Benefit      string     `json:"benefit"`
	Instructions string     `json:"instructions"`
}

// MatchesKeyword compares keywords in normalized form
func (p *Project) MatchesKeyword(keyword string) bool {
	if keyword == "" {
		return false
	}
	return NormalizeKeyword(p.Keyword) == NormalizeKeyword(keyword)
}

// ProjectSummary is the derived scoring view of a project for a round
type ProjectSummary struct {
	Keyword       string `json:"keyword"`
	Name          string `json:"name"`
	Delegations   string `json:"delegations"`
	DF            string `json:"df"`
	DFOk          bool   `json:"dfOk"`
	MainActions   string `json:"mainActions"`
	MainActionsOk bool   `json:"mainActionsOk"`
}
