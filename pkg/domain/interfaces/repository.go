package interfaces

// Repository defines the interface for game data persistence
type Repository interface {
	Round() RoundRepository
	Action() ActionRepository
	Project() ProjectRepository
	Delegation() DelegationRepository
	Delegate() DelegateRepository
	DelegateRound() DelegateRoundRepository

	Close() error
}
