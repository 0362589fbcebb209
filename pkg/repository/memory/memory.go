package memory

import (
	"github.com/swiss-game/swiss/pkg/domain/interfaces"
	"github.com/swiss-game/swiss/pkg/domain/model"
)

// ErrNotFound is the memory backend's not-found sentinel
var ErrNotFound = model.ErrNotFound

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	round         *roundRepository
	action        *actionRepository
	project       *projectRepository
	delegation    *delegationRepository
	delegate      *delegateRepository
	delegateRound *delegateRoundRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		round:         newRoundRepository(),
		action:        newActionRepository(),
		project:       newProjectRepository(),
		delegation:    newDelegationRepository(),
		delegate:      newDelegateRepository(),
		delegateRound: newDelegateRoundRepository(),
	}
}

func (m *Memory) Round() interfaces.RoundRepository {
	return m.round
}

func (m *Memory) Action() interfaces.ActionRepository {
	return m.action
}

func (m *Memory) Project() interfaces.ProjectRepository {
	return m.project
}

func (m *Memory) Delegation() interfaces.DelegationRepository {
	return m.delegation
}

func (m *Memory) Delegate() interfaces.DelegateRepository {
	return m.delegate
}

func (m *Memory) DelegateRound() interfaces.DelegateRoundRepository {
	return m.delegateRound
}

func (m *Memory) Close() error {
	return nil
}
