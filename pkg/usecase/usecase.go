package usecase

import (
	"github.com/swiss-game/swiss/pkg/domain/interfaces"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"golang.org/x/text/language"
)

type UseCases struct {
	repo     interfaces.Repository
	lookups  *model.Lookups
	language language.Tag

	Round      *RoundUseCase
	Action     *ActionUseCase
	Project    *ProjectUseCase
	Delegation *DelegationUseCase
	Export     *ExportUseCase
	Import     *ImportUseCase
}

type Option func(*UseCases)

// WithLookups replaces the built-in enumerated tables
func WithLookups(lookups *model.Lookups) Option {
	return func(uc *UseCases) {
		uc.lookups = lookups
	}
}

// WithLanguage sets the collation language for keyword sorting
func WithLanguage(tag language.Tag) Option {
	return func(uc *UseCases) {
		uc.language = tag
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		lookups:  model.DefaultLookups(),
		language: DefaultLanguage,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Round = NewRoundUseCase(repo, uc.lookups)
	uc.Action = NewActionUseCase(repo, uc.lookups)
	uc.Project = NewProjectUseCase(repo, uc.language)
	uc.Delegation = NewDelegationUseCase(repo)
	uc.Export = NewExportUseCase(repo, uc.lookups)
	uc.Import = NewImportUseCase(repo)

	return uc
}

// Lookups returns the enumerated tables in use
func (uc *UseCases) Lookups() *model.Lookups {
	return uc.lookups
}
