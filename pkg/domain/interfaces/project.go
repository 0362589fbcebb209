package interfaces

import (
	"context"

	"github.com/swiss-game/swiss/pkg/domain/model"
)

// ProjectRepository defines the interface for Project data access
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) (*model.Project, error)
	Get(ctx context.Context, id model.ProjectID) (*model.Project, error)
	// List returns projects in creation order
	List(ctx context.Context) ([]*model.Project, error)
	Delete(ctx context.Context, id model.ProjectID) error
}
