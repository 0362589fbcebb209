package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/model"
)

type projectRepository struct {
	mu       sync.RWMutex
	projects map[model.ProjectID]*model.Project
	order    []model.ProjectID
}

func newProjectRepository() *projectRepository {
	return &projectRepository{
		projects: make(map[model.ProjectID]*model.Project),
	}
}

func copyProject(p *model.Project) *model.Project {
	c := *p
	return &c
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyProject(project)
	if created.ID == "" {
		created.ID = model.ProjectID(model.NewID())
	}
	if _, exists := r.projects[created.ID]; !exists {
		r.order = append(r.order, created.ID)
	}
	r.projects[created.ID] = created
	return copyProject(created), nil
}

func (r *projectRepository) Get(ctx context.Context, id model.ProjectID) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.projects[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V(model.ProjectIDKey, id))
	}
	return copyProject(p), nil
}

func (r *projectRepository) List(ctx context.Context) ([]*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]*model.Project, 0, len(r.order))
	for _, id := range r.order {
		projects = append(projects, copyProject(r.projects[id]))
	}
	return projects, nil
}

func (r *projectRepository) Delete(ctx context.Context, id model.ProjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.projects[id]; !exists {
		return goerr.Wrap(ErrNotFound, "project not found", goerr.V(model.ProjectIDKey, id))
	}
	delete(r.projects, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
