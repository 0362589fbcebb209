package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const projectsCollection = "projects"

type projectRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newProjectRepository(client *firestore.Client) *projectRepository {
	return &projectRepository{
		client: client,
	}
}

// projectDoc is the Firestore persistence model
type projectDoc struct {
	Keyword      string  `firestore:"keyword"`
	Name         string  `firestore:"name"`
	Delegate     string  `firestore:"delegate"`
	DF           float64 `firestore:"df"`
	MainActions  int     `firestore:"mainActions"`
	Condition    string  `firestore:"condition,omitempty"`
	Benefit      string  `firestore:"benefit,omitempty"`
	Instructions string  `firestore:"instructions,omitempty"`
}

func (r *projectRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionName(r.collectionPrefix, projectsCollection))
}

func toProjectDoc(p *model.Project) *projectDoc {
	return &projectDoc{
		Keyword:      p.Keyword,
		Name:         p.Name,
		Delegate:     string(p.Delegate),
		DF:           p.DF,
		MainActions:  p.MainActions,
		Condition:    p.Condition,
		Benefit:      p.Benefit,
		Instructions: p.Instructions,
	}
}

func fromProjectDoc(id string, doc *projectDoc) *model.Project {
	return &model.Project{
		ID:           model.ProjectID(id),
		Keyword:      doc.Keyword,
		Name:         doc.Name,
		Delegate:     model.DelegateID(doc.Delegate),
		DF:           doc.DF,
		MainActions:  doc.MainActions,
		Condition:    doc.Condition,
		Benefit:      doc.Benefit,
		Instructions: doc.Instructions,
	}
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	created := *project
	if created.ID == "" {
		created.ID = model.ProjectID(model.NewID())
	}

	if _, err := r.collection().Doc(string(created.ID)).Set(ctx, toProjectDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create project", goerr.V(model.ProjectIDKey, created.ID))
	}
	return &created, nil
}

func (r *projectRepository) Get(ctx context.Context, id model.ProjectID) (*model.Project, error) {
	docSnap, err := r.collection().Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V(model.ProjectIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get project", goerr.V(model.ProjectIDKey, id))
	}

	var doc projectDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode project", goerr.V(model.ProjectIDKey, id))
	}
	return fromProjectDoc(docSnap.Ref.ID, &doc), nil
}

// List returns projects in document ID order. Generated IDs are time
// ordered, so this is creation order.
func (r *projectRepository) List(ctx context.Context) ([]*model.Project, error) {
	docs, err := takeFirst(ctx, r.collection().OrderBy(firestore.DocumentID, firestore.Asc))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list projects")
	}

	projects := make([]*model.Project, 0, len(docs))
	for _, docSnap := range docs {
		var doc projectDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode project", goerr.V("doc_id", docSnap.Ref.ID))
		}
		projects = append(projects, fromProjectDoc(docSnap.Ref.ID, &doc))
	}
	return projects, nil
}

func (r *projectRepository) Delete(ctx context.Context, id model.ProjectID) error {
	docRef := r.collection().Doc(string(id))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "project not found", goerr.V(model.ProjectIDKey, id))
		}
		return goerr.Wrap(err, "failed to check project existence", goerr.V(model.ProjectIDKey, id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete project", goerr.V(model.ProjectIDKey, id))
	}
	return nil
}
