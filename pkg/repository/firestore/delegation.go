package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	delegationsCollection = "delegations"
	delegatesCollection   = "delegates"
)

type delegationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newDelegationRepository(client *firestore.Client) *delegationRepository {
	return &delegationRepository{
		client: client,
	}
}

// delegationDoc is the Firestore persistence model
type delegationDoc struct {
	Name string `firestore:"name"`
	Flag string `firestore:"flag,omitempty"`
}

func (r *delegationRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionName(r.collectionPrefix, delegationsCollection))
}

func (r *delegationRepository) Create(ctx context.Context, delegation *model.Delegation) (*model.Delegation, error) {
	created := *delegation
	if created.ID == "" {
		created.ID = model.DelegationID(model.NewID())
	}

	doc := &delegationDoc{Name: created.Name, Flag: created.Flag}
	if _, err := r.collection().Doc(string(created.ID)).Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create delegation", goerr.V(model.DelegationIDKey, created.ID))
	}
	return &created, nil
}

func (r *delegationRepository) Get(ctx context.Context, id model.DelegationID) (*model.Delegation, error) {
	docSnap, err := r.collection().Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "delegation not found", goerr.V(model.DelegationIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get delegation", goerr.V(model.DelegationIDKey, id))
	}

	var doc delegationDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode delegation", goerr.V(model.DelegationIDKey, id))
	}
	return &model.Delegation{ID: id, Name: doc.Name, Flag: doc.Flag}, nil
}

func (r *delegationRepository) List(ctx context.Context) ([]*model.Delegation, error) {
	docs, err := takeFirst(ctx, r.collection().OrderBy(firestore.DocumentID, firestore.Asc))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list delegations")
	}

	delegations := make([]*model.Delegation, 0, len(docs))
	for _, docSnap := range docs {
		var doc delegationDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode delegation", goerr.V("doc_id", docSnap.Ref.ID))
		}
		delegations = append(delegations, &model.Delegation{
			ID:   model.DelegationID(docSnap.Ref.ID),
			Name: doc.Name,
			Flag: doc.Flag,
		})
	}
	return delegations, nil
}

func (r *delegationRepository) Delete(ctx context.Context, id model.DelegationID) error {
	docRef := r.collection().Doc(string(id))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "delegation not found", goerr.V(model.DelegationIDKey, id))
		}
		return goerr.Wrap(err, "failed to check delegation existence", goerr.V(model.DelegationIDKey, id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete delegation", goerr.V(model.DelegationIDKey, id))
	}
	return nil
}

type delegateRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newDelegateRepository(client *firestore.Client) *delegateRepository {
	return &delegateRepository{
		client: client,
	}
}

// delegateDoc is the Firestore persistence model
type delegateDoc struct {
	Name       string `firestore:"name"`
	Delegation string `firestore:"delegation,omitempty"`
}

func (r *delegateRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionName(r.collectionPrefix, delegatesCollection))
}

func (r *delegateRepository) Create(ctx context.Context, delegate *model.Delegate) (*model.Delegate, error) {
	created := *delegate
	if created.ID == "" {
		created.ID = model.DelegateID(model.NewID())
	}

	doc := &delegateDoc{Name: created.Name, Delegation: string(created.Delegation)}
	if _, err := r.collection().Doc(string(created.ID)).Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create delegate", goerr.V(model.DelegateIDKey, created.ID))
	}
	return &created, nil
}

func (r *delegateRepository) Get(ctx context.Context, id model.DelegateID) (*model.Delegate, error) {
	docSnap, err := r.collection().Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "delegate not found", goerr.V(model.DelegateIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get delegate", goerr.V(model.DelegateIDKey, id))
	}

	var doc delegateDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode delegate", goerr.V(model.DelegateIDKey, id))
	}
	return &model.Delegate{ID: id, Name: doc.Name, Delegation: model.DelegationID(doc.Delegation)}, nil
}

func (r *delegateRepository) List(ctx context.Context) ([]*model.Delegate, error) {
	docs, err := takeFirst(ctx, r.collection().OrderBy(firestore.DocumentID, firestore.Asc))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list delegates")
	}

	delegates := make([]*model.Delegate, 0, len(docs))
	for _, docSnap := range docs {
		var doc delegateDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode delegate", goerr.V("doc_id", docSnap.Ref.ID))
		}
		delegates = append(delegates, &model.Delegate{
			ID:         model.DelegateID(docSnap.Ref.ID),
			Name:       doc.Name,
			Delegation: model.DelegationID(doc.Delegation),
		})
	}
	return delegates, nil
}
