package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"github.com/swiss-game/swiss/pkg/domain/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	actionsCollection       = "actions"
	actionEntriesCollection = "entries"
)

// actionRepository stores actions at actions/{roundID}/entries/{actionKey}
type actionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newActionRepository(client *firestore.Client) *actionRepository {
	return &actionRepository{
		client: client,
	}
}

// actionDoc is the Firestore persistence model
type actionDoc struct {
	Delegate      string  `firestore:"delegate"`
	Delegation    string  `firestore:"delegation"`
	Keyword       string  `firestore:"keyword,omitempty"`
	Type          string  `firestore:"type"`
	DF            float64 `firestore:"df,omitempty"`
	Result        string  `firestore:"result,omitempty"`
	Visibility    string  `firestore:"visibility"`
	Title         string  `firestore:"title,omitempty"`
	Description   string  `firestore:"description,omitempty"`
	TargetCountry string  `firestore:"targetCountry,omitempty"`
}

func (r *actionRepository) roundCollection(roundID model.RoundID) *firestore.CollectionRef {
	return r.client.Collection(collectionName(r.collectionPrefix, actionsCollection)).
		Doc(string(roundID)).
		Collection(actionEntriesCollection)
}

func toActionDoc(a *model.Action) *actionDoc {
	return &actionDoc{
		Delegate:      string(a.Delegate),
		Delegation:    string(a.Delegation),
		Keyword:       a.Keyword,
		Type:          string(a.Type),
		DF:            a.DF,
		Result:        a.Result,
		Visibility:    string(a.Visibility),
		Title:         a.Title,
		Description:   a.Description,
		TargetCountry: a.TargetCountry,
	}
}

func fromActionDoc(roundID model.RoundID, key string, doc *actionDoc) *model.Action {
	return &model.Action{
		Key:           model.ActionKey(key),
		RoundID:       roundID,
		Delegate:      model.DelegateID(doc.Delegate),
		Delegation:    model.DelegationID(doc.Delegation),
		Keyword:       doc.Keyword,
		Type:          types.ActionType(doc.Type),
		DF:            doc.DF,
		Result:        doc.Result,
		Visibility:    types.Visibility(doc.Visibility),
		Title:         doc.Title,
		Description:   doc.Description,
		TargetCountry: doc.TargetCountry,
	}
}

func (r *actionRepository) Set(ctx context.Context, roundID model.RoundID, action *model.Action) error {
	if action.Key == "" {
		return goerr.New("action key is required", goerr.V(model.RoundIDKey, roundID))
	}

	if _, err := r.roundCollection(roundID).Doc(string(action.Key)).Set(ctx, toActionDoc(action)); err != nil {
		return goerr.Wrap(err, "failed to set action",
			goerr.V(model.RoundIDKey, roundID), goerr.V(model.ActionKeyKey, action.Key))
	}
	return nil
}

func (r *actionRepository) Get(ctx context.Context, roundID model.RoundID, key model.ActionKey) (*model.Action, error) {
	docSnap, err := r.roundCollection(roundID).Doc(string(key)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "action not found",
				goerr.V(model.RoundIDKey, roundID), goerr.V(model.ActionKeyKey, key))
		}
		return nil, goerr.Wrap(err, "failed to get action",
			goerr.V(model.RoundIDKey, roundID), goerr.V(model.ActionKeyKey, key))
	}

	var doc actionDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode action", goerr.V(model.ActionKeyKey, key))
	}
	return fromActionDoc(roundID, docSnap.Ref.ID, &doc), nil
}

func (r *actionRepository) List(ctx context.Context, roundID model.RoundID) ([]*model.Action, error) {
	docs, err := takeFirst(ctx, r.roundCollection(roundID).OrderBy(firestore.DocumentID, firestore.Asc))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list actions", goerr.V(model.RoundIDKey, roundID))
	}

	actions := make([]*model.Action, 0, len(docs))
	for _, docSnap := range docs {
		var doc actionDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode action", goerr.V("doc_id", docSnap.Ref.ID))
		}
		actions = append(actions, fromActionDoc(roundID, docSnap.Ref.ID, &doc))
	}
	return actions, nil
}

func (r *actionRepository) UpdateResult(ctx context.Context, roundID model.RoundID, key model.ActionKey, result string) error {
	_, err := r.roundCollection(roundID).Doc(string(key)).Update(ctx, []firestore.Update{
		{Path: "result", Value: result},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "action not found",
				goerr.V(model.RoundIDKey, roundID), goerr.V(model.ActionKeyKey, key))
		}
		return goerr.Wrap(err, "failed to update action result",
			goerr.V(model.RoundIDKey, roundID), goerr.V(model.ActionKeyKey, key))
	}
	return nil
}

func (r *actionRepository) Delete(ctx context.Context, roundID model.RoundID, key model.ActionKey) error {
	docRef := r.roundCollection(roundID).Doc(string(key))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "action not found",
				goerr.V(model.RoundIDKey, roundID), goerr.V(model.ActionKeyKey, key))
		}
		return goerr.Wrap(err, "failed to check action existence", goerr.V(model.ActionKeyKey, key))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete action",
			goerr.V(model.RoundIDKey, roundID), goerr.V(model.ActionKeyKey, key))
	}
	return nil
}

func (r *actionRepository) DeleteByRound(ctx context.Context, roundID model.RoundID) error {
	if err := deleteAll(ctx, r.client, r.roundCollection(roundID)); err != nil {
		return goerr.Wrap(err, "failed to delete round actions", goerr.V(model.RoundIDKey, roundID))
	}
	return nil
}
