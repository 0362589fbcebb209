package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	delegateRoundsCollection = "delegateRounds"
	delegateRoundsSubColl    = "rounds"

	// Maximum document references per GetAll call
	firestoreGetAllLimit = 30
)

// delegateRoundRepository stores linkage at delegateRounds/{delegateID}/rounds/{roundID}
type delegateRoundRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newDelegateRoundRepository(client *firestore.Client) *delegateRoundRepository {
	return &delegateRoundRepository{
		client: client,
	}
}

// delegateRoundDoc is the Firestore persistence model
type delegateRoundDoc struct {
	DelegationID         string `firestore:"delegationId,omitempty"`
	AvailableMainActions int    `firestore:"availableMainActions"`
	MarkedAsSent         bool   `firestore:"markedAsSent"`
}

func (r *delegateRoundRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionName(r.collectionPrefix, delegateRoundsCollection))
}

func (r *delegateRoundRepository) doc(delegateID model.DelegateID, roundID model.RoundID) *firestore.DocumentRef {
	return r.collection().Doc(string(delegateID)).Collection(delegateRoundsSubColl).Doc(string(roundID))
}

func fromDelegateRoundDoc(delegateID model.DelegateID, roundID model.RoundID, doc *delegateRoundDoc) *model.DelegateRound {
	return &model.DelegateRound{
		DelegateID:           delegateID,
		RoundID:              roundID,
		DelegationID:         model.DelegationID(doc.DelegationID),
		AvailableMainActions: doc.AvailableMainActions,
		MarkedAsSent:         doc.MarkedAsSent,
	}
}

func (r *delegateRoundRepository) Set(ctx context.Context, dr *model.DelegateRound) error {
	if dr.DelegateID == "" || dr.RoundID == "" {
		return goerr.New("delegate and round IDs are required",
			goerr.V(model.DelegateIDKey, dr.DelegateID), goerr.V(model.RoundIDKey, dr.RoundID))
	}

	doc := &delegateRoundDoc{
		DelegationID:         string(dr.DelegationID),
		AvailableMainActions: dr.AvailableMainActions,
		MarkedAsSent:         dr.MarkedAsSent,
	}
	if _, err := r.doc(dr.DelegateID, dr.RoundID).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to set delegate round",
			goerr.V(model.DelegateIDKey, dr.DelegateID), goerr.V(model.RoundIDKey, dr.RoundID))
	}
	return nil
}

func (r *delegateRoundRepository) Get(ctx context.Context, delegateID model.DelegateID, roundID model.RoundID) (*model.DelegateRound, error) {
	docSnap, err := r.doc(delegateID, roundID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "delegate round not found",
				goerr.V(model.DelegateIDKey, delegateID), goerr.V(model.RoundIDKey, roundID))
		}
		return nil, goerr.Wrap(err, "failed to get delegate round",
			goerr.V(model.DelegateIDKey, delegateID), goerr.V(model.RoundIDKey, roundID))
	}

	var doc delegateRoundDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode delegate round")
	}
	return fromDelegateRoundDoc(delegateID, roundID, &doc), nil
}

// ListByRound walks every delegate under delegateRounds and reads its entry
// for the round. Parent documents are usually missing (only subcollections
// exist), so DocumentRefs is used instead of Documents.
func (r *delegateRoundRepository) ListByRound(ctx context.Context, roundID model.RoundID) ([]*model.DelegateRound, error) {
	iter := r.collection().DocumentRefs(ctx)

	var refs []*firestore.DocumentRef
	for {
		parent, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate delegate rounds", goerr.V(model.RoundIDKey, roundID))
		}
		refs = append(refs, parent.Collection(delegateRoundsSubColl).Doc(string(roundID)))
	}

	result := make([]*model.DelegateRound, 0, len(refs))
	for i := 0; i < len(refs); i += firestoreGetAllLimit {
		end := min(i+firestoreGetAllLimit, len(refs))
		batch := refs[i:end]

		docs, err := r.client.GetAll(ctx, batch)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to batch get delegate rounds", goerr.V(model.RoundIDKey, roundID))
		}

		for idx, docSnap := range docs {
			if !docSnap.Exists() {
				continue
			}
			var doc delegateRoundDoc
			if err := docSnap.DataTo(&doc); err != nil {
				return nil, goerr.Wrap(err, "failed to decode delegate round", goerr.V("path", batch[idx].Path))
			}
			delegateID := model.DelegateID(batch[idx].Parent.Parent.ID)
			result = append(result, fromDelegateRoundDoc(delegateID, roundID, &doc))
		}
	}

	return result, nil
}

func (r *delegateRoundRepository) SetMarkedAsSent(ctx context.Context, delegateID model.DelegateID, roundID model.RoundID, sent bool) error {
	_, err := r.doc(delegateID, roundID).Update(ctx, []firestore.Update{
		{Path: "markedAsSent", Value: sent},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "delegate round not found",
				goerr.V(model.DelegateIDKey, delegateID), goerr.V(model.RoundIDKey, roundID))
		}
		return goerr.Wrap(err, "failed to update markedAsSent",
			goerr.V(model.DelegateIDKey, delegateID), goerr.V(model.RoundIDKey, roundID))
	}
	return nil
}

func (r *delegateRoundRepository) Delete(ctx context.Context, delegateID model.DelegateID, roundID model.RoundID) error {
	docRef := r.doc(delegateID, roundID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "delegate round not found",
				goerr.V(model.DelegateIDKey, delegateID), goerr.V(model.RoundIDKey, roundID))
		}
		return goerr.Wrap(err, "failed to check delegate round existence")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete delegate round",
			goerr.V(model.DelegateIDKey, delegateID), goerr.V(model.RoundIDKey, roundID))
	}
	return nil
}
