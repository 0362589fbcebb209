package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"github.com/swiss-game/swiss/pkg/domain/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const roundsCollection = "rounds"

type roundRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRoundRepository(client *firestore.Client) *roundRepository {
	return &roundRepository{
		client: client,
	}
}

// roundDoc is the Firestore persistence model
type roundDoc struct {
	Name      string    `firestore:"name"`
	Tense     string    `firestore:"tense"`
	Deadline  string    `firestore:"deadline"`
	Size      string    `firestore:"size"`
	CreatedAt time.Time `firestore:"createdAt"`
}

func (r *roundRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionName(r.collectionPrefix, roundsCollection))
}

func toRoundDoc(round *model.Round) *roundDoc {
	return &roundDoc{
		Name:      round.Name,
		Tense:     string(round.Tense),
		Deadline:  round.Deadline,
		Size:      round.Size,
		CreatedAt: round.CreatedAt,
	}
}

func fromRoundDoc(id string, doc *roundDoc) *model.Round {
	return &model.Round{
		ID:        model.RoundID(id),
		Name:      doc.Name,
		Tense:     types.Tense(doc.Tense),
		Deadline:  doc.Deadline,
		Size:      doc.Size,
		CreatedAt: doc.CreatedAt,
	}
}

func (r *roundRepository) Create(ctx context.Context, round *model.Round) (*model.Round, error) {
	created := *round
	if created.ID == "" {
		created.ID = model.RoundID(model.NewID())
	}
	created.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	if _, err := r.collection().Doc(string(created.ID)).Create(ctx, toRoundDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create round", goerr.V(model.RoundIDKey, created.ID))
	}
	return &created, nil
}

func (r *roundRepository) Get(ctx context.Context, id model.RoundID) (*model.Round, error) {
	docSnap, err := r.collection().Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "round not found", goerr.V(model.RoundIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get round", goerr.V(model.RoundIDKey, id))
	}

	var doc roundDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode round", goerr.V(model.RoundIDKey, id))
	}
	return fromRoundDoc(docSnap.Ref.ID, &doc), nil
}

func (r *roundRepository) List(ctx context.Context) ([]*model.Round, error) {
	docs, err := takeFirst(ctx, r.collection().OrderBy("createdAt", firestore.Asc))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list rounds")
	}

	rounds := make([]*model.Round, 0, len(docs))
	for _, docSnap := range docs {
		var doc roundDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode round", goerr.V("doc_id", docSnap.Ref.ID))
		}
		rounds = append(rounds, fromRoundDoc(docSnap.Ref.ID, &doc))
	}
	return rounds, nil
}

func (r *roundRepository) Update(ctx context.Context, round *model.Round) (*model.Round, error) {
	docRef := r.collection().Doc(string(round.ID))

	existing, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "round not found", goerr.V(model.RoundIDKey, round.ID))
		}
		return nil, goerr.Wrap(err, "failed to check round existence", goerr.V(model.RoundIDKey, round.ID))
	}

	var prev roundDoc
	if err := existing.DataTo(&prev); err != nil {
		return nil, goerr.Wrap(err, "failed to decode round", goerr.V(model.RoundIDKey, round.ID))
	}

	updated := *round
	updated.CreatedAt = prev.CreatedAt
	if _, err := docRef.Set(ctx, toRoundDoc(&updated)); err != nil {
		return nil, goerr.Wrap(err, "failed to update round", goerr.V(model.RoundIDKey, round.ID))
	}
	return &updated, nil
}

func (r *roundRepository) Delete(ctx context.Context, id model.RoundID) error {
	docRef := r.collection().Doc(string(id))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "round not found", goerr.V(model.RoundIDKey, id))
		}
		return goerr.Wrap(err, "failed to check round existence", goerr.V(model.RoundIDKey, id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete round", goerr.V(model.RoundIDKey, id))
	}
	return nil
}
