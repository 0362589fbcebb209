package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/interfaces"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"google.golang.org/api/iterator"
)

// ErrNotFound is the firestore backend's not-found sentinel
var ErrNotFound = model.ErrNotFound

type Firestore struct {
	client        *firestore.Client
	round         *roundRepository
	action        *actionRepository
	project       *projectRepository
	delegation    *delegationRepository
	delegate      *delegateRepository
	delegateRound *delegateRoundRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prefixes every top-level collection, e.g. for tests
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.round.collectionPrefix = prefix
		f.action.collectionPrefix = prefix
		f.project.collectionPrefix = prefix
		f.delegation.collectionPrefix = prefix
		f.delegate.collectionPrefix = prefix
		f.delegateRound.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:        client,
		round:         newRoundRepository(client),
		action:        newActionRepository(client),
		project:       newProjectRepository(client),
		delegation:    newDelegationRepository(client),
		delegate:      newDelegateRepository(client),
		delegateRound: newDelegateRoundRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Round() interfaces.RoundRepository {
	return f.round
}

func (f *Firestore) Action() interfaces.ActionRepository {
	return f.action
}

func (f *Firestore) Project() interfaces.ProjectRepository {
	return f.project
}

func (f *Firestore) Delegation() interfaces.DelegationRepository {
	return f.delegation
}

func (f *Firestore) Delegate() interfaces.DelegateRepository {
	return f.delegate
}

func (f *Firestore) DelegateRound() interfaces.DelegateRoundRepository {
	return f.delegateRound
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func collectionName(prefix, name string) string {
	if prefix != "" {
		return prefix + "_" + name
	}
	return name
}

// takeFirst subscribes to q, waits for the first emission and stops
// listening, so callers never act on a partially streamed result.
func takeFirst(ctx context.Context, q firestore.Query) ([]*firestore.DocumentSnapshot, error) {
	it := q.Snapshots(ctx)
	defer it.Stop()

	snap, err := it.Next()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to take query snapshot")
	}

	docs, err := snap.Documents.GetAll()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read query snapshot")
	}
	return docs, nil
}

// deleteAll removes every document of a collection through a BulkWriter.
// Every delete is attempted; failures are joined into the returned error.
func deleteAll(ctx context.Context, client *firestore.Client, coll *firestore.CollectionRef) error {
	iter := coll.DocumentRefs(ctx)

	var refs []*firestore.DocumentRef
	for {
		ref, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate documents for deletion", goerr.V("collection", coll.Path))
		}
		refs = append(refs, ref)
	}

	if len(refs) == 0 {
		return nil
	}

	bulkWriter := client.BulkWriter(ctx)

	var errs []error
	jobs := make([]pendingWrite, 0, len(refs))
	for _, ref := range refs {
		job, err := bulkWriter.Delete(ref)
		if err != nil {
			errs = append(errs, goerr.Wrap(err, "failed to add Delete operation to bulk writer", goerr.V("path", ref.Path)))
			continue
		}
		jobs = append(jobs, pendingWrite{path: ref.Path, job: job})
	}

	bulkWriter.End()

	errs = append(errs, writeErrors(jobs)...)
	if len(errs) > 0 {
		return goerr.Wrap(errors.Join(errs...), "failed to delete documents",
			goerr.V("collection", coll.Path), goerr.V("failed", len(errs)))
	}
	return nil
}

// writeResult is the part of *firestore.BulkWriterJob read after a flush
type writeResult interface {
	Results() (*firestore.WriteResult, error)
}

type pendingWrite struct {
	path string
	job  writeResult
}

// writeErrors waits for every job and returns the failed ones
func writeErrors(jobs []pendingWrite) []error {
	var errs []error
	for _, w := range jobs {
		if _, err := w.job.Results(); err != nil {
			errs = append(errs, goerr.Wrap(err, "bulk write failed", goerr.V("path", w.path)))
		}
	}
	return errs
}
