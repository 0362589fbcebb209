package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/swiss-game/swiss/pkg/domain/interfaces"
	"github.com/swiss-game/swiss/pkg/repository/firestore"
	"github.com/swiss-game/swiss/pkg/repository/memory"
)

// runAll runs a repository test suite against every backend. Firestore runs
// only when SWISS_TEST_FIRESTORE_PROJECT_ID is set; every test gets its own
// collection prefix.
func runAll(t *testing.T, suite func(t *testing.T, newRepo func(t *testing.T) interfaces.Repository)) {
	t.Helper()

	t.Run("Memory", func(t *testing.T) {
		suite(t, func(t *testing.T) interfaces.Repository {
			return memory.New()
		})
	})

	t.Run("Firestore", func(t *testing.T) {
		projectID := os.Getenv("SWISS_TEST_FIRESTORE_PROJECT_ID")
		if projectID == "" {
			t.Skip("SWISS_TEST_FIRESTORE_PROJECT_ID not set")
		}
		databaseID := os.Getenv("SWISS_TEST_FIRESTORE_DATABASE_ID")

		suite(t, func(t *testing.T) interfaces.Repository {
			prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())
			repo, err := firestore.New(context.Background(), projectID, databaseID, firestore.WithCollectionPrefix(prefix))
			gt.NoError(t, err).Required()
			t.Cleanup(func() {
				_ = repo.Close()
			})
			return repo
		})
	})
}
