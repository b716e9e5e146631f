package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/openarchief/vernietiging/pkg/domain/interfaces"
	"github.com/openarchief/vernietiging/pkg/repository/firestore"
	"github.com/openarchief/vernietiging/pkg/repository/memory"
)

// runWithBackends runs the given suite against the memory backend, and
// against Firestore when FIRESTORE_PROJECT_ID is set.
func runWithBackends(t *testing.T, suite func(t *testing.T, newRepo func(t *testing.T) interfaces.Repository)) {
	t.Run("Memory", func(t *testing.T) {
		suite(t, func(t *testing.T) interfaces.Repository {
			return memory.New()
		})
	})

	t.Run("Firestore", func(t *testing.T) {
		projectID := os.Getenv("FIRESTORE_PROJECT_ID")
		if projectID == "" {
			t.Skip("FIRESTORE_PROJECT_ID not set")
		}
		databaseID := os.Getenv("FIRESTORE_DATABASE_ID")

		suite(t, func(t *testing.T) interfaces.Repository {
			prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())
			repo, err := firestore.New(context.Background(), projectID, databaseID,
				firestore.WithCollectionPrefix(prefix))
			gt.NoError(t, err).Required()
			t.Cleanup(func() {
				_ = repo.Close()
			})
			return repo
		})
	})
}
