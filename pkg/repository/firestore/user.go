package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

type userRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newUserRepository(client *firestore.Client) *userRepository {
	return &userRepository{client: client}
}

func (r *userRepository) collection() string {
	return prefixed(r.collectionPrefix, "users")
}

func (r *userRepository) Get(ctx context.Context, id types.UserID) (*model.User, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("id", id))
	}

	var user model.User
	if err := docSnap.DataTo(&user); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user", goerr.V("id", id))
	}

	return &user, nil
}

func (r *userRepository) Save(ctx context.Context, user *model.User) error {
	if _, err := r.client.Collection(r.collection()).Doc(string(user.ID)).Set(ctx, user); err != nil {
		return goerr.Wrap(err, "failed to save user", goerr.V("id", user.ID))
	}
	return nil
}

func (r *userRepository) ListReviewers(ctx context.Context) ([]*model.User, error) {
	iter := r.client.Collection(r.collection()).
		Where("Role.CanReviewDestruction", "==", true).Documents(ctx)
	defer iter.Stop()

	var reviewers []*model.User
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate reviewers")
		}

		var user model.User
		if err := docSnap.DataTo(&user); err != nil {
			return nil, goerr.Wrap(err, "failed to decode user", goerr.V("doc_id", docSnap.Ref.ID))
		}

		reviewers = append(reviewers, &user)
	}

	return reviewers, nil
}
