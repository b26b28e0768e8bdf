package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aster-works/agora/pkg/domain/interfaces"
	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

type memberRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMemberRepository(client *firestore.Client) *memberRepository {
	return &memberRepository{client: client}
}

func (r *memberRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_members"
	}
	return "members"
}

func (r *memberRepository) Put(ctx context.Context, m *model.Member) (*model.Member, error) {
	if m.ID == "" {
		return nil, goerr.New("member ID is required")
	}

	stored := *m
	stored.UpdatedAt = time.Now().UTC()
	if stored.JoinedAt.IsZero() {
		stored.JoinedAt = stored.UpdatedAt
	}

	if _, err := r.client.Collection(r.collection()).Doc(stored.ID.String()).Set(ctx, &stored); err != nil {
		return nil, goerr.Wrap(err, "failed to put member", goerr.V("id", stored.ID))
	}

	return &stored, nil
}

func (r *memberRepository) Get(ctx context.Context, id types.UserID) (*model.Member, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "member not found", goerr.V("id", id))
		}
		if status.Code(err) == codes.Unavailable {
			return nil, goerr.Wrap(interfaces.ErrUnavailable, "member store unreachable", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get member", goerr.V("id", id))
	}

	var m model.Member
	if err := docSnap.DataTo(&m); err != nil {
		return nil, goerr.Wrap(err, "failed to decode member", goerr.V("id", id))
	}

	return &m, nil
}

func (r *memberRepository) List(ctx context.Context) ([]*model.Member, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var members []*model.Member
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate members")
		}

		var m model.Member
		if err := docSnap.DataTo(&m); err != nil {
			return nil, goerr.Wrap(err, "failed to decode member", goerr.V("doc_id", docSnap.Ref.ID))
		}

		members = append(members, &m)
	}

	return members, nil
}

func (r *memberRepository) Delete(ctx context.Context, id types.UserID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "member not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check member existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete member", goerr.V("id", id))
	}

	return nil
}
