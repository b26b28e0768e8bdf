package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/domain/interfaces"
)

type Firestore struct {
	client   *firestore.Client
	form     *formRepository
	event    *eventRepository
	response *responseRepository
	member   *memberRepository
	news     *newsRepository
	place    *placeRepository
	record   *recordRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.form.collectionPrefix = prefix
		f.event.collectionPrefix = prefix
		f.response.collectionPrefix = prefix
		f.member.collectionPrefix = prefix
		f.news.collectionPrefix = prefix
		f.place.collectionPrefix = prefix
		f.record.collectionPrefix = prefix
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

	eventRepo := newEventRepository(client)

	f := &Firestore{
		client:   client,
		form:     newFormRepository(client),
		event:    eventRepo,
		response: newResponseRepository(client, eventRepo),
		member:   newMemberRepository(client),
		news:     newNewsRepository(client),
		place:    newPlaceRepository(client),
		record:   newRecordRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Form() interfaces.FormRepository {
	return f.form
}

func (f *Firestore) Event() interfaces.EventRepository {
	return f.event
}

func (f *Firestore) Response() interfaces.ResponseRepository {
	return f.response
}

func (f *Firestore) Member() interfaces.MemberRepository {
	return f.member
}

func (f *Firestore) News() interfaces.NewsRepository {
	return f.news
}

func (f *Firestore) Place() interfaces.PlaceRepository {
	return f.place
}

func (f *Firestore) Record() interfaces.RecordRepository {
	return f.record
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
