package memory

import (
	"github.com/aster-works/agora/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	form     *formRepository
	event    *eventRepository
	response *responseRepository
	member   *memberRepository
	news     *newsRepository
	place    *placeRepository
	record   *recordRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	eventRepo := newEventRepository()

	return &Memory{
		form:     newFormRepository(),
		event:    eventRepo,
		response: newResponseRepository(eventRepo),
		member:   newMemberRepository(),
		news:     newNewsRepository(),
		place:    newPlaceRepository(),
		record:   newRecordRepository(),
	}
}

func (m *Memory) Form() interfaces.FormRepository {
	return m.form
}

func (m *Memory) Event() interfaces.EventRepository {
	return m.event
}

func (m *Memory) Response() interfaces.ResponseRepository {
	return m.response
}

func (m *Memory) Member() interfaces.MemberRepository {
	return m.member
}

func (m *Memory) News() interfaces.NewsRepository {
	return m.news
}

func (m *Memory) Place() interfaces.PlaceRepository {
	return m.place
}

func (m *Memory) Record() interfaces.RecordRepository {
	return m.record
}

func (m *Memory) Close() error {
	return nil
}
