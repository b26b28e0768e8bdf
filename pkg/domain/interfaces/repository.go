package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Form() FormRepository
	Event() EventRepository
	Response() ResponseRepository
	Member() MemberRepository
	News() NewsRepository
	Place() PlaceRepository
	Record() RecordRepository

	Close() error
}
