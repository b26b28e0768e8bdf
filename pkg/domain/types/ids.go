package types

import "github.com/google/uuid"

// FormID identifies a form definition
type FormID string

func NewFormID() FormID { return FormID(uuid.NewString()) }

func (x FormID) String() string { return string(x) }

// EventID identifies an event
type EventID string

func NewEventID() EventID { return EventID(uuid.NewString()) }

func (x EventID) String() string { return string(x) }

// ResponseID identifies a submitted form response
type ResponseID string

func NewResponseID() ResponseID { return ResponseID(uuid.NewString()) }

func (x ResponseID) String() string { return string(x) }

// UserID is the identity-provider subject of an authenticated caller.
// Empty UserID means an anonymous submission.
type UserID string

func (x UserID) String() string { return string(x) }

func (x UserID) IsAnonymous() bool { return x == "" }

// NewsID identifies a news article
type NewsID string

func NewNewsID() NewsID { return NewsID(uuid.NewString()) }

func (x NewsID) String() string { return string(x) }

// PlaceID identifies a food map entry
type PlaceID string

func NewPlaceID() PlaceID { return PlaceID(uuid.NewString()) }

func (x PlaceID) String() string { return string(x) }

// RecordID identifies a conference record
type RecordID string

func NewRecordID() RecordID { return RecordID(uuid.NewString()) }

func (x RecordID) String() string { return string(x) }
