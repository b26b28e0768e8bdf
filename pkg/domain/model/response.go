package model

import (
	"time"

	"github.com/aster-works/agora/pkg/domain/types"
)

// AnswerValue holds one answer: a scalar string, or an ordered list of
// selected option values for multi-choice fields. Exactly one of the two
// is populated.
type AnswerValue struct {
	Text string   `json:"text,omitempty"`
	List []string `json:"list,omitempty"`
}

// NewTextAnswer returns a scalar answer value.
func NewTextAnswer(s string) AnswerValue { return AnswerValue{Text: s} }

// NewListAnswer returns an ordered multi-choice answer value.
func NewListAnswer(vals []string) AnswerValue {
	list := make([]string, len(vals))
	copy(list, vals)
	return AnswerValue{List: list}
}

// IsList reports whether the answer is a multi-choice list.
func (v AnswerValue) IsList() bool { return v.List != nil }

// IsEmpty reports whether the answer carries no value.
func (v AnswerValue) IsEmpty() bool {
	if v.IsList() {
		return len(v.List) == 0
	}
	return v.Text == ""
}

// Answers maps field IDs to submitted answer values.
type Answers map[string]AnswerValue

// Clone returns a deep copy of the answer set.
func (a Answers) Clone() Answers {
	if a == nil {
		return nil
	}
	cloned := make(Answers, len(a))
	for k, v := range a {
		if v.IsList() {
			cloned[k] = NewListAnswer(v.List)
		} else {
			cloned[k] = v
		}
	}
	return cloned
}

// ReviewState is administrative review metadata on a response.
type ReviewState struct {
	Reviewed   bool         `json:"reviewed"`
	ReviewerID types.UserID `json:"reviewerId,omitempty"`
	ReviewedAt *time.Time   `json:"reviewedAt,omitempty"`
	Notes      string       `json:"notes,omitempty"`
}

// PaymentState is administrative payment metadata on a response.
type PaymentState struct {
	Status types.PaymentStatus `json:"status"`
	Method types.PaymentMethod `json:"method"`
	Notes  string              `json:"notes,omitempty"`
}

// Response is one user's answer set to a form for a specific event, plus
// an immutable snapshot of the form definition as it existed at submission
// time. Answers and Snapshot never change after creation; only Review and
// Payment are mutated by administrators.
type Response struct {
	ID       types.ResponseID `json:"id"`
	EventID  types.EventID    `json:"eventId"`
	FormID   types.FormID     `json:"formId"`
	UserID   types.UserID     `json:"userId,omitempty"`
	Answers  Answers          `json:"answers"`
	Snapshot FormDefinition   `json:"formSnapshot"`
	Review   ReviewState      `json:"review"`
	Payment  PaymentState     `json:"payment"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the response.
func (r *Response) Clone() *Response {
	cloned := *r
	cloned.Answers = r.Answers.Clone()
	cloned.Snapshot = r.Snapshot.Clone()
	if r.Review.ReviewedAt != nil {
		at := *r.Review.ReviewedAt
		cloned.Review.ReviewedAt = &at
	}
	return &cloned
}
