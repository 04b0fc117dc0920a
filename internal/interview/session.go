package interview

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an interview session
type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// EntryRole tags a transcript entry with its speaker
type EntryRole string

const (
	EntryRoleAI        EntryRole = "ai"
	EntryRoleCandidate EntryRole = "candidate"
)

// Entry is one turn of the human-readable transcript
type Entry struct {
	Role EntryRole `json:"role"`
	Text string    `json:"text"`
}

// MessageRole tags a model-history fragment. The gateway alone translates
// these into the external API's role schema.
type MessageRole string

const (
	MessageRoleUser  MessageRole = "user"
	MessageRoleModel MessageRole = "model"
)

// Message is one role-tagged fragment of the history replayed into the
// model gateway on every turn
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// Session represents a single interview. Transcript and ModelHistory are
// append-only and grow in lockstep: every AI transcript entry has exactly
// one model-role history fragment.
type Session struct {
	ID            string     `json:"id"`
	CandidateName string     `json:"candidateName"`
	Status        Status     `json:"status"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	Transcript    []Entry    `json:"transcript"`
	ModelHistory  []Message  `json:"modelHistory"`
	Feedback      *string    `json:"feedback,omitempty"`
}

// NewSession creates a new in-progress Session instance
func NewSession(candidateName string) *Session {
	return &Session{
		ID:            uuid.NewString(),
		CandidateName: candidateName,
		Status:        StatusInProgress,
		StartTime:     time.Now(),
		Transcript:    []Entry{},
		ModelHistory:  []Message{},
	}
}

// Summary is the listing view of a session
type Summary struct {
	ID            string    `json:"id"`
	CandidateName string    `json:"candidateName"`
	StartTime     time.Time `json:"startTime"`
	Status        Status    `json:"status"`
}
