// Package session holds the state of one interactive chat session: the
// append-only conversation log, the active document and the context mode.
// Nothing here is persisted; a session lives exactly as long as the process.
package session

import (
	"github.com/google/uuid"

	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/docstore"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one conversation entry. Insertion order is display order.
type Turn struct {
	Role Role
	Text string
}

// Mode selects how document context is resolved for a turn.
type Mode int

const (
	// ModeSingle answers from the one active document.
	ModeSingle Mode = iota
	// ModeAll answers from every document currently in the store; the set is
	// re-listed on every turn, never cached here.
	ModeAll
)

func (m Mode) String() string {
	if m == ModeAll {
		return "all"
	}
	return "single"
}

// Session is the explicit session-scoped state object handlers receive.
// It is used from a single goroutine; requests are strictly sequential.
type Session struct {
	ID         string
	ActiveFile *docstore.FileHandle
	Mode       Mode

	turns []Turn
}

func New() *Session {
	return &Session{ID: uuid.NewString(), Mode: ModeSingle}
}

func (s *Session) Append(role Role, text string) {
	s.turns = append(s.turns, Turn{Role: role, Text: text})
}

// History returns a copy of the conversation in chronological order.
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

func (s *Session) Len() int {
	return len(s.turns)
}

// Clear empties the conversation. The active file and mode are retained, so
// the next turn needs no re-selection.
func (s *Session) Clear() {
	s.turns = nil
}

// SetActiveFile replaces the session's active document.
func (s *Session) SetActiveFile(h docstore.FileHandle) {
	s.ActiveFile = &h
}
