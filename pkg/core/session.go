package core

import "github.com/oakwood-commons/jex/pkg/document"

// SessionState names the edit session's mode.
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionEditingValue
	SessionEditingKey
)

// EditSession holds the in-progress edit: what is being edited, the draft
// text, and any error from the last failed commit. A failed commit keeps
// the session open with the draft intact.
type EditSession struct {
	state  SessionState
	path   document.Path
	oldKey string
	draft  string
	err    string
}

// BeginValue opens a value edit at path, seeding the draft with the
// value's current serialized form.
func (s *EditSession) BeginValue(path document.Path, initial string) {
	*s = EditSession{state: SessionEditingValue, path: path, draft: initial}
}

// BeginKey opens a key rename at path, seeding the draft with the old key.
func (s *EditSession) BeginKey(path document.Path, oldKey string) {
	*s = EditSession{state: SessionEditingKey, path: path, oldKey: oldKey, draft: oldKey}
}

// Reset returns the session to idle, discarding the draft.
func (s *EditSession) Reset() {
	*s = EditSession{}
}

// SetDraft replaces the draft text. The UI calls this as the user types.
func (s *EditSession) SetDraft(draft string) {
	s.draft = draft
	s.err = ""
}

func (s *EditSession) State() SessionState { return s.state }
func (s *EditSession) Path() document.Path { return s.path }
func (s *EditSession) Draft() string       { return s.draft }
func (s *EditSession) Err() string         { return s.err }
func (s *EditSession) Active() bool        { return s.state != SessionIdle }
