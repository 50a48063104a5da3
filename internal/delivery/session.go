package delivery

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Sentinel errors for the wizard flow
var (
	// ErrNoCase is returned when a step past the first is submitted before
	// the backend has assigned a case id
	ErrNoCase = errors.New("no inspection case exists yet; complete the general step first")
	// ErrCaseExists guards the case id: once assigned it never changes
	ErrCaseExists = errors.New("inspection case id is already assigned")
	// ErrWrongStep is returned when a payload arrives for a step other than
	// the current one
	ErrWrongStep = errors.New("payload does not match the current step")
	// ErrNotFinalized is returned when a reset is requested before finalization
	ErrNotFinalized = errors.New("session is not finalized")
)

// Session accumulates the wizard state across the six steps. It lives in the
// session store, keyed by a uuid handed to the browser; the case id inside it
// is assigned by the backend on step 1 and is immutable afterwards.
type Session struct {
	ID        string     `json:"id"`
	Step      Step       `json:"step"`
	CaseID    int64      `json:"case_id"`
	General   *GeneralInfo `json:"general,omitempty"`
	Exterior  *Exterior  `json:"exterior,omitempty"`
	Tires     *Tires     `json:"tires,omitempty"`
	Fluids    *Fluids    `json:"fluids,omitempty"`
	Equipment *Equipment `json:"equipment,omitempty"`
	Signatures *Signatures `json:"signatures,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewSession starts a fresh wizard session at step 1
func NewSession() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		Step:      StepGeneral,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AssignCase records the backend-assigned case id. The id is immutable: a
// second assignment with a different id is rejected.
func (s *Session) AssignCase(caseID int64) error {
	if caseID <= 0 {
		return errors.Errorf("invalid case id %d", caseID)
	}
	if s.CaseID != 0 && s.CaseID != caseID {
		return ErrCaseExists
	}
	s.CaseID = caseID
	s.touch()
	return nil
}

// HasCase reports whether the backend has assigned a usable case id
func (s *Session) HasCase() bool {
	return s.CaseID > 0
}

// Advance moves the session one step forward. Callers perform the step's
// required action (validation plus backend call) before advancing.
func (s *Session) Advance() error {
	if s.Step == Finalized {
		return errors.New("finalized sessions can only be reset")
	}
	to := s.Step.next()
	if !CanTransition(s.Step, to) {
		return errors.Errorf("invalid step transition: %s -> %s", s.Step, to)
	}
	if !s.HasCase() {
		// Every step past the first is reachable only through a created case,
		// so the general step must have assigned one before advancing.
		return ErrNoCase
	}
	s.Step = to
	s.touch()
	return nil
}

// Back moves the session one step backward without touching any accumulated
// payload: returning to an earlier step loses nothing.
func (s *Session) Back() error {
	if s.Step == StepGeneral {
		return errors.New("already at the first step")
	}
	if s.Step == Finalized {
		return errors.New("finalized sessions can only be reset")
	}
	s.Step = s.Step.prev()
	s.touch()
	return nil
}

// Finalize moves the session into the terminal state. The caller has already
// validated the signatures and completed both backend calls.
func (s *Session) Finalize() error {
	if s.Step != StepSignatures {
		return errors.Errorf("cannot finalize from step %s", s.Step)
	}
	if !s.HasCase() {
		return ErrNoCase
	}
	s.Step = Finalized
	s.touch()
	return nil
}

// Reset clears every accumulated payload and the case id, returning the
// session to a fresh step 1. Only a finalized session can be reset.
func (s *Session) Reset() error {
	if s.Step != Finalized {
		return ErrNotFinalized
	}
	s.Step = StepGeneral
	s.CaseID = 0
	s.General = nil
	s.Exterior = nil
	s.Tires = nil
	s.Fluids = nil
	s.Equipment = nil
	s.Signatures = nil
	s.touch()
	return nil
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}
