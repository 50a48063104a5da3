package service

import (
	"context"

	"example.com/fleetdesk/internal/cache"
	"example.com/fleetdesk/internal/delivery"

	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when a wizard session id is unknown or
// expired
var ErrSessionNotFound = errors.New("delivery session not found")

// StartDelivery opens a fresh wizard session at step 1
func (s *service) StartDelivery(ctx context.Context) (*delivery.Session, error) {
	session := delivery.NewSession()
	if err := s.cache.SaveSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store delivery session")
	}
	return session, nil
}

// GetDelivery loads a wizard session by id
func (s *service) GetDelivery(ctx context.Context, sessionID string) (*delivery.Session, error) {
	session, err := s.cache.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return nil, ErrSessionNotFound
		}
		return nil, errors.Wrap(err, "failed to load delivery session")
	}
	return session, nil
}

// SubmitGeneral completes step 1. On the first submission it creates the
// inspection case upstream; resubmissions with a case already assigned merge
// locally and never create a second case. The per-session lock extends that
// guarantee to concurrent duplicate submissions (double click).
func (s *service) SubmitGeneral(ctx context.Context, sessionID string, info delivery.GeneralInfo) (*delivery.Session, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	session, err := s.GetDelivery(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != delivery.StepGeneral {
		return nil, delivery.ErrWrongStep
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}

	if !session.HasCase() {
		caseID, err := s.backend.CreateCase(ctx, info)
		if err != nil {
			return nil, err
		}
		if err := session.AssignCase(caseID); err != nil {
			return nil, err
		}
		s.log.WithField("case_id", caseID).Info("Inspection case created")
	}

	session.General = &info
	if err := session.Advance(); err != nil {
		return nil, err
	}
	if err := s.cache.SaveSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store delivery session")
	}
	return session, nil
}

// submitStep runs the shared flow for steps 2 through 5: check position,
// validate, push the payload upstream against the case, then advance.
func (s *service) submitStep(ctx context.Context, sessionID string, step delivery.Step, payload interface{ Validate() error }, apply func(*delivery.Session)) (*delivery.Session, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	session, err := s.GetDelivery(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != step {
		return nil, delivery.ErrWrongStep
	}
	if !session.HasCase() {
		return nil, delivery.ErrNoCase
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	if err := s.backend.UpdateStep(ctx, session.CaseID, step, payload); err != nil {
		return nil, err
	}

	apply(session)
	if err := session.Advance(); err != nil {
		return nil, err
	}
	if err := s.cache.SaveSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store delivery session")
	}
	return session, nil
}

// SubmitExterior completes step 2
func (s *service) SubmitExterior(ctx context.Context, sessionID string, payload delivery.Exterior) (*delivery.Session, error) {
	return s.submitStep(ctx, sessionID, delivery.StepExterior, payload, func(session *delivery.Session) {
		session.Exterior = &payload
	})
}

// SubmitTires completes step 3
func (s *service) SubmitTires(ctx context.Context, sessionID string, payload delivery.Tires) (*delivery.Session, error) {
	return s.submitStep(ctx, sessionID, delivery.StepTires, payload, func(session *delivery.Session) {
		session.Tires = &payload
	})
}

// SubmitFluids completes step 4
func (s *service) SubmitFluids(ctx context.Context, sessionID string, payload delivery.Fluids) (*delivery.Session, error) {
	return s.submitStep(ctx, sessionID, delivery.StepFluids, payload, func(session *delivery.Session) {
		session.Fluids = &payload
	})
}

// SubmitEquipment completes step 5
func (s *service) SubmitEquipment(ctx context.Context, sessionID string, payload delivery.Equipment) (*delivery.Session, error) {
	return s.submitStep(ctx, sessionID, delivery.StepEquipment, payload, func(session *delivery.Session) {
		session.Equipment = &payload
	})
}

// DeliveryBack moves one step backward. No backend call fires and no
// accumulated payload is dropped, so a later forward pass finds every field
// as it was left.
func (s *service) DeliveryBack(ctx context.Context, sessionID string) (*delivery.Session, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	session, err := s.GetDelivery(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.Back(); err != nil {
		return nil, err
	}
	if err := s.cache.SaveSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store delivery session")
	}
	return session, nil
}

// FinalizeDelivery completes step 6 and closes the case. Both signature
// images must be staged and the case id must be positive; the step 6 update
// and the finalize run as two sequential backend calls, and a failure in
// either leaves the session at the signatures step with its payload intact.
func (s *service) FinalizeDelivery(ctx context.Context, sessionID string, payload delivery.Signatures) (*delivery.Session, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	session, err := s.GetDelivery(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != delivery.StepSignatures {
		return nil, delivery.ErrWrongStep
	}
	if !session.HasCase() {
		return nil, delivery.ErrNoCase
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	if _, failures := payload.DecodeImages(); failures != nil {
		fields := make([]string, 0, len(failures))
		for name := range failures {
			s.log.WithError(failures[name]).WithField("file", name).Warn("Staged signature rejected")
			fields = append(fields, name)
		}
		return nil, &delivery.ValidationError{Step: delivery.StepSignatures, Fields: fields}
	}

	// Stage the payload before the backend calls so a failed finalize keeps
	// the operator's work.
	session.Signatures = &payload
	if err := s.cache.SaveSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store delivery session")
	}

	if err := s.backend.UpdateStep(ctx, session.CaseID, delivery.StepSignatures, payload); err != nil {
		return nil, err
	}
	if err := s.backend.FinalizeCase(ctx, session.CaseID); err != nil {
		return nil, err
	}

	if err := session.Finalize(); err != nil {
		return nil, err
	}
	if err := s.cache.SaveSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store delivery session")
	}
	s.log.WithField("case_id", session.CaseID).Info("Inspection case finalized")
	return session, nil
}

// ResetDelivery clears a finalized session back to a fresh step 1
func (s *service) ResetDelivery(ctx context.Context, sessionID string) (*delivery.Session, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	session, err := s.GetDelivery(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.Reset(); err != nil {
		return nil, err
	}
	if err := s.cache.SaveSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store delivery session")
	}
	return session, nil
}
