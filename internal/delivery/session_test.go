package delivery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSessionStartsAtStepOne(t *testing.T) {
	s := NewSession()
	require.NotEmpty(t, s.ID)
	require.Equal(t, StepGeneral, s.Step)
	require.False(t, s.HasCase())
}

func TestAdvanceRequiresCase(t *testing.T) {
	s := NewSession()

	// Without a backend-assigned case the session cannot leave step 1
	require.ErrorIs(t, s.Advance(), ErrNoCase)
	require.Equal(t, StepGeneral, s.Step)

	require.NoError(t, s.AssignCase(77))
	require.NoError(t, s.Advance())
	require.Equal(t, StepExterior, s.Step)
}

func TestAssignCaseIsImmutable(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.AssignCase(10))

	// Re-assigning the same id is a no-op, a different id is rejected
	require.NoError(t, s.AssignCase(10))
	require.ErrorIs(t, s.AssignCase(11), ErrCaseExists)
	require.Equal(t, int64(10), s.CaseID)

	require.Error(t, NewSession().AssignCase(0))
	require.Error(t, NewSession().AssignCase(-3))
}

func TestBackPreservesPayloads(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.AssignCase(5))
	s.General = &GeneralInfo{VehicleID: 5, Plate: "ABC-123"}
	require.NoError(t, s.Advance())
	s.Exterior = &Exterior{Body: "bueno"}
	require.NoError(t, s.Advance())

	require.NoError(t, s.Back())
	require.Equal(t, StepExterior, s.Step)
	require.NotNil(t, s.General)
	require.NotNil(t, s.Exterior)
	require.Equal(t, int64(5), s.CaseID)
}

func TestBackBlockedAtBoundaries(t *testing.T) {
	s := NewSession()
	require.Error(t, s.Back())

	require.NoError(t, s.AssignCase(5))
	for s.Step != StepSignatures {
		require.NoError(t, s.Advance())
	}
	require.NoError(t, s.Finalize())
	require.Error(t, s.Back())
}

func TestFinalizeOnlyFromSignatures(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.AssignCase(9))
	require.Error(t, s.Finalize())

	for s.Step != StepSignatures {
		require.NoError(t, s.Advance())
	}
	require.NoError(t, s.Finalize())
	require.Equal(t, Finalized, s.Step)

	// Forward movement ends at the terminal state
	require.Error(t, s.Advance())
}

func TestResetClearsEverything(t *testing.T) {
	s := NewSession()
	require.ErrorIs(t, s.Reset(), ErrNotFinalized)

	require.NoError(t, s.AssignCase(3))
	s.General = &GeneralInfo{VehicleID: 3}
	s.Signatures = &Signatures{DeliveredByName: "Ana"}
	for s.Step != StepSignatures {
		require.NoError(t, s.Advance())
	}
	require.NoError(t, s.Finalize())

	require.NoError(t, s.Reset())
	require.Equal(t, StepGeneral, s.Step)
	require.False(t, s.HasCase())
	require.Nil(t, s.General)
	require.Nil(t, s.Signatures)
}
