package delivery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Step
		to   Step
		want bool
	}{
		{"forward general to exterior", StepGeneral, StepExterior, true},
		{"forward tires to fluids", StepTires, StepFluids, true},
		{"forward signatures to finalized", StepSignatures, Finalized, true},
		{"backward exterior to general", StepExterior, StepGeneral, true},
		{"backward signatures to equipment", StepSignatures, StepEquipment, true},
		{"stay on same step", StepFluids, StepFluids, true},
		{"reset from finalized", Finalized, StepGeneral, true},
		{"skip forward two steps", StepGeneral, StepTires, false},
		{"skip backward two steps", StepEquipment, StepTires, false},
		{"jump straight to finalized", StepExterior, Finalized, false},
		{"leave finalized backward", Finalized, StepSignatures, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestStepString(t *testing.T) {
	require.Equal(t, "general", StepGeneral.String())
	require.Equal(t, "signatures", StepSignatures.String())
	require.Equal(t, "finalized", Finalized.String())
	require.Equal(t, "step(42)", Step(42).String())
}
