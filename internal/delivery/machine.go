package delivery

import "fmt"

// Step identifies one screen of the six-step delivery/inspection flow, plus
// the terminal Finalized state.
type Step int

const (
	// StepGeneral captures vehicle intake data and creates the case
	StepGeneral Step = iota + 1
	// StepExterior captures body, windshield, window and light condition
	StepExterior
	// StepTires captures the four tire positions, the spare and pressure
	StepTires
	// StepFluids captures fluid levels and interior condition
	StepFluids
	// StepEquipment captures the on-board equipment checklist
	StepEquipment
	// StepSignatures captures both signatures and the handover terms
	StepSignatures
	// Finalized is the terminal state after the case has been closed
	Finalized
)

// String returns the step name for logging and error messages
func (s Step) String() string {
	switch s {
	case StepGeneral:
		return "general"
	case StepExterior:
		return "exterior"
	case StepTires:
		return "tires"
	case StepFluids:
		return "fluids"
	case StepEquipment:
		return "equipment"
	case StepSignatures:
		return "signatures"
	case Finalized:
		return "finalized"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// AllowTransition defines the allowed movements between steps. Forward moves
// happen only after the step's required action succeeds; backward moves are
// always local and lose no data. Finalized can only be left through a reset.
var AllowTransition = map[Step][]Step{
	StepGeneral:    {StepExterior},
	StepExterior:   {StepGeneral, StepTires},
	StepTires:      {StepExterior, StepFluids},
	StepFluids:     {StepTires, StepEquipment},
	StepEquipment:  {StepFluids, StepSignatures},
	StepSignatures: {StepEquipment, Finalized},
	Finalized:      {StepGeneral},
}

// CanTransition reports whether from -> to is an allowed movement
func CanTransition(from, to Step) bool {
	if from == to {
		return true
	}
	for _, allowed := range AllowTransition[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// next returns the forward neighbor of a step
func (s Step) next() Step {
	if s >= Finalized {
		return Finalized
	}
	return s + 1
}

// prev returns the backward neighbor of a step
func (s Step) prev() Step {
	if s <= StepGeneral {
		return StepGeneral
	}
	return s - 1
}
