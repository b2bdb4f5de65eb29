package placement

// Certify maps a (step, score) pair to a certification label and an
// advancement decision. Pure function; the caller persists the outcome.
//
// Steps 1 and 2 advance only at score >= 75. Step 3 is terminal and grades
// coarser: below 25 keeps the previous band's B2, 50 and above earns C2,
// everything between earns C1. The mid-range collapse is deliberate.
func Certify(step Step, score int) (Outcome, error) {
	switch step {
	case StepOne:
		switch {
		case score < 25:
			return Outcome{Level: CertFailed}, nil
		case score < 50:
			return Outcome{Level: CertA1}, nil
		case score < 75:
			return Outcome{Level: CertA2}, nil
		default:
			return Outcome{Level: CertA2, ProceedToNextStep: true}, nil
		}
	case StepTwo:
		switch {
		case score < 25:
			return Outcome{Level: CertA2}, nil
		case score < 50:
			return Outcome{Level: CertB1}, nil
		case score < 75:
			return Outcome{Level: CertB2}, nil
		default:
			return Outcome{Level: CertB2, ProceedToNextStep: true}, nil
		}
	case StepThree:
		switch {
		case score < 25:
			return Outcome{Level: CertB2}, nil
		case score >= 50:
			return Outcome{Level: CertC2}, nil
		default:
			return Outcome{Level: CertC1}, nil
		}
	default:
		return Outcome{}, ErrInvalidStep
	}
}

// NextStep returns the step unlocked by an outcome, or 0 when the attempt
// chain is terminal.
func NextStep(step Step, outcome Outcome) Step {
	if outcome.ProceedToNextStep && step < StepThree {
		return step + 1
	}
	return 0
}
