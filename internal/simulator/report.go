package simulator

// ProbabilityOutcome is the estimate for a single candidate action.
type ProbabilityOutcome struct {
	EstimatedValue float64 `json:"estimated_value"`
	Win            float64 `json:"win"`
	Loss           float64 `json:"loss"`
	Tie            float64 `json:"tie"`
}

// NeutralOutcome is the placeholder for an action that was not
// simulated: even odds and no expected value.
func NeutralOutcome() ProbabilityOutcome {
	return ProbabilityOutcome{
		EstimatedValue: 0,
		Win:            0.5,
		Loss:           0.5,
		Tie:            0,
	}
}

// ActionOutcomes is the full report: one estimate per candidate
// action. The split slots keep their neutral defaults when the hand
// cannot be split.
type ActionOutcomes struct {
	Stand          ProbabilityOutcome `json:"stand"`
	HitOnce        ProbabilityOutcome `json:"hit_once"`
	HitTwice       ProbabilityOutcome `json:"hit_twice"`
	HitThrice      ProbabilityOutcome `json:"hit_thrice"`
	SplitHitOnce   ProbabilityOutcome `json:"split_hit_once"`
	SplitHitTwice  ProbabilityOutcome `json:"split_hit_twice"`
	SplitHitThrice ProbabilityOutcome `json:"split_hit_thrice"`
}

// NewActionOutcomes returns a report with every slot at its neutral
// default.
func NewActionOutcomes() *ActionOutcomes {
	return &ActionOutcomes{
		Stand:          NeutralOutcome(),
		HitOnce:        NeutralOutcome(),
		HitTwice:       NeutralOutcome(),
		HitThrice:      NeutralOutcome(),
		SplitHitOnce:   NeutralOutcome(),
		SplitHitTwice:  NeutralOutcome(),
		SplitHitThrice: NeutralOutcome(),
	}
}
