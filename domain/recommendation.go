package domain

import "fmt"

type StrategyID string

const (
	StrategyPosterior     StrategyID = "posterior"
	StrategyUCB1          StrategyID = "ucb1"
	StrategyEpsilonGreedy StrategyID = "epsilon-greedy"
)

// ParseStrategy accepts the canonical ids plus the short aliases used by older clients.
func ParseStrategy(s string) (StrategyID, error) {
	switch s {
	case "posterior", "thompson":
		return StrategyPosterior, nil
	case "ucb1", "ucb":
		return StrategyUCB1, nil
	case "epsilon-greedy", "epsilon":
		return StrategyEpsilonGreedy, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

type ScoredCandidate struct {
	Number  int     `json:"number"`
	Success float64 `json:"success"` // observed count, cross-pool share included
	Score   float64 `json:"score"`
}

type Recommendation struct {
	RunID    string     `json:"run_id"`
	Game     GameID     `json:"game"`
	Scope    Scope      `json:"scope"`
	Strategy StrategyID `json:"strategy"`
	Main     []int      `json:"main"`
	Special  *int       `json:"special"`
	Summary  string     `json:"summary"`
	Warnings []string   `json:"warnings,omitempty"`
}

// ScoreBreakdown exposes the ranked candidate scores behind a recommendation.
type ScoreBreakdown struct {
	Recommendation Recommendation    `json:"recommendation"`
	MainTrials     float64           `json:"main_trials"`
	Main           []ScoredCandidate `json:"main"`
	SpecialTrials  float64           `json:"special_trials,omitempty"`
	Special        []ScoredCandidate `json:"special,omitempty"`
}
