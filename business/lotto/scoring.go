package lotto

import (
	"fmt"
	"math"
	"sort"

	"lottoInsight/domain"
)

// RandSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// ScoreContext carries the per-run inputs a strategy may need besides the counts.
type ScoreContext struct {
	Rand   RandSource
	Spread float64
}

// Strategy turns (successes, trials) into a comparable score. Candidates are scored
// independently of each other.
type Strategy interface {
	Score(success, trials float64, sc ScoreContext) float64
}

// Posterior samples around the Beta(1+s, 1+t-s) posterior mean.
type Posterior struct{}

func (Posterior) Score(success, trials float64, sc ScoreContext) float64 {
	// keep beta >= 1 when a boosted count overtakes the baseline
	if success > trials {
		trials = success
	}
	alpha := 1 + success
	beta := 1 + (trials - success)
	sum := alpha + beta
	mean := alpha / sum
	std := math.Sqrt((alpha * beta) / (sum * sum * (sum + 1)))
	return mean + (sc.Rand.Float64()-0.5)*std*sc.Spread
}

// UCB1 = s/(t+1) + sqrt(2 ln(t+1) / (s+1))
type UCB1 struct{}

func (UCB1) Score(success, trials float64, _ ScoreContext) float64 {
	return success/(trials+1) + math.Sqrt((2*math.Log(trials+1))/(success+1))
}

// EpsilonGreedy explores with a uniform score with probability Epsilon and
// exploits the observed rate otherwise.
type EpsilonGreedy struct {
	Epsilon float64
}

func (e EpsilonGreedy) Score(success, trials float64, sc ScoreContext) float64 {
	if sc.Rand.Float64() < e.Epsilon {
		ExploreEventsTotal.Inc()
		return sc.Rand.Float64()
	}
	return success / (trials + 1)
}

// StrategyFor resolves a strategy id using the tunables in cfg.
func StrategyFor(id domain.StrategyID, cfg Config) (Strategy, error) {
	switch id {
	case domain.StrategyPosterior:
		return Posterior{}, nil
	case domain.StrategyUCB1:
		return UCB1{}, nil
	case domain.StrategyEpsilonGreedy:
		return EpsilonGreedy{Epsilon: cfg.Epsilon}, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, id)
}

// scorePool scores numbers 1..size. success(n) supplies each number's observed count.
func scorePool(size int, trials float64, s Strategy, sc ScoreContext, success func(n int) float64) []domain.ScoredCandidate {
	out := make([]domain.ScoredCandidate, 0, size)
	for n := 1; n <= size; n++ {
		succ := success(n)
		out = append(out, domain.ScoredCandidate{
			Number:  n,
			Success: succ,
			Score:   s.Score(succ, trials, sc),
		})
	}
	return out
}

// rank orders candidates by descending score, lower number first on ties.
func rank(cands []domain.ScoredCandidate) {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			return cands[i].Number < cands[j].Number
		}
		return cands[i].Score > cands[j].Score
	})
}
