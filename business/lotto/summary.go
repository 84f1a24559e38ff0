package lotto

import (
	"fmt"

	"lottoInsight/domain"
)

func scopeText(scope domain.Scope) string {
	switch scope.Kind {
	case domain.ScopeYear:
		return fmt.Sprintf("draws from %s only", scope.Year)
	case domain.ScopeRecent:
		return fmt.Sprintf("the most recent %d draws", scope.RecentN)
	default:
		return "the full draw history"
	}
}

// summarize describes the run for display; it carries no other meaning.
func summarize(scope domain.Scope, id domain.StrategyID) string {
	basis := scopeText(scope)

	switch id {
	case domain.StrategyPosterior:
		return fmt.Sprintf("Based on %s, posterior sampling spreads weight toward recently hot numbers, suited to following short-term trends.", basis)
	case domain.StrategyUCB1:
		return fmt.Sprintf("Based on %s, the UCB1 confidence bound looks for cold numbers with rebound potential.", basis)
	case domain.StrategyEpsilonGreedy:
		return fmt.Sprintf("Based on %s, epsilon-greedy keeps following hot numbers while exploring at random.", basis)
	}
	return fmt.Sprintf("Based on %s.", basis)
}
