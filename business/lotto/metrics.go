package lotto

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lotto_recommendations_total",
			Help: "Count of recommendation runs by game, scope and strategy.",
		},
		[]string{"game", "scope", "strategy"},
	)

	ExploreEventsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lotto_explore_events_total",
		Help: "How many candidate scores came from the epsilon-greedy exploration branch",
	})
)

func init() {
	prometheus.MustRegister(RecommendationsTotal, ExploreEventsTotal)
}
