package lotto

import (
	"fmt"
	"sort"

	"lottoInsight/domain"
)

// ListChartableFrequencies returns numbers 1..poolSize of the selected pool with their
// counts, highest count first and lower number first on ties.
func ListChartableFrequencies(table domain.FrequencyTable, game domain.GameConfig, pool domain.Pool) ([]domain.NumberCount, error) {
	var (
		size  int
		count func(n int) int
	)

	switch pool {
	case domain.PoolMain, "":
		size, count = game.MainPoolSize, table.MainCount
	case domain.PoolSpecial:
		size, count = game.SpecialPoolSize, table.SpecialCount
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPool, pool)
	}

	out := make([]domain.NumberCount, 0, size)
	for n := 1; n <= size; n++ {
		out = append(out, domain.NumberCount{
			Number: n,
			Label:  domain.Label(n),
			Count:  count(n),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	return out, nil
}
