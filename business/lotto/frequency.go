package lotto

import "lottoInsight/domain"

// Aggregate counts main and special occurrences across records. Numbers outside the
// game's pools are ignored, which also drops unknown special numbers (0).
func Aggregate(records []domain.DrawRecord, game domain.GameConfig) domain.FrequencyTable {
	table := domain.FrequencyTable{
		Main:      make(map[string]int),
		Special:   make(map[string]int),
		DrawsUsed: len(records),
	}

	for _, r := range records {
		for _, n := range r.Main {
			if n >= 1 && n <= game.MainPoolSize {
				table.Main[domain.Label(n)]++
			}
		}
		if r.Special >= 1 && r.Special <= game.SpecialPoolSize {
			table.Special[domain.Label(r.Special)]++
		}
	}

	return table
}

// ComputeFrequency applies scope to records and aggregates the result.
func ComputeFrequency(records []domain.DrawRecord, game domain.GameConfig, scope domain.Scope) (domain.FrequencyTable, domain.Scope, []string, error) {
	selected, applied, warnings, err := SelectDraws(records, scope)
	if err != nil {
		return domain.FrequencyTable{}, scope, nil, err
	}
	return Aggregate(selected, game), applied, warnings, nil
}
