package lotto

import (
	"fmt"
	"strings"

	"lottoInsight/domain"
)

// SelectDraws returns the records covered by scope, the scope as actually applied,
// and any warnings raised while normalising it. records must be ordered newest-first.
// An empty kind means all history; any other unknown kind is an error.
func SelectDraws(records []domain.DrawRecord, scope domain.Scope) ([]domain.DrawRecord, domain.Scope, []string, error) {
	var warnings []string

	kind, err := domain.ParseScopeKind(string(scope.Kind))
	if err != nil {
		return nil, scope, nil, err
	}
	scope.Kind = kind

	switch scope.Kind {
	case domain.ScopeYear:
		if scope.Year == "" && len(records) > 0 {
			scope.Year = records[0].Year()
		}
		out := make([]domain.DrawRecord, 0)
		for _, r := range records {
			if strings.HasPrefix(r.Date, scope.Year) {
				out = append(out, r)
			}
		}
		return out, scope, warnings, nil

	case domain.ScopeRecent:
		if scope.RecentN < 1 {
			warnings = append(warnings, fmt.Sprintf("recent draw count %d raised to 1", scope.RecentN))
			scope.RecentN = 1
		}
		n := scope.RecentN
		if n > len(records) {
			n = len(records)
		}
		return records[:n:n], scope, warnings, nil

	default:
		scope.Year = ""
		scope.RecentN = 0
		return records, scope, warnings, nil
	}
}
