package lotto

import (
	"testing"

	"lottoInsight/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	big := mustGame(domain.GameBigLotto)

	table := Aggregate(testBigDraws, big)

	assert.Equal(t, 5, table.DrawsUsed)
	assert.Equal(t, 30, table.TotalMain())
	assert.Equal(t, 3, table.MainCount(39))
	assert.Equal(t, 2, table.Main["13"])
	assert.Equal(t, 0, table.MainCount(3))

	// the unknown special (0) of 2025/09/26 is not counted
	assert.Equal(t, map[string]int{"05": 1, "09": 1, "13": 1, "19": 1}, table.Special)
}

func TestAggregate_IgnoresOutOfPoolNumbers(t *testing.T) {
	super := mustGame(domain.GameSuperLotto)

	table := Aggregate([]domain.DrawRecord{
		{Date: "2026/01/01", Main: []int{1, 2, 3, 4, 5, 45}, Special: 9},
	}, super)

	assert.Equal(t, 5, table.TotalMain())
	assert.Empty(t, table.Special)
}

func TestAggregate_Empty(t *testing.T) {
	table := Aggregate(nil, mustGame(domain.GameBigLotto))

	assert.Equal(t, 0, table.DrawsUsed)
	assert.Equal(t, 0, table.TotalMain())
	assert.Equal(t, 0, table.MainCount(1))
	assert.Equal(t, 0, table.SpecialCount(1))
}

// Totals must only reflect draws inside the selected scope.
func TestComputeFrequency_ScopeIsolation(t *testing.T) {
	big := mustGame(domain.GameBigLotto)

	scopes := []domain.Scope{
		{Kind: domain.ScopeAll},
		{Kind: domain.ScopeYear, Year: "2026"},
		{Kind: domain.ScopeYear, Year: "2025"},
		{Kind: domain.ScopeYear, Year: "2018"},
		{Kind: domain.ScopeRecent, RecentN: 1},
		{Kind: domain.ScopeRecent, RecentN: 3},
		{Kind: domain.ScopeRecent, RecentN: 40},
	}

	for _, scope := range scopes {
		t.Run(scope.String(), func(t *testing.T) {
			selected, _, _, err := SelectDraws(testBigDraws, scope)
			require.NoError(t, err)

			want := 0
			for _, r := range selected {
				want += len(r.Main)
			}

			table, _, _, err := ComputeFrequency(testBigDraws, big, scope)
			require.NoError(t, err)
			assert.Equal(t, want, table.TotalMain())
			assert.Equal(t, len(selected), table.DrawsUsed)
		})
	}

	recent, _, _, err := ComputeFrequency(testBigDraws, big, domain.Scope{Kind: domain.ScopeRecent, RecentN: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, recent.MainCount(39))
	assert.Equal(t, 0, recent.MainCount(9), "9 only appears in the third draw")
	assert.Equal(t, 0, recent.SpecialCount(19))
}

func TestComputeFrequency_UnknownScope(t *testing.T) {
	table, _, _, err := ComputeFrequency(testBigDraws, mustGame(domain.GameBigLotto), domain.Scope{Kind: "yaer", Year: "2025"})

	assert.ErrorIs(t, err, domain.ErrUnknownScope)
	assert.Zero(t, table.DrawsUsed)
	assert.Zero(t, table.TotalMain())
}
