package lotto

import (
	"lottoInsight/domain"
)

type memStore struct {
	draws map[domain.GameID][]domain.DrawRecord
}

func (m memStore) Draws(game domain.GameID) []domain.DrawRecord { return m.draws[game] }
func (m memStore) Count(game domain.GameID) int                 { return len(m.draws[game]) }
func (m memStore) Cutoff() string                               { return "2026/02/06" }

// constRand always yields the same value.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

// seqRand replays values in order, then repeats the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i]
	if s.i < len(s.vals)-1 {
		s.i++
	}
	return v
}

var testBigDraws = []domain.DrawRecord{
	{Date: "2026/02/06", Main: []int{4, 12, 24, 25, 39, 48}, Special: 9},
	{Date: "2026/02/03", Main: []int{6, 14, 32, 33, 39, 43}, Special: 13},
	{Date: "2026/01/30", Main: []int{9, 13, 27, 31, 32, 39}, Special: 19},
	{Date: "2025/12/31", Main: []int{13, 14, 15, 28, 31, 40}, Special: 5},
	{Date: "2025/09/26", Main: []int{1, 2, 25, 29, 41, 49}, Special: 0},
}

var testSuperDraws = []domain.DrawRecord{
	{Date: "2026/02/05", Main: []int{7, 22, 28, 34, 36, 37}, Special: 7},
	{Date: "2026/02/02", Main: []int{1, 12, 14, 15, 27, 29}, Special: 5},
	{Date: "2026/01/29", Main: []int{5, 10, 15, 17, 23, 25}, Special: 5},
	{Date: "2025/12/29", Main: []int{3, 8, 12, 26, 32, 38}, Special: 4},
}

func testStore() memStore {
	return memStore{draws: map[domain.GameID][]domain.DrawRecord{
		domain.GameBigLotto:   testBigDraws,
		domain.GameSuperLotto: testSuperDraws,
	}}
}

func mustGame(id domain.GameID) domain.GameConfig {
	g, err := domain.LookupGame(id)
	if err != nil {
		panic(err)
	}
	return g
}
