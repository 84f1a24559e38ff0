package domain

// FrequencyTable maps two-digit number labels to occurrence counts.
type FrequencyTable struct {
	Main      map[string]int `json:"main"`
	Special   map[string]int `json:"special"`
	DrawsUsed int            `json:"draws_used"`
}

// MainCount returns how often n was drawn in the main pool; absent numbers count 0.
func (t FrequencyTable) MainCount(n int) int {
	return t.Main[Label(n)]
}

func (t FrequencyTable) SpecialCount(n int) int {
	return t.Special[Label(n)]
}

// TotalMain sums every main-pool occurrence in the table.
func (t FrequencyTable) TotalMain() int {
	total := 0
	for _, c := range t.Main {
		total += c
	}
	return total
}

type Pool string

const (
	PoolMain    Pool = "main"
	PoolSpecial Pool = "special"
)

// NumberCount is one bar of a frequency chart.
type NumberCount struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}
