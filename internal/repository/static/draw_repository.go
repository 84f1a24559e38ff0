package static

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"lottoInsight/domain"
)

//go:embed draws.json
var seedDraws []byte

// rawDraw accepts both the six-of-49 field names (main/special) and the
// dual-zone ones (zone1/zone2).
type rawDraw struct {
	Date    string `json:"date"`
	Main    []int  `json:"main"`
	Special *int   `json:"special"`
	Zone1   []int  `json:"zone1"`
	Zone2   *int   `json:"zone2"`
}

func (r rawDraw) record() domain.DrawRecord {
	rec := domain.DrawRecord{Date: r.Date, Main: r.Main}
	if len(rec.Main) == 0 {
		rec.Main = r.Zone1
	}
	switch {
	case r.Special != nil:
		rec.Special = *r.Special
	case r.Zone2 != nil:
		rec.Special = *r.Zone2
	}
	return rec
}

type DrawRepository struct {
	draws map[domain.GameID][]rawDraw
}

// NewDrawRepository parses the embedded draw history.
func NewDrawRepository() (*DrawRepository, error) {
	return NewDrawRepositoryFromJSON(seedDraws)
}

// NewDrawRepositoryFromJSON parses a {"GAME_ID": [draw, ...]} document.
func NewDrawRepositoryFromJSON(data []byte) (*DrawRepository, error) {
	var draws map[domain.GameID][]rawDraw
	if err := json.Unmarshal(data, &draws); err != nil {
		return nil, fmt.Errorf("failed to parse draw history: %w", err)
	}
	return &DrawRepository{draws: draws}, nil
}

func (r *DrawRepository) FindByGame(ctx context.Context, game domain.GameID) ([]domain.DrawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	rows := r.draws[game]
	out := make([]domain.DrawRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.record())
	}
	return out, nil
}
