package drawstore

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"lottoInsight/domain"
	"lottoInsight/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// DrawRepository reads raw draw history for one game.
type DrawRepository interface {
	FindByGame(ctx context.Context, game domain.GameID) ([]domain.DrawRecord, error)
}

// Store is the immutable, newest-first draw history of every game.
// It is built once at start-up and only read afterwards.
type Store struct {
	draws  map[domain.GameID][]domain.DrawRecord
	cutoff string
}

// Load reads every game from repo, drops malformed or duplicate records and sorts
// the rest newest-first.
func Load(ctx context.Context, repo DrawRepository, games []domain.GameConfig, validate *validator.Validate) (*Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if validate == nil {
		validate = validator.New()
	}

	s := &Store{draws: make(map[domain.GameID][]domain.DrawRecord, len(games))}

	for _, g := range games {
		rows, err := repo.FindByGame(ctx, g.ID)
		if err != nil {
			return nil, fmt.Errorf("load %s draws: %w", g.ID, err)
		}

		seen := make(map[string]struct{}, len(rows))
		kept := make([]domain.DrawRecord, 0, len(rows))
		for _, r := range rows {
			if err := checkRecord(validate, g, r); err != nil {
				logger.Warn("drawstore_skip_record", "game", g.ID, "date", r.Date, "error", err)
				continue
			}
			if _, dup := seen[r.Date]; dup {
				logger.Warn("drawstore_skip_record", "game", g.ID, "date", r.Date, "error", "duplicate date")
				continue
			}
			seen[r.Date] = struct{}{}
			kept = append(kept, r)
		}

		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].Date > kept[j].Date
		})

		if len(kept) > 0 && kept[0].Date > s.cutoff {
			s.cutoff = kept[0].Date
		}
		s.draws[g.ID] = kept

		logger.Info("drawstore_loaded", "game", g.ID, "draws", len(kept), "skipped", len(rows)-len(kept))
	}

	return s, nil
}

// checkRecord validates the record shape and that every number is in the game's pools.
func checkRecord(validate *validator.Validate, g domain.GameConfig, r domain.DrawRecord) error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if len(r.Main) != g.DrawCount {
		return fmt.Errorf("expected %d main numbers, got %d", g.DrawCount, len(r.Main))
	}
	for _, n := range r.Main {
		if n < 1 || n > g.MainPoolSize {
			return fmt.Errorf("main number %d outside 1..%d", n, g.MainPoolSize)
		}
	}
	if r.Special > g.SpecialPoolSize {
		return fmt.Errorf("special number %d outside 0..%d", r.Special, g.SpecialPoolSize)
	}
	// 0 marks an unknown special; games that pick a special number always record one
	if g.HasSpecialSelection && r.Special < 1 {
		return fmt.Errorf("special number %d outside 1..%d", r.Special, g.SpecialPoolSize)
	}
	return nil
}

// Draws returns the game's history, newest first. Callers must not modify the records.
func (s *Store) Draws(game domain.GameID) []domain.DrawRecord {
	return slices.Clone(s.draws[game])
}

func (s *Store) Count(game domain.GameID) int {
	return len(s.draws[game])
}

// Cutoff is the newest draw date across all games, or "" when the store is empty.
func (s *Store) Cutoff() string {
	return s.cutoff
}
