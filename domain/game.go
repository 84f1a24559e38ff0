package domain

import (
	"fmt"
	"sort"
)

type GameID string

const (
	GameBigLotto   GameID = "BIG_LOTTO"
	GameSuperLotto GameID = "SUPER_LOTTO"
)

// GameConfig describes a game variant's pools.
type GameConfig struct {
	ID           GameID `json:"id"`
	Name         string `json:"name"`
	MainLabel    string `json:"main_label"`
	SpecialLabel string `json:"special_label"`

	MainPoolSize int `json:"main_pool_size"`
	DrawCount    int `json:"draw_count"`

	SpecialPoolSize     int  `json:"special_pool_size"`
	HasSpecialSelection bool `json:"has_special_selection"`

	// fraction of a number's special-pool count added to its main-pool count
	CrossPoolWeight float64 `json:"cross_pool_weight"`
}

var games = map[GameID]GameConfig{
	GameBigLotto: {
		ID:                  GameBigLotto,
		Name:                "Big Lotto",
		MainLabel:           "Main numbers",
		SpecialLabel:        "Special number",
		MainPoolSize:        49,
		DrawCount:           6,
		SpecialPoolSize:     49,
		HasSpecialSelection: false,
		CrossPoolWeight:     0.25,
	},
	GameSuperLotto: {
		ID:                  GameSuperLotto,
		Name:                "Super Lotto",
		MainLabel:           "Zone 1",
		SpecialLabel:        "Zone 2",
		MainPoolSize:        38,
		DrawCount:           6,
		SpecialPoolSize:     8,
		HasSpecialSelection: true,
	},
}

// LookupGame returns the registered config for id.
func LookupGame(id GameID) (GameConfig, error) {
	cfg, ok := games[id]
	if !ok {
		return GameConfig{}, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	return cfg, nil
}

// Games lists every registered game ordered by id.
func Games() []GameConfig {
	out := make([]GameConfig, 0, len(games))
	for _, g := range games {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
