package domain

import "fmt"

// CREATE TABLE public.lotto_draws (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     game       TEXT NOT NULL,
//     draw_date  TEXT NOT NULL,       -- YYYY/MM/DD
//     numbers    JSONB NOT NULL,      -- [4,12,24,25,39,48]
//     special    INT NOT NULL DEFAULT 0,
//     UNIQUE (game, draw_date)
// );

// DrawRecord is one historical draw. Main holds the six main (or zone-1) numbers,
// Special the special (or zone-2) number; 0 means the special number is unknown.
type DrawRecord struct {
	Date    string `json:"date" validate:"required,datetime=2006/01/02"`
	Main    []int  `json:"main" validate:"len=6,unique"`
	Special int    `json:"special" validate:"min=0"`
}

// Year returns the YYYY prefix of the draw date.
func (d DrawRecord) Year() string {
	if len(d.Date) < 4 {
		return d.Date
	}
	return d.Date[:4]
}

// Label formats a pool number as the two-digit key used by frequency tables.
func Label(n int) string {
	return fmt.Sprintf("%02d", n)
}

// DrawSummary reports the newest draw date across all games and per-game history sizes.
type DrawSummary struct {
	Cutoff string         `json:"cutoff"`
	Draws  map[GameID]int `json:"draws"`
}
