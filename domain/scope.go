package domain

import "fmt"

type ScopeKind string

const (
	ScopeAll    ScopeKind = "all"
	ScopeYear   ScopeKind = "year"
	ScopeRecent ScopeKind = "recent"
)

// Scope selects the subset of draws that feeds the frequency table.
type Scope struct {
	Kind    ScopeKind `json:"kind"`
	Year    string    `json:"year,omitempty"`
	RecentN int       `json:"recent_n,omitempty"`
}

func ParseScopeKind(s string) (ScopeKind, error) {
	switch ScopeKind(s) {
	case ScopeAll, ScopeYear, ScopeRecent:
		return ScopeKind(s), nil
	case "":
		return ScopeAll, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScope, s)
}

// Narrow reports whether the scope covers less than the full history.
func (s Scope) Narrow() bool {
	return s.Kind != ScopeAll
}

func (s Scope) String() string {
	switch s.Kind {
	case ScopeYear:
		return "year " + s.Year
	case ScopeRecent:
		return fmt.Sprintf("recent %d draws", s.RecentN)
	default:
		return "all history"
	}
}
