package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupGame(t *testing.T) {
	big, err := LookupGame(GameBigLotto)
	require.NoError(t, err)
	assert.Equal(t, 49, big.MainPoolSize)
	assert.False(t, big.HasSpecialSelection)
	assert.Equal(t, 0.25, big.CrossPoolWeight)

	super, err := LookupGame(GameSuperLotto)
	require.NoError(t, err)
	assert.Equal(t, 38, super.MainPoolSize)
	assert.Equal(t, 8, super.SpecialPoolSize)
	assert.True(t, super.HasSpecialSelection)

	_, err = LookupGame("KENO")
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.Contains(t, err.Error(), "KENO")
}

func TestParseScopeKind(t *testing.T) {
	tests := []struct {
		in      string
		want    ScopeKind
		wantErr bool
	}{
		{"", ScopeAll, false},
		{"all", ScopeAll, false},
		{"year", ScopeYear, false},
		{"recent", ScopeRecent, false},
		{"recnet", "", true},
		{"YEAR", "", true},
	}

	for _, tt := range tests {
		got, err := ParseScopeKind(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownScope, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
