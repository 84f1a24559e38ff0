package drawstore

import (
	"context"
	"errors"
	"testing"

	"lottoInsight/domain"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	draws map[domain.GameID][]domain.DrawRecord
	err   error
}

func (f fakeRepo) FindByGame(_ context.Context, game domain.GameID) ([]domain.DrawRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.draws[game], nil
}

func games(t *testing.T) []domain.GameConfig {
	t.Helper()
	big, err := domain.LookupGame(domain.GameBigLotto)
	require.NoError(t, err)
	super, err := domain.LookupGame(domain.GameSuperLotto)
	require.NoError(t, err)
	return []domain.GameConfig{big, super}
}

func TestLoad_SortsAndFilters(t *testing.T) {
	repo := fakeRepo{draws: map[domain.GameID][]domain.DrawRecord{
		domain.GameBigLotto: {
			{Date: "2026/01/30", Main: []int{9, 13, 27, 31, 32, 39}, Special: 19},
			{Date: "2026/02/06", Main: []int{4, 12, 24, 25, 39, 48}, Special: 9},
			{Date: "2026/02/06", Main: []int{1, 2, 3, 4, 5, 6}, Special: 7},      // duplicate date
			{Date: "2026/02/03", Main: []int{6, 14, 32, 33, 39, 50}, Special: 13}, // out of pool
			{Date: "2026/02/01", Main: []int{6, 6, 32, 33, 39, 40}, Special: 13},  // repeated number
			{Date: "2026-02-02", Main: []int{1, 2, 3, 4, 5, 6}, Special: 1},       // bad date
			{Date: "2025/09/26", Main: []int{1, 2, 25, 29, 41, 49}, Special: 0},
		},
		domain.GameSuperLotto: {
			{Date: "2026/02/05", Main: []int{7, 22, 28, 34, 36, 37}, Special: 7},
			{Date: "2026/02/02", Main: []int{1, 12, 14, 15, 27, 39}, Special: 5}, // zone 1 is 1..38
			{Date: "2026/01/29", Main: []int{5, 10, 15, 17, 23, 25}, Special: 9}, // zone 2 is 1..8
			{Date: "2026/01/26", Main: []int{5, 10, 15, 17, 23}, Special: 2},     // short
			{Date: "2026/01/22", Main: []int{5, 10, 15, 17, 23, 25}, Special: 0}, // zone 2 never unknown
		},
	}}

	s, err := Load(context.Background(), repo, games(t), nil)
	require.NoError(t, err)

	big := s.Draws(domain.GameBigLotto)
	require.Len(t, big, 3)
	assert.Equal(t, "2026/02/06", big[0].Date)
	assert.Equal(t, []int{4, 12, 24, 25, 39, 48}, big[0].Main)
	assert.Equal(t, "2026/01/30", big[1].Date)
	assert.Equal(t, "2025/09/26", big[2].Date)

	assert.Equal(t, 1, s.Count(domain.GameSuperLotto))
	assert.Equal(t, "2026/02/06", s.Cutoff())
}

func TestLoad_EmptyRepository(t *testing.T) {
	s, err := Load(context.Background(), fakeRepo{}, games(t), nil)
	require.NoError(t, err)

	assert.Empty(t, s.Draws(domain.GameBigLotto))
	assert.Zero(t, s.Count(domain.GameSuperLotto))
	assert.Equal(t, "", s.Cutoff())
}

func TestLoad_RepositoryError(t *testing.T) {
	boom := errors.New("connection refused")

	_, err := Load(context.Background(), fakeRepo{err: boom}, games(t), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "BIG_LOTTO")
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, fakeRepo{}, games(t), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDraws_ReturnsCopy(t *testing.T) {
	repo := fakeRepo{draws: map[domain.GameID][]domain.DrawRecord{
		domain.GameBigLotto: {
			{Date: "2026/02/06", Main: []int{4, 12, 24, 25, 39, 48}, Special: 9},
			{Date: "2026/02/03", Main: []int{6, 14, 32, 33, 39, 43}, Special: 13},
		},
	}}
	s, err := Load(context.Background(), repo, games(t), nil)
	require.NoError(t, err)

	got := s.Draws(domain.GameBigLotto)
	got[0] = domain.DrawRecord{Date: "1999/01/01"}

	assert.Equal(t, "2026/02/06", s.Draws(domain.GameBigLotto)[0].Date)
}

func TestCheckRecord_UnknownSpecial(t *testing.T) {
	validate := validator.New()
	gs := games(t)
	big, super := gs[0], gs[1]

	rec := domain.DrawRecord{Date: "2026/02/05", Main: []int{7, 22, 28, 34, 36, 37}, Special: 0}

	assert.NoError(t, checkRecord(validate, big, rec), "six-of-49 special may be unknown")
	assert.Error(t, checkRecord(validate, super, rec))

	rec.Special = 8
	assert.NoError(t, checkRecord(validate, super, rec))
	rec.Special = 9
	assert.Error(t, checkRecord(validate, super, rec))
}
