package lotto

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"lottoInsight/domain"
	"lottoInsight/pkg/logger"

	"github.com/google/uuid"
)

// ---- Store interface ----

// DrawStore supplies immutable draw history, newest first.
type DrawStore interface {
	Draws(game domain.GameID) []domain.DrawRecord
	Count(game domain.GameID) int
	Cutoff() string
}

// ---- Usecase / Service ----

type RecommendRequest struct {
	Game     domain.GameID
	Scope    domain.Scope
	Strategy domain.StrategyID
}

type Service struct {
	store DrawStore
	cfg   Config
	// games overrides the domain registry when set
	games   map[domain.GameID]domain.GameConfig
	newRand func() RandSource
}

type Option func(*Service)

// WithRandFactory replaces the per-run random source. Each run calls f once.
func WithRandFactory(f func() RandSource) Option {
	return func(s *Service) {
		s.newRand = f
	}
}

// WithGames overrides the game registry.
func WithGames(games ...domain.GameConfig) Option {
	return func(s *Service) {
		s.games = make(map[domain.GameID]domain.GameConfig, len(games))
		for _, g := range games {
			s.games[g.ID] = g
		}
	}
}

func NewLottoService(store DrawStore, cfg Config, opts ...Option) *Service {
	s := &Service{
		store: store,
		cfg:   cfg,
		newRand: func() RandSource {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) game(id domain.GameID) (domain.GameConfig, error) {
	if s.games == nil {
		return domain.LookupGame(id)
	}

	g, ok := s.games[id]
	if !ok {
		return domain.GameConfig{}, fmt.Errorf("%w: %q", domain.ErrUnknownGame, id)
	}
	return g, nil
}

// Games lists the configured game variants ordered by id.
func (s *Service) Games() []domain.GameConfig {
	if s.games == nil {
		return domain.Games()
	}

	out := make([]domain.GameConfig, 0, len(s.games))
	for _, g := range s.games {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Summary reports the newest draw date and the draw count per game.
func (s *Service) Summary() domain.DrawSummary {
	games := s.Games()
	sum := domain.DrawSummary{
		Cutoff: s.store.Cutoff(),
		Draws:  make(map[domain.GameID]int, len(games)),
	}
	for _, g := range games {
		sum.Draws[g.ID] = s.store.Count(g.ID)
	}
	return sum
}

// Frequency computes the frequency table of game under scope.
func (s *Service) Frequency(ctx context.Context, id domain.GameID, scope domain.Scope) (domain.FrequencyTable, domain.Scope, error) {
	if err := ctx.Err(); err != nil {
		return domain.FrequencyTable{}, scope, fmt.Errorf("context error: %w", err)
	}

	game, err := s.game(id)
	if err != nil {
		return domain.FrequencyTable{}, scope, err
	}

	table, applied, warnings, err := ComputeFrequency(s.store.Draws(game.ID), game, scope)
	if err != nil {
		return domain.FrequencyTable{}, scope, err
	}
	s.logWarnings(ctx, game.ID, warnings)

	return table, applied, nil
}

// Chart lists a pool's counts under scope, most frequent first.
func (s *Service) Chart(ctx context.Context, id domain.GameID, scope domain.Scope, pool domain.Pool) ([]domain.NumberCount, error) {
	table, _, err := s.Frequency(ctx, id, scope)
	if err != nil {
		return nil, err
	}

	game, err := s.game(id)
	if err != nil {
		return nil, err
	}

	return ListChartableFrequencies(table, game, pool)
}

//  Recommendation

// BuildRecommendation scores every pool number with the chosen strategy and picks
// the top DrawCount main numbers (plus one special number where the game has one).
func (s *Service) BuildRecommendation(ctx context.Context, req RecommendRequest) (domain.Recommendation, error) {
	b, err := s.analyze(ctx, req)
	if err != nil {
		return domain.Recommendation{}, err
	}

	RecommendationsTotal.
		WithLabelValues(string(b.Recommendation.Game), string(b.Recommendation.Scope.Kind), string(req.Strategy)).
		Inc()

	return b.Recommendation, nil
}

// DebugScores runs the same analysis as BuildRecommendation and also returns every
// candidate's success count and score, best first.
func (s *Service) DebugScores(ctx context.Context, req RecommendRequest) (domain.ScoreBreakdown, error) {
	b, err := s.analyze(ctx, req)
	if err != nil {
		return domain.ScoreBreakdown{}, err
	}

	logger.Debug("lotto_debug_scores",
		"trace_id", TraceIDFromContext(ctx),
		"run_id", b.Recommendation.RunID,
		"candidates", len(b.Main)+len(b.Special),
	)
	return b, nil
}

func (s *Service) analyze(ctx context.Context, req RecommendRequest) (domain.ScoreBreakdown, error) {
	if err := ctx.Err(); err != nil {
		return domain.ScoreBreakdown{}, fmt.Errorf("context error: %w", err)
	}

	game, err := s.game(req.Game)
	if err != nil {
		return domain.ScoreBreakdown{}, err
	}
	if err := ValidateGame(game); err != nil {
		logger.Error("lotto_invalid_game", "game", game.ID, "error", err)
		return domain.ScoreBreakdown{}, err
	}

	strategy, err := StrategyFor(req.Strategy, s.cfg)
	if err != nil {
		return domain.ScoreBreakdown{}, err
	}

	// 1) scope + frequencies
	table, scope, warnings, err := ComputeFrequency(s.store.Draws(game.ID), game, req.Scope)
	if err != nil {
		return domain.ScoreBreakdown{}, err
	}
	s.logWarnings(ctx, game.ID, warnings)

	// 2) score with a random source owned by this run only
	sc := ScoreContext{
		Rand:   s.newRand(),
		Spread: s.spread(scope),
	}

	b := domain.ScoreBreakdown{MainTrials: s.mainBaseline(scope)}

	b.Main = scorePool(game.MainPoolSize, b.MainTrials, strategy, sc, func(n int) float64 {
		return float64(table.MainCount(n)) + game.CrossPoolWeight*float64(table.SpecialCount(n))
	})
	main := topNumbers(b.Main, game.DrawCount)

	var special *int
	if game.HasSpecialSelection {
		b.SpecialTrials = s.specialBaseline(scope)
		b.Special = scorePool(game.SpecialPoolSize, b.SpecialTrials, strategy, sc, func(n int) float64 {
			return float64(table.SpecialCount(n))
		})
		rank(b.Special)
		pick := b.Special[0].Number
		special = &pick
	}

	b.Recommendation = domain.Recommendation{
		RunID:    uuid.NewString(),
		Game:     game.ID,
		Scope:    scope,
		Strategy: req.Strategy,
		Main:     main,
		Special:  special,
		Summary:  summarize(scope, req.Strategy),
		Warnings: warnings,
	}

	logger.Debug("lotto_recommend",
		"trace_id", TraceIDFromContext(ctx),
		"run_id", b.Recommendation.RunID,
		"game", game.ID,
		"scope", scope.Kind,
		"recent_n", scope.RecentN,
		"year", scope.Year,
		"strategy", req.Strategy,
		"draws_used", table.DrawsUsed,
		"main", main,
	)

	return b, nil
}

// ValidateGame rejects pool parameters that cannot yield a full pick set.
func ValidateGame(g domain.GameConfig) error {
	switch {
	case g.MainPoolSize <= 0:
		return fmt.Errorf("%w: %s main pool size %d", domain.ErrInvalidConfig, g.ID, g.MainPoolSize)
	case g.DrawCount <= 0:
		return fmt.Errorf("%w: %s draw count %d", domain.ErrInvalidConfig, g.ID, g.DrawCount)
	case g.DrawCount > g.MainPoolSize:
		return fmt.Errorf("%w: %s draw count %d exceeds pool size %d", domain.ErrInvalidConfig, g.ID, g.DrawCount, g.MainPoolSize)
	case g.HasSpecialSelection && g.SpecialPoolSize <= 0:
		return fmt.Errorf("%w: %s requires a special pool", domain.ErrInvalidConfig, g.ID)
	}
	return nil
}

// topNumbers ranks cands and returns the best n numbers in ascending order.
func topNumbers(cands []domain.ScoredCandidate, n int) []int {
	rank(cands)
	if n > len(cands) {
		n = len(cands)
	}

	out := make([]int, 0, n)
	for _, c := range cands[:n] {
		out = append(out, c.Number)
	}
	sort.Ints(out)
	return out
}

func (s *Service) mainBaseline(scope domain.Scope) float64 {
	switch scope.Kind {
	case domain.ScopeYear:
		return s.cfg.BaselineYear
	case domain.ScopeRecent:
		return s.cfg.BaselineRecentFactor * float64(scope.RecentN)
	default:
		return s.cfg.BaselineAll
	}
}

func (s *Service) specialBaseline(scope domain.Scope) float64 {
	if scope.Narrow() {
		return s.cfg.SpecialBaselineNarrow
	}
	return s.cfg.SpecialBaselineAll
}

func (s *Service) spread(scope domain.Scope) float64 {
	if scope.Narrow() {
		return s.cfg.SpreadNarrow
	}
	return s.cfg.SpreadAll
}

func (s *Service) logWarnings(ctx context.Context, game domain.GameID, warnings []string) {
	for _, w := range warnings {
		logger.Warn("lotto_scope_adjusted",
			"trace_id", TraceIDFromContext(ctx),
			"game", game,
			"warning", w,
		)
	}
}
