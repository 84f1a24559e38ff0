package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"lottoInsight/business/lotto"
	"lottoInsight/domain"
	"lottoInsight/pkg/logger"
	"lottoInsight/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const defaultRecentN = 10

type (
	LottoHandler struct {
		validate     *validator.Validate
		lottoService LottoService
		timeout      time.Duration
	}

	LottoService interface {
		Games() []domain.GameConfig
		Summary() domain.DrawSummary
		Frequency(ctx context.Context, game domain.GameID, scope domain.Scope) (domain.FrequencyTable, domain.Scope, error)
		Chart(ctx context.Context, game domain.GameID, scope domain.Scope, pool domain.Pool) ([]domain.NumberCount, error)
		BuildRecommendation(ctx context.Context, req lotto.RecommendRequest) (domain.Recommendation, error)
		DebugScores(ctx context.Context, req lotto.RecommendRequest) (domain.ScoreBreakdown, error)
	}

	ScopeQuery struct {
		Game  string `query:"game" validate:"required,oneof=BIG_LOTTO SUPER_LOTTO"`
		Scope string `query:"scope" validate:"omitempty,oneof=all year recent"`
		Year  string `query:"year" validate:"omitempty,numeric,len=4"`
		N     int    `query:"n"`
	}

	ChartQuery struct {
		ScopeQuery
		Pool string `query:"pool" validate:"omitempty,oneof=main special"`
	}

	RecommendQuery struct {
		ScopeQuery
		Strategy string `query:"strategy" validate:"omitempty,oneof=posterior thompson ucb1 ucb epsilon-greedy epsilon"`
	}

	FrequencyResponse struct {
		Game      domain.GameID  `json:"game"`
		Scope     domain.Scope   `json:"scope"`
		DrawsUsed int            `json:"draws_used"`
		TotalMain int            `json:"total_main"`
		Main      map[string]int `json:"main"`
		Special   map[string]int `json:"special"`
	}
)

func NewLottoHandler(svc LottoService) *LottoHandler {
	return &LottoHandler{
		validate:     validator.New(),
		lottoService: svc,
		timeout:      10 * time.Second,
	}
}

// GET /api/v1/games
func (h *LottoHandler) Games(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.lottoService.Games()))
}

// GET /api/v1/draws/summary
func (h *LottoHandler) DrawSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.lottoService.Summary()))
}

// GET /api/v1/frequencies?game=BIG_LOTTO&scope=recent&n=20
func (h *LottoHandler) Frequency(c echo.Context) error {
	var q ScopeQuery
	if err := h.bind(c, &q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	q.defaults(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	scope, err := q.scope()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	table, applied, err := h.lottoService.Frequency(ctx, domain.GameID(q.Game), scope)
	if err != nil {
		return h.fail(c, "failed to compute frequencies", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(FrequencyResponse{
		Game:      domain.GameID(q.Game),
		Scope:     applied,
		DrawsUsed: table.DrawsUsed,
		TotalMain: table.TotalMain(),
		Main:      table.Main,
		Special:   table.Special,
	}))
}

// GET /api/v1/frequencies/chart?game=SUPER_LOTTO&pool=special
func (h *LottoHandler) Chart(c echo.Context) error {
	var q ChartQuery
	if err := h.bind(c, &q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	q.defaults(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	scope, err := q.scope()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	rows, err := h.lottoService.Chart(ctx, domain.GameID(q.Game), scope, domain.Pool(q.Pool))
	if err != nil {
		return h.fail(c, "failed to build chart", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rows))
}

// GET /api/v1/recommendations?game=BIG_LOTTO&scope=all&strategy=ucb1
func (h *LottoHandler) Recommend(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	}()
	metrics.RecommendRequests.Inc()

	req, err := h.recommendRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rec, err := h.lottoService.BuildRecommendation(ctx, req)
	if err != nil {
		return h.fail(c, "failed to build recommendation", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rec))
}

// GET /api/v1/recommendations/debug?game=SUPER_LOTTO&strategy=posterior
func (h *LottoHandler) RecommendDebug(c echo.Context) error {
	req, err := h.recommendRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	b, err := h.lottoService.DebugScores(ctx, req)
	if err != nil {
		return h.fail(c, "failed to score candidates", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(b))
}

func (h *LottoHandler) recommendRequest(c echo.Context) (lotto.RecommendRequest, error) {
	var q RecommendQuery
	if err := h.bind(c, &q); err != nil {
		return lotto.RecommendRequest{}, err
	}
	q.defaults(c)
	if q.Strategy == "" {
		q.Strategy = string(domain.StrategyPosterior)
	}

	strategy, err := domain.ParseStrategy(q.Strategy)
	if err != nil {
		return lotto.RecommendRequest{}, err
	}

	scope, err := q.scope()
	if err != nil {
		return lotto.RecommendRequest{}, err
	}

	return lotto.RecommendRequest{
		Game:     domain.GameID(q.Game),
		Scope:    scope,
		Strategy: strategy,
	}, nil
}

func (h *LottoHandler) bind(c echo.Context, q any) error {
	if err := c.Bind(q); err != nil {
		return err
	}
	return h.validate.Struct(q)
}

func (h *LottoHandler) fail(c echo.Context, msg string, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownGame),
		errors.Is(err, domain.ErrUnknownScope),
		errors.Is(err, domain.ErrUnknownStrategy),
		errors.Is(err, domain.ErrUnknownPool):
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	logger.Error(msg, "error", err)
	return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
}

func (q *ScopeQuery) defaults(c echo.Context) {
	if q.Scope == "" {
		q.Scope = string(domain.ScopeAll)
	}
	if c.QueryParam("n") == "" {
		q.N = defaultRecentN
	}
}

func (q ScopeQuery) scope() (domain.Scope, error) {
	kind, err := domain.ParseScopeKind(q.Scope)
	if err != nil {
		return domain.Scope{}, err
	}

	s := domain.Scope{Kind: kind}
	switch s.Kind {
	case domain.ScopeYear:
		s.Year = q.Year
	case domain.ScopeRecent:
		s.RecentN = q.N
	}
	return s, nil
}
