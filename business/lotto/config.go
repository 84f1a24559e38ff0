package lotto

// Config holds the scoring heuristics. The values are tunables carried over for
// behavioural parity, not derived statistics.
type Config struct {
	// baseline trial counts fed to the strategies as "total observations"
	BaselineAll          float64
	BaselineYear         float64
	BaselineRecentFactor float64

	// special-pool baselines for the full history and for narrower scopes
	SpecialBaselineAll    float64
	SpecialBaselineNarrow float64

	// posterior perturbation spread; narrower scopes get a damped spread
	SpreadAll    float64
	SpreadNarrow float64

	Epsilon float64
}

const (
	defaultBaselineAll           = 4000
	defaultBaselineYear          = 300
	defaultBaselineRecentFactor  = 10
	defaultSpecialBaselineAll    = 1000
	defaultSpecialBaselineNarrow = 80
	defaultSpreadAll             = 3.0
	defaultSpreadNarrow          = 2.5
	defaultEpsilon               = 0.2
)

func DefaultConfig() Config {
	return Config{
		BaselineAll:          defaultBaselineAll,
		BaselineYear:         defaultBaselineYear,
		BaselineRecentFactor: defaultBaselineRecentFactor,

		SpecialBaselineAll:    defaultSpecialBaselineAll,
		SpecialBaselineNarrow: defaultSpecialBaselineNarrow,

		SpreadAll:    defaultSpreadAll,
		SpreadNarrow: defaultSpreadNarrow,

		Epsilon: defaultEpsilon,
	}
}

// Overrides carries externally supplied tunables. Zero baselines and spreads keep
// the base value; Epsilon applies whenever it is non-nil, so 0 disables exploration.
type Overrides struct {
	BaselineAll           float64
	BaselineYear          float64
	BaselineRecentFactor  float64
	SpecialBaselineAll    float64
	SpecialBaselineNarrow float64
	SpreadAll             float64
	SpreadNarrow          float64
	Epsilon               *float64
}

// Merge returns base with the overrides applied on top.
func Merge(base Config, override Overrides) Config {
	cfg := base

	set := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	set(&cfg.BaselineAll, override.BaselineAll)
	set(&cfg.BaselineYear, override.BaselineYear)
	set(&cfg.BaselineRecentFactor, override.BaselineRecentFactor)
	set(&cfg.SpecialBaselineAll, override.SpecialBaselineAll)
	set(&cfg.SpecialBaselineNarrow, override.SpecialBaselineNarrow)
	set(&cfg.SpreadAll, override.SpreadAll)
	set(&cfg.SpreadNarrow, override.SpreadNarrow)
	if override.Epsilon != nil {
		cfg.Epsilon = *override.Epsilon
	}

	return cfg
}
