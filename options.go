package jsonrepair

// defaultMaxDepth is the nesting limit applied when no WithMaxDepth option
// is given, and the value restored whenever a non-positive depth is
// requested (mirrors the reference parsers, which reset maxDepth<=0 to
// this same default rather than disabling the check).
const defaultMaxDepth = 100

type config struct {
	maxDepth int
}

func newConfig(opts []Option) config {
	cfg := config{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxDepth <= 0 {
		cfg.maxDepth = defaultMaxDepth
	}
	return cfg
}

// Option configures a call to Repair or RepairUnits.
type Option func(*config)

// WithMaxDepth bounds how deeply nested objects/arrays may be before
// Repair gives up with ErrMaxDepthExceeded. n<=0 restores the default of
// 100, matching the reference parsers' reset rule.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}
