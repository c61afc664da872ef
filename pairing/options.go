package pairing

// Option configures encoding and optimization.
type Option func(*config)

type config struct {
	strict      bool // fail on inconsistent data
	parallelism int  // number of concurrent trials
	minSize     int
	maxSize     int
}

func makeConfig(opts []Option) config {
	cfg := config{
		parallelism: 1,
		minSize:     MinSegmentSize,
		maxSize:     MaxSegmentSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Strict makes inconsistencies between mirror and paired bracket fatal.
// Without it they are collected and logged, and encoding continues with the
// mirror difference.
func Strict(b bool) Option {
	return func(cfg *config) {
		cfg.strict = b
	}
}

// Parallelism sets the number of segment sizes tried concurrently during
// optimization. Values < 2 search sequentially.
func Parallelism(n int) Option {
	return func(cfg *config) {
		cfg.parallelism = n
	}
}

// SegmentSizes restricts the search interval of the optimizer. Both bounds
// are clamped to [MinSegmentSize…MaxSegmentSize].
func SegmentSizes(lo, hi int) Option {
	return func(cfg *config) {
		lo, hi = ClampSegmentSize(lo), ClampSegmentSize(hi)
		if lo > hi {
			lo, hi = hi, lo
		}
		cfg.minSize, cfg.maxSize = lo, hi
	}
}
