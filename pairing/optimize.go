package pairing

import (
	"context"
	"math"

	"github.com/npillmayer/bidimirror"
	"golang.org/x/sync/errgroup"
)

// Optimize searches for the segment size which produces the smallest
// encoding of src. It returns the segment size and the total number of
// bytes of the encoding.
//
// Every size within the search interval (see SegmentSizes) is tried. Only a
// strictly smaller total replaces the best size found so far, thus the
// smallest segment size wins a tie. With option Parallelism trials run
// concurrently, but are compared in ascending order of segment size, too.
func Optimize(src bidimirror.PropertySource, opts ...Option) (int, int, error) {
	cfg := makeConfig(opts)
	var totals []int
	var err error
	if cfg.parallelism > 1 {
		totals, err = runTrialsParallel(src, cfg)
	} else {
		totals, err = runTrials(src, cfg)
	}
	if err != nil {
		T().Errorf("pairing: optimization failed: %v", err)
		return 0, 0, err
	}
	best, minTotal := 0, math.MaxInt32
	for i, total := range totals {
		if total < minTotal {
			best, minTotal = cfg.minSize+i, total
		}
	}
	T().Infof("pairing: best segment size is %d with %d bytes", best, minTotal)
	return best, minTotal, nil
}

func runTrials(src bidimirror.PropertySource, cfg config) ([]int, error) {
	totals := make([]int, cfg.maxSize-cfg.minSize+1)
	for i := range totals {
		enc, err := encode(src, cfg.minSize+i, cfg)
		if err != nil {
			return nil, err
		}
		totals[i] = enc.Size()
		T().Debugf("pairing: segment size %d → %d bytes", cfg.minSize+i, totals[i])
	}
	return totals, nil
}

// runTrialsParallel runs trials concurrently. Each trial writes only to its
// own slot of the result slice.
func runTrialsParallel(src bidimirror.PropertySource, cfg config) ([]int, error) {
	totals := make([]int, cfg.maxSize-cfg.minSize+1)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.parallelism)
	for i := range totals {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			enc, err := encode(src, cfg.minSize+i, cfg)
			if err != nil {
				return err
			}
			totals[i] = enc.Size()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return totals, nil
}

// Build finds the best segment size for src and encodes src with it.
func Build(src bidimirror.PropertySource, opts ...Option) (*Encoding, error) {
	size, _, err := Optimize(src, opts...)
	if err != nil {
		return nil, err
	}
	enc, err := Encode(src, size, opts...)
	if err != nil {
		return nil, err
	}
	T().Infof("pairing: %s", enc.Stats())
	return enc, nil
}
