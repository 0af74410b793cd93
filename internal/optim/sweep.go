package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/hancock/internal/analysis"
	"github.com/san-kum/hancock/internal/dynamo"
	"github.com/san-kum/hancock/internal/metrics"
)

var ErrUnknownMetric = errors.New("optim: unknown metric")

// Point is the outcome of classifying 1..N in one base.
type Point struct {
	Base    int
	Cycles  int
	Other   int
	Metrics map[string]float64
}

// Sweep classifies the same range of integers across a list of bases.
type Sweep struct {
	bases   []int
	n       int
	maxIter int
	workers int
}

func NewSweep(bases []int, n, maxIter, workers int) *Sweep {
	return &Sweep{bases: bases, n: n, maxIter: maxIter, workers: max(1, workers)}
}

// BaseRange returns from..to inclusive.
func BaseRange(from, to int) ([]int, error) {
	if from > to {
		return nil, fmt.Errorf("%w: empty base range %d..%d", dynamo.ErrParameterBounds, from, to)
	}
	bases := make([]int, 0, to-from+1)
	for b := from; b <= to; b++ {
		bases = append(bases, b)
	}
	return bases, nil
}

// Run classifies every base in order. Each base gets fresh metric instances.
func (s *Sweep) Run(ctx context.Context) ([]Point, error) {
	points := make([]Point, 0, len(s.bases))
	for _, base := range s.bases {
		if err := ctx.Err(); err != nil {
			return points, err
		}

		cls, err := analysis.Classify(ctx,
			analysis.Params{N: s.n, Base: base, MaxIter: s.maxIter},
			analysis.WithWorkers(s.workers),
			analysis.WithMetrics(metrics.Defaults()...),
		)
		if err != nil {
			return points, fmt.Errorf("base %d: %w", base, err)
		}

		points = append(points, Point{
			Base:    base,
			Cycles:  cls.Table.Len(),
			Other:   cls.Counts()[analysis.Other],
			Metrics: cls.Metrics,
		})
	}
	return points, nil
}

// Search runs the sweep and returns the point with the lowest value of
// metricName, or the highest when maximize is set. Ties keep the smaller base.
func (s *Sweep) Search(ctx context.Context, metricName string, maximize bool) (Point, []Point, error) {
	points, err := s.Run(ctx)
	if err != nil {
		return Point{}, points, err
	}

	best := math.Inf(1)
	if maximize {
		best = math.Inf(-1)
	}
	var bestPoint Point
	found := false

	for _, p := range points {
		val, ok := p.Metrics[metricName]
		if !ok {
			return Point{}, points, fmt.Errorf("%w: %s", ErrUnknownMetric, metricName)
		}
		if (!maximize && val < best) || (maximize && val > best) {
			best = val
			bestPoint = p
			found = true
		}
	}

	if !found {
		return Point{}, points, fmt.Errorf("%w: no bases to search", dynamo.ErrParameterBounds)
	}
	return bestPoint, points, nil
}
