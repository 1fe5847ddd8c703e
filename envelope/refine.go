package envelope

import (
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/tinflex/density"
	"github.com/katalvlaran/tinflex/kahan"
	"github.com/katalvlaran/tinflex/transform"
)

// Build constructs an envelope for the log-density d over the partition
// points, with transform parameter cs[i] on [points[i], points[i+1]].
//
// Algorithm:
//  1. Validate inputs (see errors.go); nothing is evaluated on failure.
//  2. Seed: evaluate d once per finite breakpoint, build one interval per
//     consecutive pair, and accumulate hat/squeeze areas with compensated
//     sums.
//  3. Refine: while H/Q > Rho and budgets remain, split every interval
//     whose hat-squeeze gap exceeds 0.99 times the floor-rounded average
//     gap.
//  4. Finalize into an ordered list of Segments.
//
// Running out of budget is not an error; see Envelope.Reason.
//
// Complexity: O(k) density evaluations and area computations, where k is
// the final number of intervals; each pass is O(live intervals).
func Build(d density.Density, cs, points []float64, opts Options) (*Envelope, error) {
	if err := validate(d, cs, points, opts); err != nil {
		return nil, err
	}

	r := newRefiner(d, opts, len(cs))
	if err := r.seed(cs, points); err != nil {
		return nil, err
	}
	reason, err := r.refine()
	if err != nil {
		return nil, err
	}

	return r.finalize(reason), nil
}

// validate checks every precondition before any work is done.
func validate(d density.Density, cs, points []float64, opts Options) error {
	if err := d.Validate(); err != nil {
		return errors.Wrapf(ErrBadDensity, "%v", err)
	}
	if math.IsNaN(opts.Rho) || opts.Rho < 1 {
		return errors.Wrapf(ErrBadOption, "rho=%g", opts.Rho)
	}
	if opts.MaxIntervals < 1 || opts.MaxIterations < 0 {
		return errors.Wrapf(ErrBadOption, "max intervals=%d, max iterations=%d", opts.MaxIntervals, opts.MaxIterations)
	}

	n := len(points)
	if n < 2 {
		return ErrTooFewPoints
	}
	for i, x := range points {
		if math.IsNaN(x) || (math.IsInf(x, 0) && i > 0 && i < n-1) {
			return errors.Wrapf(ErrNonFinitePoint, "points[%d]=%g", i, x)
		}
	}
	if len(cs) != n-1 {
		return errors.Wrapf(ErrLengthMismatch, "%d parameters for %d breakpoints", len(cs), n)
	}
	for i, c := range cs {
		if !transform.Valid(c) {
			return errors.Wrapf(ErrBadParameter, "cs[%d]=%g", i, c)
		}
	}
	if math.IsInf(points[0], 0) && !transform.TailIntegrable(cs[0]) {
		return errors.Wrapf(ErrTailParameter, "left end %g with c=%g", points[0], cs[0])
	}
	if math.IsInf(points[n-1], 0) && !transform.TailIntegrable(cs[n-2]) {
		return errors.Wrapf(ErrTailParameter, "right end %g with c=%g", points[n-1], cs[n-2])
	}

	return nil
}

// splitThreshold scales the average gap so that pieces sitting exactly on
// the average (a single piece, or a mirror-symmetric pair) still split.
// It is stricter than floor rounding of the average on purpose.
const splitThreshold = 0.99

// refiner owns the interval list and both running totals for one Build.
type refiner struct {
	d    density.Density
	opts Options
	log  *zap.Logger

	list    *intervalList
	hatSum  kahan.Sum
	sqSum   kahan.Sum
	passes  int
	skipped int // pieces selected for splitting that had no room left
}

func newRefiner(d density.Density, opts Options, pieces int) *refiner {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	// clamp before adding: MaxIntervals may be math.MaxInt
	capacity := min(opts.MaxIntervals, 4*DefaultMaxIntervals) + pieces

	return &refiner{
		d:    d,
		opts: opts,
		log:  log,
		list: newIntervalList(capacity),
	}
}

// rawPoint is the untransformed density triple at a breakpoint.
type rawPoint struct {
	f0, f1, f2 float64
	unbounded  bool
}

func (p rawPoint) transformed(c float64) transform.Point {
	if p.unbounded {
		return transform.Unbounded(c)
	}
	return transform.Apply(c, p.f0, p.f1, p.f2)
}

// seed builds one interval per breakpoint pair. Each breakpoint is
// evaluated once and shared by the two pieces that meet there.
func (r *refiner) seed(cs, points []float64) error {
	raw := make([]rawPoint, len(points))
	for i, x := range points {
		if math.IsInf(x, 0) {
			raw[i] = rawPoint{unbounded: true}
			continue
		}
		f0, f1, f2 := r.d.Eval(x)
		raw[i] = rawPoint{f0: f0, f1: f1, f2: f2}
	}

	for i, c := range cs {
		iv := Interval{
			Lx: points[i], Rx: points[i+1], C: c,
			Left:  raw[i].transformed(c),
			Right: raw[i+1].transformed(c),
		}
		if err := evaluate(&iv); err != nil {
			return errors.Wrapf(err, "seed piece %d", i)
		}
		r.hatSum.Add(iv.HatArea)
		r.sqSum.Add(iv.SqueezeArea)
		r.list.PushBack(iv)
	}

	r.log.Debug("envelope seeded",
		zap.Int("intervals", r.list.Len()),
		zap.Float64("hat", r.hatSum.Total()),
		zap.Float64("squeeze", r.sqSum.Total()))

	return nil
}

// converged reports whether the current totals meet Rho.
func (r *refiner) converged() bool {
	return ratio(r.hatSum.Total(), r.sqSum.Total()) <= r.opts.Rho
}

// refine runs passes until convergence or a budget stops it.
func (r *refiner) refine() (Reason, error) {
	for {
		switch {
		case r.converged():
			return Converged, nil
		case r.passes >= r.opts.MaxIterations:
			return IterationBudget, nil
		case r.list.Len() >= r.opts.MaxIntervals:
			return IntervalBudget, nil
		}

		splits, _, err := r.step()
		if err != nil {
			return 0, err
		}
		r.passes++
		if splits == 0 {
			return Stalled, nil
		}
	}
}

// step performs one refinement pass unless the target ratio is already
// met, in which case it does nothing and reports converged.
func (r *refiner) step() (splits int, converged bool, err error) {
	h, q := r.hatSum.Total(), r.sqSum.Total()
	if ratio(h, q) <= r.opts.Rho {
		return 0, true, nil
	}

	avg := splitThreshold * kahan.QuoFloor(kahan.DiffFloor(h, q), r.list.Len())
	for cur := r.list.Front(); cur != nilHandle; {
		if !(r.list.At(cur).gap() > avg) {
			cur = r.list.Next(cur)
			continue
		}
		right, ok, err := r.split(cur)
		if err != nil {
			return splits, false, err
		}
		if !ok {
			r.skipped++
			cur = r.list.Next(cur)
			continue
		}
		splits++
		// the new right half is not revisited in this pass
		cur = r.list.Next(right)
	}

	r.log.Debug("refinement pass",
		zap.Int("pass", r.passes+1),
		zap.Int("splits", splits),
		zap.Int("intervals", r.list.Len()),
		zap.Float64("avg_gap", avg),
		zap.Float64("hat", r.hatSum.Total()),
		zap.Float64("squeeze", r.sqSum.Total()))

	return splits, false, nil
}

// split cuts the interval at h in two: h keeps [lx, mid] and a new
// interval [mid, rx] is linked right after it. Returns the new handle, or
// ok == false when the piece is too narrow to split.
func (r *refiner) split(h int) (right int, ok bool, err error) {
	iv := r.list.At(h)
	mid, ok, err := splitPoint(iv.Lx, iv.Rx)
	if err != nil {
		return nilHandle, false, errors.Wrapf(err, "split [%g, %g]", iv.Lx, iv.Rx)
	}
	if !ok {
		return nilHandle, false, nil
	}

	r.hatSum.Sub(iv.HatArea)
	r.sqSum.Sub(iv.SqueezeArea)

	f0, f1, f2 := r.d.Eval(mid)
	tm := transform.Apply(iv.C, f0, f1, f2)

	next := Interval{Lx: mid, Rx: iv.Rx, C: iv.C, Left: tm, Right: iv.Right}
	iv.Rx, iv.Right = mid, tm

	if err = evaluate(iv); err != nil {
		return nilHandle, false, errors.Wrap(err, "left half")
	}
	if err = evaluate(&next); err != nil {
		return nilHandle, false, errors.Wrap(err, "right half")
	}

	r.hatSum.Add(iv.HatArea)
	r.sqSum.Add(iv.SqueezeArea)
	r.hatSum.Add(next.HatArea)
	r.sqSum.Add(next.SqueezeArea)

	// iv is dead past this point: the arena may grow
	return r.list.InsertAfter(h, next), true, nil
}

// finalize projects the live intervals onto the output records.
func (r *refiner) finalize(reason Reason) *Envelope {
	segs := make([]Segment, 0, r.list.Len())
	r.list.Each(func(iv *Interval) {
		segs = append(segs, iv.segment())
	})

	env := &Envelope{
		Segments:    segs,
		HatArea:     r.hatSum.Total(),
		SqueezeArea: r.sqSum.Total(),
		Iterations:  r.passes,
		Reason:      reason,
		Rho:         r.opts.Rho,
	}

	r.log.Info("envelope built",
		zap.Stringer("reason", reason),
		zap.Int("iterations", env.Iterations),
		zap.Int("intervals", env.Len()),
		zap.Int("unsplittable", r.skipped),
		zap.Float64("ratio", env.Ratio()))

	return env
}
