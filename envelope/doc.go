// Package envelope builds adaptive hat/squeeze envelopes for transformed
// density rejection.
//
// 🚀 What does it do?
//
//	Given a log-density (with two derivatives), an initial partition of
//	the domain and a transform parameter c per piece, Build repeatedly
//	splits the pieces whose hat-minus-squeeze area is above average until
//	the ratio of total hat area to total squeeze area drops to Rho, or a
//	budget runs out. The result is an ordered, gap-free list of segments,
//	each carrying everything a rejection sampler needs.
//
// ✨ Key pieces:
//   - ArcMean: split point that behaves on unbounded domains.
//   - Interval evaluation: hat/squeeze construction and area checks.
//   - An index-stable interval list: O(1) insertion next to a piece
//     that is being split in place.
//   - Compensated running totals (package kahan), so thousands of
//     add/remove updates never drift into the termination test.
//
// ⚙️ Usage:
//
//	d := density.Normal(0, 1)
//	env, err := envelope.Build(d,
//	    []float64{1.5, 1.5, 1.5, 1.5},
//	    []float64{-3, -1.5, 0, 1.5, 3},
//	    envelope.DefaultOptions())
//	if err != nil { ... }
//	fmt.Println(env.Ratio(), env.Len(), env.Reason)
//
// Running out of budget is not an error: callers must be prepared for an
// envelope whose Ratio exceeds Rho, and can inspect Reason to find out.
//
// Build is strictly sequential and deterministic; an Envelope is
// immutable after return and safe for concurrent readers.
package envelope
