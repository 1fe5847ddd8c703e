// Package tinflex builds hat and squeeze envelopes for transformed density
// rejection sampling of univariate densities.
//
// 🚀 What is tinflex?
//
//	Given a log-density with two derivatives, an initial partition of the
//	domain and a transform parameter per piece, tinflex splits pieces
//	adaptively until the hat area exceeds the squeeze area by at most a
//	chosen ratio. The pieces come in four layers:
//		• kahan: compensated running sums and floor-rounded arithmetic
//		• transform: the T_c family and its derivatives
//		• hat: tangent/secant construction and closed-form areas per piece
//		• envelope: the refinement loop, split points and the result type
//
//	density ships a few ready-made targets (normal, bimodal quartic,
//	Cauchy), and cmd/tinflex puts everything behind a small CLI.
//
// ✨ Why tinflex?
//
//   - Handles log-concave, T-concave and mixed-curvature densities, one
//     inflection point per piece at most
//   - Unbounded domains, with the arctangent split rule behaving at ±Inf
//   - Running totals stay exact enough after thousands of splits
//   - Deterministic: same input, same envelope
//
// Layout:
//
//	kahan/            compensated summation
//	density/          density capability set and presets
//	transform/        T_c and transformed derivative triples
//	hat/              hat/squeeze lines, shapes and areas
//	envelope/         Build, ArcMean, Envelope
//	internal/config/  viper-backed settings
//	internal/report/  table, JSON and YAML output
//	cmd/tinflex/      command-line front end
//
//	go install github.com/katalvlaran/tinflex/cmd/tinflex@latest
package tinflex
