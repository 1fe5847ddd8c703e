// Package transform implements the T_c family of monotone transformations
// used by transformed density rejection.
//
//	T_0(y) = log(y)
//	T_c(y) = sign(c)·y^c      (c ≠ 0)
//
// Every T_c is strictly increasing on (0, ∞). A density f is T_c-concave
// on an interval when T_c(f) is concave there; piecewise-linear bounds on
// T_c(f) then map back to valid hat and squeeze functions for f.
//
// The envelope builder works on log-densities, so Apply takes
// (log f, (log f)', (log f)'') and returns the transformed value together
// with its first two derivatives.
package transform
