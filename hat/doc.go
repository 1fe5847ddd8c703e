// Package hat builds the per-interval hat (upper bound) and squeeze (lower
// bound) of a transformed density, and integrates them.
//
// 🚀 How it works
//
//	On an interval [l, r] the transformed density g = T_c(f) is bounded
//	by straight lines built from the endpoint data only: the two tangents
//	and the secant. Which line bounds from above and which from below
//	depends on the curvature pattern of g, read off the signs of g'' at
//	both ends (at most one inflection point per interval is assumed):
//
//	  concave          hat = tangent          squeeze = secant
//	  convex           hat = secant           squeeze = tangent
//	  concave→convex   hat = left tangent if g'(l) ≥ R, else secant
//	                   squeeze = right tangent if g'(r) ≥ R, else secant
//	  convex→concave   mirror image of the above
//	  unbounded tail   hat = tangent at the finite end, no squeeze;
//	                   needs c ≤ 0, g'' ≤ 0 and g decaying outwards
//
//	where R is the secant slope. Mapping a line back with T_c⁻¹ gives the
//	actual hat or squeeze of f, and Area integrates it in closed form.
//
// Data that contradicts its own sign pattern (possible on coarse
// intervals hiding several inflection points) is classified Irregular:
// such an interval gets the largest candidate as hat and no squeeze, so
// that refinement splits it early.
package hat
