// Package density describes target densities as a capability set of pure
// numeric functions, and ships a few ready-made presets.
//
// A Density is given on the log scale: LogPDF(x) = log f(x) for an
// unnormalized density f, together with its first and second
// derivatives. The envelope builder never needs anything else.
//
// Presets:
//
//	normal   standard normal, breakpoints [-3,-1.5,0,1.5,3], c = 1.5
//	quartic  log f(x) = -x⁴ + 5x² - 4 (bimodal), same breakpoints and c
//	cauchy   standard Cauchy on the whole real line, c = -0.5
//
// The normal and Cauchy log-densities come from gonum's distuv package.
package density
