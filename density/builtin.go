package density

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Normal returns the log-density of N(mu, sigma²).
func Normal(mu, sigma float64) Density {
	dist := distuv.Normal{Mu: mu, Sigma: sigma}
	inv := 1 / (sigma * sigma)

	return Density{
		LogPDF: dist.LogProb,
		Deriv1: func(x float64) float64 { return -(x - mu) * inv },
		Deriv2: func(float64) float64 { return -inv },
	}
}

// Cauchy returns the log-density of the Cauchy distribution with the given
// location and scale (Student's t with one degree of freedom).
func Cauchy(loc, scale float64) Density {
	dist := distuv.StudentsT{Mu: loc, Sigma: scale, Nu: 1}
	s2 := scale * scale

	return Density{
		LogPDF: dist.LogProb,
		Deriv1: func(x float64) float64 {
			z := x - loc
			return -2 * z / (s2 + z*z)
		},
		Deriv2: func(x float64) float64 {
			z := x - loc
			q := s2 + z*z
			return -2 * (s2 - z*z) / (q * q)
		},
	}
}

// Polynomial returns the log-density log f(x) = Σ coef[k]·x^k.
// Coefficients are in ascending order of degree.
func Polynomial(coef ...float64) Density {
	c := append([]float64(nil), coef...)
	d1 := derive(c)
	d2 := derive(d1)

	return Density{
		LogPDF: horner(c),
		Deriv1: horner(d1),
		Deriv2: horner(d2),
	}
}

// Quartic returns log f(x) = -x⁴ + 5x² - 4, a bimodal density with modes
// near ±1.58 and a deep valley at zero.
func Quartic() Density {
	return Polynomial(-4, 0, 5, 0, -1)
}

// horner evaluates a polynomial with ascending coefficients.
func horner(c []float64) Func {
	return func(x float64) float64 {
		if math.IsInf(x, 0) && len(c) > 1 {
			// leading term dominates; avoids Inf-Inf
			return leading(c, x)
		}
		var y float64
		for k := len(c) - 1; k >= 0; k-- {
			y = y*x + c[k]
		}
		return y
	}
}

// leading returns the limit of the polynomial at x = ±Inf.
func leading(c []float64, x float64) float64 {
	for k := len(c) - 1; k >= 0; k-- {
		if c[k] == 0 {
			continue
		}
		if k == 0 {
			return c[0]
		}
		sign := math.Copysign(1, c[k])
		if x < 0 && k%2 == 1 {
			sign = -sign
		}
		return math.Inf(int(sign))
	}

	return 0
}

// derive returns the coefficients of the derivative.
func derive(c []float64) []float64 {
	if len(c) <= 1 {
		return []float64{0}
	}
	d := make([]float64, len(c)-1)
	for k := 1; k < len(c); k++ {
		d[k-1] = float64(k) * c[k]
	}

	return d
}
