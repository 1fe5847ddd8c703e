package envelope_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tinflex/density"
	"github.com/katalvlaran/tinflex/envelope"
)

// ExampleBuild refines an envelope for the standard normal density.
func ExampleBuild() {
	d := density.Normal(0, 1)
	env, err := envelope.Build(d,
		[]float64{1.5, 1.5, 1.5, 1.5},
		[]float64{-3, -1.5, 0, 1.5, 3},
		envelope.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(env.Reason, env.Ratio() <= 1.1, env.Len() > 4)
	// Output:
	// converged true true
}

// ExampleArcMean shows the split point on a bounded and an unbounded piece.
func ExampleArcMean() {
	a, _ := envelope.ArcMean(-1, 1, true)
	b, _ := envelope.ArcMean(1, math.Inf(1), true)
	fmt.Println(a, b)
	// Output:
	// 0 2
}
