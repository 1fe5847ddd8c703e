package kahan_test

import (
	"fmt"

	"github.com/katalvlaran/tinflex/kahan"
)

// ExampleSum shows that small terms survive next to a large one.
func ExampleSum() {
	var s kahan.Sum
	s.Add(1)
	for i := 0; i < 10; i++ {
		s.Add(1e-16)
	}
	naive := 1.0
	for i := 0; i < 10; i++ {
		naive += 1e-16
	}
	fmt.Println(s.Total() > 1, naive > 1)
	// Output:
	// true false
}
