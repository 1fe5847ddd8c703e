package envelope_test

import (
	"testing"

	"github.com/katalvlaran/tinflex/density"
	"github.com/katalvlaran/tinflex/envelope"
)

func benchmarkPreset(b *testing.B, name string, rho float64) {
	p, err := density.Lookup(name)
	if err != nil {
		b.Fatal(err)
	}
	opts := envelope.DefaultOptions()
	opts.Rho = rho
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := envelope.Build(p.Density, p.C, p.Points, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuild_Normal measures the default refinement of the normal preset.
func BenchmarkBuild_Normal(b *testing.B) { benchmarkPreset(b, "normal", envelope.DefaultRho) }

// BenchmarkBuild_QuarticTight pushes the quartic preset to a tight ratio.
func BenchmarkBuild_QuarticTight(b *testing.B) { benchmarkPreset(b, "quartic", 1.001) }

// BenchmarkBuild_Cauchy measures refinement over the whole real line.
func BenchmarkBuild_Cauchy(b *testing.B) { benchmarkPreset(b, "cauchy", envelope.DefaultRho) }
