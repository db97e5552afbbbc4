package perceptron_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlperceptron/perceptron"
)

// separable builds n samples in d dimensions labeled by the sign of the
// first feature, keeping a 0.05 gap around the boundary.
func separable(n, d int, seed int64) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	x := make([][]float64, 0, n)
	y := make([]float64, 0, n)
	for len(x) < n {
		s := make([]float64, d)
		for j := range s {
			s[j] = rng.Float64()*2 - 1
		}
		if s[0] > -0.05 && s[0] < 0.05 {
			continue
		}
		x = append(x, s)
		if s[0] > 0 {
			y = append(y, 1)
		} else {
			y = append(y, -1)
		}
	}

	return x, y
}

// BenchmarkFit_Separable measures training to convergence on 1000×16 data.
func BenchmarkFit_Separable(b *testing.B) {
	x, y := separable(1000, 16, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = perceptron.New().Fit(x, y, 1000)
	}
}

// BenchmarkPredict measures one batched margin pass on 10000×32 data.
func BenchmarkPredict(b *testing.B) {
	x, y := separable(10000, 32, 2)
	p := perceptron.New()
	if _, err := p.Fit(x, y, 5); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(x) * len(x[0]) * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Predict(0)
	}
}
