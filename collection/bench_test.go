// Package collection_test provides benchmarks for the collection solvers on
// the reference air-duct network.
package collection_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/hydronet/collection"
)

// sinkF defeats dead-code elimination.
var sinkF float64

func BenchmarkSeries_MassFlowFromPressureChange(b *testing.B) {
	for _, n := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			s := mustSeries(b, n)
			target, err := s.PressureChange(0.1)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				q, err := s.MassFlowFromPressureChange(target)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = q
			}
		})
	}
}

func BenchmarkParallel_PressureChange(b *testing.B) {
	for _, n := range []int{2, 10, 50} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			p, err := collection.NewParallel(components(airPipe(), n))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				dp, err := p.PressureChange(0.1 * float64(n))
				if err != nil {
					b.Fatal(err)
				}
				sinkF = dp
			}
		})
	}
}

func BenchmarkSuper_PressureChange(b *testing.B) {
	members := make([]collection.Collection, 3)
	for i := range members {
		members[i] = mustSeries(b, 10)
	}
	sup, err := collection.NewSuper(collection.ArrangementParallel, members)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dp, err := sup.PressureChange(0.3)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = dp
	}
}
