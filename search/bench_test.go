package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// BenchmarkSearch runs every algorithm on the reference 20×40 board with
// 26% random walls and no step delay.
func BenchmarkSearch(b *testing.B) {
	g, err := grid.New(20, 40)
	if err != nil {
		b.Fatal(err)
	}
	g.Randomize(rand.New(rand.NewSource(3)), 0.26)

	for _, a := range search.Algorithms() {
		b.Run(a.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = search.Search(a, g, g.Start(), g.Goal())
			}
		})
	}
}
