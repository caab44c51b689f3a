package pq_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/pq"
)

// BenchmarkQueue_PushPop measures a full fill-then-drain cycle of 800 items,
// the size of the reference 20×40 board.
func BenchmarkQueue_PushPop(b *testing.B) {
	const n = 800
	r := rand.New(rand.NewSource(1))
	values := make([]int, n)
	for i := range values {
		values[i] = r.Intn(n)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pq.NewWithCapacity(func(a, b int) int { return a - b }, n)
		for _, v := range values {
			q.Push(v)
		}
		for !q.IsEmpty() {
			q.Pop()
		}
	}
}
