package circular

import (
	"fmt"
	"testing"
)

func benchmarkPushBack(b *testing.B, capacity int) {
	buf, err := New[int](capacity)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.PushBack(i)
	}
}

func BenchmarkPushBack(b *testing.B) {
	// Power-of-two capacities use the mask fast path for wraparound.
	for _, capacity := range []int{100, 128, 1000, 1024} {
		b.Run(fmt.Sprintf("capacity_%d", capacity), func(b *testing.B) {
			benchmarkPushBack(b, capacity)
		})
	}
}

func BenchmarkPushBackDiscard(b *testing.B) {
	buf, err := New[int](1000, WithPolicy[int](Discard))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.PushBack(i)
	}
}

func BenchmarkPushTakeCycle(b *testing.B) {
	for _, capacity := range []int{100, 1024} {
		b.Run(fmt.Sprintf("capacity_%d", capacity), func(b *testing.B) {
			buf, err := New[int](capacity)
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf.PushBack(i)
				if buf.Len() >= capacity/2 {
					buf.TakeFront()
				}
			}
		})
	}
}

func BenchmarkAlternatingEnds(b *testing.B) {
	buf, err := New[int](1024)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			buf.PushBack(i)
		} else {
			buf.PushFront(i)
		}
	}
}

func BenchmarkEmbeddedVsHeap(b *testing.B) {
	b.Run("embedded", func(b *testing.B) {
		buf, err := New[int](64)
		if err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			buf.PushBack(i)
		}
	})
	b.Run("heap", func(b *testing.B) {
		buf, err := New[int](64, WithInlineThreshold[int](0))
		if err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			buf.PushBack(i)
		}
	})
}

func BenchmarkGet(b *testing.B) {
	buf, err := New[int](1000)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1500; i++ {
		buf.PushBack(i) // wrapped so Get crosses the seam
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Get(i % 1000)
	}
}

func BenchmarkIterateAll(b *testing.B) {
	buf, err := New[int](1000)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1500; i++ {
		buf.PushBack(i)
	}

	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		for _, v := range buf.All() {
			sum += v
		}
	}
	_ = sum
}

func BenchmarkIterateCursor(b *testing.B) {
	buf, err := New[int](1000)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1500; i++ {
		buf.PushBack(i)
	}

	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		for it := buf.Begin(); it.Valid(); it = it.Next() {
			sum += it.Value()
		}
	}
	_ = sum
}
