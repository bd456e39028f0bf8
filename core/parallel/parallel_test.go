package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelizeCoversRange(t *testing.T) {
	tests := []struct {
		name  string
		items int
	}{
		{name: "zero items", items: 0},
		{name: "single item", items: 1},
		{name: "fewer items than cores", items: 3},
		{name: "many items", items: 10007},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make([]int32, tt.items)
			Parallelize(tt.items, func(start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&seen[i], 1)
				}
			})
			for i, n := range seen {
				if n != 1 {
					t.Fatalf("index %d visited %d times, want exactly once", i, n)
				}
			}
		})
	}
}

func TestParallelizeWithThreshold(t *testing.T) {
	var total int64
	ParallelizeWithThreshold(100, 1000, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt64(&total, int64(i))
		}
	})
	if total != 4950 {
		t.Errorf("sum = %d, want 4950", total)
	}

	total = 0
	ParallelizeWithThreshold(100, 10, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt64(&total, int64(i))
		}
	})
	if total != 4950 {
		t.Errorf("parallel sum = %d, want 4950", total)
	}
}
