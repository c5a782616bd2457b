package utils

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionMap(t *testing.T) {
	{ // Buckets tile [0, MaxIndex) in order
		for _, np := range []int{1, 3, 5, 32} {
			for n := 0; n < 300; n++ {
				pm := NewPartitionMap(np, n)
				require.Len(t, pm.Partitions, np)
				next := 0
				for b := 0; b < np; b++ {
					kMin, kMax := pm.GetBucketRange(b)
					require.Equal(t, next, kMin, "np %d n %d bucket %d", np, n, b)
					require.True(t, kMax >= kMin)
					next = kMax
				}
				assert.Equal(t, n, next)
			}
		}
	}
	{ // Sizes differ by at most one, larger buckets first
		pm := NewPartitionMap(32, 287)
		sizes := make([]int, 32)
		for b := range sizes {
			kMin, kMax := pm.GetBucketRange(b)
			sizes[b] = kMax - kMin
		}
		assert.Equal(t, 9, sizes[0])
		assert.Equal(t, 8, sizes[31])
		total := 0
		for b := 1; b < 32; b++ {
			assert.True(t, sizes[b] <= sizes[b-1])
		}
		for _, sz := range sizes {
			total += sz
		}
		assert.Equal(t, 287, total)
	}
	{ // More buckets than work leaves trailing buckets empty
		pm := NewPartitionMap(4, 2)
		assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 2}, {2, 2}}, pm.Partitions)
		assert.Equal(t, pm.Partitions[3], pm.Split1D(3))
	}
	{ // Degree below one is clamped
		pm := NewPartitionMap(0, 7)
		assert.Equal(t, 1, pm.ParallelDegree)
		assert.Equal(t, [][2]int{{0, 7}}, pm.Partitions)
	}
}

func TestPartitionMapRun(t *testing.T) {
	var (
		N     = 103
		seen  = make([]int32, N)
		total atomic.Int64
	)
	pm := NewPartitionMap(ParallelDegree(6, N), N)
	pm.Run(func(bucket, kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			atomic.AddInt32(&seen[k], 1)
			total.Add(int64(k))
		}
	})
	for k := range seen {
		assert.Equal(t, int32(1), seen[k], "index %d", k)
	}
	assert.Equal(t, int64(N*(N-1)/2), total.Load())

	// Empty buckets are skipped
	pm = NewPartitionMap(8, 3)
	var calls atomic.Int32
	pm.Run(func(bucket, kMin, kMax int) { calls.Add(1) })
	assert.Equal(t, int32(3), calls.Load())
}

func TestParallelDegree(t *testing.T) {
	assert.Equal(t, 4, ParallelDegree(4, 10))
	assert.Equal(t, 3, ParallelDegree(8, 3))
	assert.Equal(t, 1, ParallelDegree(8, 0))
	assert.True(t, ParallelDegree(0, 1000) >= 1)
}
