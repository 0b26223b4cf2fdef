package utils

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Test PartitionMap
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				k1, k2 := pm.GetBucketRange(np)
				histo[k2-k1]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		assert.Equal(t, 287, getTotal(getHisto(287, 32)))
		for n := 64; n < 2000; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 32)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Degenerate partitions
		pm := NewPartitionMap(0, 5)
		assert.Equal(t, 1, pm.ParallelDegree)
		assert.Equal(t, [2]int{0, 5}, pm.Partitions[0])
		pm = NewPartitionMap(1, 0)
		assert.Equal(t, [2]int{0, 0}, pm.Partitions[0])
	}
}

func TestLimitParallelDegree(t *testing.T) {
	assert.Equal(t, 4, LimitParallelDegree(4, 100))
	assert.Equal(t, 3, LimitParallelDegree(4, 3))
	assert.Equal(t, 1, LimitParallelDegree(4, 0))
	assert.Equal(t, 1, LimitParallelDegree(1, 100))
	assert.GreaterOrEqual(t, LimitParallelDegree(0, 1000), 1)
}

func TestPartitionApply(t *testing.T) {
	for _, NP := range []int{1, 2, 5, 16} {
		var (
			maxIndex = 37
			base     = 1
			hits     = make([]int, maxIndex+base)
			mu       sync.Mutex
		)
		pm := NewPartitionMap(NP, maxIndex)
		pm.Apply(base, func(kMin, kMax int) {
			mu.Lock()
			defer mu.Unlock()
			for k := kMin; k < kMax; k++ {
				hits[k]++
			}
		})
		assert.Equal(t, 0, hits[0])
		for k := base; k < maxIndex+base; k++ {
			assert.Equal(t, 1, hits[k])
		}
	}
}
