package utils

/*
	PartitionMap divides a cell index range into ParallelDegree contiguous
	buckets with a maximum imbalance of one cell, so the sweep goroutines
	stay load balanced without work stealing.
*/
type PartitionMap struct {
	MaxIndex       int
	ParallelDegree int
	Partitions     [][2]int // begin and end index per bucket
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

// GetBucketDimension is the item count of one bucket; -1 addresses the whole
// range.
func (pm *PartitionMap) GetBucketDimension(bn int) (kMax int) {
	if bn == -1 {
		kMax = pm.MaxIndex
		return
	}
	k1, k2 := pm.GetBucketRange(bn)
	kMax = k2 - k1
	return
}

// split1D hands the first (MaxIndex mod ParallelDegree) buckets one extra
// item each.
func (pm *PartitionMap) split1D(bucketNum int) (bucket [2]int) {
	var (
		nPer      = pm.MaxIndex / pm.ParallelDegree
		remainder = pm.MaxIndex % pm.ParallelDegree
		extra     int
	)
	if bucketNum < remainder {
		bucket[0] = bucketNum * (nPer + 1)
		extra = 1
	} else {
		bucket[0] = remainder*(nPer+1) + (bucketNum-remainder)*nPer
	}
	bucket[1] = bucket[0] + nPer + extra
	return
}
