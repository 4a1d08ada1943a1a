package usecase

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 256

// keyedMutex serializes work per key using a fixed set of striped locks.
// Distinct keys may share a stripe, which only costs throughput.
type keyedMutex struct {
	stripes [lockStripes]sync.Mutex
}

// Lock acquires the stripe for key and returns its unlock function.
func (m *keyedMutex) Lock(key string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	mu := &m.stripes[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock
}
