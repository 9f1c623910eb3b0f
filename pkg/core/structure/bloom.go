package structure

import (
	"hash/fnv"
	"math"
	"sync"
)

// TagFilter is a Bloom filter over tag strings. MayContain never returns
// false for a tag that was added.
type TagFilter struct {
	bitset []bool
	k      uint
	m      uint
	count  uint
	lock   sync.RWMutex
}

func NewTagFilter(n uint, p float64) *TagFilter {
	if n == 0 {
		n = 1
	}
	// 理论最佳公式
	// m = - (n * ln(p)) / (ln(2)^2)
	// k = (m / n) * ln(2)
	m := uint(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
	k := uint(math.Ceil((float64(m) / float64(n)) * math.Ln2))
	if m == 0 {
		m = 1
	}
	if k == 0 {
		k = 1
	}

	return &TagFilter{
		bitset: make([]bool, m),
		k:      k,
		m:      m,
	}
}

func (tf *TagFilter) Add(tag string) {
	tf.lock.Lock()
	defer tf.lock.Unlock()

	h1, h2 := hashes(tag)
	for i := uint(0); i < tf.k; i++ {
		pos := (h1 + uint32(i)*h2) % uint32(tf.m)
		tf.bitset[pos] = true
	}
	tf.count++
}

func (tf *TagFilter) MayContain(tag string) bool {
	tf.lock.RLock()
	defer tf.lock.RUnlock()

	h1, h2 := hashes(tag)
	for i := uint(0); i < tf.k; i++ {
		pos := (h1 + uint32(i)*h2) % uint32(tf.m)
		if !tf.bitset[pos] {
			return false
		}
	}
	return true
}

// hashes derives the two base hashes for double hashing from one 64-bit
// FNV-1a sum. h2 is forced odd so probes never collapse onto h1.
func hashes(tag string) (uint32, uint32) {
	h := fnv.New64a()
	h.Write([]byte(tag))
	sum := h.Sum64()
	return uint32(sum), uint32(sum>>32) | 1
}

func (tf *TagFilter) Stats() map[string]interface{} {
	tf.lock.RLock()
	defer tf.lock.RUnlock()
	return map[string]interface{}{
		"filter_bits_size": tf.m,
		"filter_hashes":    tf.k,
		"filter_count":     tf.count,
	}
}
