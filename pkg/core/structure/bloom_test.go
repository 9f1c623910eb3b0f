package structure

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagFilterNoFalseNegatives(t *testing.T) {
	tf := NewTagFilter(100, 0.01)
	for i := 0; i < 100; i++ {
		tf.Add(fmt.Sprintf("tag-%d", i))
	}
	for i := 0; i < 100; i++ {
		assert.True(t, tf.MayContain(fmt.Sprintf("tag-%d", i)))
	}
}

func TestTagFilterRejectsMostUnknownTags(t *testing.T) {
	tf := NewTagFilter(100, 0.01)
	for i := 0; i < 100; i++ {
		tf.Add(fmt.Sprintf("tag-%d", i))
	}
	hits := 0
	for i := 0; i < 10000; i++ {
		if tf.MayContain(fmt.Sprintf("other-%d", i)) {
			hits++
		}
	}
	// 1% target, generous margin
	assert.Less(t, hits, 500)
}

func TestTagFilterEmpty(t *testing.T) {
	tf := NewTagFilter(0, 0.5)
	assert.False(t, tf.MayContain("Python"))
	tf.Add("")
	assert.True(t, tf.MayContain(""))

	stats := tf.Stats()
	assert.Equal(t, uint(1), stats["filter_count"])
}
