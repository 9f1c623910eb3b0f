package monitor

import (
	"testing"

	"shortlist/pkg/common"
	"shortlist/pkg/core/avl"

	"github.com/stretchr/testify/assert"
)

func TestRotationCounting(t *testing.T) {
	ws := NewWorkloadStats()
	tree := avl.New()
	tree.SetObserver(ws)

	for _, s := range []int{10, 20, 30} {
		tree.Insert(common.Record{Name: "n", Tag: "t", Score: s})
	}

	assert.Equal(t, uint64(1), ws.Rotations(avl.RightRight))
	assert.Equal(t, uint64(0), ws.Rotations(avl.LeftLeft))
	assert.Equal(t, uint64(1), ws.TotalRotations())
	assert.Equal(t, uint64(0), ws.Rotations(avl.RotationKind(-1)))
}

func TestReadWriteRatio(t *testing.T) {
	ws := NewWorkloadStats()
	assert.Equal(t, 0.0, ws.GetReadWriteRatio())

	ws.RecordSearch()
	assert.Equal(t, 100.0, ws.GetReadWriteRatio())

	ws.RecordInsert()
	ws.RecordInsert()
	ws.RecordDump()
	assert.Equal(t, 1.0, ws.GetReadWriteRatio())

	snap := ws.Snapshot()
	assert.Equal(t, uint64(2), snap["inserts"])
	assert.Equal(t, uint64(1), snap["searches"])
	assert.Equal(t, uint64(1), snap["dumps"])
}
