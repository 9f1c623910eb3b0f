package monitor

import (
	"sync/atomic"

	"shortlist/pkg/core/avl"
)

type WorkloadStats struct {
	InsertCount    uint64
	DumpCount      uint64
	SearchCount    uint64
	FilterSkipped  uint64
	rotationCounts [4]uint64
}

func NewWorkloadStats() *WorkloadStats {
	return &WorkloadStats{}
}

func (ws *WorkloadStats) RecordInsert() {
	atomic.AddUint64(&ws.InsertCount, 1)
}

func (ws *WorkloadStats) RecordDump() {
	atomic.AddUint64(&ws.DumpCount, 1)
}

func (ws *WorkloadStats) RecordSearch() {
	atomic.AddUint64(&ws.SearchCount, 1)
}

// RecordFilterSkip counts searches answered by the tag filter alone.
func (ws *WorkloadStats) RecordFilterSkip() {
	atomic.AddUint64(&ws.FilterSkipped, 1)
}

// RecordRotation implements avl.RotationObserver.
func (ws *WorkloadStats) RecordRotation(kind avl.RotationKind) {
	if kind < 0 || int(kind) >= len(ws.rotationCounts) {
		return
	}
	atomic.AddUint64(&ws.rotationCounts[kind], 1)
}

func (ws *WorkloadStats) Rotations(kind avl.RotationKind) uint64 {
	if kind < 0 || int(kind) >= len(ws.rotationCounts) {
		return 0
	}
	return atomic.LoadUint64(&ws.rotationCounts[kind])
}

func (ws *WorkloadStats) TotalRotations() uint64 {
	var n uint64
	for i := range ws.rotationCounts {
		n += atomic.LoadUint64(&ws.rotationCounts[i])
	}
	return n
}

// GetReadWriteRatio returns (dumps + searches) / inserts.
func (ws *WorkloadStats) GetReadWriteRatio() float64 {
	reads := atomic.LoadUint64(&ws.DumpCount) + atomic.LoadUint64(&ws.SearchCount)
	writes := atomic.LoadUint64(&ws.InsertCount)

	if writes == 0 {
		if reads > 0 {
			return 100.0
		}
		return 0.0
	}
	return float64(reads) / float64(writes)
}

func (ws *WorkloadStats) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"inserts":          atomic.LoadUint64(&ws.InsertCount),
		"dumps":            atomic.LoadUint64(&ws.DumpCount),
		"searches":         atomic.LoadUint64(&ws.SearchCount),
		"filter_skipped":   atomic.LoadUint64(&ws.FilterSkipped),
		"rotations_ll":     ws.Rotations(avl.LeftLeft),
		"rotations_rr":     ws.Rotations(avl.RightRight),
		"rotations_lr":     ws.Rotations(avl.LeftRight),
		"rotations_rl":     ws.Rotations(avl.RightLeft),
		"read_write_ratio": ws.GetReadWriteRatio(),
	}
}
