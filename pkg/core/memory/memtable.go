package memory

import (
	"shortlist/pkg/common"
	"slices"
	"sync"

	"github.com/google/btree"
)

// Item carries a record plus its insertion sequence. The sequence is the
// last key component so that equal records never replace each other and
// ascend in insertion order.
type Item struct {
	Rec common.Record
	Seq uint64
}

func (i Item) Less(than btree.Item) bool {
	o := than.(Item)
	if c := common.Compare(i.Rec, o.Rec); c != 0 {
		return c < 0
	}
	return i.Seq < o.Seq
}

// MemTable is a B-tree backed record index with the same ordering and
// duplicate semantics as the AVL tree.
type MemTable struct {
	tree *btree.BTree
	lock sync.RWMutex
	seq  uint64
}

func NewMemTable(degree int) *MemTable {
	return &MemTable{
		tree: btree.New(degree),
	}
}

func (mt *MemTable) Type() string { return "BTree" }

func (mt *MemTable) Insert(rec common.Record) {
	mt.lock.Lock()
	defer mt.lock.Unlock()

	mt.seq++
	mt.tree.ReplaceOrInsert(Item{Rec: rec, Seq: mt.seq})
}

func (mt *MemTable) Ascending() []common.Record {
	mt.lock.RLock()
	defer mt.lock.RUnlock()

	out := make([]common.Record, 0, mt.tree.Len())
	mt.tree.Ascend(func(i btree.Item) bool {
		out = append(out, i.(Item).Rec)
		return true
	})
	return out
}

func (mt *MemTable) Descending() []common.Record {
	mt.lock.RLock()
	defer mt.lock.RUnlock()

	out := make([]common.Record, 0, mt.tree.Len())
	mt.tree.Descend(func(i btree.Item) bool {
		out = append(out, i.(Item).Rec)
		return true
	})
	return out
}

func (mt *MemTable) SearchByTag(tag string) []common.Record {
	mt.lock.RLock()
	defer mt.lock.RUnlock()

	out := make([]common.Record, 0)
	mt.tree.Ascend(func(i btree.Item) bool {
		if rec := i.(Item).Rec; rec.Tag == tag {
			out = append(out, rec)
		}
		return true
	})
	slices.SortStableFunc(out, common.ByRank)
	return out
}

func (mt *MemTable) IsEmpty() bool {
	return mt.Len() == 0
}

func (mt *MemTable) Len() int {
	mt.lock.RLock()
	defer mt.lock.RUnlock()
	return mt.tree.Len()
}

// Iterator walks records in ascending order until fn returns false.
func (mt *MemTable) Iterator(fn func(rec common.Record) bool) {
	mt.lock.RLock()
	defer mt.lock.RUnlock()

	mt.tree.Ascend(func(i btree.Item) bool {
		return fn(i.(Item).Rec)
	})
}

func (mt *MemTable) Reset() {
	mt.lock.Lock()
	defer mt.lock.Unlock()
	mt.tree.Clear(false)
	mt.seq = 0
}
