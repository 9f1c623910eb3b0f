package core

import (
	"errors"
	"shortlist/pkg/common"
)

// ErrUnknownIndexKind is returned by NewIndex for an unrecognised kind.
var ErrUnknownIndexKind = errors.New("unknown index kind")

// Index 抽象接口，屏蔽 AVL 与 B 树实现的差异
//
// None of the operations fail: an empty index or a search without matches
// yields an empty slice.
type Index interface {
	Insert(rec common.Record)
	Ascending() []common.Record
	Descending() []common.Record
	SearchByTag(tag string) []common.Record
	IsEmpty() bool
	Len() int
	Type() string // "AVL", "BTree"
}
