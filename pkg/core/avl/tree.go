// Package avl implements the height-balanced ordered index behind the
// shortlist. Records are kept in (score, name) order; records that tie on
// both keys are all retained and placed to the right of the existing ones,
// so equal records dump in insertion order.
//
// A Tree is not safe for concurrent use.
package avl

import (
	"fmt"
	"slices"

	"shortlist/pkg/common"
)

// RotationKind names the four rebalancing shapes.
type RotationKind int

const (
	LeftLeft RotationKind = iota
	RightRight
	LeftRight
	RightLeft
)

func (k RotationKind) String() string {
	switch k {
	case LeftLeft:
		return "LL"
	case RightRight:
		return "RR"
	case LeftRight:
		return "LR"
	case RightLeft:
		return "RL"
	}
	return fmt.Sprintf("RotationKind(%d)", int(k))
}

// RotationObserver is told about every rebalancing performed by Insert.
type RotationObserver interface {
	RecordRotation(kind RotationKind)
}

type node struct {
	rec    common.Record
	left   *node
	right  *node
	height int
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node) fix() {
	n.height = 1 + max(height(n.left), height(n.right))
}

func (n *node) balance() int {
	return height(n.left) - height(n.right)
}

// Tree is an AVL tree of records.
type Tree struct {
	root     *node
	size     int
	observer RotationObserver
}

func New() *Tree {
	return &Tree{}
}

// SetObserver installs o as the rotation observer. nil disables reporting.
func (t *Tree) SetObserver(o RotationObserver) {
	t.observer = o
}

func (t *Tree) Type() string { return "AVL" }

func (t *Tree) IsEmpty() bool { return t.root == nil }

func (t *Tree) Len() int { return t.size }

// Height returns the height of the root, 0 for an empty tree.
func (t *Tree) Height() int { return height(t.root) }

// Insert adds r. It never rejects or merges.
func (t *Tree) Insert(r common.Record) {
	t.root = t.insert(t.root, r)
	t.size++
}

// Reset releases every node.
func (t *Tree) Reset() {
	t.root = nil
	t.size = 0
}

func (t *Tree) insert(n *node, r common.Record) *node {
	if n == nil {
		return &node{rec: r, height: 1}
	}

	// ties descend right
	if common.Compare(r, n.rec) < 0 {
		n.left = t.insert(n.left, r)
	} else {
		n.right = t.insert(n.right, r)
	}

	n.fix()
	bf := n.balance()

	switch {
	case bf > 1:
		if common.Compare(r, n.left.rec) < 0 {
			t.observe(LeftLeft)
			return rotateRight(n)
		}
		t.observe(LeftRight)
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case bf < -1:
		if common.Compare(r, n.right.rec) >= 0 {
			t.observe(RightRight)
			return rotateLeft(n)
		}
		t.observe(RightLeft)
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}
	return n
}

func (t *Tree) observe(kind RotationKind) {
	if t.observer != nil {
		t.observer.RecordRotation(kind)
	}
}

// rotateRight lifts y's left child:
//
//	    y            x
//	   / \          / \
//	  x   C  -->   A   y
//	 / \              / \
//	A   B            B   C
func rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	x.right = y
	y.fix()
	x.fix()
	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	x.right = y.left
	y.left = x
	x.fix()
	y.fix()
	return y
}

// Ascending returns every record in (score, name) order.
func (t *Tree) Ascending() []common.Record {
	out := make([]common.Record, 0, t.size)
	t.root.walk(func(r common.Record) { out = append(out, r) })
	return out
}

// Descending returns the exact reverse of Ascending.
func (t *Tree) Descending() []common.Record {
	out := make([]common.Record, 0, t.size)
	t.root.walkReverse(func(r common.Record) { out = append(out, r) })
	return out
}

// SearchByTag returns the records whose tag equals tag exactly, ordered by
// score descending and then name ascending. Every node is visited.
func (t *Tree) SearchByTag(tag string) []common.Record {
	out := make([]common.Record, 0)
	t.root.walk(func(r common.Record) {
		if r.Tag == tag {
			out = append(out, r)
		}
	})
	slices.SortStableFunc(out, common.ByRank)
	return out
}

func (n *node) walk(fn func(common.Record)) {
	if n == nil {
		return
	}
	n.left.walk(fn)
	fn(n.rec)
	n.right.walk(fn)
}

func (n *node) walkReverse(fn func(common.Record)) {
	if n == nil {
		return
	}
	n.right.walkReverse(fn)
	fn(n.rec)
	n.left.walkReverse(fn)
}

// Check verifies cached heights, the balance bound and the ordering of the
// whole tree. It is meant for tests and debugging.
func (t *Tree) Check() error {
	count := 0
	if _, err := check(t.root, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("avl: size %d, counted %d nodes", t.size, count)
	}
	// equal records may sit on either side after a rotation, so the order
	// is checked on the in-order sequence rather than per child link
	recs := t.Ascending()
	for i := 1; i < len(recs); i++ {
		if common.Less(recs[i], recs[i-1]) {
			return fmt.Errorf("avl: %v ordered after %v", recs[i], recs[i-1])
		}
	}
	return nil
}

func check(n *node, count *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	*count++
	lh, err := check(n.left, count)
	if err != nil {
		return 0, err
	}
	rh, err := check(n.right, count)
	if err != nil {
		return 0, err
	}
	if d := lh - rh; d > 1 || d < -1 {
		return 0, fmt.Errorf("avl: node %v out of balance (%d)", n.rec, d)
	}
	if h := 1 + max(lh, rh); h != n.height {
		return 0, fmt.Errorf("avl: node %v caches height %d, want %d", n.rec, n.height, h)
	}
	return 1 + max(lh, rh), nil
}
