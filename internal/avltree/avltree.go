// Package avltree implements the per-directory ordered index: a
// self-balancing binary search tree over a directory's immediate children,
// keyed by absolute path.
//
// The key choice matters. Exact-match lookup by path is the common query,
// so path is the ordering key and LookupPath is a real binary search.
// Names are not unique and do not sort the tree, so LookupName is an
// explicit full in-order scan returning every match.
package avltree

import "github.com/Aman-CERP/fsindex/internal/entry"

// Entry is the value stored in the tree.
type Entry = entry.Entry

// node is one tree node. Nodes own their children exclusively; there is no
// parent pointer, rotations and lookups only ever descend from the root.
type node struct {
	entry  Entry
	left   *node
	right  *node
	height int32
}

// Tree is an ordered index over one directory's immediate children.
// The zero value is not usable; call New.
type Tree struct {
	root *node
	size int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of entries in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Height returns the height of the tree (0 for an empty tree).
func (t *Tree) Height() int32 {
	return height(t.root)
}

// Insert adds an entry to the tree. Entries with equal paths are retained
// as duplicates (ties descend right), never merged or rejected.
func (t *Tree) Insert(e Entry) {
	t.root = insert(t.root, e)
	t.size++
}

// insert returns the rebuilt, rebalanced subtree. The input subtree is
// consumed; no cloning.
func insert(n *node, e Entry) *node {
	if n == nil {
		return &node{entry: e, height: 1}
	}
	if e.Path < n.entry.Path {
		n.left = insert(n.left, e)
	} else {
		n.right = insert(n.right, e)
	}
	return rebalance(n)
}

// rebalance restores the AVL balance invariant at n after an insert below
// it, returning the new subtree root.
func rebalance(n *node) *node {
	updateHeight(n)
	balance := height(n.left) - height(n.right)
	if balance > 1 {
		if height(n.left.left) >= height(n.left.right) {
			return rotateRight(n)
		}
		// Left-right case.
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}
	if balance < -1 {
		if height(n.right.right) >= height(n.right.left) {
			return rotateLeft(n)
		}
		// Right-left case.
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}
	return n
}

// rotateLeft promotes n.right. The demoted node's height is recomputed
// before the promoted node's, since the latter depends on the former.
func rotateLeft(n *node) *node {
	r := n.right
	n.right = r.left
	updateHeight(n)
	r.left = n
	updateHeight(r)
	return r
}

// rotateRight promotes n.left. Mirror of rotateLeft.
func rotateRight(n *node) *node {
	l := n.left
	n.left = l.right
	updateHeight(n)
	l.right = n
	updateHeight(l)
	return l
}

func updateHeight(n *node) {
	n.height = 1 + max(height(n.left), height(n.right))
}

func height(n *node) int32 {
	if n == nil {
		return 0
	}
	return n.height
}

// LookupPath returns the entry with the given path, if present. Logarithmic
// in the tree size. If duplicates exist for the path, the first one found
// on the descent is returned.
func (t *Tree) LookupPath(path string) (Entry, bool) {
	n := t.root
	for n != nil {
		switch {
		case path == n.entry.Path:
			return n.entry, true
		case path < n.entry.Path:
			n = n.left
		default:
			n = n.right
		}
	}
	return Entry{}, false
}

// LookupName returns every entry whose name matches, in ascending path
// order. Names do not order the tree, so this is a full scan.
func (t *Tree) LookupName(name string) []Entry {
	var out []Entry
	t.Walk(func(e Entry) bool {
		if e.Name == name {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Walk visits every entry in ascending path order. The walk stops early if
// fn returns false.
func (t *Tree) Walk(fn func(Entry) bool) {
	walk(t.root, fn)
}

func walk(n *node, fn func(Entry) bool) bool {
	if n == nil {
		return true
	}
	if !walk(n.left, fn) {
		return false
	}
	if !fn(n.entry) {
		return false
	}
	return walk(n.right, fn)
}

// InOrder returns all entries in ascending path order.
func (t *Tree) InOrder() []Entry {
	out := make([]Entry, 0, t.size)
	t.Walk(func(e Entry) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Describe visits entries right-subtree-first with their depth, the order
// used to render the tree sideways.
func (t *Tree) Describe(fn func(e Entry, depth int)) {
	describe(t.root, 0, fn)
}

func describe(n *node, depth int, fn func(Entry, int)) {
	if n == nil {
		return
	}
	describe(n.right, depth+1, fn)
	fn(n.entry, depth)
	describe(n.left, depth+1, fn)
}
