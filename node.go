// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package stree

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// nodeID is the handle of a node in the arena of the tree. The children
// relation and the suffix links both store handles, so the suffix links
// never own anything.
type nodeID int32

const (
	rootID nodeID = 0
	noNode nodeID = -1
)

// edgeEnd is the end of an edge label. Leaves have an open end, which
// always follows the current length of the text.
type edgeEnd struct {
	pos  int32
	open bool
}

var openEnd = edgeEnd{open: true}

func fixedEnd(pos int32) edgeEnd { return edgeEnd{pos: pos} }

// node is a vertex of the tree. The incoming edge is labeled with
// text[start:end].
type node struct {
	start    int32
	end      edgeEnd
	link     nodeID
	children map[byte]nodeID
}

func (n *node) isLeaf() bool { return len(n.children) == 0 }

// newNode appends a node to the arena and returns its handle. The suffix
// link of a fresh node points to the root.
func (t *Tree) newNode(start int32, end edgeEnd) nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{start: start, end: end, link: rootID})
	if end.open {
		t.leaves++
	}
	return id
}

// edgeStop returns the effective end of the edge label of node id.
func (t *Tree) edgeStop(id nodeID) int32 {
	n := int32(len(t.text))
	e := t.nodes[id].end
	if e.open {
		return n
	}
	return e.pos
}

// edgeLen returns the effective length of the edge label of node id.
func (t *Tree) edgeLen(id nodeID) int32 {
	return t.edgeStop(id) - t.nodes[id].start
}

// label returns the edge label of node id. The slice shares memory with
// the text.
func (t *Tree) label(id nodeID) []byte {
	return t.text[t.nodes[id].start:t.edgeStop(id)]
}

func (t *Tree) child(id nodeID, c byte) (nodeID, bool) {
	k, ok := t.nodes[id].children[c]
	return k, ok
}

// addChild attaches child to parent under the first byte of the child's
// edge label. An existing child with the same first byte is an invariant
// violation.
func (t *Tree) addChild(parent, child nodeID) {
	c := t.text[t.nodes[child].start]
	p := &t.nodes[parent]
	if p.children == nil {
		p.children = make(map[byte]nodeID, 2)
	}
	if k, ok := p.children[c]; ok {
		panic(fmt.Errorf(
			"stree: node %d has already child %d for byte %q",
			parent, k, c))
	}
	p.children[c] = child
}

// replaceChild puts child in place of the existing child of parent that
// starts with the same byte.
func (t *Tree) replaceChild(parent, child nodeID) {
	c := t.text[t.nodes[child].start]
	p := &t.nodes[parent]
	if _, ok := p.children[c]; !ok {
		panic(fmt.Errorf("stree: node %d has no child for byte %q",
			parent, c))
	}
	p.children[c] = child
}

// childrenSorted returns the children of node id ordered by the first byte
// of their edge labels.
func (t *Tree) childrenSorted(id nodeID) []nodeID {
	m := t.nodes[id].children
	if len(m) == 0 {
		return nil
	}
	keys := make([]byte, 0, len(m))
	for c := range m {
		keys = append(keys, c)
	}
	slices.Sort(keys)
	ids := make([]nodeID, len(keys))
	for i, c := range keys {
		ids[i] = m[c]
	}
	return ids
}
