// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package stree

import (
	"bytes"
	"fmt"
)

// Verify checks the structural invariants of the tree. An error indicates
// a bug in the construction.
func (t *Tree) Verify() error {
	n := int32(len(t.text))
	if len(t.nodes) == 0 {
		return fmt.Errorf("stree: tree has no root")
	}
	if r := t.nodes[rootID]; r.link != rootID || r.end.open {
		return fmt.Errorf("stree: root corrupted")
	}

	// path labels of the inner nodes given by stop and depth
	type path struct {
		stop, depth int32
	}
	paths := make(map[nodeID]path)
	leaves := 0

	type item struct {
		id    nodeID
		depth int32
	}
	stack := []item{{rootID, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for c, k := range t.nodes[it.id].children {
			x := &t.nodes[k]
			if x.start < 0 || x.start >= n {
				return fmt.Errorf(
					"stree: node %d start %d out of range",
					k, x.start)
			}
			if !x.end.open && !(x.start < x.end.pos && x.end.pos <= n) {
				return fmt.Errorf(
					"stree: node %d has invalid edge [%d,%d)",
					k, x.start, x.end.pos)
			}
			if d := t.text[x.start]; d != c {
				return fmt.Errorf(
					"stree: node %d keyed %q but label starts with %q",
					k, c, d)
			}
			depth := it.depth + t.edgeLen(k)
			if x.isLeaf() {
				if !x.end.open {
					return fmt.Errorf(
						"stree: leaf %d has fixed end", k)
				}
				leaves++
				continue
			}
			if x.end.open {
				return fmt.Errorf(
					"stree: inner node %d has open end", k)
			}
			if len(x.children) < 2 {
				return fmt.Errorf(
					"stree: inner node %d has %d children",
					k, len(x.children))
			}
			paths[k] = path{stop: t.edgeStop(k), depth: depth}
			stack = append(stack, item{k, depth})
		}
	}

	if leaves != t.leaves {
		return fmt.Errorf("stree: found %d leaves; counted %d",
			leaves, t.leaves)
	}
	if want := int(n - t.remainder); leaves != want {
		return fmt.Errorf("stree: %d leaves; want %d", leaves, want)
	}

	for k, p := range paths {
		s := t.text[p.stop-p.depth : p.stop]
		l := t.nodes[k].link
		var q []byte
		if l != rootID {
			lp, ok := paths[l]
			if !ok {
				return fmt.Errorf(
					"stree: suffix link of node %d points to non-inner node %d",
					k, l)
			}
			q = t.text[lp.stop-lp.depth : lp.stop]
		}
		if !bytes.Equal(s[1:], q) {
			return fmt.Errorf(
				"stree: suffix link of node %d (%q) points to %q",
				k, s, q)
		}
	}
	return nil
}
