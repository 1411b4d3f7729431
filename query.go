// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package stree

import "bytes"

// Contains reports whether s is a substring of the text appended so far.
// The empty string is contained in every text.
func (t *Tree) Contains(s string) bool {
	if !t.seen.allMembers(s) {
		return false
	}
	id := rootID
	for i := 0; i < len(s); {
		next, ok := t.child(id, s[i])
		if !ok {
			return false
		}
		l := t.label(next)
		rest := s[i:]
		if len(l) >= len(rest) {
			return string(l[:len(rest)]) == rest
		}
		if string(l) != rest[:len(l)] {
			return false
		}
		i += len(l)
		id = next
	}
	return true
}

// LongestRepeatedSubstring returns the longest string that starts at two
// different positions of the text. The occurrences may overlap. If there
// are multiple candidates the lexicographically smallest is returned.
//
// Each inner node spells a repeated substring. Before the text is
// terminated the longest repeated suffix may not be an inner node; it is
// the implicit suffix at the active point and has the length of the
// remainder.
func (t *Tree) LongestRepeatedSubstring() string {
	p := t.deepestInner()
	if t.remainder > 0 {
		n := int32(len(t.text))
		q := t.text[n-t.remainder:]
		if len(q) > len(p) ||
			(len(q) == len(p) && bytes.Compare(q, p) < 0) {
			p = q
		}
	}
	return string(p)
}

// deepestInner returns the path label of the deepest inner node. The
// children are visited in ascending order, so the first of equally deep
// nodes has the smallest label.
func (t *Tree) deepestInner() []byte {
	type item struct {
		id    nodeID
		depth int32
	}
	var best item
	stack := []item{{rootID, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.id != rootID && !t.nodes[it.id].isLeaf() {
			if it.depth > best.depth {
				best = it
			}
		}
		children := t.childrenSorted(it.id)
		for j := len(children) - 1; j >= 0; j-- {
			k := children[j]
			if t.nodes[k].isLeaf() {
				continue
			}
			stack = append(stack, item{k, it.depth + t.edgeLen(k)})
		}
	}
	if best.depth == 0 {
		return nil
	}
	stop := t.edgeStop(best.id)
	return t.text[stop-best.depth : stop]
}
