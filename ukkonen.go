// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package stree

import "fmt"

// Append extends all unfinished suffixes of the text by c. The function
// panics if the text would exceed the maximum length configured or if c
// is the sentinel and the sentinel is already part of the text.
//
// The pending suffixes are inserted starting at the active point. An
// extension either adds a leaf to an explicit node, splits an edge and adds
// a leaf to the new inner node, or finds c already on the path. In the
// last case all remaining suffixes are implicitly present and the loop
// stops.
func (t *Tree) Append(c byte) {
	if len(t.text) >= t.maxLen {
		panic(fmt.Errorf("stree: text exceeds MaxLen=%d", t.maxLen))
	}
	if c == t.sentinel && t.seen.isMember(c) {
		panic(fmt.Errorf("%w: second %q", ErrSentinel, c))
	}
	t.text = append(t.text, c)
	t.seen.insert(c)
	n := int32(len(t.text))
	t.remainder++

	// inner node created by the previous extension waiting for its
	// suffix link
	last := noNode
	for t.remainder > 0 {
		if t.activeLength == 0 {
			t.activeEdge = n - 1
		}
		next, ok := t.child(t.activeNode, t.text[t.activeEdge])
		if !ok {
			leaf := t.newNode(t.activeEdge, openEnd)
			t.addChild(t.activeNode, leaf)
			if last != noNode {
				t.nodes[last].link = t.activeNode
				last = noNode
			}
		} else {
			if t.walkDown(next) {
				continue
			}
			if t.text[t.nodes[next].start+t.activeLength] == c {
				if last != noNode && t.activeNode != rootID {
					t.nodes[last].link = t.activeNode
					last = noNode
				}
				t.activeLength++
				break
			}

			start := t.nodes[next].start
			split := t.newNode(start, fixedEnd(start+t.activeLength))
			t.replaceChild(t.activeNode, split)
			leaf := t.newNode(n-1, openEnd)
			t.addChild(split, leaf)
			t.nodes[next].start += t.activeLength
			t.addChild(split, next)
			if last != noNode {
				t.nodes[last].link = split
			}
			last = split
		}

		t.remainder--
		if t.activeNode == rootID {
			if t.activeLength > 0 {
				t.activeLength--
				t.activeEdge = n - t.remainder
			}
		} else {
			t.activeNode = t.nodes[t.activeNode].link
		}
	}

	if t.check {
		if err := t.Verify(); err != nil {
			panic(err)
		}
	}
}

// walkDown moves the active point over the whole edge to next if the
// active length covers it. It returns whether the active point moved.
func (t *Tree) walkDown(next nodeID) bool {
	k := t.edgeLen(next)
	if t.activeLength < k {
		return false
	}
	t.activeEdge += k
	t.activeLength -= k
	t.activeNode = next
	return true
}
