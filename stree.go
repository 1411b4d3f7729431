// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package stree provides a suffix tree that is constructed online with
// Ukkonen's algorithm. Bytes are appended one at a time and the tree
// represents all suffixes of the text appended so far. The total
// construction work is linear in the length of the text.
//
// A [Tree] answers whether a string is a substring of the text with
// [Tree.Contains] and computes the longest repeated substring with
// [Tree.LongestRepeatedSubstring]. Appending the sentinel with
// [Tree.Terminate] closes every suffix at its own leaf.
//
// A Tree is not safe for concurrent use. All access must be serialized by
// the caller.
package stree

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	// ErrSentinel indicates that the sentinel byte is part of the text.
	ErrSentinel = errors.New("stree: sentinel in text")
	// ErrTerminated indicates that the tree has been terminated
	// already.
	ErrTerminated = errors.New("stree: tree already terminated")
)

// Tree is a suffix tree for a growing text. The nodes are kept in an arena
// and the edges reference ranges of the text.
type Tree struct {
	text  []byte
	nodes []node
	seen  alphabet

	// active point
	activeNode   nodeID
	activeEdge   int32
	activeLength int32
	// number of suffixes still to be inserted explicitly
	remainder int32

	leaves int

	sentinel byte
	maxLen   int
	check    bool
}

// New returns an empty tree using the default configuration.
func New() *Tree {
	t, err := NewTree(nil)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTree returns an empty tree for the configuration. A nil configuration
// selects the defaults.
func NewTree(cfg *Config) (*Tree, error) {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	c.setDefaults()
	if err := c.Verify(); err != nil {
		return nil, err
	}
	t := &Tree{
		nodes:    make([]node, 0, 16),
		sentinel: c.Sentinel[0],
		maxLen:   c.MaxLen,
		check:    c.CheckInvariants,
	}
	t.newNode(0, fixedEnd(0))
	t.activeNode = rootID
	return t, nil
}

// Build constructs the tree for text and terminates it with the sentinel.
// If text ends with the sentinel, no second sentinel is appended. The
// sentinel must not occur anywhere else in the text.
func Build(text string, cfg *Config) (*Tree, error) {
	t, err := NewTree(cfg)
	if err != nil {
		return nil, err
	}
	n := len(text)
	if n > 0 && text[n-1] == t.sentinel {
		n--
	}
	for i := 0; i < n; i++ {
		if text[i] == t.sentinel {
			return nil, fmt.Errorf("%w: %q at offset %d",
				ErrSentinel, t.sentinel, i)
		}
	}
	if n+1 > t.maxLen {
		return nil, fmt.Errorf(
			"stree: text length %d exceeds MaxLen=%d", n+1, t.maxLen)
	}
	t.grow(n + 1)
	t.AppendString(text[:n])
	if err = t.Terminate(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustBuild is like Build with the default configuration but panics on
// errors.
func MustBuild(text string) *Tree {
	t, err := Build(text, nil)
	if err != nil {
		panic(err)
	}
	return t
}

// grow reserves capacity for n text bytes and the at most 2n nodes they
// create.
func (t *Tree) grow(n int) {
	if k := len(t.text) + n; k > cap(t.text) {
		p := make([]byte, len(t.text), k)
		copy(p, t.text)
		t.text = p
	}
	if k := len(t.nodes) + 2*n; k > cap(t.nodes) {
		q := make([]node, len(t.nodes), k)
		copy(q, t.nodes)
		t.nodes = q
	}
}

// AppendString appends all bytes of s to the tree.
func (t *Tree) AppendString(s string) {
	for i := 0; i < len(s); i++ {
		t.Append(s[i])
	}
}

// Write appends the bytes of p to the tree. It allows to feed a tree with
// io.Copy. An error is returned and nothing is appended if p would exceed
// the maximum text length or contains the sentinel; use Terminate to
// append the sentinel.
func (t *Tree) Write(p []byte) (n int, err error) {
	if len(t.text)+len(p) > t.maxLen {
		return 0, fmt.Errorf(
			"stree: text length %d exceeds MaxLen=%d",
			len(t.text)+len(p), t.maxLen)
	}
	if i := bytes.IndexByte(p, t.sentinel); i >= 0 {
		return 0, fmt.Errorf("%w: %q at offset %d",
			ErrSentinel, t.sentinel, len(t.text)+i)
	}
	for _, c := range p {
		t.Append(c)
	}
	return len(p), nil
}

// Terminate appends the sentinel. After it every suffix of the text ends
// in its own leaf. The function returns an error if the sentinel has
// already been appended.
func (t *Tree) Terminate() error {
	if t.Terminated() {
		return ErrTerminated
	}
	if t.seen.isMember(t.sentinel) {
		return fmt.Errorf("%w: %q", ErrSentinel, t.sentinel)
	}
	t.Append(t.sentinel)
	return nil
}

// Terminated reports whether the text ends with the sentinel.
func (t *Tree) Terminated() bool {
	n := len(t.text)
	return n > 0 && t.text[n-1] == t.sentinel
}

// Len returns the length of the text including a sentinel.
func (t *Tree) Len() int { return len(t.text) }

// Leaves returns the number of leaves.
func (t *Tree) Leaves() int { return t.leaves }

// Nodes returns the number of nodes including the root.
func (t *Tree) Nodes() int { return len(t.nodes) }

// Alphabet returns the distinct bytes of the text in ascending order.
func (t *Tree) Alphabet() []byte { return t.seen.members() }

// String renders the text of the tree.
func (t *Tree) String() string {
	return fmt.Sprintf("stree.Tree(%q)", t.text)
}
