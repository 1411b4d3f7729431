// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package stree

import "math/bits"

const abMask = 1<<6 - 1

// alphabet is the set of bytes that have been appended to the text.
type alphabet [4]uint64

func (a *alphabet) insert(c byte) {
	a[c>>6] |= 1 << uint(c&abMask)
}

func (a *alphabet) isMember(c byte) bool {
	return a[c>>6]&(1<<uint(c&abMask)) != 0
}

// pop returns the number of bytes in the set.
func (a *alphabet) pop() int {
	n := 0
	for _, x := range a {
		n += bits.OnesCount64(x)
	}
	return n
}

// members returns the bytes of the set in ascending order.
func (a *alphabet) members() []byte {
	p := make([]byte, 0, a.pop())
	for i, x := range a {
		for x != 0 {
			k := bits.TrailingZeros64(x)
			p = append(p, byte(i<<6+k))
			x &= x - 1
		}
	}
	return p
}

// allMembers reports whether every byte of s is in the set.
func (a *alphabet) allMembers(s string) bool {
	for i := 0; i < len(s); i++ {
		if !a.isMember(s[i]) {
			return false
		}
	}
	return true
}
