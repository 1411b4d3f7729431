// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import (
	"fmt"
	"math"
)

// computeLCP fills the lcp table without checking its arguments.
//
// The suffixes are visited in text order. Dropping the first byte of a
// suffix loses at most one byte of the common prefix with its predecessor
// in the suffix array, so h never decreases by more than one and the
// total work is linear.
func computeLCP(t []byte, sa, rank, lcp []int32) {
	if len(lcp) > 0 {
		lcp[0] = 0
	}
	h := 0
	for i := range t {
		r := rank[i]
		if r == 0 {
			h = 0
			continue
		}
		j := int(sa[r-1])
		for i+h < len(t) && j+h < len(t) && t[i+h] == t[j+h] {
			h++
		}
		lcp[r] = int32(h)
		if h > 0 {
			h--
		}
	}
}

// InvertSA computes the inverse of the suffix array.
func InvertSA(sa, sainv []int32) {
	if len(sa) != len(sainv) {
		panic(fmt.Errorf("suffix: len(sa)=%d != len(sainv)=%d",
			len(sa), len(sainv)))
	}
	for j, i := range sa {
		sainv[i] = int32(j)
	}
}

// LCP computes the LCP table for t. The entry lcp[k] is the length of the
// common prefix of the suffixes sa[k-1] and sa[k]; lcp[0] is zero. If sa or
// sainv don't have the length of t they will be computed temporarily.
func LCP(t []byte, sa, sainv, lcp []int32) {
	if len(t) > math.MaxInt32 {
		panic(fmt.Errorf("suffix: len(t)=%d > MaxInt32", len(t)))
	}
	if len(lcp) != len(t) {
		panic(fmt.Errorf("suffix: len(lcp)=%d != len(t)=%d",
			len(lcp), len(t)))
	}
	if len(sa) != len(t) {
		sa = make([]int32, len(t))
		Sort(t, sa)
	}
	if len(sainv) != len(sa) {
		sainv = make([]int32, len(sa))
		InvertSA(sa, sainv)
	}
	computeLCP(t, sa, sainv, lcp)
}

// matchLen returns the length of the common prefix of p and q.
func matchLen(p, q []byte) int {
	if len(q) > len(p) {
		p, q = q, p
	}
	for i, c := range q {
		if p[i] != c {
			return i
		}
	}
	return len(q)
}
