// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import (
	"fmt"
	"math"
)

// scanLCP walks the LCP intervals with a stack. An interval is reported
// when an LCP value smaller than its own closes it.
func scanLCP(sa, lcp []int32, minLen, maxLen int32, f func(m int, s []int32)) {
	type item struct {
		n int32
		j int32
	}
	// stack[0] is the sentinel interval with length zero
	stack := make([]item, 1, 16)
scan:
	for j := int32(1); ; j++ {
		var n int32
		if j < int32(len(lcp)) {
			n = min(lcp[j], maxLen)
		} else {
			n = -1
		}
		// lb is the left bound of an interval opened by n
		lb := j - 1
		for {
			top := stack[len(stack)-1]
			switch {
			case n > top.n:
				stack = append(stack, item{n, lb})
				continue scan
			case n == top.n:
				continue scan
			}
			if top.n >= minLen && top.n > 0 {
				f(int(top.n), sa[top.j:j])
			}
			lb = top.j
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break scan
			}
		}
	}
}

// Segments calls f for every segment of the suffix array whose suffixes
// share a common prefix of length m with minLen <= m <= maxLen. Every
// segment contains at least two suffixes. Segments are reported in the
// order in which they end in the suffix array, so nested segments come
// before the segments containing them.
func Segments(sa, lcp []int32, minLen, maxLen int, f func(m int, segment []int32)) {
	if len(sa) != len(lcp) {
		panic(fmt.Errorf("suffix: len(sa)=%d != len(lcp)=%d",
			len(sa), len(lcp)))
	}
	if !(0 <= minLen && minLen <= math.MaxInt32) {
		panic(fmt.Errorf("suffix: minLen=%d out of range", minLen))
	}
	if !(maxLen <= math.MaxInt32) {
		panic(fmt.Errorf("suffix: maxLen=%d larger than MaxInt32=%d",
			maxLen, math.MaxInt32))
	}
	if maxLen < minLen || len(sa) < 2 {
		return
	}
	scanLCP(sa, lcp, int32(minLen), int32(maxLen), f)
}
