// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import "golang.org/x/exp/slices"

// LongestRepeat finds the longest substring of t that starts at two
// different positions. The occurrences may overlap. It returns the
// position of an occurrence and the length of the repeat. From multiple
// repeats of the same length the lexicographically smallest is selected.
// If t has no repeat, n is zero.
func LongestRepeat(t []byte) (pos, n int) {
	if len(t) < 2 {
		return 0, 0
	}
	sa := make([]int32, len(t))
	Sort(t, sa)
	lcp := make([]int32, len(t))
	LCP(t, sa, nil, lcp)
	k := 0
	for j, l := range lcp {
		if l > lcp[k] {
			k = j
		}
	}
	if lcp[k] == 0 {
		return 0, 0
	}
	return int(sa[k]), int(lcp[k])
}

// Repeat is a substring that occurs multiple times in a text.
type Repeat struct {
	Pos   int
	Len   int
	Count int
}

// Repeats returns all repeats of t with a length of at least minLen that
// can't be extended to the right without losing an occurrence. The repeats
// are sorted by decreasing length; repeats of the same length are sorted
// lexicographically.
func Repeats(t []byte, minLen int) []Repeat {
	sa := make([]int32, len(t))
	Sort(t, sa)
	lcp := make([]int32, len(t))
	LCP(t, sa, nil, lcp)
	var reps []Repeat
	Segments(sa, lcp, max(minLen, 1), len(t), func(m int, s []int32) {
		reps = append(reps, Repeat{Pos: int(s[0]), Len: m, Count: len(s)})
	})
	rank := make([]int32, len(t))
	InvertSA(sa, rank)
	slices.SortStableFunc(reps, func(a, b Repeat) int {
		if a.Len != b.Len {
			return b.Len - a.Len
		}
		return int(rank[a.Pos]) - int(rank[b.Pos])
	})
	return reps
}
