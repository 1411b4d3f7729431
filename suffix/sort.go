// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package suffix provides suffix arrays, LCP tables and the repeats that
// can be derived from them.
//
// The package computes the same repeats as the suffix tree in the parent
// package but by a completely different method, so both can be checked
// against each other.
package suffix

import (
	"bytes"
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Sort computes the suffix array. The slice sa must have the same length as
// t. The suffixes are compared directly, so the function is meant for texts
// of moderate size.
func Sort(t []byte, sa []int32) {
	if len(t) != len(sa) {
		panic(fmt.Errorf("suffix: len(t)=%d is different from len(sa)=%d",
			len(t), len(sa)))
	}
	if len(t) > math.MaxInt32 {
		panic(fmt.Errorf("suffix: len(t)=%d > MaxInt32", len(t)))
	}
	for i := range sa {
		sa[i] = int32(i)
	}
	slices.SortFunc(sa, func(i, j int32) int {
		return bytes.Compare(t[i:], t[j:])
	})
}
