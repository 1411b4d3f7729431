// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package stree

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Dump writes the structure of the tree to w. Every edge is written on its
// own line, indented by the depth of its node, with the label, the edge
// interval and for inner nodes the suffix link.
func (t *Tree) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	t.dumpNode(bw, rootID, 0)
	return bw.Flush()
}

func (t *Tree) dumpNode(w *bufio.Writer, id nodeID, indent int) {
	for _, k := range t.childrenSorted(id) {
		x := &t.nodes[k]
		fmt.Fprint(w, strings.Repeat("  ", indent))
		if x.isLeaf() {
			fmt.Fprintf(w, "%q [%d,#)\n", t.label(k), x.start)
			continue
		}
		fmt.Fprintf(w, "%q [%d,%d) -> %d\n", t.label(k), x.start,
			x.end.pos, x.link)
		t.dumpNode(w, k, indent+1)
	}
}
