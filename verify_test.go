package stree

import "testing"

func TestVerifyDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tree *Tree)
	}{
		{"link", func(tree *Tree) {
			for i := range tree.nodes {
				n := &tree.nodes[i]
				if nodeID(i) != rootID && !n.isLeaf() {
					n.link = nodeID(i)
					return
				}
			}
		}},
		{"key", func(tree *Tree) {
			n := &tree.nodes[rootID]
			k := n.children['a']
			delete(n.children, 'a')
			n.children['z'] = k
		}},
		{"leaves", func(tree *Tree) { tree.leaves++ }},
		{"start", func(tree *Tree) {
			k := tree.nodes[rootID].children['b']
			tree.nodes[k].start = int32(len(tree.text))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := MustBuild("abcabxabcd")
			if err := tree.Verify(); err != nil {
				t.Fatalf("tree.Verify() error %s", err)
			}
			tc.corrupt(tree)
			if err := tree.Verify(); err == nil {
				t.Fatalf("tree.Verify() found no error")
			}
		})
	}
}

func TestEdgeLen(t *testing.T) {
	tree := New()
	tree.AppendString("abab")
	// the leaves grow with the text, inner nodes keep their fixed end
	for i := range tree.nodes {
		id := nodeID(i)
		n := &tree.nodes[i]
		var want int32
		switch {
		case id == rootID:
			want = 0
		case n.end.open:
			want = int32(tree.Len()) - n.start
		default:
			want = n.end.pos - n.start
		}
		if got := tree.edgeLen(id); got != want {
			t.Fatalf("edgeLen(%d) = %d; want %d", id, got, want)
		}
	}
	if err := tree.Terminate(); err != nil {
		t.Fatalf("Terminate() error %s", err)
	}
	k := tree.nodes[rootID].children['a']
	if l := string(tree.label(k)); l != "ab" {
		t.Fatalf("label of inner node = %q; want %q", l, "ab")
	}
	leaf := tree.nodes[k].children['$']
	if l := string(tree.label(leaf)); l != "$" {
		t.Fatalf("label of leaf = %q; want %q", l, "$")
	}
}

func TestAddChildDuplicate(t *testing.T) {
	tree := MustBuild("ab")
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("addChild with duplicate key didn't panic")
		}
	}()
	leaf := tree.newNode(0, openEnd)
	tree.addChild(rootID, leaf)
}
