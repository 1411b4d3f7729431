package stree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAlphabet(t *testing.T) {
	var a alphabet
	if a.isMember(0) {
		t.Fatalf("a.isMember(0) returned true; want false")
	}
	for _, c := range []byte{255, 'a', 0, 64, 63, 'a'} {
		a.insert(c)
	}
	if n := a.pop(); n != 5 {
		t.Fatalf("a.pop() returns %d; want %d", n, 5)
	}
	want := []byte{0, 63, 64, 'a', 255}
	if diff := cmp.Diff(want, a.members()); diff != "" {
		t.Fatalf("a.members() mismatch (-want +got):\n%s", diff)
	}
	if !a.allMembers("a@?") {
		t.Fatalf("a.allMembers(%q) returned false", "a@?")
	}
	if a.allMembers("ab") {
		t.Fatalf("a.allMembers(%q) returned true", "ab")
	}
}
