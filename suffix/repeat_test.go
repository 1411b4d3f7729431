package suffix

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// bruteLongestRepeat compares all pairs of positions.
func bruteLongestRepeat(t []byte) []byte {
	var best []byte
	for i := range t {
		for j := i + 1; j < len(t); j++ {
			n := matchLen(t[i:], t[j:])
			s := t[i : i+n]
			if n > len(best) ||
				(n == len(best) && n > 0 && bytes.Compare(s, best) < 0) {
				best = s
			}
		}
	}
	return best
}

func TestLongestRepeat(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", ""},
		{"a", ""},
		{"abc", ""},
		{"aa", "a"},
		{"aaa", "aa"},
		{"banana", "ana"},
		{"ATCGATCGA", "ATCGA"},
		{"abcabc", "abc"},
		{"abxcdxab", "ab"},
	}
	for _, tc := range tests {
		pos, n := LongestRepeat([]byte(tc.text))
		got := tc.text[pos : pos+n]
		if got != tc.want {
			t.Errorf("LongestRepeat(%q) = %q; want %q",
				tc.text, got, tc.want)
		}
	}
}

func TestLongestRepeatRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		p := make([]byte, r.Intn(60))
		for j := range p {
			p[j] = "acgt"[r.Intn(4)]
		}
		pos, n := LongestRepeat(p)
		got := p[pos : pos+n]
		want := bruteLongestRepeat(p)
		if !bytes.Equal(got, want) {
			t.Fatalf("LongestRepeat(%q) = %q; want %q", p, got, want)
		}
	}
}

func TestRepeats(t *testing.T) {
	p := []byte("abcabcab")
	reps := Repeats(p, 2)
	var got []string
	for _, r := range reps {
		got = append(got, string(p[r.Pos:r.Pos+r.Len]))
	}
	// ab occurs three times, the longer repeats twice
	want := []string{"abcab", "bcab", "cab", "ab"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Repeats mismatch (-want +got):\n%s", diff)
	}
	if reps[len(reps)-1].Count != 3 {
		t.Fatalf("count of %q is %d; want 3", "ab", reps[len(reps)-1].Count)
	}
}
