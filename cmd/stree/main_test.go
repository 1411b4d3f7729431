package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type failingCloser struct {
	io.Reader
}

func (failingCloser) Close() error { return errors.New("close failed") }

func runCmd(stdin string, args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("os.WriteFile error %s", err)
	}
	return path
}

func TestRun(t *testing.T) {
	Convey("Indexing a text given on the command line", t, func() {
		code, out, _ := runCmd("", "-text", "abcabc$",
			"-q", "cabc", "-q", "abcd")
		So(code, ShouldEqual, 0)
		So(out, ShouldContainSubstring, "text: length=7 nodes=")
		So(out, ShouldContainSubstring, "leaves=7")
		So(out, ShouldContainSubstring,
			`longest repeated substring: "abc"`)
		So(out, ShouldContainSubstring, `contains("cabc")=true`)
		So(out, ShouldContainSubstring, `contains("abcd")=false`)
	})

	Convey("Reading standard input", t, func() {
		code, out, _ := runCmd("banana", "-check")
		So(code, ShouldEqual, 0)
		So(out, ShouldContainSubstring, "stdin: length=7")
		So(out, ShouldContainSubstring,
			`longest repeated substring: "ana"`)
	})

	Convey("Indexing multiple files in parallel", t, func() {
		a := writeFile(t, "a.txt", "ATCGATCGA")
		b := writeFile(t, "b.txt", "mississippi")
		code, out, _ := runCmd("", "-j", "2", "-q", "ssi", a, b)
		So(code, ShouldEqual, 0)
		i := strings.Index(out, a)
		j := strings.Index(out, b)
		So(i, ShouldBeGreaterThanOrEqualTo, 0)
		So(j, ShouldBeGreaterThan, i)
		So(out, ShouldContainSubstring,
			`longest repeated substring: "ATCGA"`)
		So(out, ShouldContainSubstring,
			`longest repeated substring: "issi"`)
		So(out, ShouldContainSubstring, `contains("ssi")=false`)
		So(out, ShouldContainSubstring, `contains("ssi")=true`)
	})

	Convey("Listing repeats and dumping the tree", t, func() {
		code, out, _ := runCmd("", "-text", "aab", "-repeats", "1",
			"-dump")
		So(code, ShouldEqual, 0)
		So(out, ShouldContainSubstring, `repeat "a" len=1 count=2`)
		So(out, ShouldContainSubstring, `"a" [0,1) -> 0`)
	})

	Convey("A sentinel inside the text fails", t, func() {
		code, _, errOut := runCmd("", "-text", "a$b")
		So(code, ShouldEqual, 1)
		So(errOut, ShouldContainSubstring, "sentinel in text")
	})

	Convey("An empty -text is indexed instead of standard input", t, func() {
		code, out, _ := runCmd("banana", "-text", "")
		So(code, ShouldEqual, 0)
		So(out, ShouldContainSubstring, "text: length=1 ")
		So(out, ShouldNotContainSubstring, "stdin")
	})

	Convey("A close error is reported", t, func() {
		opts := &options{}
		opts.treeConfig.ApplyDefaults()
		src := source{
			name: "broken",
			open: func() (io.ReadCloser, error) {
				return failingCloser{strings.NewReader("abc")}, nil
			},
		}
		_, err := indexAll([]source{src}, opts, 1)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "close failed")
	})

	Convey("A missing file fails", t, func() {
		code, _, _ := runCmd("", filepath.Join(t.TempDir(), "none"))
		So(code, ShouldEqual, 1)
	})
}

func TestSettings(t *testing.T) {
	Convey("Without a file the defaults are used", t, func() {
		s, err := loadSettings("")
		So(err, ShouldBeNil)
		So(s.Jobs, ShouldEqual, 4)
	})

	Convey("A settings file configures the tree", t, func() {
		path := writeFile(t, "stree.toml", `
jobs = 2

[tree]
sentinel = "#"
check-invariants = true

[log]
level = "debug"
`)
		s, err := loadSettings(path)
		So(err, ShouldBeNil)
		So(s.Jobs, ShouldEqual, 2)
		So(s.Tree.Sentinel, ShouldEqual, "#")
		So(s.Tree.CheckInvariants, ShouldBeTrue)
		So(s.Log.Level, ShouldEqual, "debug")

		code, out, _ := runCmd("", "-c", path, "-text", "a$a")
		So(code, ShouldEqual, 0)
		So(out, ShouldContainSubstring,
			`longest repeated substring: "a"`)
	})

	Convey("Invalid settings are rejected", t, func() {
		for _, content := range []string{
			"jobs = 0",
			"[tree]\nsentinel = \"ab\"",
			"[log]\nlevel = \"loud\"",
			"unknown = 1",
			"jobs = ",
		} {
			path := writeFile(t, "bad.toml", content)
			_, err := loadSettings(path)
			So(err, ShouldNotBeNil)
		}
	})
}
