package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ulikunitz/stree"
	"github.com/ulikunitz/stree/suffix"
	"golang.org/x/sync/errgroup"
)

// source provides the text of one input.
type source struct {
	name string
	open func() (io.ReadCloser, error)
}

func fileSource(name string) source {
	return source{
		name: name,
		open: func() (io.ReadCloser, error) { return os.Open(name) },
	}
}

func textSource(name, text string) source {
	return source{
		name: name,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(text)), nil
		},
	}
}

// options select the work done for every input. The tree configuration
// must have its defaults applied.
type options struct {
	queries    []string
	dump       bool
	check      bool
	minRepeat  int
	treeConfig stree.Config
}

// report collects the results for one input.
type report struct {
	name     string
	length   int
	nodes    int
	leaves   int
	lrs      string
	contains []bool
	dump     string
	repeats  []suffix.Repeat
	text     []byte
}

// indexAll indexes all sources with at most jobs goroutines. Every
// goroutine builds its own tree. The reports are returned in the order of
// the sources.
func indexAll(sources []source, opts *options, jobs int) ([]*report, error) {
	reports := make([]*report, len(sources))
	var eg errgroup.Group
	eg.SetLimit(jobs)
	for i, src := range sources {
		i, src := i, src
		eg.Go(func() error {
			r, err := index(src, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", src.name, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func index(src source, opts *options) (*report, error) {
	rc, err := src.open()
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(rc)
	if cerr := rc.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}

	start := time.Now()
	cfg := opts.treeConfig
	tree, err := stree.Build(string(data), &cfg)
	if err != nil {
		return nil, err
	}
	logger.Debugf("%s: built tree for %d bytes in %v",
		src.name, tree.Len(), time.Since(start))

	r := &report{
		name:   src.name,
		length: tree.Len(),
		nodes:  tree.Nodes(),
		leaves: tree.Leaves(),
		lrs:    tree.LongestRepeatedSubstring(),
		text:   data,
	}
	for _, q := range opts.queries {
		r.contains = append(r.contains, tree.Contains(q))
	}
	if opts.dump {
		var sb strings.Builder
		if err = tree.Dump(&sb); err != nil {
			return nil, err
		}
		r.dump = sb.String()
	}

	// The sentinel is unique and never part of a repeat.
	text := bytes.TrimSuffix(data, []byte(cfg.Sentinel))
	if opts.check {
		start = time.Now()
		pos, n := suffix.LongestRepeat(text)
		want := string(text[pos : pos+n])
		logger.Debugf("%s: suffix array check in %v",
			src.name, time.Since(start))
		if want != r.lrs {
			return nil, fmt.Errorf(
				"longest repeat mismatch: tree %q; suffix array %q",
				r.lrs, want)
		}
	}
	if opts.minRepeat > 0 {
		r.repeats = suffix.Repeats(text, opts.minRepeat)
	}
	logger.Infof("%s: %d bytes, %d nodes, %d leaves",
		src.name, r.length, r.nodes, r.leaves)
	return r, nil
}

// write prints the report.
func (r *report) write(w io.Writer, queries []string) {
	fmt.Fprintf(w, "%s: length=%d nodes=%d leaves=%d\n",
		r.name, r.length, r.nodes, r.leaves)
	fmt.Fprintf(w, "longest repeated substring: %q\n", r.lrs)
	for i, q := range queries {
		fmt.Fprintf(w, "contains(%q)=%t\n", q, r.contains[i])
	}
	for _, rep := range r.repeats {
		fmt.Fprintf(w, "repeat %q len=%d count=%d\n",
			r.text[rep.Pos:rep.Pos+rep.Len], rep.Len, rep.Count)
	}
	if r.dump != "" {
		io.WriteString(w, r.dump)
	}
}
