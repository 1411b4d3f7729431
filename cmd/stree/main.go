// Command stree builds suffix trees for texts and queries them.
//
// Usage:
//
//	stree [flags] [file ...]
//
// Without files and without -text the text is read from standard input.
// For every input the command prints the size of the tree, the longest
// repeated substring and the answers to the -q queries.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// queryList collects the repeated -q flags.
type queryList []string

func (q *queryList) String() string { return strings.Join(*q, ",") }

func (q *queryList) Set(s string) error {
	*q = append(*q, s)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("stree", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configFile string
		text       string
		queries    queryList
		dump       bool
		check      bool
		minRepeat  int
		jobs       int
		verbose    bool
	)
	fs.StringVar(&configFile, "c", "", "toml settings file")
	fs.StringVar(&text, "text", "", "index the `text` given")
	fs.Var(&queries, "q", "check whether the text contains `string`; repeatable")
	fs.BoolVar(&dump, "dump", false, "write the structure of the tree")
	fs.BoolVar(&check, "check", false,
		"verify the longest repeat with a suffix array (slow for large texts)")
	fs.IntVar(&minRepeat, "repeats", 0,
		"list repeats with a length of at least `n`")
	fs.IntVar(&jobs, "j", 0, "number of inputs indexed in parallel")
	fs.BoolVar(&verbose, "v", false, "log debug messages")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	settings, err := loadSettings(configFile)
	if err != nil {
		fmt.Fprintf(stderr, "stree: %s\n", err)
		return 1
	}
	closeLog, err := initLogger(stderr, settings.Log, verbose)
	if err != nil {
		fmt.Fprintf(stderr, "stree: %s\n", err)
		return 1
	}
	defer closeLog()

	if jobs > 0 {
		settings.Jobs = jobs
	}
	opts := &options{
		queries:    queries,
		dump:       dump,
		check:      check,
		minRepeat:  minRepeat,
		treeConfig: settings.Tree,
	}
	opts.treeConfig.ApplyDefaults()

	textSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "text" {
			textSet = true
		}
	})
	var sources []source
	switch {
	case textSet:
		sources = append(sources, textSource("text", text))
	case fs.NArg() == 0:
		sources = append(sources, source{
			name: "stdin",
			open: func() (io.ReadCloser, error) {
				return io.NopCloser(stdin), nil
			},
		})
	}
	for _, name := range fs.Args() {
		sources = append(sources, fileSource(name))
	}

	reports, err := indexAll(sources, opts, settings.Jobs)
	if err != nil {
		fmt.Fprintf(stderr, "stree: %s\n", err)
		return 1
	}
	for _, r := range reports {
		r.write(stdout, queries)
	}
	return 0
}
