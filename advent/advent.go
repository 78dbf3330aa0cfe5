package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/vaughan0/go-ini"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}

	s, ok := solutions[os.Args[1]]
	if !ok {
		log.Fatalf("unknown solution %q", os.Args[1])
	}
	cfg, err := loadConfig()
	if err != nil {
		log.Printf("ignoring config: %s", err)
	}
	env := &environment{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		config: cfg,
	}
	if err := env.run(os.Args[1], s, os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func usage(w io.Writer) {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(w, "usage: %s [solution] [flags]\n", os.Args[0])
	fmt.Fprintln(w, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-4s %s\n", name, solutions[name].desc)
	}
}

type solution struct {
	desc string
	fn   func(r *runner) (result, error)
}

// A runner is the input side of one run of a solution.
type runner struct {
	in    io.Reader
	log   *log.Logger
	trace io.Writer // nil unless tracing
}

type result struct {
	sum    int
	lines  int
	groups int
}

var solutions = make(map[string]solution)

func register(name, desc string, fn func(*runner) (result, error)) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = solution{desc: desc, fn: fn}
}

type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	config ini.File
}

// run runs s once. The elapsed time of the solution (reading and tallying
// its input) is written to stdout in milliseconds followed by the answer.
func (e *environment) run(name string, s solution, args []string) error {
	opts, err := parseOptions(name, args, e.config, e.stderr)
	if err != nil {
		return err
	}

	r := &runner{log: log.New(e.stderr, "", 0)}
	if opts.trace {
		r.trace = e.stderr
	}
	in := &countingReader{r: e.stdin}
	r.in = in
	if opts.interactive {
		pr, err := newPromptReader(e.stderr)
		if err != nil {
			return err
		}
		defer pr.Close()
		in.r = pr
	}

	var stopProfile func() error
	if opts.profile != "" {
		stopProfile, err = startProfile(opts.profile)
		if err != nil {
			return err
		}
	}

	start := time.Now()
	res, err := s.fn(r)
	elapsed := time.Since(start)

	if stopProfile != nil {
		if err := stopProfile(); err != nil {
			return err
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(e.stdout, elapsed.Milliseconds())
	fmt.Fprintln(e.stdout, res.sum)

	if opts.verbose {
		st, err := collectStats(elapsed, in.n, res)
		if err != nil {
			return err
		}
		r.log.Printf("%s: %s", name, st)
	}
	return nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(b []byte) (int, error) {
	n, err := cr.r.Read(b)
	cr.n += int64(n)
	return n, err
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
