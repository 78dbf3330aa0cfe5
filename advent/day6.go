package main

import (
	"fmt"
	"io"

	"github.com/cespare/aoc2020/answers"
	"github.com/kr/pretty"
)

func init() {
	register("6", "distinct yes answers, summed over lines", day6)
	register("6a", "questions anyone in a group answered yes to", day6Groups(answers.Anyone))
	register("6b", "questions everyone in a group answered yes to", day6Groups(answers.Everyone))
}

// day6 treats every line as a group of its own.
func day6(r *runner) (result, error) {
	var t answers.Tally
	if r.trace != nil {
		t.OnLine = func(s answers.LetterSet) {
			fmt.Fprintf(r.trace, "line %d: %q (%d)\n", t.Lines, s, s.Len())
		}
	}
	if err := t.Consume(r.in); err != nil {
		// A failed read ends the input like EOF does.
		r.log.Printf("error reading input (stopping after %d lines): %s", t.Lines, err)
	}
	return result{sum: t.Sum, lines: t.Lines}, nil
}

func day6Groups(m answers.Mode) func(*runner) (result, error) {
	return func(r *runner) (result, error) {
		var t answers.GroupTally
		err := answers.ScanGroups(r.in, func(g answers.Group) {
			t.Add(g, m)
			if r.trace != nil {
				traceGroup(r.trace, t.Groups, g)
			}
		})
		if err != nil {
			return result{}, err
		}
		return result{sum: t.Sum, lines: t.Lines, groups: t.Groups}, nil
	}
}

type groupTrace struct {
	Group    int
	Members  []string
	Anyone   string
	Everyone string
}

func traceGroup(w io.Writer, n int, g answers.Group) {
	gt := groupTrace{
		Group:    n,
		Anyone:   g.Anyone().String(),
		Everyone: g.Everyone().String(),
	}
	for _, m := range g.Members {
		gt.Members = append(gt.Members, m.String())
	}
	pretty.Fprintf(w, "%# v\n", gt)
}
