package answers

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A Group is the answers of the people in one group, one set per person.
type Group struct {
	Members []LetterSet
}

// Anyone is the set of questions to which anyone in g answered "yes".
func (g Group) Anyone() LetterSet {
	var s LetterSet
	for _, m := range g.Members {
		s = s.Union(m)
	}
	return s
}

// Everyone is the set of questions to which everyone in g answered "yes".
// It is empty if g has no members.
func (g Group) Everyone() LetterSet {
	if len(g.Members) == 0 {
		return 0
	}
	s := Full
	for _, m := range g.Members {
		s = s.Intersect(m)
	}
	return s
}

// maxLineSize bounds the length of a single line read by ScanGroups.
const maxLineSize = 1 << 30

// ScanGroups reads groups from r and calls fn for each one. Groups are
// separated by one or more blank lines (lines containing only whitespace).
// Each other line is one member of the current group.
func ScanGroups(r io.Reader, fn func(Group)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	var g Group
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if len(g.Members) > 0 {
				fn(g)
				g = Group{}
			}
			continue
		}
		g.Members = append(g.Members, Of(line))
	}
	if len(g.Members) > 0 {
		fn(g)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading groups: %s", err)
	}
	return nil
}

// Mode says how the answers of a group are combined.
type Mode int

const (
	Anyone   Mode = iota // union of the members' answers
	Everyone             // intersection of the members' answers
)

func (m Mode) String() string {
	switch m {
	case Anyone:
		return "anyone"
	case Everyone:
		return "everyone"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) combine(g Group) LetterSet {
	if m == Everyone {
		return g.Everyone()
	}
	return g.Anyone()
}

// A GroupTally accumulates the combined answers of a sequence of groups.
type GroupTally struct {
	Groups int
	Lines  int
	Sum    int
}

// Add adds g, combined according to m, to t.
func (t *GroupTally) Add(g Group, m Mode) {
	t.Groups++
	t.Lines += len(g.Members)
	t.Sum += m.combine(g).Len()
}

// SumGroups sums, over the groups of r, the number of questions answered
// "yes" according to m.
func SumGroups(r io.Reader, m Mode) (GroupTally, error) {
	var t GroupTally
	err := ScanGroups(r, func(g Group) { t.Add(g, m) })
	return t, err
}
