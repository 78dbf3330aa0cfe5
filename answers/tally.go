package answers

import "io"

// A Tally sums, over lines, the number of distinct letters on each line.
// Bytes are written to it with Write; each '\n' ends a line. Call Flush
// after the last write to count a final line with no trailing newline.
//
// The zero value is ready to use.
type Tally struct {
	Lines int   // completed lines
	Bytes int64 // bytes read by Consume
	Sum   int

	// OnLine, if non-nil, is called with the letter set of each line.
	OnLine func(LetterSet)

	cur     LetterSet
	partial bool
}

// Write consumes p. It never returns an error.
func (t *Tally) Write(p []byte) (int, error) {
	for _, c := range p {
		if c == '\n' {
			t.endLine()
			continue
		}
		t.cur = t.cur.Add(c)
		t.partial = true
	}
	return len(p), nil
}

// Flush ends the current line, if any bytes have been written since the
// last newline.
func (t *Tally) Flush() {
	if t.partial {
		t.endLine()
	}
}

func (t *Tally) endLine() {
	t.Sum += t.cur.Len()
	t.Lines++
	if t.OnLine != nil {
		t.OnLine(t.cur)
	}
	t.cur = 0
	t.partial = false
}

// Consume writes all of r to t and then flushes t. If reading fails, t
// still includes everything read before the failure (including a partial
// last line) and the error is returned.
func (t *Tally) Consume(r io.Reader) error {
	n, err := io.Copy(t, r)
	t.Bytes += n
	t.Flush()
	return err
}

// SumLines tallies all of r. See Consume for the error behavior.
func SumLines(r io.Reader) (Tally, error) {
	var t Tally
	err := t.Consume(r)
	return t, err
}
