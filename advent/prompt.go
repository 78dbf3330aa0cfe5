package main

import (
	"io"

	"github.com/chzyer/readline"
)

type lineReader interface {
	Readline() (string, error)
}

// A promptReader turns lines typed at a prompt into a newline-terminated
// stream. Ctrl-C discards the line being typed; Ctrl-D ends the input.
type promptReader struct {
	lr    lineReader
	close func() error
	buf   []byte
}

func newPromptReader(stderr io.Writer) (*promptReader, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
		// Keep stdout for the answer.
		Stdout: stderr,
	})
	if err != nil {
		return nil, err
	}
	return &promptReader{lr: l, close: l.Close}, nil
}

func (pr *promptReader) Read(b []byte) (int, error) {
	for len(pr.buf) == 0 {
		line, err := pr.lr.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		default:
			return 0, err
		}
		pr.buf = append(pr.buf[:0], line...)
		pr.buf = append(pr.buf, '\n')
	}
	n := copy(b, pr.buf)
	pr.buf = pr.buf[n:]
	return n, nil
}

func (pr *promptReader) Close() error {
	if pr.close == nil {
		return nil
	}
	return pr.close()
}
