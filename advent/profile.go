package main

import (
	"fmt"
	"os"

	"github.com/felixge/fgprof"
)

// startProfile starts a wall-clock profile written to filename.
// The returned function stops the profile and closes the file.
func startProfile(filename string) (stop func() error, err error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("error creating profile: %s", err)
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return fmt.Errorf("error writing profile: %s", err)
		}
		return f.Close()
	}, nil
}
