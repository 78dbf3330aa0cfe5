package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vaughan0/go-ini"
)

type options struct {
	verbose     bool
	trace       bool
	interactive bool
	profile     string
}

// configurable lists the flags that may be given defaults in the config
// file. They only affect diagnostics on stderr.
var configurable = map[string]bool{
	"v":     true,
	"trace": true,
}

// parseOptions parses the flags of solution name. Defaults for the
// configurable flags are taken from the [default] and [name] sections of
// cfg, in that order; args override both. Config entries that cannot be
// applied are reported on stderr and otherwise ignored.
func parseOptions(name string, args []string, cfg ini.File, stderr io.Writer) (*options, error) {
	var opts options
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&opts.verbose, "v", false, "Print run statistics to stderr")
	flags.BoolVar(&opts.trace, "trace", false, "Print the answers of each line or group to stderr")
	flags.BoolVar(&opts.interactive, "i", false, "Read input from an interactive prompt")
	flags.StringVar(&opts.profile, "profile", "", "Write a wall-clock profile (pprof format) to `file`")

	for _, section := range []string{"default", name} {
		for k, v := range cfg[section] {
			if !configurable[k] {
				fmt.Fprintf(stderr, "ignoring config key %q in [%s]\n", k, section)
				continue
			}
			if err := flags.Set(k, v); err != nil {
				fmt.Fprintf(stderr, "ignoring bad config value %s = %q in [%s]: %s\n", k, v, section, err)
			}
		}
	}
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %q", flags.Args())
	}
	return &opts, nil
}

// configPath is where solution defaults are read from: $ADVENT_CONFIG if
// set, and otherwise ~/.config/advent.ini.
func configPath() (string, error) {
	if p := os.Getenv("ADVENT_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "advent.ini"), nil
}

// loadConfig reads the config file. A missing file yields an empty config.
// Callers should treat an error as advisory and carry on without config.
func loadConfig() (ini.File, error) {
	path, err := configPath()
	if err != nil {
		// No home directory; nothing to load.
		return ini.File{}, nil
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (ini.File, error) {
	cfg, err := ini.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ini.File{}, nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	return cfg, nil
}
