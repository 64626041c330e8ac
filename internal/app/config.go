package app

import (
	"errors"
	"fmt"
	"iter"
)

// ErrMissingArgument is matched by every MissingArgumentError.
var ErrMissingArgument = errors.New("not enough arguments")

// MissingArgumentError reports which positional argument was absent.
type MissingArgumentError struct {
	Arg string // "query" or "filename"
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%v: missing %s", ErrMissingArgument, e.Arg)
}

func (e *MissingArgumentError) Is(target error) bool { return target == ErrMissingArgument }

// Config is the resolved input of a single search. It is built once by
// Resolve and never changes afterwards.
type Config struct {
	query         string
	targetPath    string
	caseSensitive bool
}

func (c Config) Query() string       { return c.query }
func (c Config) TargetPath() string  { return c.targetPath }
func (c Config) CaseSensitive() bool { return c.caseSensitive }

// Resolve builds a Config from an argument sequence shaped like os.Args: the
// first element names the program and is skipped, then the query and the
// file name follow. Elements are pulled one at a time and resolution stops at
// the first one that is missing. Anything after the file name is not read.
func Resolve(args iter.Seq[string], caseInsensitive bool) (Config, error) {
	next, stop := iter.Pull(args)
	defer stop()

	if _, ok := next(); !ok {
		return Config{}, &MissingArgumentError{Arg: "query"}
	}
	query, ok := next()
	if !ok {
		return Config{}, &MissingArgumentError{Arg: "query"}
	}
	path, ok := next()
	if !ok {
		return Config{}, &MissingArgumentError{Arg: "filename"}
	}
	return Config{
		query:         query,
		targetPath:    path,
		caseSensitive: !caseInsensitive,
	}, nil
}

// ProgramArgs yields program followed by args, the shape Resolve expects.
func ProgramArgs(program string, args []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(program) {
			return
		}
		for _, a := range args {
			if !yield(a) {
				return
			}
		}
	}
}
