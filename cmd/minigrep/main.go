package main

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hyperifyio/minigrep/internal/app"
)

func main() {
	setupLogging(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		code := exitCode(err)
		if code == 2 {
			log.Error().Err(err).Msg("problem parsing arguments")
		} else {
			log.Error().Err(err).Msg("application error")
		}
		os.Exit(code)
	}
}

func setupLogging(w io.Writer, color bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !color})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// configError marks failures that happen before any file is touched:
// bad flags, unreadable config, missing positional arguments.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// exitCode maps configuration failures to 2 and everything else to 1.
func exitCode(err error) int {
	var ce *configError
	if errors.As(err, &ce) || errors.Is(err, app.ErrMissingArgument) {
		return 2
	}
	return 1
}

type rootOptions struct {
	ignoreCase bool
	verbose    bool
	configPath string
	envFiles   []string
	encoding   string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	cmd := &cobra.Command{
		Use:   "minigrep [flags] [--] <query> <filename>",
		Short: "Print the lines of a file that contain a query",
		Long: `Prints every line of <filename> that contains <query> as a plain substring.
Matching is case-sensitive unless CASE_INSENSITIVE is set (to any value)
or --ignore-case is given.

A query that starts with "-" is read as a flag; put "--" before it:
  minigrep -- -1 notes.txt`,
		Version:       app.VersionString(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, &opts, args)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &configError{err: err}
	})

	f := cmd.Flags()
	f.BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "match regardless of case (same as setting CASE_INSENSITIVE)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (.yaml, .toml or .json); defaults to $MINIGREP_CONFIG")
	f.StringArrayVar(&opts.envFiles, "env-file", nil, "dotenv file to load before reading the environment (repeatable)")
	f.StringVarP(&opts.encoding, "encoding", "e", "", "encoding of the input file, e.g. latin1 or windows-1251 (default utf-8)")
	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions, args []string) error {
	settings, err := loadSettings(cmd, opts)
	if err != nil {
		return &configError{err: err}
	}
	if settings.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	caseInsensitive := app.CaseInsensitiveFromEnv(os.LookupEnv) || settings.IgnoreCase
	cfg, err := app.Resolve(app.ProgramArgs(cmd.Root().Name(), args), caseInsensitive)
	if err != nil {
		return &configError{err: err}
	}
	log.Debug().
		Str("query", cfg.Query()).
		Str("path", cfg.TargetPath()).
		Bool("case_sensitive", cfg.CaseSensitive()).
		Msg("config resolved")

	return app.New(cfg, settings, cmd.OutOrStdout()).Run(cmd.Context())
}

// loadSettings layers defaults, config file, MINIGREP_* env and flags, in
// that order of precedence.
func loadSettings(cmd *cobra.Command, opts *rootOptions) (app.Settings, error) {
	var s app.Settings
	if err := app.LoadEnvFiles(opts.envFiles...); err != nil {
		return s, err
	}

	path := opts.configPath
	if strings.TrimSpace(path) == "" {
		path = os.Getenv("MINIGREP_CONFIG")
	}
	if strings.TrimSpace(path) != "" {
		fc, err := app.LoadConfigFile(path)
		if err != nil {
			return s, err
		}
		app.ApplyFileConfig(&s, fc)
	}

	app.ApplyEnvOverrides(&s)

	f := cmd.Flags()
	if f.Changed("ignore-case") {
		s.IgnoreCase = opts.ignoreCase
	}
	if f.Changed("verbose") {
		s.Verbose = opts.verbose
	}
	if f.Changed("encoding") {
		s.Encoding = opts.encoding
	}
	return s, app.ValidateSettings(s)
}
