package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/takaishi/minigrep/config"
	"github.com/takaishi/minigrep/search"
	"github.com/takaishi/minigrep/tui"
)

// Version is set via -ldflags
var Version = "dev"

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

// usageError marks flag and configuration errors
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigrep [flags] <pattern> <path>",
		Short: "Recursively search files for a literal pattern",
		Long: `minigrep walks <path> and prints every line that contains <pattern>,
one "<file>(<line>): <text>" line per match. Line numbers start at 0 and
every occurrence of the pattern is highlighted.

The pattern is a literal, case-sensitive substring. Flags are only read
before the pattern, and a pattern that is not a known flag is searched for
as is ("minigrep -x ."). Use -- to search for a flag name: "minigrep -- -i .".

Flags can also be set through MINIGREP_* environment variables,
e.g. MINIGREP_COLOR=never.`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, fs, args)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	config.RegisterFlags(cmd.Flags())
	cmd.Flags().SetInterspersed(false)
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()
	return cmd
}

// literalArgs ends flag parsing at the first argument that is not a known
// flag, so that dash-prefixed patterns reach the search as positionals.
func literalArgs(flags *pflag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || arg == "-" || !strings.HasPrefix(arg, "-") {
			return args
		}

		known, takesNext := lookupFlag(flags, arg)
		if !known {
			return slices.Insert(slices.Clone(args), i, "--")
		}
		if takesNext {
			i++
		}
	}
	return args
}

// lookupFlag reports whether arg names registered flags and whether the
// last of them takes its value from the next argument.
func lookupFlag(flags *pflag.FlagSet, arg string) (known, takesNext bool) {
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, hasValue := strings.Cut(name, "=")
		f := flags.Lookup(name)
		if f == nil {
			return false, false
		}
		return true, !hasValue && f.NoOptDefVal == ""
	}

	shorthands := arg[1:]
	for i := 0; i < len(shorthands); i++ {
		c := shorthands[i]
		if c == '=' && i > 0 {
			return true, false
		}
		if c >= 0x80 {
			return false, false
		}
		f := flags.ShorthandLookup(string(c))
		if f == nil {
			return false, false
		}
		if f.NoOptDefVal == "" {
			// the rest of the argument, if any, is the value
			return true, i == len(shorthands)-1
		}
	}
	return true, false
}

// run executes the command line and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(afero.NewOsFs())
	cmd.SetArgs(literalArgs(cmd.Flags(), args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return exitCode(cmd.ExecuteContext(ctx), stdout, stderr)
}

// exitCode reports err to the user and maps it to an exit code
func exitCode(err error, stdout, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}

	var argsErr *config.ArgsError
	if errors.As(err, &argsErr) {
		fmt.Fprintln(stdout, argsErr.Message())
		return exitUsage
	}

	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "Error: %v\n", usageErr.err)
		fmt.Fprintln(stderr, "Run 'minigrep --help' for usage.")
		return exitUsage
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitFailed
}

func runSearch(cmd *cobra.Command, fs afero.Fs, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return &usageError{err: err}
	}

	logger, closer, err := config.NewLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closer.Close()

	req, err := config.ParseArgs(fs, args)
	if err != nil {
		return err
	}

	engine := search.NewEngine(fs, logger)
	engine.Policy = cfg.Policy()
	engine.Scanner.Highlighter = cfg.Highlighter(cmd.OutOrStdout())

	logger.Debug("searching", "pattern", req.Pattern, "path", req.Path, "policy", engine.Policy)
	results, err := engine.Search(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if skipped := engine.Skipped(); skipped > 0 {
		logger.Info("some entries could not be read", "skipped", skipped)
	}

	if cfg.Interactive {
		return browse(cmd.Context(), cfg, fs, logger, req, results, engine.Skipped())
	}
	return search.Print(cmd.OutOrStdout(), results)
}

// browse hands the results to the terminal UI
func browse(ctx context.Context, cfg *config.Config, fs afero.Fs, logger *log.Logger, req search.Request, results search.ResultSet, skipped int) error {
	ed, err := cfg.ResolveEditor()
	if err != nil {
		logger.Warn("opening matches is disabled", "err", err)
	}

	// The UI owns the terminal; background searches report skips in the status line instead.
	quiet := log.New(io.Discard)

	return tui.Run(ctx, tui.Options{
		Fs:       fs,
		Searcher: search.NewSearcher(fs, quiet, cfg.Policy()),
		Editor:   ed,
		Pattern:  req.Pattern,
		Root:     req.Path,
		Results:  results,
		Skipped:  skipped,
	})
}
