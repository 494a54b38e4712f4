// pkg/cli/app.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/David-Botos/ingress-lint/pkg/config"
	"github.com/David-Botos/ingress-lint/pkg/model"
)

// App binds one tool's command to the outcome of its classification pass.
// The exit code is derived from the same pass result that produced the
// report, never from a second scan.
type App struct {
	cmd    *cobra.Command
	result *model.PassResult
}

// Command exposes the underlying cobra command, mainly for tests that
// redirect its output streams
func (a *App) Command() *cobra.Command {
	return a.cmd
}

// Result returns the pass result of the last Execute, or nil if the run
// failed before the pass completed
func (a *App) Result() *model.PassResult {
	return a.result
}

// Execute runs the tool against args and returns the process exit code
func (a *App) Execute(args []string) int {
	a.result = nil
	a.cmd.SetArgs(args)
	if err := a.cmd.Execute(); err != nil {
		fmt.Fprintln(a.cmd.ErrOrStderr(), err)
		return ExitError
	}
	if a.result != nil && !a.result.Clean() {
		return ExitOffenders
	}
	return ExitClean
}

// NewColumnCountApp builds the enforce-column-count tool. The expected
// column count is either given with --cols or detected from the first three
// non-blank lines, which must agree.
func NewColumnCountApp() *App {
	app := &App{}
	var (
		cfg     config.RunConfig
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "enforce-column-count [flags] FILE",
		Short: "Validate that every row of a delimited file has the expected column count",
		Long: `enforce-column-count streams a delimited text file and reports every line
whose field count differs from the expected column count. The expected count
is given with --cols or detected from the first three non-blank lines, which
must all agree. Offenders are printed as "LINE <n>: <content>"; with -o or
--inplace, conforming rows are written out as a cleaned copy.

Splitting is naive: the delimiter is taken literally and quoted or escaped
delimiters are not understood. Exit codes: 0 no offenders, 1 offenders
found, 2 usage or configuration error.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.InputPath = args[0]
			cfg.Clean = cfg.OutputPath != "" || cfg.InPlace
			result, err := runColumnCount(cmd, &cfg, verbose)
			if err != nil {
				return err
			}
			app.result = result
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Delimiter, "delimiter", "d", config.DefaultDelimiter, "field delimiter, taken literally")
	flags.IntVarP(&cfg.TruncateAt, "truncate", "t", config.DefaultTruncateAt, "maximum reported line length in bytes")
	flags.IntVar(&cfg.RequiredColumns, "cols", 0, "expected column count (default: detect from the first three non-blank lines)")
	flags.StringVarP(&cfg.OutputPath, "output", "o", "", "write conforming rows to this path")
	flags.BoolVar(&cfg.InPlace, "inplace", false, "replace FILE with its cleaned content")
	flags.BoolVar(&cfg.KeepBlank, "keep-blank", false, "retain blank lines instead of reporting them as offenders")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable diagnostic logging on stderr")

	app.cmd = cmd
	return app
}

// NewIntegerColumnApp builds the enforce-integer-column tool, which requires
// the first column of every row to be a plain non-negative integer.
func NewIntegerColumnApp() *App {
	app := &App{}
	var (
		cfg     config.RunConfig
		remove  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "enforce-integer-column [flags] FILE",
		Short: "Validate that the first column of every row is a plain non-negative integer",
		Long: `enforce-integer-column streams a delimited text file and reports every
line whose first field, after trimming surrounding whitespace, is not one or
more ASCII digits. Leading zeros are accepted and no numeric range is
enforced. Offenders are printed as "LINE <n>: <content>".

With --remove, conforming rows are written to <input>.cleaned.csv (a single
.csv suffix is stripped first); -o chooses the destination and --inplace
replaces the input, either one implying cleaning. Exit codes: 0 no
offenders, 1 offenders found, 2 usage or configuration error.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.InputPath = args[0]
			if remove && cfg.OutputPath == "" && !cfg.InPlace {
				cfg.OutputPath = config.DefaultCleanedPath(cfg.InputPath)
			}
			cfg.Clean = cfg.OutputPath != "" || cfg.InPlace
			result, err := runIntegerColumn(cmd, &cfg, verbose)
			if err != nil {
				return err
			}
			app.result = result
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Delimiter, "delimiter", "d", config.DefaultDelimiter, "field delimiter, taken literally")
	flags.IntVarP(&cfg.TruncateAt, "truncate", "t", config.DefaultTruncateAt, "maximum reported line length in bytes")
	flags.BoolVar(&remove, "remove", false, "write conforming rows to the default cleaned path")
	flags.StringVarP(&cfg.OutputPath, "output", "o", "", "write conforming rows to this path (implies cleaning)")
	flags.BoolVar(&cfg.InPlace, "inplace", false, "replace FILE with its cleaned content (implies cleaning)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable diagnostic logging on stderr")

	app.cmd = cmd
	return app
}
