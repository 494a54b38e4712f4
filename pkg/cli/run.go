// pkg/cli/run.go
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/David-Botos/ingress-lint/pkg/cleaner"
	"github.com/David-Botos/ingress-lint/pkg/config"
	"github.com/David-Botos/ingress-lint/pkg/detector"
	"github.com/David-Botos/ingress-lint/pkg/fsutil"
	"github.com/David-Botos/ingress-lint/pkg/model"
	"github.com/David-Botos/ingress-lint/pkg/rule"
)

// runColumnCount resolves the column-count tool's configuration, detects the
// required column count when --cols was not given, and executes the pass
func runColumnCount(cmd *cobra.Command, cfg *config.RunConfig, verbose bool) (*model.PassResult, error) {
	logger := newLogger("enforce-column-count", verbose)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		return nil, &Error{Kind: KindUsage, Err: err}
	}
	if err := cfg.CheckInput(); err != nil {
		return nil, &Error{Kind: KindInput, Err: err}
	}

	if cfg.RequiredColumns == 0 {
		det, err := detector.NewDetector(logger)
		if err != nil {
			return nil, &Error{Kind: KindDetection, Err: err}
		}
		columns, err := det.DetectColumns(cfg.InputPath, cfg.Delimiter)
		if err != nil {
			return nil, &Error{Kind: KindDetection, Err: err}
		}
		cfg.RequiredColumns = columns
	}

	activeRule := rule.ColumnCount{RequiredColumns: cfg.RequiredColumns}
	return executePass(cmd, cfg, activeRule, logger)
}

// runIntegerColumn resolves the integer-column tool's configuration and
// executes the pass
func runIntegerColumn(cmd *cobra.Command, cfg *config.RunConfig, verbose bool) (*model.PassResult, error) {
	logger := newLogger("enforce-integer-column", verbose)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		return nil, &Error{Kind: KindUsage, Err: err}
	}
	if err := cfg.CheckInput(); err != nil {
		return nil, &Error{Kind: KindInput, Err: err}
	}

	return executePass(cmd, cfg, rule.IntegerKey{}, logger)
}

// executePass opens the input, wires up the cleaned destination when
// cleaning is requested, and runs the single classification pass. In-place
// replacement is committed only after the whole pass succeeds; any failure
// discards the temporary file and leaves the original untouched.
func executePass(cmd *cobra.Command, cfg *config.RunConfig, activeRule rule.Rule, logger *zap.Logger) (*model.PassResult, error) {
	input, err := os.Open(cfg.InputPath)
	if err != nil {
		return nil, &Error{Kind: KindInput, Err: fmt.Errorf("cannot open %s: %w", cfg.InputPath, err)}
	}
	defer input.Close()

	var (
		cleaned io.Writer
		commit  func() error
		discard func()
	)
	switch {
	case cfg.InPlace:
		mode := os.FileMode(0644)
		if info, statErr := os.Stat(cfg.InputPath); statErr == nil {
			mode = info.Mode().Perm()
		}
		writer, err := fsutil.NewAtomicWriter(cfg.InputPath, mode)
		if err != nil {
			return nil, &Error{Kind: KindWrite, Err: err}
		}
		buffered := bufio.NewWriter(writer)
		cleaned = buffered
		commit = func() error {
			if err := buffered.Flush(); err != nil {
				return err
			}
			return writer.Commit()
		}
		discard = writer.Discard
	case cfg.Clean:
		out, err := os.Create(cfg.OutputPath)
		if err != nil {
			return nil, &Error{Kind: KindWrite, Err: fmt.Errorf("cannot create %s: %w", cfg.OutputPath, err)}
		}
		buffered := bufio.NewWriter(out)
		cleaned = buffered
		commit = func() error {
			if err := buffered.Flush(); err != nil {
				out.Close()
				return err
			}
			return out.Close()
		}
		discard = func() { out.Close() }
	}

	cl, err := cleaner.NewCleaner(logger)
	if err != nil {
		if discard != nil {
			discard()
		}
		return nil, &Error{Kind: KindWrite, Err: err}
	}

	result, err := cl.Process(input, activeRule, cfg, cmd.OutOrStdout(), cleaned)
	if err != nil {
		if discard != nil {
			discard()
		}
		kind := KindWrite
		if cleaned == nil {
			kind = KindInput
		}
		return nil, &Error{Kind: kind, Err: err}
	}

	if commit != nil {
		if err := commit(); err != nil {
			if discard != nil {
				discard()
			}
			return nil, &Error{Kind: KindWrite, Err: err}
		}
	}
	return result, nil
}
