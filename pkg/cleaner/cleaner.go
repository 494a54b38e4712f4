// pkg/cleaner/cleaner.go
package cleaner

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/David-Botos/ingress-lint/pkg/config"
	"github.com/David-Botos/ingress-lint/pkg/model"
	"github.com/David-Botos/ingress-lint/pkg/rule"
)

// Cleaner runs the single classify/report/filter pass over an input stream
type Cleaner struct {
	logger *zap.Logger
}

// NewCleaner creates a new Cleaner instance
func NewCleaner(logger *zap.Logger) (*Cleaner, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Cleaner{logger: logger}, nil
}

// Process streams the input line by line, in order, applying the active
// rule. Offending lines are written to the report stream as they are found;
// when cleaned is non-nil, every conforming line (plus retained blanks) is
// copied to it byte for byte with its original terminator. Only the current
// line is ever held in memory, and the returned counters come from this
// single pass, so the reported offenders and the rows excluded from the
// cleaned copy cannot drift apart.
func (c *Cleaner) Process(
	input io.Reader,
	activeRule rule.Rule,
	cfg *config.RunConfig,
	report io.Writer,
	cleaned io.Writer,
) (*model.PassResult, error) {
	if activeRule == nil {
		return nil, errors.New("rule cannot be nil")
	}
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	result := &model.PassResult{}
	lines := model.NewLineReader(input)

	for {
		row, terminated, err := lines.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", row.Number, err)
		}
		result.LinesScanned++

		// Retained blanks bypass classification entirely and are copied
		// through unfiltered.
		if cfg.KeepBlank && row.IsBlank() {
			result.RetainedBlanks++
			if cleaned != nil {
				if err := writeLine(cleaned, row, terminated); err != nil {
					return nil, err
				}
				result.LinesWritten++
			}
			continue
		}

		if activeRule.Valid(row, cfg.Delimiter) {
			if cleaned != nil {
				if err := writeLine(cleaned, row, terminated); err != nil {
					return nil, err
				}
				result.LinesWritten++
			}
			continue
		}

		result.Offenders++
		if _, err := fmt.Fprintln(report, FormatEntry(row.Number, row.Text, cfg.TruncateAt)); err != nil {
			return nil, fmt.Errorf("failed to report line %d: %w", row.Number, err)
		}
	}

	c.logger.Debug("Classification pass complete",
		zap.String("rule", activeRule.Name()),
		zap.Int64("linesScanned", result.LinesScanned),
		zap.Int64("offenders", result.Offenders),
		zap.Int64("retainedBlanks", result.RetainedBlanks),
		zap.Int64("linesWritten", result.LinesWritten))
	return result, nil
}

// writeLine copies one row to the cleaned destination, restoring its
// newline only if the original line had one
func writeLine(w io.Writer, row model.Row, terminated bool) error {
	text := row.Text
	if terminated {
		text += "\n"
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("failed to write line %d: %w", row.Number, err)
	}
	return nil
}
