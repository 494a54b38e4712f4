package cli

import (
	"go.uber.org/zap"

	"github.com/google/uuid"
)

// newLogger builds the diagnostic logger for one invocation, tagged with a
// unique run ID. The report stream on stdout is program output, never log
// output, so diagnostics are opt-in and go to stderr.
func newLogger(tool string, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger.With(
		zap.String("tool", tool),
		zap.String("runID", uuid.New().String()))
}
