// pkg/detector/detector.go
package detector

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/David-Botos/ingress-lint/pkg/model"
)

// sampleSize is the number of non-blank lines whose field counts must agree
const sampleSize = 3

// Detector infers the required column count from the head of an input file
type Detector struct {
	logger *zap.Logger
}

// NewDetector creates a new Detector instance
func NewDetector(logger *zap.Logger) (*Detector, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Detector{logger: logger}, nil
}

// DetectColumns scans the file from the start, collecting the field counts
// of up to the first three non-blank lines, and returns their common value.
// The scan stops as soon as the sample is full; the rest of the file is
// never read. The scan is independent of the classification pass that
// follows, so a file mutated between the two passes gets no consistency
// guarantee.
func (d *Detector) DetectColumns(path, delimiter string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("cannot open %s for detection: %w", path, err)
	}
	defer f.Close()

	counts, err := sampleFieldCounts(f, delimiter)
	if err != nil {
		return 0, fmt.Errorf("sampling %s: %w", path, err)
	}

	if len(counts) == 0 {
		return 0, errors.New("no non-empty lines; specify the column count explicitly")
	}
	for _, count := range counts[1:] {
		if count != counts[0] {
			return 0, fmt.Errorf("inconsistent column counts in the first %d non-empty lines: %s; specify the count explicitly",
				len(counts), formatCounts(counts))
		}
	}

	d.logger.Debug("Detected column count",
		zap.String("path", path),
		zap.Int("columns", counts[0]),
		zap.Int("sampled", len(counts)))
	return counts[0], nil
}

// sampleFieldCounts reads lines until sampleSize non-blank lines were seen
// or the input ends, returning their field counts in file order
func sampleFieldCounts(r io.Reader, delimiter string) ([]int, error) {
	lr := model.NewLineReader(r)
	counts := make([]int, 0, sampleSize)

	for len(counts) < sampleSize {
		row, _, err := lr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if row.IsBlank() {
			continue
		}
		counts = append(counts, row.FieldCount(delimiter))
	}
	return counts, nil
}

func formatCounts(counts []int) string {
	parts := make([]string, len(counts))
	for i, count := range counts {
		parts[i] = strconv.Itoa(count)
	}
	return strings.Join(parts, " ")
}
