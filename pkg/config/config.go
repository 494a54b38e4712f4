// pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Default values shared by both tools
const (
	DefaultDelimiter  = ","
	DefaultTruncateAt = 200
)

const (
	csvSuffix     = ".csv"
	cleanedSuffix = ".cleaned.csv"
)

// RunConfig represents the full configuration of a single invocation
type RunConfig struct {
	// Input
	InputPath string // Path of the file to validate

	// Splitting and reporting
	Delimiter  string // Field separator, taken literally (tabs and control characters included)
	TruncateAt int    // Maximum reported line length in bytes before truncation

	// Cleaning
	Clean      bool   // Whether conforming rows are written anywhere
	OutputPath string // Destination for the cleaned copy; empty unless cleaning to a separate file
	InPlace    bool   // Replace the input file atomically with its cleaned content

	// Column-count tool settings
	RequiredColumns int  // Expected field count; 0 means detect from the file head
	KeepBlank       bool // Retain blank lines instead of classifying them
}

// Validate ensures the configuration is internally consistent
func (c *RunConfig) Validate() error {
	if c.InputPath == "" {
		return errors.New("input file path is required")
	}
	if c.Delimiter == "" {
		return errors.New("delimiter must not be empty")
	}
	if c.TruncateAt <= 0 {
		return fmt.Errorf("truncation length must be positive, got %d", c.TruncateAt)
	}
	if c.RequiredColumns < 0 {
		return fmt.Errorf("column count must be positive, got %d", c.RequiredColumns)
	}
	if c.OutputPath != "" && c.InPlace {
		return errors.New("an explicit output path and in-place replacement are mutually exclusive")
	}
	if c.InPlace && !c.Clean {
		return errors.New("in-place replacement requires cleaning to be enabled")
	}
	return nil
}

// CheckInput verifies the input path names an existing regular file.
// It only stats; the file itself is not opened here.
func (c *RunConfig) CheckInput() error {
	info, err := os.Stat(c.InputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file %s does not exist", c.InputPath)
		}
		return fmt.Errorf("cannot stat input file %s: %w", c.InputPath, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input %s is not a regular file", c.InputPath)
	}
	return nil
}

// DefaultCleanedPath derives the default cleaned-copy path for an input:
// a single trailing ".csv" is stripped if present, then ".cleaned.csv" is
// appended. "data.csv" and "data" both clean to "data.cleaned.csv".
func DefaultCleanedPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, csvSuffix) + cleanedSuffix
}
