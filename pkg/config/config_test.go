package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() RunConfig {
	return RunConfig{
		InputPath:  "input.csv",
		Delimiter:  DefaultDelimiter,
		TruncateAt: DefaultTruncateAt,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunConfig)
		wantErr string
	}{
		{"defaults are valid", func(c *RunConfig) {}, ""},
		{"missing input", func(c *RunConfig) { c.InputPath = "" }, "input file path is required"},
		{"empty delimiter", func(c *RunConfig) { c.Delimiter = "" }, "delimiter must not be empty"},
		{"zero truncation", func(c *RunConfig) { c.TruncateAt = 0 }, "truncation length must be positive"},
		{"negative truncation", func(c *RunConfig) { c.TruncateAt = -1 }, "truncation length must be positive"},
		{"negative columns", func(c *RunConfig) { c.RequiredColumns = -2 }, "column count must be positive"},
		{
			"output path conflicts with inplace",
			func(c *RunConfig) {
				c.Clean = true
				c.OutputPath = "out.csv"
				c.InPlace = true
			},
			"mutually exclusive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCheckInput(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0644))

	cfg := validConfig()
	cfg.InputPath = path
	assert.NoError(t, cfg.CheckInput())

	cfg.InputPath = filepath.Join(dir, "missing.csv")
	err := cfg.CheckInput()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	cfg.InputPath = dir
	err = cfg.CheckInput()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a regular file")
}

func TestDefaultCleanedPath(t *testing.T) {
	assert.Equal(t, "data.cleaned.csv", DefaultCleanedPath("data.csv"))
	assert.Equal(t, "data.cleaned.csv", DefaultCleanedPath("data"))
	assert.Equal(t, "dir/data.cleaned.csv", DefaultCleanedPath("dir/data.csv"))
	assert.Equal(t, "data.txt.cleaned.csv", DefaultCleanedPath("data.txt"))
	assert.Equal(t, "data.csv.cleaned.csv", DefaultCleanedPath("data.csv.csv"))
}
