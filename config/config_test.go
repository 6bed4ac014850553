package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "blobs", cfg.Dataset)
	assert.Equal(t, "ovr", cfg.Strategy)
	assert.Equal(t, "perceptron", cfg.Learner)
	assert.Equal(t, 4, cfg.Classes)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, "table", cfg.Output)
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multiclass.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: ovo\nclasses: 6\nlearner: logistic\nseed: 9\n"), 0o644))

	t.Setenv("MULTICLASS_CLASSES", "7")
	t.Setenv("MULTICLASS_SALT_LIMIT", "128")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Flags(fs)
	require.NoError(t, fs.Parse([]string{"--learner=hashtron", "--per-class", "3"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "ovo", cfg.Strategy, "file over defaults")
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 7, cfg.Classes, "env over file")
	assert.Equal(t, uint32(128), cfg.SaltLimit)
	assert.Equal(t, "hashtron", cfg.Learner, "flags over file")
	assert.Equal(t, 3, cfg.PerClass)
	assert.Equal(t, 2, cfg.Dim, "unset flags keep the lower sources")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load("", nil)
		require.NoError(t, err)
		return cfg
	}
	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"strategy", func(c *Config) { c.Strategy = "all-pairs" }, "Strategy"},
		{"learner", func(c *Config) { c.Learner = "svm" }, "Learner"},
		{"one class", func(c *Config) { c.Classes = 1 }, "Classes"},
		{"csv without path", func(c *Config) { c.Dataset = "csv" }, "CSVPath"},
		{"significance", func(c *Config) { c.Significance = 100 }, "Significance"},
		{"metrics address", func(c *Config) { c.MetricsAddr = "nowhere" }, "MetricsAddr"},
		{"output", func(c *Config) { c.Output = "xml" }, "Output"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.edit(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}

	cfg := valid()
	cfg.Dataset = "csv"
	cfg.CSVPath = "iris.csv"
	cfg.MetricsAddr = "localhost:9090"
	assert.NoError(t, Validate(cfg))
}
