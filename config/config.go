// Package config loads the training configuration.
//
// Precedence, highest first: flags, MULTICLASS_ environment variables, the YAML
// file, defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "MULTICLASS_"

// Config is one training run.
type Config struct {
	// Dataset is the data source: generated blobs, the square root table or a CSV file.
	Dataset  string  `koanf:"dataset" validate:"oneof=blobs squareroot csv"`
	CSVPath  string  `koanf:"csv_path" validate:"required_if=Dataset csv"`
	Size     string  `koanf:"size" validate:"oneof=tiny small medium big huge"`
	Classes  int     `koanf:"classes" validate:"min=2,max=256"`
	PerClass int     `koanf:"per_class" validate:"min=1"`
	Dim      int     `koanf:"dim" validate:"min=2"`
	Spread   float64 `koanf:"spread" validate:"gt=0"`

	Strategy   string `koanf:"strategy" validate:"oneof=ovr ovo ecoc-dense ecoc-sparse"`
	CodeLength int    `koanf:"code_length" validate:"min=0"`

	Learner   string  `koanf:"learner" validate:"oneof=perceptron logistic hashtron"`
	Epochs    int     `koanf:"epochs" validate:"min=0"`
	LearnRate float64 `koanf:"learn_rate" validate:"gte=0"`
	L2        float64 `koanf:"l2" validate:"gte=0"`
	SaltLimit uint32  `koanf:"salt_limit"`

	Threads      int   `koanf:"threads" validate:"min=0"`
	Seed         int64 `koanf:"seed"`
	Significance int   `koanf:"significance" validate:"min=0,max=99"`

	LogLevel    string `koanf:"log_level" validate:"oneof=debug info warn error"`
	MetricsAddr string `koanf:"metrics_addr" validate:"omitempty,hostname_port"`
	Output      string `koanf:"output" validate:"oneof=table yaml"`
}

// Defaults returns the default value of every key.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"dataset":      "blobs",
		"csv_path":     "",
		"size":         "small",
		"classes":      4,
		"per_class":    50,
		"dim":          2,
		"spread":       1.0,
		"strategy":     "ovr",
		"code_length":  0,
		"learner":      "perceptron",
		"epochs":       0,
		"learn_rate":   0.0,
		"l2":           0.0,
		"salt_limit":   0,
		"threads":      0,
		"seed":         1,
		"significance": 0,
		"log_level":    "info",
		"metrics_addr": "",
		"output":       "table",
	}
}

// Flags registers one flag per key on fs. Only flags set on the command line
// override the other sources.
func Flags(fs *pflag.FlagSet) {
	fs.String("dataset", "blobs", "data source: blobs, squareroot or csv")
	fs.String("csv-path", "", "CSV file, last column is the class")
	fs.String("size", "small", "squareroot size: tiny, small, medium, big or huge")
	fs.Int("classes", 4, "blobs classes")
	fs.Int("per-class", 50, "blobs samples per class")
	fs.Int("dim", 2, "blobs dimensions")
	fs.Float64("spread", 1, "blobs standard deviation")
	fs.String("strategy", "ovr", "decomposition: ovr, ovo, ecoc-dense or ecoc-sparse")
	fs.Int("code-length", 0, "ECOC code length, 0 for the default")
	fs.String("learner", "perceptron", "binary learner: perceptron, logistic or hashtron")
	fs.Int("epochs", 0, "linear learner epochs, 0 for the default")
	fs.Float64("learn-rate", 0, "linear learner rate, 0 for the default")
	fs.Float64("l2", 0, "logistic L2 penalty")
	fs.Uint32("salt-limit", 0, "hashtron salts tried per modulo, 0 for the default")
	fs.Int("threads", 0, "worker goroutines, 0 for one per CPU")
	fs.Int64("seed", 1, "random seed")
	fs.Int("significance", 0, "evaluate on a sample sized for this confidence, 0 evaluates every row")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("metrics-addr", "", "serve Prometheus metrics on this address")
	fs.String("output", "table", "report format: table or yaml")
}

// Load reads the configuration from path (optional), the environment and flags
// (optional), then validates it.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// MULTICLASS_SALT_LIMIT -> salt_limit
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks every field of c.
func Validate(c *Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
