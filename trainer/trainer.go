package trainer

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/neurlang/multiclass/config"
	"github.com/neurlang/multiclass/datasets"
	"github.com/neurlang/multiclass/datasets/blobs"
	"github.com/neurlang/multiclass/datasets/squareroot"
	"github.com/neurlang/multiclass/fault"
	"github.com/neurlang/multiclass/features"
	"github.com/neurlang/multiclass/hashtron"
	"github.com/neurlang/multiclass/learning"
	"github.com/neurlang/multiclass/linear"
	"github.com/neurlang/multiclass/machine"
	"github.com/neurlang/multiclass/multiclass"
	"github.com/neurlang/multiclass/strategy"
)

// Options are the collaborators of a run.
type Options struct {
	Logger     *slog.Logger          // nil discards
	Registerer prometheus.Registerer // nil disables metrics
}

// Report summarizes a run.
type Report struct {
	RunID     string             `yaml:"run_id"`
	Machine   string             `yaml:"machine"`
	Dataset   string             `yaml:"dataset"`
	Strategy  string             `yaml:"strategy"`
	Learner   string             `yaml:"learner"`
	Kernel    string             `yaml:"kernel"`
	Samples   int                `yaml:"samples"`
	Classes   int                `yaml:"classes"`
	Submodels int                `yaml:"submodels"`
	Learned   int                `yaml:"learned_bytes"`
	Rounds    []multiclass.Round `yaml:"rounds"`
	Evaluated int                `yaml:"evaluated"`
	Accuracy  float64            `yaml:"accuracy"`
	Duration  time.Duration      `yaml:"duration"`
}

// WriteYAML encodes the report.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// Run trains a multiclass machine as configured and evaluates it on the training rows.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	samples, err := Samples(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "dataset")
	}
	data, truth, err := samples.Build()
	if err != nil {
		return nil, errors.Wrap(err, "dataset")
	}
	s, err := Strategy(cfg)
	if err != nil {
		return nil, err
	}
	base, err := Learner(cfg, log)
	if err != nil {
		return nil, err
	}

	mopts := []multiclass.Option{
		multiclass.WithStrategy(s),
		multiclass.WithMachine(base),
		multiclass.WithLabels(truth),
		multiclass.WithLogger(log),
		multiclass.WithThreads(cfg.Threads),
	}
	if opts.Registerer != nil {
		mopts = append(mopts, multiclass.WithMetrics(multiclass.NewMetrics(opts.Registerer)))
	}
	m := multiclass.New(mopts...)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	if err := m.Train(data); err != nil {
		return nil, err
	}
	took := time.Since(start)

	pred, err := m.Apply(nil)
	if err != nil {
		return nil, errors.Wrap(err, "apply")
	}
	var want = make([]int, truth.NumLabels())
	for i := range want {
		want[i] = truth.Label(i)
	}
	accuracy, evaluated := Evaluate(pred, want, byte(cfg.Significance), cfg.Seed)
	log.Info("evaluated", "run_id", m.RunID().String(), "accuracy", accuracy, "rows", evaluated)

	return &Report{
		RunID:     m.RunID().String(),
		Machine:   m.Name(),
		Dataset:   cfg.Dataset,
		Strategy:  cfg.Strategy,
		Learner:   cfg.Learner,
		Kernel:    features.Kernel(),
		Samples:   samples.Len(),
		Classes:   truth.NumClasses(),
		Submodels: m.Registry().Count(),
		Learned:   learnedBytes(m.Registry().Machines()),
		Rounds:    m.Rounds(),
		Evaluated: evaluated,
		Accuracy:  accuracy,
		Duration:  took,
	}, nil
}

// Samples loads the configured dataset.
func Samples(cfg *config.Config) (datasets.Samples, error) {
	switch cfg.Dataset {
	case "blobs":
		return blobs.Generate(blobs.Config{
			Classes:  cfg.Classes,
			PerClass: cfg.PerClass,
			Dim:      cfg.Dim,
			Spread:   cfg.Spread,
			Seed:     cfg.Seed,
		}), nil
	case "squareroot":
		return squareroot.Table(squareroot.Size(cfg.Size)), nil
	case "csv":
		f, err := os.Open(cfg.CSVPath)
		if err != nil {
			return datasets.Samples{}, err
		}
		defer f.Close()
		return datasets.ReadCSV(f)
	}
	return datasets.Samples{}, fault.Configuration("dataset", "unknown dataset "+cfg.Dataset)
}

// Strategy builds the configured decomposition strategy.
func Strategy(cfg *config.Config) (strategy.Strategy, error) {
	switch cfg.Strategy {
	case "ovr":
		return strategy.NewOneVsRest(), nil
	case "ovo":
		return strategy.NewOneVsOne(), nil
	case "ecoc-dense":
		return strategy.NewECOC(strategy.RandomDense{Length: cfg.CodeLength, Tries: 10, Seed: cfg.Seed}), nil
	case "ecoc-sparse":
		return strategy.NewECOC(strategy.RandomSparse{Length: cfg.CodeLength, Tries: 10, Seed: cfg.Seed}), nil
	}
	return nil, fault.Configuration("strategy", "unknown strategy "+cfg.Strategy)
}

// Learner builds the configured binary learner.
func Learner(cfg *config.Config, log *slog.Logger) (machine.Machine, error) {
	switch cfg.Learner {
	case "perceptron":
		return &linear.Perceptron{Epochs: cfg.Epochs, LearnRate: cfg.LearnRate, Seed: cfg.Seed}, nil
	case "logistic":
		return &linear.Logistic{Epochs: cfg.Epochs, LearnRate: cfg.LearnRate, L2: cfg.L2, Seed: cfg.Seed}, nil
	case "hashtron":
		var h learning.HyperParameters
		h.Threads = cfg.Threads
		h.SaltLimit = cfg.SaltLimit
		h.DeadlineRetry = 8
		h.SetLogger(log)
		return hashtron.NewLearner(h), nil
	}
	return nil, fault.Configuration("learner", "unknown learner "+cfg.Learner)
}

// learnedBytes sums the learned data size of the submodels that report one.
func learnedBytes(subs []machine.Machine) (n int) {
	for _, sm := range subs {
		if q, ok := sm.(interface{ LenQ() int }); ok {
			n += q.LenQ()
		}
	}
	return
}
