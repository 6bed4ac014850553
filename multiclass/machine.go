// Package multiclass trains a multiclass classifier out of a binary machine.
//
// A Strategy decomposes the problem into rounds. Every round relabels a shared
// binary label buffer, optionally narrows the shared features and labels to a
// subset of rows, trains the base machine and captures a clone of it. The
// clones, in round order, are the submodels used at prediction time.
package multiclass

import (
	"log/slog"
	"runtime"

	"github.com/google/uuid"

	"github.com/neurlang/multiclass/fault"
	"github.com/neurlang/multiclass/features"
	"github.com/neurlang/multiclass/labels"
	"github.com/neurlang/multiclass/machine"
	"github.com/neurlang/multiclass/strategy"
)

// Machine is a multiclass machine built from a binary machine and a strategy.
// A Machine is not safe for concurrent training; Registry reads are.
type Machine struct {
	strategy strategy.Strategy
	machine  machine.Machine
	labels   labels.Labels
	features features.DotFeatures

	registry Registry
	rounds   []Round
	runID    uuid.UUID

	threads int
	log     *slog.Logger
	metrics *Metrics
}

// Option configures a Machine.
type Option func(*Machine)

// WithStrategy sets the decomposition strategy.
func WithStrategy(s strategy.Strategy) Option {
	return func(m *Machine) { m.strategy = s }
}

// WithMachine sets the base binary machine.
func WithMachine(b machine.Machine) Option {
	return func(m *Machine) { m.machine = b }
}

// WithLabels sets the training labels.
func WithLabels(l labels.Labels) Option {
	return func(m *Machine) { m.labels = l }
}

// WithLogger sets the logger. A nil logger discards.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) { m.log = l }
}

// WithMetrics sets the Prometheus collectors updated by Train.
func WithMetrics(mt *Metrics) Option {
	return func(m *Machine) { m.metrics = mt }
}

// WithThreads limits the goroutines used by Apply. Zero means one per CPU.
func WithThreads(n int) Option {
	return func(m *Machine) { m.threads = n }
}

// New returns a Machine with nothing trained.
func New(opts ...Option) *Machine {
	m := &Machine{}
	for _, o := range opts {
		o(m)
	}
	if m.log == nil {
		m.log = slog.New(slog.DiscardHandler)
	}
	if m.threads <= 0 {
		m.threads = runtime.NumCPU()
	}
	return m
}

// Name identifies the machine kind.
func (m *Machine) Name() string {
	return "LinearMulticlassMachine"
}

// SetStrategy sets the decomposition strategy.
func (m *Machine) SetStrategy(s strategy.Strategy) {
	m.strategy = s
}

// Strategy returns the decomposition strategy.
func (m *Machine) Strategy() strategy.Strategy {
	return m.strategy
}

// SetMachine sets the base binary machine.
func (m *Machine) SetMachine(b machine.Machine) {
	m.machine = b
}

// BaseMachine returns the base binary machine.
func (m *Machine) BaseMachine() machine.Machine {
	return m.machine
}

// SetLabels sets the training labels.
func (m *Machine) SetLabels(l labels.Labels) {
	m.labels = l
}

// Labels returns the training labels.
func (m *Machine) Labels() labels.Labels {
	return m.labels
}

// Registry returns the submodels of the last training pass.
func (m *Machine) Registry() *Registry {
	return &m.registry
}

// Rounds describes the rounds committed by the last training pass.
func (m *Machine) Rounds() []Round {
	return append([]Round(nil), m.rounds...)
}

// RunID identifies the last training pass.
func (m *Machine) RunID() uuid.UUID {
	return m.runID
}

// BindFeatures makes f the dataset of the machine. f must support dot products.
func (m *Machine) BindFeatures(f features.Features) error {
	d, ok := features.AsDot(f)
	if !ok || d == nil {
		return fault.Type("bind features", "features not dot-product compatible")
	}
	m.features = d
	return nil
}

// Features returns the bound dataset, nil when none is bound.
func (m *Machine) Features() features.DotFeatures {
	return m.features
}

// IsReady reports whether a dataset is bound.
func (m *Machine) IsReady() bool {
	return m.features != nil
}

// NumRHSVectors reports the number of rows visible in the bound dataset.
func (m *Machine) NumRHSVectors() (int, error) {
	if m.features == nil {
		return 0, fault.Configuration("num rhs vectors", "no features bound")
	}
	return m.features.NumVectors(), nil
}
