package multiclass

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/neurlang/multiclass/fault"
	"github.com/neurlang/multiclass/features"
	"github.com/neurlang/multiclass/labels"
	"github.com/neurlang/multiclass/machine"
)

// Round describes one committed training round.
type Round struct {
	Index    int           `yaml:"index"`
	Rows     int           `yaml:"rows"`
	Positive int           `yaml:"positive"`
	Duration time.Duration `yaml:"duration"`
}

// Train fits one submodel per strategy round on data, or on the bound features
// when data is nil.
//
// Every check runs before the features are bound; a failed check empties the
// registry. When the base machine fails, the round's subset is popped from the
// features and the labels before the error is returned, and the registry keeps
// the rounds committed so far.
func (m *Machine) Train(data features.Features) (err error) {
	dot, orig, err := m.check(data)
	if err != nil {
		m.registry.publish(nil)
		m.rounds = nil
		m.metrics.registry(0)
		return err
	}

	m.features = dot
	m.strategy.SetNumClasses(orig.NumClasses())
	m.runID = uuid.New()

	log := m.log.With("run_id", m.runID.String())
	log.Info("training started", "machine", m.Name(), "rows", dot.NumVectors(), "classes", orig.NumClasses())

	n, err := m.NumRHSVectors()
	if err != nil {
		return err
	}
	train := labels.NewBinary(n)
	m.strategy.TrainStart(orig, train)
	defer m.strategy.TrainStop()

	var staged []machine.Machine
	var rounds []Round
	defer func() {
		m.registry.publish(staged)
		m.rounds = rounds
		m.metrics.registry(len(staged))
		if err != nil {
			m.metrics.failure()
			log.Error("training failed", "committed", len(staged), "error", err)
			return
		}
		log.Info("training finished", "submodels", len(staged))
	}()

	for k := 0; m.strategy.TrainHasMore(); k++ {
		sub := m.strategy.TrainPrepareNext()
		start := time.Now()
		r, sm, err := m.round(dot, train, sub)
		if err != nil {
			return errors.Wrapf(err, "round %d", k)
		}
		r.Index = k
		r.Duration = time.Since(start)
		staged = append(staged, sm)
		rounds = append(rounds, r)
		m.metrics.round(r.Duration)
		log.Debug("round trained", "round", k, "rows", r.Rows, "positive", r.Positive)
	}
	return nil
}

// round trains the base machine on one binary problem and captures the result.
// The subset, when there is one, is pushed onto the labels first and the
// features second, and popped in reverse order on every return path.
func (m *Machine) round(dot features.DotFeatures, train *labels.Binary, sub []int) (r Round, sm machine.Machine, err error) {
	if len(sub) > 0 {
		if err = train.PushSubset(sub); err != nil {
			return r, nil, err
		}
		if err = dot.PushSubset(sub); err != nil {
			_ = train.PopSubset()
			return r, nil, err
		}
		defer func() {
			if perr := dot.PopSubset(); perr != nil && err == nil {
				err = perr
			}
			if perr := train.PopSubset(); perr != nil && err == nil {
				err = perr
			}
		}()
	}
	r.Rows = train.NumLabels()
	r.Positive = train.NumPositive()

	if err = m.machine.Train(dot, train); err != nil {
		return r, nil, err
	}
	sm, err = m.registry.Capture(m.machine)
	return r, sm, err
}

// check resolves the training data and labels of a pass.
func (m *Machine) check(data features.Features) (features.DotFeatures, *labels.Multiclass, error) {
	const op = "multiclass train"
	if m.machine == nil {
		return nil, nil, fault.Configuration(op, "no base learner")
	}
	if m.strategy == nil {
		return nil, nil, fault.Configuration(op, "no strategy")
	}
	if data == nil {
		if m.features == nil {
			return nil, nil, fault.Configuration(op, "no features")
		}
		data = m.features
	}
	orig, ok := m.labels.(*labels.Multiclass)
	if !ok || orig == nil {
		return nil, nil, fault.Type(op, "labels are not multiclass")
	}
	if orig.NumLabels() != data.NumVectors() {
		return nil, nil, fault.Type(op, strconv.Itoa(orig.NumLabels())+" labels for "+strconv.Itoa(data.NumVectors())+" rows")
	}
	dot, ok := features.AsDot(data)
	if !ok || dot == nil {
		return nil, nil, fault.Type(op, "features not dot-product compatible")
	}
	return dot, orig, nil
}
