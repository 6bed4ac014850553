package multiclass

import (
	"strconv"
	"sync"

	"github.com/neurlang/multiclass/fault"
	"github.com/neurlang/multiclass/machine"
)

// Registry holds the submodels of the last training pass in round order.
//
// A training pass stages its submodels and publishes them once when it returns,
// so concurrent readers see either the previous or the final contents. A pass
// rejected by its checks publishes an empty registry.
type Registry struct {
	mu       sync.RWMutex
	machines []machine.Machine
}

// Capture clones the learned parameters of a trained machine into a new submodel.
func (r *Registry) Capture(trained machine.Machine) (machine.Machine, error) {
	var c = trained.Clone()
	if c == nil {
		return nil, fault.Invariant("registry capture", "clone returned nil")
	}
	return c, nil
}

// Count reports the number of submodels.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.machines)
}

// At returns the submodel trained in round i.
func (r *Registry) At(i int) (machine.Machine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.machines) {
		return nil, fault.Index("registry at", "round "+strconv.Itoa(i)+" of "+strconv.Itoa(len(r.machines)))
	}
	return r.machines[i], nil
}

// Machines returns the submodels in round order.
func (r *Registry) Machines() []machine.Machine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]machine.Machine(nil), r.machines...)
}

func (r *Registry) publish(ms []machine.Machine) {
	r.mu.Lock()
	r.machines = ms
	r.mu.Unlock()
}
