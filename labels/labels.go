// Package labels holds the label sets of the multiclass machine: the true
// multiclass labels and the binary buffer rewritten once per training round.
package labels

// Labels is any label set.
type Labels interface {
	NumLabels() int
}
