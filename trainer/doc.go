// Package trainer runs one configured training pass: it builds the dataset, the
// strategy and the binary learner, trains a multiclass machine and reports how
// well it fits the training rows.
package trainer
