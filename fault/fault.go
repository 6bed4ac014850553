// Package fault defines the error kinds shared by the multiclass packages.
package fault

import "errors"

// Kinds. Match them with errors.Is.
var (
	// ErrConfiguration reports a missing collaborator (base learner, strategy, features).
	ErrConfiguration = errors.New("configuration error")

	// ErrType reports data that lacks a required capability or shape.
	ErrType = errors.New("type error")

	// ErrInvariant reports a programming error, such as an unbalanced subset pop.
	ErrInvariant = errors.New("invariant violation")

	// ErrIndex reports an out of range index. It is also an ErrInvariant.
	ErrIndex error = &indexError{}
)

type indexError struct{}

func (*indexError) Error() string { return "index out of range" }

func (*indexError) Is(target error) bool { return target == ErrInvariant }

// Error is a kinded error raised by an operation.
type Error struct {
	Kind error
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Kind.Error() + ": " + e.Msg
	}
	return e.Op + ": " + e.Kind.Error() + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Kind }

// Configuration returns an ErrConfiguration raised by op.
func Configuration(op, msg string) error {
	return &Error{Kind: ErrConfiguration, Op: op, Msg: msg}
}

// Type returns an ErrType raised by op.
func Type(op, msg string) error {
	return &Error{Kind: ErrType, Op: op, Msg: msg}
}

// Invariant returns an ErrInvariant raised by op.
func Invariant(op, msg string) error {
	return &Error{Kind: ErrInvariant, Op: op, Msg: msg}
}

// Index returns an ErrIndex raised by op.
func Index(op, msg string) error {
	return &Error{Kind: ErrIndex, Op: op, Msg: msg}
}
