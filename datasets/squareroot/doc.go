// Package squareroot provides a synthetic multiclass dataset: the class of n is
// the integer square root of n. Neighbouring classes are intervals of a single
// feature, so a linear machine cannot separate them but a hashing one can.
package squareroot
