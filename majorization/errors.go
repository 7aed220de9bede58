// SPDX-License-Identifier: MIT
// Package majorization: sentinel error set.
// All exported functions return these sentinels, possibly wrapped with an
// operation tag ("Max: majorization: ..."); callers match them via errors.Is.

package majorization

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyVector is returned when a probability vector has no entries.
	ErrEmptyVector = errors.New("majorization: vector must be non-empty")

	// ErrDimensionMismatch indicates that a pairwise operation received
	// vectors of different lengths.
	ErrDimensionMismatch = errors.New("majorization: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("majorization: NaN or Inf encountered")

	// ErrNotProbability signals a negative entry or a total mass different
	// from one beyond the configured tolerance.
	ErrNotProbability = errors.New("majorization: not a probability vector")

	// ErrInvalidRadius is returned for a negative or non-finite TV radius.
	ErrInvalidRadius = errors.New("majorization: radius must be finite and non-negative")

	// ErrNilFunction is returned when LocalBound receives a nil function.
	ErrNilFunction = errors.New("majorization: function is nil")

	// ErrNilRat indicates a nil *big.Rat entry in an exact vector.
	ErrNilRat = errors.New("majorization: nil rational entry")
)

// Operation tags used when wrapping sentinels at the public boundary.
const (
	opTotalVariation    = "TotalVariation"
	opTotalVariationRat = "TotalVariationRat"
	opMax               = "Max"
	opMin               = "Min"
	opMaxRat            = "MaxRat"
	opMinRat            = "MinRat"
	opLocalBound        = "LocalBound"
)

// opErrorf prefixes err with the operation tag, keeping errors.Is working.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
