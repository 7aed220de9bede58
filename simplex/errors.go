package simplex

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimension indicates a non-positive simplex dimension d.
	ErrBadDimension = errors.New("simplex: dimension must be positive")
	// ErrBadDenominator indicates a non-positive denominator bound n.
	ErrBadDenominator = errors.New("simplex: denominator bound must be positive")
	// ErrOutOfUnitInterval indicates a cut point outside [0,1] (or NaN).
	ErrOutOfUnitInterval = errors.New("simplex: value outside [0,1]")
	// ErrCutOutOfRange indicates an integer cut point outside [0,n].
	ErrCutOutOfRange = errors.New("simplex: cut point outside [0,n]")
)

const (
	opPoint          = "Point"
	opPointInt       = "PointInt"
	opRandom         = "Random"
	opRandomRational = "RandomRational"
)

func simplexErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
