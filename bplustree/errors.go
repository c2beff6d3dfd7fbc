package bplus

import "errors"

var (
	ErrInvalidBranchingFactor = errors.New("illegal branching factor")
	ErrNilCompare             = errors.New("nil key comparator")
)
