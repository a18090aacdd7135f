//go:build gmp

// Package bigmath provides the arbitrary-precision integer backend used by
// the factor-search engine. This file is the GMP-backed variant, selected by
// the `gmp` build tag. github.com/ncw/gmp mirrors the math/big API, so the
// alias swap is transparent to the rest of the module.
package bigmath

import "github.com/ncw/gmp"

// Int is the unbounded-width integer type shared by the whole engine.
type Int = gmp.Int

// BackendName identifies the numeric backend compiled into this binary.
const BackendName = "gmp"

// NewInt returns a new Int set to x.
func NewInt(x int64) *Int {
	return gmp.NewInt(x)
}
