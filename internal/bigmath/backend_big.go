//go:build !gmp

// Package bigmath provides the arbitrary-precision integer backend used by
// the factor-search engine, together with the number-theoretic primitives the
// engine needs (GCD, integer square root, integer logarithm, modular
// exponentiation). The backend is selected at build time: the default build
// uses math/big, while the `gmp` build tag switches every Int in the program
// to the GMP-backed implementation.
package bigmath

import "math/big"

// Int is the unbounded-width integer type shared by the whole engine.
// All arithmetic in the search core goes through this alias so that the
// backend can be swapped without touching any algorithm code.
type Int = big.Int

// BackendName identifies the numeric backend compiled into this binary.
const BackendName = "math/big"

// NewInt returns a new Int set to x.
func NewInt(x int64) *Int {
	return big.NewInt(x)
}
