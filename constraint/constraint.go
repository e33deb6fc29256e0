// Package constraint provides the numeric type-constraint sets this module
// needs for its generic entry points - trimmed from the teacher's broader
// constraint package (which also covers floats, complex, big.Int/Float/Rat,
// and ordering) down to the integer constraints bignum.FromInt/ToInt
// actually use.
package constraint

// SPDX-License-Identifier: Apache-2.0

// SignedInteger is copied from golang.org/x/exp/constraints#Signed
type SignedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInteger is like golang.org/x/exp/constraints#Unsigned, except no uintptr
type UnsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is equivalent to golang.org/x/exp/constraints#Integer
type Integer interface {
	SignedInteger | UnsignedInteger
}
