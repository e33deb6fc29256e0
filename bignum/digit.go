package bignum

// SPDX-License-Identifier: Apache-2.0

// This file is the microkernel of the library: every linear, multiply,
// and divide operation bottoms out in one of these digit primitives. Each
// uses a double-width (64-bit) accumulator to capture a carry or borrow
// that a single Digit cannot hold, the same trick the original C library
// performs with a DTYPE_TMP twice the width of DTYPE - grounded on
// math/one28's Add/Sub/Mul, generalized from a hardcoded pair of uint64
// halves to an arbitrary Digit width with a uint64 accumulator.
//
// math/bits.LeadingZeros32 stands in for the original's hand-rolled
// CbitHighZero bit-counting loop - the spec explicitly sanctions
// expressing digit primitives "through the target's overflow-aware
// arithmetic intrinsics" (spec.md Design Notes), and no third-party
// library in the retrieval pack offers a bit-counting primitive more
// idiomatic than the standard library's.
import "math/bits"

// addCarry computes sum = a + b + cin, returning the carry out (0 or 1).
func addCarry(a, b, cin Digit) (sum, cout Digit) {
	t := uint64(a) + uint64(b) + uint64(cin)
	return Digit(t), Digit(t >> DigitBits)
}

// subBorrow computes diff = a - b - bin, returning the borrow out (0 or 1).
func subBorrow(a, b, bin Digit) (diff, bout Digit) {
	t := uint64(a) - uint64(b) - uint64(bin)
	return Digit(t), Digit(t >> DigitBits & 1)
}

// revSubBorrow computes diff = b - a - bin, returning the borrow out.
// Used where the minuend (b) is logically "on the other side" of the
// subtraction, e.g. when the running destination already holds a and the
// larger operand b has to be subtracted from it in place.
func revSubBorrow(a, b, bin Digit) (diff, bout Digit) {
	t := uint64(b) - uint64(a) - uint64(bin)
	return Digit(t), Digit(t >> DigitBits & 1)
}

// mulCarry computes lo = a*b + cin, returning the high half as carry.
// Cannot overflow a 2*DigitBits accumulator: a, b and cin are each
// <= MaxDigit, and (2^w - 1)^2 + (2^w - 1) < 2^2w.
func mulCarry(a, b, cin Digit) (lo, cout Digit) {
	t := uint64(a)*uint64(b) + uint64(cin)
	return Digit(t), Digit(t >> DigitBits)
}

// fusedMAC computes acc + a*b + cin, returning the low half as the new
// accumulator value and the high half as carry. Used by the schoolbook
// multiply's inner loop.
func fusedMAC(acc, a, b, cin Digit) (sum, cout Digit) {
	t := uint64(a)*uint64(b) + uint64(acc) + uint64(cin)
	return Digit(t), Digit(t >> DigitBits)
}

// leadingZeros returns the number of leading zero bits in u, treating u
// as DigitBits wide. leadingZeros(0) == DigitBits.
func leadingZeros(u Digit) int {
	if u == 0 {
		return DigitBits
	}
	return bits.LeadingZeros32(uint32(u)) - (32 - DigitBits)
}

// applyCarry propagates a carry of 1 into n starting at index iu, walking
// upward until a digit absorbs it without wrapping, or appending a new
// high digit at validLen+1 if every digit from iu to validLen was
// MaxDigit. Mirrors the original's ApplyCarry.
func applyCarry(n *Number, iu, validLen int) {
	for ; ; iu++ {
		if iu > validLen {
			require(iu < Capacity, "bignum: carry propagation overflowed capacity")
			n.digits[iu] = 1
			return
		}
		require(iu < Capacity, "bignum: carry propagation overflowed capacity")
		n.digits[iu]++
		if n.digits[iu] > 0 {
			return
		}
	}
}

// applyBorrow propagates a borrow of 1 into n starting at index iuMin,
// walking upward until a digit absorbs it without underflowing. Mirrors
// the original's ApplyBorrow.
func applyBorrow(n *Number, iuMin, validLen int) {
	for iu := iuMin; iu <= validLen; iu++ {
		u := n.digits[iu]
		n.digits[iu]--
		if u > 0 {
			return
		}
	}
}
