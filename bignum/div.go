package bignum

// SPDX-License-Identifier: Apache-2.0

import "github.com/bantling/bignum/tuple"

// This file implements the hardest primitive in the library: normalized
// long division (Knuth's Algorithm D), directly grounded on the original
// ModDivCore. divModCore computes both quotient and remainder in one
// pass; Div, Mod, and DivMod are thin dispatchers around it and the
// single-digit short-divide fast path (divSmall/modSmall).

// Div computes quo = a / b. Panics if b is zero.
func Div(a, b, quo *Number) {
	bi := b.lastIndex()
	require(bi != -1, "bignum: division by zero")

	ai := a.lastIndex()
	if ai == -1 {
		quo.Init()
		return
	}

	if bi == 0 {
		var tmp Number
		tmp.Assign(a)
		divSmall(&tmp, b.digits[0], ai)
		quo.Assign(&tmp)
		return
	}
	if ai == 0 {
		quo.Init()
		return
	}

	var rem Number
	divModCore(a, b, &rem, quo)
}

// Mod computes rem = a % b. Panics if b is zero.
func Mod(a, b, rem *Number) {
	bi := b.lastIndex()
	require(bi != -1, "bignum: division by zero")

	ai := a.lastIndex()
	if ai == -1 {
		rem.Init()
		return
	}

	if bi == 0 {
		r := modSmall(a, b.digits[0], ai)
		rem.Init()
		rem.digits[0] = r
		return
	}
	if ai == 0 {
		if rem != a {
			rem.Assign(a)
		}
		return
	}

	divModCore(a, b, rem, nil)
}

// DivMod computes quo = a / b and rem = a % b together. Panics if b is
// zero. quo and rem must not alias b; both may alias a.
func DivMod(a, b, quo, rem *Number) {
	bi := b.lastIndex()
	require(bi != -1, "bignum: division by zero")

	ai := a.lastIndex()
	if ai == -1 {
		quo.Init()
		rem.Init()
		return
	}

	if bi == 0 {
		var tmp Number
		tmp.Assign(a)
		r := divSmall(&tmp, b.digits[0], ai)
		quo.Assign(&tmp)
		rem.Init()
		rem.digits[0] = r
		return
	}
	if ai == 0 {
		if rem != a {
			rem.Assign(a)
		}
		quo.Init()
		return
	}

	divModCore(a, b, rem, quo)
}

// DivModPair is DivMod for callers who'd rather get the quotient and
// remainder back as a single value than pass two out-pointers - the
// tuple.Two pairing the procedural surface's design notes call out as
// an option for exactly this result shape.
func DivModPair(a, b *Number) tuple.Two[Number, Number] {
	var quo, rem Number
	DivMod(a, b, &quo, &rem)
	return tuple.Of2(quo, rem)
}

// divSmall divides n in place by den (den != 0), returning the
// remainder; den == 1 leaves n unchanged and returns 0. nLast is n's
// precomputed lastIndex.
func divSmall(n *Number, den Digit, nLast int) Digit {
	if den == 1 {
		return 0
	}
	if nLast == 0 {
		tmp := n.digits[0]
		n.digits[0] = tmp / den
		return tmp % den
	}

	var acc uint64
	for iv := nLast; iv >= 0; iv-- {
		acc = acc<<DigitBits | uint64(n.digits[iv])
		n.digits[iv] = Digit(acc / uint64(den))
		acc %= uint64(den)
	}
	return Digit(acc)
}

// modSmall is divSmall's read-only counterpart: it returns a % den
// without touching a.
func modSmall(a *Number, den Digit, aLast int) Digit {
	if den == 1 {
		return 0
	}
	if aLast == 0 {
		return a.digits[0] % den
	}

	var acc uint64
	for iv := aLast; iv >= 0; iv-- {
		acc = acc<<DigitBits | uint64(a.digits[iv])
		acc %= uint64(den)
	}
	return Digit(acc)
}

// divModCore implements Knuth's Algorithm D. It assumes a's lastIndex
// (ai) and b's (bi) are both >= 1 (the a_last==0/b_last==0/zero fast
// paths are handled by the callers above); ai < bi yields rem = a and a
// zero quotient. rem ends up holding a % b;
// if quo is non-nil it is filled with a / b. rem may alias a; quo and
// rem must not alias b, since b's digits are read throughout.
func divModCore(a, b, rem, quo *Number) {
	ai := a.lastIndex()
	bi := b.lastIndex()

	if ai < bi {
		if rem != a {
			rem.Assign(a)
		}
		if quo != nil {
			quo.Init()
		}
		return
	}

	if rem != a {
		rem.Assign(a)
	}

	cuDen := bi + 1
	cuDiff := ai - bi

	// Determine whether the quotient has cuDiff or cuDiff+1 digits, by
	// comparing b (shifted up by cuDiff digits) against rem.
	cuQuo := cuDiff
	for iu := ai; ; iu-- {
		if iu < cuDiff {
			cuQuo++
			break
		}
		if b.digits[iu-cuDiff] != rem.digits[iu] {
			if b.digits[iu-cuDiff] < rem.digits[iu] {
				cuQuo++
			}
			break
		}
	}

	if cuQuo == 0 {
		if quo != nil {
			quo.Init()
		}
		return
	}

	if quo != nil {
		quo.Init()
	}

	// Normalize: shift both b's top two digits and rem's working window
	// left so the divisor's highest digit has its top bit set, which
	// bounds the trial quotient's error to at most 2 (Knuth 4.3.1).
	den := b.digits[cuDen-1]
	denNext := b.digits[cuDen-2]
	shiftLeft := leadingZeros(den)
	shiftRight := DigitBits - shiftLeft
	if shiftLeft > 0 {
		den = den<<shiftLeft | denNext>>shiftRight
		denNext <<= shiftLeft
		if cuDen > 2 {
			denNext |= b.digits[cuDen-3] >> shiftRight
		}
	}

	for iu := cuQuo - 1; iu >= 0; iu-- {
		var numHi Digit
		if iu+cuDen <= ai {
			numHi = rem.digits[iu+cuDen]
		}

		num := uint64(numHi)<<DigitBits | uint64(rem.digits[iu+cuDen-1])
		numNext := rem.digits[iu+cuDen-2]
		if shiftLeft > 0 {
			num = num<<shiftLeft | uint64(numNext>>shiftRight)
			numNext <<= shiftLeft
			if iu+cuDen >= 3 {
				numNext |= rem.digits[iu+cuDen-3] >> shiftRight
			}
		}

		// Trial quotient digit, corrected down at most twice more below.
		quoDig := num / uint64(den)
		remDig := num % uint64(den)
		if quoDig > uint64(MaxDigit) {
			remDig += uint64(den) * (quoDig - uint64(MaxDigit))
			quoDig = uint64(MaxDigit)
		}
		for remDig <= uint64(MaxDigit) && quoDig*uint64(denNext) > (remDig<<DigitBits)|uint64(numNext) {
			quoDig--
			remDig += uint64(den)
		}

		if quoDig > 0 {
			// Multiply quoDig*b and subtract from rem's window.
			var borrow uint64
			for iu2 := 0; iu2 < cuDen; iu2++ {
				borrow += uint64(b.digits[iu2]) * quoDig
				sub := Digit(borrow)
				borrow >>= DigitBits
				if rem.digits[iu+iu2] < sub {
					borrow++
				}
				rem.digits[iu+iu2] -= sub
			}

			// quoDig may have been 1 too large: if the subtraction
			// borrowed more than the true top digit allows, add b back
			// on and decrement quoDig.
			if uint64(numHi) < borrow {
				var carry Digit
				for iu2 := 0; iu2 < cuDen; iu2++ {
					rem.digits[iu+iu2], carry = addCarry(rem.digits[iu+iu2], b.digits[iu2], carry)
				}
				quoDig--
			}
		}

		if quo != nil {
			if cuQuo == 1 {
				quo.digits[0] = Digit(quoDig)
			} else {
				quo.digits[iu] = Digit(quoDig)
			}
		}
	}

	rem.zeroFrom(cuDen)
}
