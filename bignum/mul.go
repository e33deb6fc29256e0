package bignum

// SPDX-License-Identifier: Apache-2.0

// Mul computes c = a * b via schoolbook multiply-accumulate. c may alias
// a; c must not alias b, since the general path copies a into c before
// reading b's digits. Grounded on the original bignum_mul: processes a's digits from
// most significant to least, zeroing each destination slot just before
// accumulating into it so the in-place aliasing (c starts as a copy of a)
// stays correct - a later (lower) iteration never needs a digit that an
// earlier (higher) iteration already zeroed.
func Mul(a, b, c *Number) {
	ai := a.lastIndex()
	if ai == -1 {
		c.Init()
		return
	}

	bi := b.lastIndex()
	if bi == -1 {
		c.Init()
		return
	}

	if bi == 0 {
		mulSmall(a, b.digits[0], c, ai)
		return
	}
	if ai == 0 {
		mulSmall(b, a.digits[0], c, bi)
		return
	}

	if c != a {
		c.Assign(a)
	}

	cuBase := ai + 1
	for iu := cuBase - 1; iu >= 0; iu-- {
		mul := c.digits[iu]
		c.digits[iu] = 0

		var carry Digit
		for iuSrc := 0; iuSrc <= bi; iuSrc++ {
			require(iu+iuSrc < Capacity, "bignum: multiply overflowed capacity")
			c.digits[iu+iuSrc], carry = fusedMAC(c.digits[iu+iuSrc], b.digits[iuSrc], mul, carry)
		}

		iuDst := iu + bi + 1
		for carry != 0 {
			require(iuDst < Capacity, "bignum: multiply overflowed capacity")
			c.digits[iuDst], carry = addCarry(c.digits[iuDst], 0, carry)
			iuDst++
		}
	}
}

// mulSmall computes c = a * bScalar, where aLast is a's precomputed
// lastIndex.
func mulSmall(a *Number, bScalar Digit, c *Number, aLast int) {
	if bScalar == 0 {
		c.Init()
		return
	}
	if bScalar == 1 {
		if c != a {
			c.Assign(a)
		}
		return
	}

	if aLast == -1 {
		c.Init()
		return
	}

	if aLast == 0 {
		lo, hi := mulCarry(a.digits[0], bScalar, 0)
		c.Init()
		if hi != 0 {
			c.digits[1] = hi
		}
		c.digits[0] = lo
		return
	}

	if c != a {
		c.Assign(a)
	}

	var carry Digit
	for iu := 0; iu <= aLast; iu++ {
		c.digits[iu], carry = mulCarry(c.digits[iu], bScalar, carry)
	}
	if carry != 0 {
		require(aLast+1 < Capacity, "bignum: multiply overflowed capacity")
		c.digits[aLast+1] = carry
	}
}
