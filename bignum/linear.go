package bignum

// SPDX-License-Identifier: Apache-2.0

// Add computes c = a + b. c may alias a or b.
func Add(a, b, c *Number) {
	ai := a.lastIndex()
	if ai == -1 {
		c.Assign(b)
		return
	}

	bi := b.lastIndex()
	if bi == -1 {
		c.Assign(a)
		return
	}

	if bi == 0 {
		addSmall(a, b.digits[0], c, ai)
		return
	}
	if ai == 0 {
		addSmall(b, a.digits[0], c, bi)
		return
	}

	if c == b {
		// c would otherwise clobber b below, the same way Pow snapshots
		// its operands before ever touching c.
		var bCopy Number
		bCopy.Assign(b)
		b = &bCopy
	}
	if c != a {
		c.Assign(a)
	}

	cuAdd := bi + 1
	if ai < bi {
		cuAdd = ai + 1
		copy(c.digits[cuAdd:bi+1], b.digits[cuAdd:bi+1])
		ai = bi
	}

	var carry Digit
	for iu := 0; iu < cuAdd; iu++ {
		c.digits[iu], carry = addCarry(c.digits[iu], b.digits[iu], carry)
	}
	if carry != 0 {
		applyCarry(c, cuAdd, ai)
	}
}

// addSmall computes c = a + bScalar, where aLast is a's precomputed
// lastIndex. Handles aLast == -1 (a is zero) the same way as aLast == 0:
// c is already a's copy (all zero), so the add just deposits bScalar in
// digits[0].
func addSmall(a *Number, bScalar Digit, c *Number, aLast int) {
	if c != a {
		c.Assign(a)
	}

	if aLast <= 0 {
		sum := c.digits[0] + bScalar
		c.digits[0] = sum
		if sum >= bScalar {
			return
		}
		c.digits[1] = 1
		return
	}

	if bScalar == 0 {
		return
	}

	sum := c.digits[0] + bScalar
	if sum < bScalar {
		applyCarry(c, 1, aLast)
	}
	c.digits[0] = sum
}

// Sub computes c = |a - b|, toggling *sign if the mathematical result is
// negative. c may alias a or b.
func Sub(a, b, c *Number, sign *Sign) {
	bi := b.lastIndex()
	if bi == -1 {
		if c != a {
			c.Assign(a)
		}
		return
	}

	if bi == 0 {
		subSmall(a, b.digits[0], c, a.lastIndex(), sign)
		return
	}

	ai := a.lastIndex()
	if ai == -1 {
		c.Assign(b)
		*sign = sign.Negate()
		return
	}
	if ai == 0 {
		u := a.digits[0]
		subSmall(b, u, c, bi, sign)
		*sign = sign.Negate()
		return
	}

	if c == b {
		// c would otherwise clobber b below, the same way Pow snapshots
		// its operands before ever touching c.
		var bCopy Number
		bCopy.Assign(b)
		b = &bCopy
	}
	if c != a {
		c.Assign(a)
	}

	if ai < bi {
		revSub(a, b, c, sign, ai, bi)
		*sign = sign.Negate()
		return
	}

	cuSub := bi + 1
	if ai == bi {
		diffIdx := -1
		for i := ai; i >= 0; i-- {
			if c.digits[i] != b.digits[i] {
				diffIdx = i
				break
			}
		}
		if diffIdx < 0 {
			c.Init()
			return
		}
		c.zeroFrom(diffIdx + 1)

		if diffIdx == 0 {
			u1, u2 := c.digits[0], b.digits[0]
			if u1 < u2 {
				c.digits[0] = u2 - u1
				*sign = sign.Negate()
			} else {
				c.digits[0] = u1 - u2
			}
			return
		}

		if c.digits[diffIdx] < b.digits[diffIdx] {
			// The top differing digit is smaller in c (= a) than in b:
			// compute b - a over 0..diffIdx in place, without re-copying
			// a (the digits above diffIdx were just zeroed and must stay
			// that way).
			var borrow Digit
			for iu := 0; iu <= diffIdx; iu++ {
				c.digits[iu], borrow = revSubBorrow(c.digits[iu], b.digits[iu], borrow)
			}
			*sign = sign.Negate()
			return
		}
		cuSub = diffIdx + 1
	}

	var borrow Digit
	for iu := 0; iu < cuSub; iu++ {
		c.digits[iu], borrow = subBorrow(c.digits[iu], b.digits[iu], borrow)
	}
	if borrow != 0 {
		applyBorrow(c, cuSub, ai)
	}
}

// subSmall computes c = a - bScalar, assuming a >= bScalar is NOT
// guaranteed: if a is a single digit smaller than bScalar, *sign flips
// and the absolute difference is stored. aLast is a's precomputed
// lastIndex. Unlike the original C (see spec.md's Design Notes on the
// sub-small defect), every write goes through c, never through a.
func subSmall(a *Number, bScalar Digit, c *Number, aLast int, sign *Sign) {
	if bScalar == 0 {
		if c != a {
			c.Assign(a)
		}
		return
	}

	if aLast == -1 {
		c.Init()
		c.digits[0] = bScalar
		*sign = sign.Negate()
		return
	}

	if c != a {
		c.Assign(a)
	}

	if aLast == 0 {
		if bScalar <= c.digits[0] {
			c.digits[0] -= bScalar
		} else {
			c.digits[0] = bScalar - c.digits[0]
			*sign = sign.Negate()
		}
		return
	}

	old := c.digits[0]
	c.digits[0] = old - bScalar
	if old < bScalar {
		applyBorrow(c, 1, aLast)
	}
}

// revSub computes c = b - a, assuming b >= a (the caller is responsible
// for that invariant and for toggling sign). aLen and bLen are the
// precomputed lastIndex values of a and b.
func revSub(a, b, c *Number, sign *Sign, aLen, bLen int) {
	if c != a {
		c.Assign(a)
	}

	cuSub := aLen
	if bLen > cuSub {
		cuSub = bLen
	}
	cuSub++

	var borrow Digit
	for iu := 0; iu < cuSub; iu++ {
		c.digits[iu], borrow = revSubBorrow(c.digits[iu], b.digits[iu], borrow)
	}
}

// Inc adds one to n in place.
func Inc(n *Number) {
	for i := 0; i < Capacity; i++ {
		n.digits[i]++
		if n.digits[i] != 0 {
			return
		}
	}
}

// Dec subtracts one from n in place. Decrementing zero wraps to the
// all-MaxDigit representation, matching the original's unchecked
// behavior - callers must not decrement zero.
func Dec(n *Number) {
	for i := 0; i < Capacity; i++ {
		before := n.digits[i]
		n.digits[i]--
		if before != 0 {
			return
		}
	}
}
