package bignum

// SPDX-License-Identifier: Apache-2.0

// Pow computes c = a^b by linear repeated multiplication - not fast
// exponentiation, a straight loop that multiplies by a once per unit of
// b, exactly as the original bignum_pow does. Both a and b are snapshotted
// into local copies before c is ever written, so c may alias a and/or b:
// c is only ever touched by the final assignment, and the per-iteration
// product (running product as Mul's a, a's copy as Mul's b) always lands
// in a fresh temporary before being copied back into the running product.
func Pow(a, b, c *Number) {
	var aCopy, bCopy Number
	aCopy.Assign(a)
	bCopy.Assign(b)

	if bCopy.IsZero() {
		c.Init()
		Inc(c)
		return
	}

	var tmp Number
	tmp.Assign(&aCopy)
	Dec(&bCopy)

	for !bCopy.IsZero() {
		var next Number
		Mul(&tmp, &aCopy, &next)
		tmp.Assign(&next)
		Dec(&bCopy)
	}

	c.Assign(&tmp)
}

// Isqrt would compute the integer square root of a via binary search.
// The original bignum_isqrt ships as commented-out dead code rather than
// a working implementation, and that is preserved here rather than
// silently "fixed" with a working binary search - see the design notes
// on known/suspicious behaviors to carry forward untouched.
//
// func Isqrt(a, b *Number) {
// 	var low, high, mid, tmp Number
// 	high.Assign(a)
// 	ShiftRight(&high, 1, &mid)
// 	Inc(&mid)
//
// 	for Compare(&high, &low) > 0 {
// 		Mul(&mid, &mid, &tmp)
// 		if Compare(&tmp, a) > 0 {
// 			high.Assign(&mid)
// 			Dec(&high)
// 		} else {
// 			low.Assign(&mid)
// 		}
// 		var sign Sign
// 		Sub(&high, &low, &mid, &sign)
// 		ShiftRight(&mid, 1, &mid)
// 		Add(&low, &mid, &mid)
// 		Inc(&mid)
// 	}
// 	b.Assign(&low)
// }
