// Package signed composes a bignum.Number with an explicit bignum.Sign,
// the "cleaner redesign" the core's design notes call for (spec.md §9):
// the core itself keeps its sign-by-reference contract for Sub, since
// callers of the procedural surface depend on it, but most call sites are
// happier with a value that carries its own sign. Number here is that
// value, grounded on the teacher's bcd.Number: a signed magnitude plus the
// same OfString/String/Negate/Cmp/Add/Sub shape, built on top of bignum's
// operations instead of bcd's packed-decimal digits.
package signed

// SPDX-License-Identifier: Apache-2.0

import (
	"strings"

	"github.com/bantling/bignum/bignum"
	"github.com/bantling/bignum/funcs"
)

// Number is a bignum.Number paired with a sign that lives outside it,
// exactly the composition spec.md §9 suggests. The zero value is the
// signed number zero.
type Number struct {
	sign Sign
	mag  bignum.Number
}

// Sign re-exports bignum.Sign so callers of this package don't need to
// import bignum just to spell Negative/Zero/Positive.
type Sign = bignum.Sign

// Sign values, re-exported from bignum.
const (
	Negative = bignum.Negative
	Zero     = bignum.Zero
	Positive = bignum.Positive
)

// normalizeSign forces sign to Zero whenever the magnitude is zero, the
// same adjustment bcd.Number.AdjustedToPositive makes, applied eagerly
// instead of on demand.
func normalizeSign(sign Sign, mag *bignum.Number) Sign {
	if mag.IsZero() {
		return Zero
	}
	return sign
}

// Of builds a Number from a sign and magnitude. The sign is normalized to
// Zero if mag is zero.
func Of(sign Sign, mag bignum.Number) Number {
	return Number{sign: normalizeSign(sign, &mag), mag: mag}
}

// integer is a local constraint covering both signed and unsigned native
// integers, so OfInt can accept either without importing the constraint
// package just for this one function's bound.
type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// OfInt builds a Number from any signed or unsigned native integer.
func OfInt[T integer](v T) Number {
	if v < 0 {
		return Of(Negative, bignum.FromInt(uint64(-int64(v))))
	}
	return Of(Positive, bignum.FromInt(uint64(v)))
}

// OfString parses an optionally-signed decimal string ("-123", "+123",
// "123") into a Number. A leading '+' or no sign at all means positive.
// Characters after the first non-digit, non-'.' character are ignored,
// matching bignum.FromDecimalString's lenient contract.
func OfString(s string) Number {
	sign := Positive
	switch {
	case strings.HasPrefix(s, "-"):
		sign = Negative
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	mag := bignum.FromDecimalString(s)
	return Of(sign, mag)
}

// MustOfString is a Must version of OfString for call sites that treat a
// malformed operand as a fatal error rather than a recoverable one.
func MustOfString(s string) Number {
	funcs.Must(validateDecimalOperand(s))
	return OfString(s)
}

// String renders the Number as an optionally-signed decimal string: a
// leading '-' for negative values, no sign for zero or positive.
func (n Number) String() string {
	buf := make([]byte, 256)
	s := funcs.MustValue(n.mag.ToDecimalString(buf))
	if n.sign == Negative {
		return "-" + s
	}
	return s
}

// Sign returns the Number's sign.
func (n Number) Sign() Sign {
	return n.sign
}

// Magnitude returns the Number's unsigned magnitude.
func (n Number) Magnitude() bignum.Number {
	return n.mag
}

// IsZero reports whether n is zero.
func (n Number) IsZero() bool {
	return n.mag.IsZero()
}

// Negate returns n with its sign flipped. Negating zero returns zero.
func (n Number) Negate() Number {
	return Of(n.sign.Negate(), n.mag)
}

// Add returns n + o, dispatching to bignum.Add when the signs agree and
// to Sub (on the negated operand) when they differ - the same sign-aware
// dispatch bcd.Number.Add performs over its packed decimal digits.
func (n Number) Add(o Number) Number {
	if n.sign == o.sign || n.IsZero() || o.IsZero() {
		sign := n.sign
		if n.IsZero() {
			sign = o.sign
		}
		var sum bignum.Number
		bignum.Add(&n.mag, &o.mag, &sum)
		return Of(sign, sum)
	}

	return n.Sub(o.Negate())
}

// Sub returns n - o, delegating to bignum.Sub for the magnitude and
// combining its external sign-flip output with the operands' signs: the
// magnitude subtraction is always performed as if both operands shared
// n's sign, then the result sign is corrected for whether Sub flipped it.
func (n Number) Sub(o Number) Number {
	if n.IsZero() {
		return o.Negate()
	}

	if n.sign != o.sign && !o.IsZero() {
		var sum bignum.Number
		bignum.Add(&n.mag, &o.mag, &sum)
		return Of(n.sign, sum)
	}

	var (
		diff bignum.Number
		flip = Positive
	)
	bignum.Sub(&n.mag, &o.mag, &diff, &flip)

	resultSign := n.sign
	if flip == Negative {
		resultSign = resultSign.Negate()
	}
	return Of(resultSign, diff)
}

// signOfProduct is the sign of a product or quotient of two signed
// operands: positive if the signs agree or either is zero (Of normalizes
// a zero-magnitude result to Zero regardless), negative otherwise.
func signOfProduct(a, b Sign) Sign {
	if a == b {
		return Positive
	}
	return Negative
}

// Mul returns n * o.
func (n Number) Mul(o Number) Number {
	var prod bignum.Number
	bignum.Mul(&n.mag, &o.mag, &prod)
	return Of(signOfProduct(n.sign, o.sign), prod)
}

// Div returns n / o, truncating toward zero. Panics if o is zero, per
// bignum.Div's contract.
func (n Number) Div(o Number) Number {
	var quo bignum.Number
	bignum.Div(&n.mag, &o.mag, &quo)
	return Of(signOfProduct(n.sign, o.sign), quo)
}

// Cmp compares n to o, returning bignum.Smaller, bignum.Equal, or
// bignum.Larger.
func (n Number) Cmp(o Number) int {
	switch {
	case n.sign < o.sign:
		return bignum.Smaller
	case n.sign > o.sign:
		return bignum.Larger
	}

	magCmp := bignum.Compare(&n.mag, &o.mag)
	if n.sign == Negative {
		return -magCmp
	}
	return magCmp
}

// validateDecimalOperand reports an error if s isn't a syntactically
// plausible signed decimal operand (optional sign, at least one digit).
// bignum.FromDecimalString itself never errors - it just stops at the
// first bad character - so this is the stricter check MustOfString needs
// to turn a malformed operand into a fatal error instead of a
// silently-truncated parse.
func validateDecimalOperand(s string) error {
	t := strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if t == "" {
		return errEmptyOperand
	}
	for i := 0; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			return errMalformedOperand(s)
		}
	}
	return nil
}
