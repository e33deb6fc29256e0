package signed

// SPDX-License-Identifier: Apache-2.0

import "fmt"

// errEmptyOperand is returned by validateDecimalOperand for an operand
// that has no digits at all (just a sign, or nothing).
var errEmptyOperand = fmt.Errorf("signed: operand has no digits")

// errMalformedOperand reports a non-digit character in a decimal operand.
func errMalformedOperand(s string) error {
	return fmt.Errorf("signed: %q is not a valid signed decimal operand", s)
}
