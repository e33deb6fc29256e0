// Package funcs provides small generic helpers shared across this module -
// trimmed from the teacher's much larger funcs package down to the pair of
// functions the rest of the tree actually calls: the Must/MustValue
// panic-on-error wrappers used for config loading and CLI plumbing.
package funcs

// SPDX-License-Identifier: Apache-2.0

// Must panics if the error is non-nil, else returns. Useful to wrap calls
// to functions that return only an error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// MustValue panics if the error is non-nil, else returns the value of type
// T. Useful to wrap calls to functions that return a value and an error,
// where the value is only valid if the error is nil.
func MustValue[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}

	return t
}
