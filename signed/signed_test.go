package signed

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/bantling/bignum/bignum"
	"github.com/stretchr/testify/assert"
)

func TestOfString_(t *testing.T) {
	assert.Equal(t, "123", OfString("123").String())
	assert.Equal(t, "123", OfString("+123").String())
	assert.Equal(t, "-123", OfString("-123").String())
	assert.Equal(t, "0", OfString("0").String())
	assert.Equal(t, "0", OfString("-0").String(), "negative zero normalizes to Zero sign")
}

func TestOfInt_(t *testing.T) {
	assert.Equal(t, "42", OfInt(42).String())
	assert.Equal(t, "-42", OfInt(-42).String())
	assert.Equal(t, "0", OfInt(0).String())
	assert.Equal(t, "255", OfInt(uint8(255)).String())
}

func TestNegate_(t *testing.T) {
	assert.Equal(t, "-5", OfString("5").Negate().String())
	assert.Equal(t, "5", OfString("-5").Negate().String())
	assert.Equal(t, "0", OfString("0").Negate().String())
}

func TestAdd_(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"5", "3", "8"},
		{"-5", "-3", "-8"},
		{"5", "-3", "2"},
		{"-5", "3", "-2"},
		{"3", "-5", "-2"},
		{"-3", "5", "2"},
		{"0", "5", "5"},
		{"5", "0", "5"},
		{"0", "-5", "-5"},
		{"5", "-5", "0"},
	}
	for _, c := range cases {
		got := OfString(c.a).Add(OfString(c.b)).String()
		assert.Equal(t, c.want, got, "%s + %s", c.a, c.b)
	}
}

func TestSub_(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"5", "3", "2"},
		{"3", "5", "-2"},
		{"-5", "-3", "-2"},
		{"-3", "-5", "2"},
		{"5", "-3", "8"},
		{"-5", "3", "-8"},
		{"0", "3", "-3"},
		{"0", "-3", "3"},
		{"3", "0", "3"},
		{"-3", "0", "-3"},
		{"5", "5", "0"},
	}
	for _, c := range cases {
		got := OfString(c.a).Sub(OfString(c.b)).String()
		assert.Equal(t, c.want, got, "%s - %s", c.a, c.b)
	}
}

func TestMul_(t *testing.T) {
	assert.Equal(t, "15", OfString("5").Mul(OfString("3")).String())
	assert.Equal(t, "-15", OfString("-5").Mul(OfString("3")).String())
	assert.Equal(t, "15", OfString("-5").Mul(OfString("-3")).String())
	assert.Equal(t, "0", OfString("-5").Mul(OfString("0")).String())
}

func TestDiv_(t *testing.T) {
	assert.Equal(t, "5", OfString("15").Div(OfString("3")).String())
	assert.Equal(t, "-5", OfString("-15").Div(OfString("3")).String())
	assert.Equal(t, "5", OfString("-15").Div(OfString("-3")).String())
}

func TestCmp_(t *testing.T) {
	assert.Equal(t, bignum.Equal, OfString("5").Cmp(OfString("5")))
	assert.Equal(t, bignum.Smaller, OfString("-5").Cmp(OfString("5")))
	assert.Equal(t, bignum.Larger, OfString("5").Cmp(OfString("-5")))
	assert.Equal(t, bignum.Smaller, OfString("-5").Cmp(OfString("-3")))
	assert.Equal(t, bignum.Larger, OfString("-3").Cmp(OfString("-5")))
	assert.Equal(t, bignum.Smaller, OfString("3").Cmp(OfString("5")))
}

func TestMustOfString_(t *testing.T) {
	assert.NotPanics(t, func() { MustOfString("123") })
	assert.Panics(t, func() { MustOfString("abc") })
	assert.Panics(t, func() { MustOfString("") })
}
