// Command bignumctl runs a batch of bignum arithmetic jobs described by a
// TOML config file and prints their results, one line per job. It is the
// simplest legitimate external collaborator spec.md §2 describes: a batch
// driver that marshals decimal-string operands into bignum.Number and
// calls core operations directly, not an operator-overload scripting
// binding (those remain out of scope).
package main

// SPDX-License-Identifier: Apache-2.0

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bantling/bignum/bignum"
	"github.com/bantling/bignum/config"
	"github.com/bantling/bignum/signed"
)

func main() {
	path := flag.String("config", "", "path to a TOML batch job file")
	flag.Parse()

	if *path == "" {
		log.Fatal("bignumctl: -config is required")
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("bignumctl: %s", err)
	}
	defer f.Close()

	batch, err := config.Load(f)
	if err != nil {
		log.Fatalf("bignumctl: %s", err)
	}

	for _, job := range batch.Jobs {
		result, err := runJob(job)
		if err != nil {
			log.Fatalf("bignumctl: job %s: %s", job.Name, err)
		}
		fmt.Printf("%s: %s\n", job.Name, result)
	}
}

// runJob executes a single config.Job against signed.Number/bignum.Number
// and renders its result as a string. Cmp results are rendered as the
// conventional -1/0/1 rather than a decimal magnitude.
func runJob(job config.Job) (string, error) {
	switch job.Op {
	case config.OpAdd:
		return signed.OfString(job.A).Add(signed.OfString(job.B)).String(), nil
	case config.OpSub:
		return signed.OfString(job.A).Sub(signed.OfString(job.B)).String(), nil
	case config.OpMul:
		return signed.OfString(job.A).Mul(signed.OfString(job.B)).String(), nil
	case config.OpDiv:
		return signed.OfString(job.A).Div(signed.OfString(job.B)).String(), nil
	case config.OpMod:
		a, b := bignum.FromDecimalString(job.A), bignum.FromDecimalString(job.B)
		var rem bignum.Number
		bignum.Mod(&a, &b, &rem)
		return decimalString(&rem)
	case config.OpDivMod:
		a, b := bignum.FromDecimalString(job.A), bignum.FromDecimalString(job.B)
		pair := bignum.DivModPair(&a, &b)
		quo, rem := pair.Values()
		quoStr, err := decimalString(&quo)
		if err != nil {
			return "", err
		}
		remStr, err := decimalString(&rem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s r %s", quoStr, remStr), nil
	case config.OpPow:
		a, b := bignum.FromDecimalString(job.A), bignum.FromDecimalString(job.B)
		var c bignum.Number
		bignum.Pow(&a, &b, &c)
		return decimalString(&c)
	case config.OpAnd:
		return bitwise(job, bignum.And)
	case config.OpOr:
		return bitwise(job, bignum.Or)
	case config.OpXor:
		return bitwise(job, bignum.Xor)
	case config.OpShl:
		return shift(job, bignum.ShiftLeft)
	case config.OpShr:
		return shift(job, bignum.ShiftRight)
	case config.OpCmp:
		a, b := bignum.FromDecimalString(job.A), bignum.FromDecimalString(job.B)
		return fmt.Sprintf("%d", bignum.Compare(&a, &b)), nil
	}

	return "", fmt.Errorf("unhandled op %q", job.Op)
}

// bitwise runs one of And/Or/Xor over job's decimal operands.
func bitwise(job config.Job, op func(a, b, c *bignum.Number)) (string, error) {
	a, b := bignum.FromDecimalString(job.A), bignum.FromDecimalString(job.B)
	var c bignum.Number
	op(&a, &b, &c)
	return decimalString(&c)
}

// shift runs one of ShiftLeft/ShiftRight; job.B is the shift count,
// parsed as a native uint rather than an arbitrary-precision Number.
func shift(job config.Job, op func(a *bignum.Number, n uint, c *bignum.Number)) (string, error) {
	var n uint
	if _, err := fmt.Sscanf(job.B, "%d", &n); err != nil {
		return "", fmt.Errorf("shift count %q: %w", job.B, err)
	}
	a := bignum.FromDecimalString(job.A)
	var c bignum.Number
	op(&a, n, &c)
	return decimalString(&c)
}

// decimalString renders n with a buffer large enough for any value this
// module's Capacity can represent.
func decimalString(n *bignum.Number) (string, error) {
	buf := make([]byte, 256)
	return n.ToDecimalString(buf)
}
