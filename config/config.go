// Package config loads a batch of bignum arithmetic jobs from a TOML file,
// grounded on the teacher's app.Load: decode into a loosely-typed
// map[string]any with go-toml/v2 first, then mapstructure.Decode each job
// table into a strongly-typed Job struct. It supplies the job list for
// cmd/bignumctl, the batch driver that marshals the decimal-string
// operands into bignum.Number and calls core operations; this package
// itself only decodes and validates jobs.
package config

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"
	"io"

	"github.com/bantling/bignum/funcs"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
)

// Op names the arithmetic or bitwise operation a Job performs. Decimal
// string operands are used throughout, matching the CLI's job-file
// surface rather than bignum's in-memory Number type.
type Op string

// Supported Op values.
const (
	OpAdd    Op = "add"
	OpSub    Op = "sub"
	OpMul    Op = "mul"
	OpDiv    Op = "div"
	OpMod    Op = "mod"
	OpDivMod Op = "divmod"
	OpPow    Op = "pow"
	OpAnd    Op = "and"
	OpOr     Op = "or"
	OpXor    Op = "xor"
	OpShl    Op = "shl"
	OpShr    Op = "shr"
	OpCmp    Op = "cmp"
)

// validOps is the set Op.Validate checks membership against.
var validOps = map[Op]bool{
	OpAdd: true, OpSub: true, OpMul: true, OpDiv: true, OpMod: true,
	OpDivMod: true, OpPow: true, OpAnd: true, OpOr: true, OpXor: true,
	OpShl: true, OpShr: true, OpCmp: true,
}

// Job is a single named arithmetic operation: Op applied to A and (for
// every op except a hypothetical unary one - none exist yet) B, both
// decimal strings. Shl/Shr reuse B as the shift count, parsed as decimal.
type Job struct {
	Name string
	Op   Op
	A    string
	B    string
}

// errJobMsg mirrors the teacher's "%s: ..." field-validation error style
// from app/config.go.
const (
	errJobNameMsg = "job %d: name must not be empty"
	errJobOpMsg   = "%s: op %q is not recognized"
	errJobAMsg    = "%s: operand a must not be empty"
	errJobBMsg    = "%s: operand b must not be empty"
)

// Validate checks that j is well-formed: a non-empty name, a recognized
// Op, and non-empty decimal operands (B is required by every Op this
// package supports).
func (j Job) Validate(index int) error {
	if j.Name == "" {
		return fmt.Errorf(errJobNameMsg, index)
	}
	if !validOps[j.Op] {
		return fmt.Errorf(errJobOpMsg, j.Name, j.Op)
	}
	if j.A == "" {
		return fmt.Errorf(errJobAMsg, j.Name)
	}
	if j.B == "" {
		return fmt.Errorf(errJobBMsg, j.Name)
	}
	return nil
}

// Batch is the top-level decoded configuration: a named list of Jobs.
type Batch struct {
	Jobs []Job
}

// Load decodes src as TOML into a Batch, validating every job. Follows
// the teacher's app.Load shape exactly: decode into map[string]any first
// (funcs.Must on the TOML decode error, since a malformed config file is
// caller misuse the same way a nil Number pointer is), then
// mapstructure.Decode the "jobs" table array into []Job.
//
// Unlike app.Load, there is no default configuration to fall back to -
// an empty or missing "jobs" array simply yields an empty Batch.
func Load(src io.Reader) (Batch, error) {
	var (
		batch     Batch
		configMap = map[string]any{}
		decoder   = toml.NewDecoder(src)
	)

	funcs.Must(decoder.Decode(&configMap))

	jobsRaw, ok := configMap["jobs"]
	if !ok {
		return batch, nil
	}

	msdc := mapstructure.DecoderConfig{ErrorUnused: true, Result: &batch.Jobs}
	msDecoder := funcs.MustValue(mapstructure.NewDecoder(&msdc))
	if err := msDecoder.Decode(jobsRaw); err != nil {
		return Batch{}, fmt.Errorf("config: decoding jobs: %w", err)
	}

	for i, j := range batch.Jobs {
		if err := j.Validate(i); err != nil {
			return Batch{}, err
		}
	}

	return batch, nil
}
