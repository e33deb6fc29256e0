package config

// SPDX-License-Identifier: Apache-2.0

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_(t *testing.T) {
	src := `
[[jobs]]
name = "add-one"
op = "add"
a = "123456789012345678901234567890"
b = "1"

[[jobs]]
name = "shift"
op = "shl"
a = "1"
b = "95"
`
	batch, err := Load(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Len(t, batch.Jobs, 2)
	assert.Equal(t, Job{Name: "add-one", Op: OpAdd, A: "123456789012345678901234567890", B: "1"}, batch.Jobs[0])
	assert.Equal(t, Job{Name: "shift", Op: OpShl, A: "1", B: "95"}, batch.Jobs[1])
}

func TestLoad_empty(t *testing.T) {
	batch, err := Load(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, batch.Jobs)
}

func TestLoad_unrecognizedOp(t *testing.T) {
	src := `
[[jobs]]
name = "bogus"
op = "frobnicate"
a = "1"
b = "2"
`
	_, err := Load(strings.NewReader(src))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `op "frobnicate" is not recognized`)
}

func TestLoad_missingName(t *testing.T) {
	src := `
[[jobs]]
op = "add"
a = "1"
b = "2"
`
	_, err := Load(strings.NewReader(src))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name must not be empty")
}

func TestLoad_missingOperand(t *testing.T) {
	src := `
[[jobs]]
name = "bad"
op = "add"
a = "1"
`
	_, err := Load(strings.NewReader(src))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "operand b must not be empty")
}

func TestJobValidate_(t *testing.T) {
	assert.NoError(t, Job{Name: "x", Op: OpAdd, A: "1", B: "2"}.Validate(0))
	assert.Error(t, Job{Name: "", Op: OpAdd, A: "1", B: "2"}.Validate(0))
	assert.Error(t, Job{Name: "x", Op: "nope", A: "1", B: "2"}.Validate(0))
}
