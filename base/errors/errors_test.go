// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil))

	base := stderrors.New("file missing")
	err := Wrap(base)
	assert.Error(t, err)
	assert.Equal(t, base, err.(*Error).Base)
	assert.True(t, Is(err, base))
	assert.Equal(t, base, stderrors.Unwrap(err))
}

func TestNew(t *testing.T) {
	err := New("bad value")
	assert.Error(t, err)
	assert.IsType(t, &Error{}, err)
	assert.Equal(t, "bad value", err.Error())

	err = Errorf("bad value %d of %d", 2, 3)
	assert.Equal(t, "bad value 2 of 3", err.Error())
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("oops")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 42, Log1(42, nil))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("no")) })
	assert.Equal(t, "x", Must1("x", nil))
}

func TestIgnore(t *testing.T) {
	Ignore(New("dropped"))
	assert.Equal(t, 3, Ignore1(3, New("dropped")))
}
