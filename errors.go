// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package timewheel

import (
	"errors"
	"fmt"

	pcerrors "github.com/pingcap/errors"
)

// Sentinel errors for the report-and-continue contract of spec.md §7.
// Mutators log these with %s; callers can compare against them with
// errors.Is. wrapBug below additionally wraps one with
// github.com/pingcap/errors where a stack trace is useful for
// diagnosing a condition that "should not occur".
var (
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrUnknownID         = errors.New("unknown timer id")
	ErrIDCollision       = errors.New("timer id collision")
)

// wrapBug annotates err with a stack trace for BUG-level diagnostics;
// callers still satisfy errors.Is(wrapBug(err, ...), err).
func wrapBug(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &bugError{error: pcerrors.Wrapf(err, format, args...), cause: err}
}

// bugError holds the stack-carrying pingcap wrap and unwraps to the
// original error, which the pingcap wrap alone does not do for errors.Is.
type bugError struct {
	error
	cause error
}

func (e *bugError) Unwrap() error { return e.cause }

func (e *bugError) Format(s fmt.State, verb rune) { e.error.(fmt.Formatter).Format(s, verb) }
