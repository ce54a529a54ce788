// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package timewheel

import (
	"fmt"

	"github.com/intuitivelabs/slog"
)

// Log is the package's leveled logger, matching the DBG/WARN/ERR/BUG
// style used throughout the teacher repo this package is based on.
// It is internal diagnostics only: no public operation requires a
// caller to configure it (logging is out of this package's feature
// scope, but not out of its ambient idiom).
var Log = slog.New(slog.LWARN, slog.LOptNone, slog.LDefaultOut)

func DBGon() bool  { return Log.GetLevel() >= slog.LDBG }
func WARNon() bool { return Log.GetLevel() >= slog.LWARN }
func ERRon() bool  { return Log.GetLevel() >= slog.LERR }

func DBG(f string, a ...interface{}) {
	if DBGon() {
		Log.Log(slog.LDBG, f, a...)
	}
}

func WARN(f string, a ...interface{}) {
	if WARNon() {
		Log.Log(slog.LWARN, f, a...)
	}
}

func ERR(f string, a ...interface{}) {
	if ERRon() {
		Log.Log(slog.LERR, f, a...)
	}
}

// BUG logs a condition that should not occur under the monotonic id
// allocator / correct internal bookkeeping, but does not abort.
func BUG(f string, a ...interface{}) {
	Log.Log(slog.LERR, "BUG: "+f, a...)
}

// PANIC logs and then panics; reserved for invariant violations that
// make it unsafe to keep running (e.g. a corrupted intrusive list).
func PANIC(f string, a ...interface{}) {
	Log.Log(slog.LCRIT, "PANIC: "+f, a...)
	panic(fmt.Sprintf(f, a...))
}
