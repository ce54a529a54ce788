// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

// Package timewheel implements a hierarchical, cascading timing wheel
// for in-process, coarse-grained one-shot and repeating timers.
//
// The wheel does not sample wall-clock time itself: a driver advances
// it by calling Tick with the elapsed milliseconds since the previous
// call, and the wheel dispatches every timer whose expiry has been
// reached, in increasing jiffy order. Expected populations range from
// a handful of timers to about a million; expected horizons range
// from a single jiffy to several days, which is what the nine-level
// cascading geometry (see geometry.go) is sized for.
//
// The core Wheel type is single-threaded: all of its state (jiffies,
// buckets, registry, pool) is owned by whichever goroutine calls Tick
// and the mutator methods, and none of it is safe for concurrent use.
// SyncWheel wraps it behind a mutex for callers that need to register
// timers from other goroutines.
package timewheel

const NAME = "timewheel"
