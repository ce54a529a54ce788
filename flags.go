// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package timewheel

import "fmt"

// timer flags, tracked directly on Record (no atomics: the core Wheel
// is single-threaded, see doc.go).
type tFlags uint8

const (
	fValid   tFlags = 1 << iota // has a live callback, not cancelled
	fRunning                    // callback for this record is currently executing
)

const (
	// bucketNone marks a record that is not linked into any bucket.
	bucketNone = -1

	// bucketExpired marks a record linked into Wheel.expired rather
	// than one of Wheel.buckets: an already-due record at the moment
	// it was inserted, waiting for the next Tick to drain it
	// unconditionally. See CalculateWheelIndex and Wheel.insert.
	bucketExpired = -2
)

// String is mostly for debugging/%v.
func (f tFlags) String() string {
	return fmt.Sprintf("valid=%v running=%v", f&fValid != 0, f&fRunning != 0)
}
