// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package timewheel

import (
	"math"
	"strconv"
)

// jiffyMs is the length of one jiffy in milliseconds.
const jiffyMs = 1000.0 / float64(HZ)

// Jiffy is the scheduler's internal time unit: HZ of them make up one
// second. Unlike the fixed-width, wraparound-safe tick counter this
// type is modelled on, a Jiffy is an ordinary monotonically increasing
// counter — jiffies never wrap, because the dispatcher resets them to
// 0 whenever the registry is empty (see Wheel.Tick), which bounds
// growth without needing modular arithmetic.
type Jiffy uint64

// MsToJiffies converts a millisecond duration to a jiffy count,
// rounding up so that a requested delay never fires early because of
// rounding. Negative input is treated as zero.
func MsToJiffies(ms float64) Jiffy {
	if ms <= 0 {
		return 0
	}
	return Jiffy(math.Ceil(ms / jiffyMs))
}

// JiffiesToMs converts a jiffy count back to milliseconds.
func JiffiesToMs(j Jiffy) float64 {
	return float64(j) * jiffyMs
}

// Add returns j+u.
func (j Jiffy) Add(u Jiffy) Jiffy {
	return j + u
}

// Sub returns j-u. Callers must ensure j >= u; jiffies never wrap.
func (j Jiffy) Sub(u Jiffy) Jiffy {
	return j - u
}

// String implements fmt.Stringer, mostly for debugging.
func (j Jiffy) String() string {
	return strconv.FormatUint(uint64(j), 10)
}
