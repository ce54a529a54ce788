// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package timewheel

// indexAt returns the flat bucket index (level*S + index-within-level)
// for a record that should be found in level at (relative or absolute)
// jiffy value t, per the "bucket within a level" formula of spec.md
// §4.2 step 5: ((t - level_start(level)) >> (level*SHIFT)) & (S-1).
func indexAt(level int, t Jiffy) int {
	ls := levelStart(level)
	within := (uint64(t) - ls) >> uint(level*SHIFT) & uint64(S-1)
	return level*S + int(within)
}

// ClampExpires implements spec.md §4.2 step 4 / §7's over-range-delay
// rule as a standalone, pure function: a delta of CUTOFF jiffies or
// more from now is silently clamped down to MAX_DELTA, never
// rejected. Callers that persist expires (Wheel.insert) use this so a
// clamped record keeps reporting the clamped value consistently on
// every future re-insertion, not just the first one.
func ClampExpires(expires, now Jiffy) Jiffy {
	if expires <= now {
		return expires
	}
	if uint64(expires-now) >= CUTOFF {
		return now + Jiffy(MAX_DELTA)
	}
	return expires
}

// CalculateWheelIndex is the pure function from (expires, now) to a
// flat bucket index (C5), implementing spec.md §4.2:
//
//  1. An already- (or about to become) due record reports bucketExpired
//     instead of a computed slot. Any real level-0 slot is only ever
//     visited once per 64-jiffy rotation, so a record due *now* cannot
//     safely be placed in one: it would sit unfired until the wheel
//     rotated all the way back around. Wheel.insert routes bucketExpired
//     into the dedicated expired list instead, which Tick drains every
//     pass regardless of rotation (grounded on the teacher's wheelExp/
//     wt.expired handling of the same already-due case).
//  2. Otherwise expires is clamped (see ClampExpires) and the smallest
//     level whose range covers the resulting delta is picked.
//  3. The index within that level is derived by right-shifting away
//     the bits finer levels already account for.
func CalculateWheelIndex(expires, now Jiffy) int {
	if expires <= now {
		return bucketExpired
	}
	expires = ClampExpires(expires, now)
	delta := uint64(expires - now)

	level := DEPTH - 1
	for l := 0; l < DEPTH; l++ {
		if delta < uint64(S)<<uint(l*SHIFT) {
			level = l
			break
		}
	}
	return indexAt(level, expires)
}
