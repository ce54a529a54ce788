// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package timewheel

import "testing"

func TestCalculateWheelIndexDueNow(t *testing.T) {
	now := Jiffy(1000)
	for _, expires := range []Jiffy{0, 500, 1000} {
		idx := CalculateWheelIndex(expires, now)
		if idx != bucketExpired {
			t.Errorf("CalculateWheelIndex(%d, %d) = %d, want bucketExpired (%d)", expires, now, idx, bucketExpired)
		}
	}
}

func TestCalculateWheelIndexLevel0(t *testing.T) {
	now := Jiffy(0)
	for delta := Jiffy(1); delta < Jiffy(S); delta++ {
		idx := CalculateWheelIndex(now+delta, now)
		if idx < 0 || idx >= S {
			t.Errorf("delta %d landed outside level 0: idx=%d", delta, idx)
		}
	}
}

func TestCalculateWheelIndexHigherLevels(t *testing.T) {
	now := Jiffy(0)
	delta := Jiffy(S) // smallest delta that must cascade past level 0
	idx := CalculateWheelIndex(now+delta, now)
	if idx < S {
		t.Errorf("delta==S landed in level 0 (idx=%d), expected level >= 1", idx)
	}
}

func TestCalculateWheelIndexInRange(t *testing.T) {
	now := Jiffy(12345)
	for _, delta := range []uint64{1, 63, 64, 4095, 4096, CUTOFF - 1, CUTOFF, CUTOFF + 1000} {
		idx := CalculateWheelIndex(now+Jiffy(delta), now)
		if idx < 0 || idx >= W {
			t.Errorf("delta %d produced out-of-range index %d", delta, idx)
		}
	}
}

func TestClampExpiresNoOverflow(t *testing.T) {
	now := Jiffy(1000)
	got := ClampExpires(now+Jiffy(CUTOFF)+5000, now)
	want := now + Jiffy(MAX_DELTA)
	if got != want {
		t.Errorf("ClampExpires over-range = %d, want %d", got, want)
	}
}

func TestClampExpiresPassesThroughInRange(t *testing.T) {
	now := Jiffy(1000)
	expires := now + 42
	if got := ClampExpires(expires, now); got != expires {
		t.Errorf("ClampExpires in-range = %d, want unchanged %d", got, expires)
	}
}

func TestClampExpiresAlreadyDue(t *testing.T) {
	now := Jiffy(1000)
	if got := ClampExpires(now-1, now); got != now-1 {
		t.Errorf("ClampExpires already-due = %d, want unchanged %d", got, now-1)
	}
}

func TestClampedExpiryStillResolvesToCoarsestLevel(t *testing.T) {
	now := Jiffy(0)
	idx := CalculateWheelIndex(now+Jiffy(MAX_DELTA), now)
	if idx < (DEPTH-1)*S || idx >= DEPTH*S {
		t.Errorf("MAX_DELTA did not resolve to the coarsest level: idx=%d", idx)
	}
}
