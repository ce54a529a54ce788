// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package timewheel

import "math"

// Tick is the public dispatcher entry point (C7), and the only way
// jiffies ever advances. deltaMs is the wall-clock elapsed time since
// the previous call, in milliseconds; negative or NaN values are
// treated as zero (spec.md §6).
//
// If the registry is empty, jiffies is reset to 0 instead of advancing
// — safe because no timer's expires can be affected by an instant with
// no timers — which keeps the counter from drifting upward over long
// idle periods.
//
// A callback must not call Tick: Wheel is single-threaded and Tick is
// not reentrant.
//
// Each jiffy is serviced by advancing the counter first and then
// draining/cascading at the new value, mirroring the advance-then-run
// pairing of the wheel this package is descended from: a record whose
// expires equals jiffies+d fires on the d-th jiffy boundary crossed by
// this call, including the very last one.
//
// The expired list is drained unconditionally on every pass, after the
// level-0 slot and the cascade: it holds records that were already due
// the moment they were inserted (a zero-delay AddDelay, or a reschedule
// with interval 0), which cannot safely wait for their registration
// jiffy's bottom-level slot to come back around — that slot was either
// just serviced this same pass or won't be serviced again for up to
// S-1 jiffies. See CalculateWheelIndex.
func (w *Wheel) Tick(deltaMs float32) {
	if w.reg.len() == 0 {
		w.jiffies = 0
		return
	}
	if deltaMs < 0 || deltaMs != deltaMs { // NaN never compares equal to itself
		deltaMs = 0
	}
	n := Jiffy(math.Floor(float64(deltaMs) / jiffyMs))
	if w.smoothing {
		n = n>>1 + 1
	}
	for i := Jiffy(0); i < n; i++ {
		w.jiffies++
		slot := int(w.jiffies) & (S - 1)
		w.drain(&w.buckets[slot])
		w.cascade()
		w.drain(&w.expired)
	}
}

// drain executes, in bucket-FIFO (insertion) order, every record
// currently in lst (spec.md §4.7).
func (w *Wheel) drain(lst *bucketList) {
	for {
		r := lst.popFront()
		if r == nil {
			return
		}
		w.fire(r)
	}
}

// fire runs a single expired record's validity check, callback and
// re-scheduling/retirement (spec.md §4.7). A panicking callback is
// isolated: the offending record is retired and subsequent records
// and ticks continue unaffected (spec.md §7).
func (w *Wheel) fire(r *Record) {
	if !r.valid() {
		w.retire(r)
		return
	}

	r.flags |= fRunning
	expires := r.expires
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				BUG("timer %d callback panicked: %v\n", r.id, rec)
				r.flags &^= fValid
			}
		}()
		r.cb(r.p1, r.p2)
	}()
	r.flags &^= fRunning

	if r.flags&fValid == 0 {
		w.retire(r)
		return
	}
	if r.loops > 0 {
		r.loops--
	}
	if r.loops == Infinite || r.loops > 0 {
		if r.expires == expires { // not moved by ModifyDelay during the callback
			r.expires = w.jiffies + r.interval
		}
		w.insert(r)
		return
	}
	w.retire(r)
}

// retire unregisters r and releases it back to the pool, along every
// exit path (normal exhaustion, cancel, panic).
func (w *Wheel) retire(r *Record) {
	w.reg.delete(r.id)
	w.pool.release(r)
}
