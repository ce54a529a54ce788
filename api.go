// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package timewheel

// AddDelay registers a one-shot timer that fires cb(p1, p2) once,
// delayMs milliseconds from now. It returns the new timer's id, or -1
// on a bad argument (delayMs < 0, cb == nil) or registration failure.
func (w *Wheel) AddDelay(delayMs float64, cb Callback, p1, p2 interface{}) int64 {
	if delayMs < 0 || cb == nil {
		ERR("AddDelay: %s (delayMs=%v cb==nil=%v)\n", ErrInvalidParameters, delayMs, cb == nil)
		return -1
	}
	r, err := w.newRecord(cb, p1, p2)
	if err != nil {
		ERR("AddDelay: %s\n", err)
		return -1
	}
	r.loops = 1
	r.interval = 0
	r.expires = w.jiffies + MsToJiffies(delayMs)
	w.insert(r)
	return r.id
}

// AddLoop registers a repeating timer that fires cb(p1, p2) every
// intervalMs milliseconds, loops times (or forever if loops ==
// Infinite), first firing delayMs after intervalMs from now. It
// returns the new timer's id, or -1 on a bad argument or registration
// failure.
func (w *Wheel) AddLoop(intervalMs float64, loops int64, delayMs float64, cb Callback, p1, p2 interface{}) int64 {
	if intervalMs <= 0 || cb == nil || (loops != Infinite && loops <= 0) {
		ERR("AddLoop: %s (intervalMs=%v loops=%v cb==nil=%v)\n",
			ErrInvalidParameters, intervalMs, loops, cb == nil)
		return -1
	}
	r, err := w.newRecord(cb, p1, p2)
	if err != nil {
		ERR("AddLoop: %s\n", err)
		return -1
	}
	r.loops = loops
	r.interval = MsToJiffies(intervalMs)
	r.expires = w.jiffies + MsToJiffies(intervalMs+delayMs)
	w.insert(r)
	return r.id
}

// AddLoopForever is AddLoop with the spec's defaults (loops=Infinite,
// delayMs=0).
func (w *Wheel) AddLoopForever(intervalMs float64, cb Callback, p1, p2 interface{}) int64 {
	return w.AddLoop(intervalMs, Infinite, 0, cb, p1, p2)
}

// ModifyInterval updates id's interval and recomputes its next
// expiry as jiffies + the new interval. If id is currently firing
// (mid-callback), the new interval only takes effect on the
// subsequent re-schedule, per spec.md §8's boundary behaviour — there
// is no bucket to relocate it out of yet.
func (w *Wheel) ModifyInterval(id int64, intervalMs float64) bool {
	if intervalMs <= 0 {
		WARN("ModifyInterval: %s: invalid intervalMs %v for id %d\n", ErrInvalidParameters, intervalMs, id)
		return false
	}
	r, ok := w.reg.lookup(id)
	if !ok {
		WARN("ModifyInterval: %s: id %d\n", ErrUnknownID, id)
		return false
	}
	r.interval = MsToJiffies(intervalMs)
	if r.detached() {
		return true
	}
	r.expires = w.jiffies + r.interval
	w.relocate(r)
	return true
}

// ModifyDelay updates id's next expiry to jiffies + interval + delayMs
// and relocates it, unless id is currently firing, in which case — as
// with ModifyInterval — it takes effect on the subsequent re-schedule.
func (w *Wheel) ModifyDelay(id int64, delayMs float64) bool {
	if delayMs < 0 {
		WARN("ModifyDelay: %s: invalid delayMs %v for id %d\n", ErrInvalidParameters, delayMs, id)
		return false
	}
	r, ok := w.reg.lookup(id)
	if !ok {
		WARN("ModifyDelay: %s: id %d\n", ErrUnknownID, id)
		return false
	}
	r.expires = w.jiffies + r.interval + MsToJiffies(delayMs)
	if r.detached() {
		return true
	}
	w.relocate(r)
	return true
}

// ModifyLoops updates id's remaining fire count in place; it never
// relocates the record.
func (w *Wheel) ModifyLoops(id int64, loops int64) bool {
	if loops != Infinite && loops < 0 {
		WARN("ModifyLoops: %s: invalid loops %d for id %d\n", ErrInvalidParameters, loops, id)
		return false
	}
	r, ok := w.reg.lookup(id)
	if !ok {
		WARN("ModifyLoops: %s: id %d\n", ErrUnknownID, id)
		return false
	}
	r.loops = loops
	return true
}

// ModifyCallback replaces id's callback and parameters in place.
func (w *Wheel) ModifyCallback(id int64, cb Callback, p1, p2 interface{}) bool {
	if cb == nil {
		WARN("ModifyCallback: %s: nil callback for id %d\n", ErrInvalidParameters, id)
		return false
	}
	r, ok := w.reg.lookup(id)
	if !ok {
		WARN("ModifyCallback: %s: id %d\n", ErrUnknownID, id)
		return false
	}
	r.cb, r.p1, r.p2 = cb, p1, p2
	return true
}

// ModifyParams replaces id's two opaque callback parameters in place.
func (w *Wheel) ModifyParams(id int64, p1, p2 interface{}) bool {
	r, ok := w.reg.lookup(id)
	if !ok {
		WARN("ModifyParams: %s: id %d\n", ErrUnknownID, id)
		return false
	}
	r.p1, r.p2 = p1, p2
	return true
}

// Remove lazily cancels id: the record is marked invalid immediately
// (O(1), never blocks) and is physically unlinked and retired when the
// dispatcher reaches it; the cascade engine moves it between levels
// like any other record.
// It returns whether id was a known timer.
func (w *Wheel) Remove(id int64) bool {
	r, ok := w.reg.lookup(id)
	if !ok {
		return false
	}
	r.flags &^= fValid
	return true
}
