// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package timewheel

// Wheel is a hierarchical, cascading timing wheel (C4 wheel array plus
// C1 tick clock, C3 registry and C6/C7 glue). It is single-threaded:
// every method must run on the goroutine driving Tick; see SyncWheel
// for a thread-safe façade.
type Wheel struct {
	jiffies Jiffy
	buckets [W]bucketList
	expired bucketList // already-due records, drained unconditionally every Tick pass

	reg   *registry
	pool  recordPool
	idgen *idAllocator

	smoothing bool // tick smoothing knob, §4.5 step 2; off by default
}

// Option configures a Wheel at construction time.
type Option func(*Wheel)

// WithTickSmoothing enables the n := (n>>1)+1 pacing heuristic of
// spec.md §4.5/§9: it is a perceptual-smoothness knob under load, not
// required for correctness, so it defaults to off.
func WithTickSmoothing(enabled bool) Option {
	return func(w *Wheel) { w.smoothing = enabled }
}

// NewWheel builds an empty, ready-to-use Wheel.
func NewWheel(opts ...Option) *Wheel {
	w := &Wheel{
		reg:   newRegistry(),
		idgen: newIDAllocator(),
	}
	for i := range w.buckets {
		w.buckets[i].init(i)
	}
	w.expired.init(bucketExpired)
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Now returns the wheel's current jiffy counter.
func (w *Wheel) Now() Jiffy {
	return w.jiffies
}

// Len returns the number of live (non-retired) timers.
func (w *Wheel) Len() int {
	return w.reg.len()
}

// insert places r into the bucket CalculateWheelIndex picks for its
// current expires/jiffies pair (invariant 2 of spec.md §3/§8: b ==
// CalculateWheelIndex(r.expires) at the moment of insertion), or into
// the expired list if it is already due — see CalculateWheelIndex.
func (w *Wheel) insert(r *Record) {
	r.expires = ClampExpires(r.expires, w.jiffies)
	idx := CalculateWheelIndex(r.expires, w.jiffies)
	if idx == bucketExpired {
		w.expired.append(r)
		return
	}
	w.buckets[idx].append(r)
}

// listFor returns the list a record currently linked at bucket belongs
// to: one of the wheel's normal buckets, or the expired list.
func (w *Wheel) listFor(bucket int) *bucketList {
	if bucket == bucketExpired {
		return &w.expired
	}
	return &w.buckets[bucket]
}

// relocate moves r, currently Pending in a bucket (or the expired
// list), to wherever its (already updated) expires now maps to.
func (w *Wheel) relocate(r *Record) {
	w.listFor(r.bucket).rm(r)
	w.insert(r)
}

// newRecord acquires a record from the pool, assigns it a fresh id
// and registers it. On an (unexpected) id collision the just-acquired
// record is released and the error returned, per spec.md §5/§7.
func (w *Wheel) newRecord(cb Callback, p1, p2 interface{}) (*Record, error) {
	r := w.pool.acquire()
	r.id = w.idgen.next()
	r.flags = fValid
	r.cb = cb
	r.p1, r.p2 = p1, p2
	if err := w.reg.insert(r); err != nil {
		w.pool.release(r)
		return nil, err
	}
	return r, nil
}
