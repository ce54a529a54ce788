// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package timewheel

// Infinite marks a repeating timer that never exhausts its loop count.
const Infinite int64 = -1

// Callback is invoked when a timer fires. It receives the two opaque
// parameters installed at registration/modify time; it must not block
// indefinitely and must not call Tick or the pool.
type Callback func(p1, p2 interface{})

// Record is the per-timer state: id, interval, expiry, remaining
// loops, bucket back-pointer and callback closure (C2). It is also the
// intrusive doubly-linked list node used by the bucket it currently
// lives in, mirroring the teacher's TimerLnk: a timer's "next"/"prev"
// pointers are only ever non-nil while it is Pending(bucket).
type Record struct {
	next, prev *Record // intrusive bucket list pointers; nil when detached

	id       int64
	interval Jiffy // period between repeats; 0 == fire as soon as due
	expires  Jiffy // absolute jiffy this record should next fire at
	loops    int64 // remaining fires: >0, or Infinite; 0 == expired, awaiting removal
	bucket   int   // index into Wheel.buckets, bucketExpired, or bucketNone

	flags tFlags
	cb    Callback
	p1    interface{}
	p2    interface{}
}

// detached reports whether r is currently unlinked from every bucket.
func (r *Record) detached() bool {
	return r.next == nil && r.prev == nil
}

// valid reports whether r should still fire: has a callback and has
// not been cancelled or exhausted.
func (r *Record) valid() bool {
	return r.flags&fValid != 0 && r.cb != nil && r.loops != 0
}

// reset clears a record back to its pool-fresh state (the object pool
// contract of spec.md §6: callback/params cleared, loops=Infinite,
// expires=0, interval=0, bucket=bucketNone).
func (r *Record) reset() {
	r.next, r.prev = nil, nil
	r.id = 0
	r.interval = 0
	r.expires = 0
	r.loops = Infinite
	r.bucket = bucketNone
	r.flags = 0
	r.cb = nil
	r.p1, r.p2 = nil, nil
}

// ID returns the record's stable id.
func (r *Record) ID() int64 { return r.id }

// Expires returns the absolute jiffy the record is currently scheduled
// to fire at.
func (r *Record) Expires() Jiffy { return r.expires }
