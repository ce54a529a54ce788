// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package timewheel

// bucketList is a circular, doubly-linked intrusive list of *Record,
// supporting O(1) append and O(1) removal of a known node. Each of the
// W buckets in Wheel.buckets is one of these; none are ever
// allocated/freed at runtime, only emptied and refilled.
type bucketList struct {
	head Record // sentinel; only next/prev are meaningful
	idx  int    // owning bucket index, for debugging/BUG messages
}

// init turns lst into an empty circular list.
func (lst *bucketList) init(idx int) {
	lst.idx = idx
	lst.head.next = &lst.head
	lst.head.prev = &lst.head
}

// isEmpty reports whether the list has no elements.
func (lst *bucketList) isEmpty() bool {
	return lst.head.next == &lst.head
}

// append adds e (which must be detached) at the end of the list and
// stamps its bucket back-pointer.
func (lst *bucketList) append(e *Record) {
	if !e.detached() {
		BUG("bucketList.append: record %d not detached (bucket %d)\n",
			e.id, e.bucket)
	}
	e.prev = lst.head.prev
	e.next = &lst.head
	e.prev.next = e
	lst.head.prev = e
	e.bucket = lst.idx
}

// rm removes e from the list it currently belongs to, leaving it
// detached. There is no internal check that e actually belongs to
// lst: callers index buckets by Record.bucket, which guarantees it.
func (lst *bucketList) rm(e *Record) {
	if e.detached() {
		BUG("bucketList.rm: record %d already detached\n", e.id)
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next, e.prev = nil, nil
	e.bucket = bucketNone
}

// popFront removes and returns the first element, or nil if empty.
func (lst *bucketList) popFront() *Record {
	if lst.isEmpty() {
		return nil
	}
	e := lst.head.next
	lst.rm(e)
	return e
}
