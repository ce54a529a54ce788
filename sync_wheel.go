// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package timewheel

import "sync"

// SyncWheel is a mutex-guarded façade around Wheel, grounded on the
// teacher's own choice to serialize its hot path behind a single lock
// rather than go lock-free. Use it when timers are registered, removed
// or modified from goroutines other than the one driving Tick; a
// pure producer/consumer pipeline that only ever touches the wheel
// from its own driving goroutine can use Wheel directly and skip the
// locking overhead.
type SyncWheel struct {
	mu sync.Mutex
	w  *Wheel
}

// NewSyncWheel wraps a freshly built Wheel.
func NewSyncWheel(opts ...Option) *SyncWheel {
	return &SyncWheel{w: NewWheel(opts...)}
}

func (sw *SyncWheel) Tick(deltaMs float32) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.w.Tick(deltaMs)
}

func (sw *SyncWheel) Now() Jiffy {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.Now()
}

func (sw *SyncWheel) Len() int {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.Len()
}

func (sw *SyncWheel) AddDelay(delayMs float64, cb Callback, p1, p2 interface{}) int64 {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.AddDelay(delayMs, cb, p1, p2)
}

func (sw *SyncWheel) AddLoop(intervalMs float64, loops int64, delayMs float64, cb Callback, p1, p2 interface{}) int64 {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.AddLoop(intervalMs, loops, delayMs, cb, p1, p2)
}

func (sw *SyncWheel) AddLoopForever(intervalMs float64, cb Callback, p1, p2 interface{}) int64 {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.AddLoopForever(intervalMs, cb, p1, p2)
}

func (sw *SyncWheel) ModifyInterval(id int64, intervalMs float64) bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.ModifyInterval(id, intervalMs)
}

func (sw *SyncWheel) ModifyDelay(id int64, delayMs float64) bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.ModifyDelay(id, delayMs)
}

func (sw *SyncWheel) ModifyLoops(id int64, loops int64) bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.ModifyLoops(id, loops)
}

func (sw *SyncWheel) ModifyCallback(id int64, cb Callback, p1, p2 interface{}) bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.ModifyCallback(id, cb, p1, p2)
}

func (sw *SyncWheel) ModifyParams(id int64, p1, p2 interface{}) bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.ModifyParams(id, p1, p2)
}

func (sw *SyncWheel) Remove(id int64) bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.Remove(id)
}
