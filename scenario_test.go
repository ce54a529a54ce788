// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package timewheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScenarioOneShotSingleTick is the S1 scenario: a one-shot delay
// fires exactly once when a single Tick call covers its whole delay.
func TestScenarioOneShotSingleTick(t *testing.T) {
	w := NewWheel()
	fired := 0
	id := w.AddDelay(5, func(interface{}, interface{}) { fired++ }, nil, nil)
	assert.GreaterOrEqual(t, id, int64(0))

	w.Tick(5)
	assert.Equal(t, 1, fired)
}

// TestScenarioOneShotSplitAcrossTicks is S2: the same delay split over
// two Tick calls fires only once it is fully covered.
func TestScenarioOneShotSplitAcrossTicks(t *testing.T) {
	w := NewWheel()
	fired := 0
	w.AddDelay(5, func(interface{}, interface{}) { fired++ }, nil, nil)

	w.Tick(4)
	assert.Equal(t, 0, fired, "should not fire before its delay elapses")

	w.Tick(1)
	assert.Equal(t, 1, fired, "should fire once the remaining ms is ticked")
}

// TestScenarioLoopFixedCount is S3: a 4-loop repeating timer with a
// 3-jiffy interval fires once per interval boundary, exactly 4 times.
func TestScenarioLoopFixedCount(t *testing.T) {
	w := NewWheel()
	var firedAt []Jiffy
	w.AddLoop(3, 4, 0, func(interface{}, interface{}) {
		firedAt = append(firedAt, w.Now())
	}, nil, nil)

	for i := 0; i < 13; i++ {
		w.Tick(1)
	}

	assert.Equal(t, []Jiffy{3, 6, 9, 12}, firedAt)
}

// TestScenarioLargeFanOut is S4: a large population of one-shot timers
// with delays 1..N ms each fires exactly once, in its own jiffy, when
// advanced in 1ms steps. N is kept well below the spec's full 262143
// to keep this test's memory footprint reasonable; the index math does
// not change with scale.
func TestScenarioLargeFanOut(t *testing.T) {
	const n = 4096
	w := NewWheel()
	firedAt := make(map[int]Jiffy, n)
	for d := 1; d <= n; d++ {
		delay := d
		id := w.AddDelay(float64(delay), func(interface{}, interface{}) {
			firedAt[delay] = w.Now()
		}, nil, nil)
		assert.GreaterOrEqual(t, id, int64(0))
	}

	for i := 0; i < n; i++ {
		w.Tick(1)
	}

	assert.Equal(t, n, len(firedAt))
	for d := 1; d <= n; d++ {
		assert.Equal(t, Jiffy(d), firedAt[d], "delay %dms should fire at jiffy %d", d, d)
	}
}

// TestScenarioRemoveDuringWait is S5: cancelling a pending repeating
// timer before it first fires prevents the callback from ever running.
func TestScenarioRemoveDuringWait(t *testing.T) {
	w := NewWheel()
	fired := 0
	id := w.AddLoopForever(1000, func(interface{}, interface{}) { fired++ }, nil, nil)

	w.Tick(500)
	assert.True(t, w.Remove(id))

	w.Tick(600)
	assert.Equal(t, 0, fired)
}

// TestScenarioImmediateDelayFiresNextTick locks in the already-due
// fix: a zero-delay timer is due the instant it is registered, and
// must fire on the very next Tick call rather than waiting for its
// registration jiffy's bottom-level slot to be revisited.
func TestScenarioImmediateDelayFiresNextTick(t *testing.T) {
	w := NewWheel()
	fired := 0
	w.AddDelay(0, func(interface{}, interface{}) { fired++ }, nil, nil)

	w.Tick(1)
	assert.Equal(t, 1, fired)
}

// TestScenarioImmediateDelayMidRunFiresNextTick repeats the same check
// well after jiffies has moved away from 0, so the already-due
// record's registration jiffy shares a bottom-level slot with a jiffy
// that has already been serviced this rotation.
func TestScenarioImmediateDelayMidRunFiresNextTick(t *testing.T) {
	w := NewWheel()
	w.AddDelay(100000, func(interface{}, interface{}) {}, nil, nil)
	for i := 0; i < 100; i++ {
		w.Tick(1)
	}
	assert.Equal(t, Jiffy(100), w.Now())

	var firedAt Jiffy
	w.AddDelay(0, func(interface{}, interface{}) { firedAt = w.Now() }, nil, nil)

	w.Tick(1)
	assert.Equal(t, Jiffy(101), firedAt)
}

// TestScenarioModifyIntervalMidFlight is S6: changing a pending
// repeating timer's interval takes effect from the jiffy at which the
// change is made, not from its original schedule.
func TestScenarioModifyIntervalMidFlight(t *testing.T) {
	w := NewWheel()
	var firedAt []Jiffy
	id := w.AddLoopForever(16, func(interface{}, interface{}) {
		firedAt = append(firedAt, w.Now())
	}, nil, nil)

	for w.Now() < 17 {
		w.Tick(1)
	}
	assert.True(t, w.ModifyInterval(id, 33))

	for i := 0; i < 140; i++ {
		w.Tick(1)
	}

	assert.Equal(t, []Jiffy{16, 50, 83, 116, 149}, firedAt)
}
