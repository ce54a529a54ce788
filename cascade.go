// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package timewheel

// cascade is the C6 cascade engine ("task_shift"). It runs once per
// jiffy, right after the current level-0 bucket has been drained, with
// jiffies already holding this jiffy's value (spec.md §4.4). For each level from the
// coarsest down to 1, if the current jiffy count is an exact multiple
// of that level's granularity, the bucket holding the timers that
// expire in [jiffies, jiffies+granularity) is drained and every timer
// in it is re-inserted through the normal insertion path, which will
// place it in a finer level (possibly level 0) or, if it expires at
// this very jiffy, in the expired list.
//
// Higher levels cascade first so a timer that is still far out lands
// in an intermediate level rather than being cascaded twice in the
// same pass; level 0 is never cascaded, since it is the dispatch
// target, not a cascade source.
func (w *Wheel) cascade() {
	j := uint64(w.jiffies)
	if j == 0 {
		return
	}
	for level := DEPTH - 1; level >= 1; level-- {
		gran := levelGranularity(level)
		if j&(gran-1) != 0 {
			continue
		}
		idx := indexAt(level, w.jiffies)
		lst := &w.buckets[idx]
		for {
			r := lst.popFront()
			if r == nil {
				break
			}
			w.insert(r)
		}
	}
}
