// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package timewheel

import "github.com/bwmarrin/snowflake"

// idAllocator hands out the stable, never-reused integer ids C3
// (the registry) keys records on, via a snowflake node. Ids are unique
// within one Wheel; every Wheel builds its own node with node number 0,
// so two Wheels in one process can hand out the same id.
type idAllocator struct {
	node *snowflake.Node
}

func newIDAllocator() *idAllocator {
	node, err := snowflake.NewNode(0)
	if err != nil {
		// only fails for an out-of-range node number, which 0 never is.
		PANIC("newIDAllocator: snowflake.NewNode failed: %s\n", err)
	}
	return &idAllocator{node: node}
}

func (a *idAllocator) next() int64 {
	return int64(a.node.Generate())
}
