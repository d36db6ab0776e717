// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixedmap - an ordered map with a capacity fixed at creation
//
// Storage for every entry is taken from a node pool allocated when
// the map is created, so inserts never allocate.  Ordering is kept by
// a red-black or AVL tree, selected at creation.
//
// Every operation holds an exclusive lock on the map for its
// duration; operations on one map are therefore fully serialised.
// An Iterator only takes the lock for each individual step, so
// walking an iterator while another go routine modifies the same map
// gives undefined results: callers must serialise iteration against
// concurrent modification themselves, or use Range which holds the
// lock for the whole walk.
//
// An insert that fails because the map is full or the key already
// exists returns false rather than an error, since both are normal
// outcomes for a fixed capacity container.  Extracting a missing key,
// dereferencing the end iterator and selecting an unknown variant are
// reported as errors from the fault package.
package fixedmap
