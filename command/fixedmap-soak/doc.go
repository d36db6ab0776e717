// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Concurrent workload program for the fixed capacity map
//
// This program runs a number of workers against a single map for a
// configured time, inserting, erasing, finding and assigning random
// keys, then verifies every structural property of the tree.  The
// operation rate is re-read whenever the configuration file changes.
package main
