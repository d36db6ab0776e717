// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Display the shape of a fixed capacity map
//
// Keys given on the command line are inserted in order, optionally
// some are erased, and the resulting tree is drawn or listed so the
// effect of each balancing variant can be compared.
package main
