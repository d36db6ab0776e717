// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package soak drives a fixed capacity map from several concurrent
// workers for a period of time and reports whether the structure is
// still consistent afterwards
//
// every key has exactly one value it may be stored with so a reader
// can detect corruption without coordinating with the writers
package soak
