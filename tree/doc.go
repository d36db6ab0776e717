// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - a fixed capacity balanced binary search tree with
// parent links to allow iteration through the nodes
//
// All nodes are taken from an arena allocated when the tree is
// created and returned to it on deletion, so no memory is allocated
// after New.  The balancing strategy is chosen at creation, either
// red-black or AVL, and both share the same node layout, insert and
// delete skeleton, rotations and in-order navigation.
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Nodes are addressed by index into the arena rather than by
// pointer, and positions handed out to callers carry the generation
// of their slot so that a position for a deleted node can be
// recognised even after the slot has been reused.
package tree
