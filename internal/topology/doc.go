// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package topology rebuilds polygon outlines from a triangle soup.
//
// Every triangle contributes its three edges to an [EdgeSet]. Edges shared
// by two triangles are interior diagonals and cancel; the survivors form
// the perimeter. [Stitch] then chains surviving edges into closed loops.
package topology
