// SPDX-License-Identifier: MIT
// Package: hypergen/datfile

// Package datfile reads and writes hypergraphs in the flat ".dat" format:
// one line per hyperedge, vertex ids ascending and separated by single
// spaces, each line terminated by '\n'. There is no header; vertices that
// belong to no hyperedge do not appear in the file.
//
// Files are written through an afero.Fs so callers (and tests) can swap the
// OS filesystem for an in-memory one.
package datfile
