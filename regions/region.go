// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package regions provides the genomic interval model used throughout the
// pipeline: half-open regions, multi-sample peak merging, manually curated
// overrides and coordinate-derived region identifiers.
package regions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/biogo/biogo/feat"
)

// Region is a half-open genomic interval [Start, End) on a chromosome.
// Regions produced by merging are not oriented.
type Region struct {
	Chrom  string
	Start  int
	End    int
	Strand feat.Orientation
}

// New returns a region spanning the interval [start, end). New panics if the
// interval is empty or inverted.
func New(chrom string, start, end int, strand feat.Orientation) Region {
	if start >= end {
		panic(fmt.Sprintf("regions: invalid interval %s:%d-%d", chrom, start, end))
	}
	return Region{Chrom: chrom, Start: start, End: end, Strand: strand}
}

// Overlaps returns whether a and b share at least one position. Regions on
// different chromosomes never overlap.
func Overlaps(a, b Region) bool {
	return a.Chrom == b.Chrom && a.Start < b.End && b.Start < a.End
}

// Gap returns the signed distance between a and b, negative when the two
// regions overlap. Gap panics when a and b are on different chromosomes
// since the distance is not defined there.
func Gap(a, b Region) int {
	if a.Chrom != b.Chrom {
		panic(fmt.Sprintf("regions: gap between different chromosomes %s and %s", a.Chrom, b.Chrom))
	}
	return max(a.Start, b.Start) - min(a.End, b.End)
}

// ID returns the coordinate identifier "{chrom}:{start}-{end}" for r. The
// identifier is the join key for all downstream tables; strand is not part
// of it, so oppositely oriented regions with the same coordinates collapse
// to the same identifier.
func (r Region) ID() string {
	return fmt.Sprintf("%s:%d-%d", r.Chrom, r.Start, r.End)
}

// ParseID converts an identifier produced by ID back into a Region. The
// returned region is not oriented. Identifiers round-trip: re-deriving the
// identifier of a parsed region yields the input string.
func ParseID(id string) (Region, error) {
	i := strings.LastIndex(id, ":")
	if i <= 0 {
		return Region{}, fmt.Errorf("regions: malformed region id %q", id)
	}
	chrom := id[:i]
	start, end, ok := strings.Cut(id[i+1:], "-")
	if !ok {
		return Region{}, fmt.Errorf("regions: malformed region id %q", id)
	}
	from, err := strconv.Atoi(start)
	if err != nil {
		return Region{}, fmt.Errorf("regions: bad start in region id %q: %v", id, err)
	}
	to, err := strconv.Atoi(end)
	if err != nil {
		return Region{}, fmt.Errorf("regions: bad end in region id %q: %v", id, err)
	}
	if from < 0 || from >= to {
		return Region{}, fmt.Errorf("regions: invalid interval in region id %q", id)
	}
	return Region{Chrom: chrom, Start: from, End: to, Strand: feat.NotOriented}, nil
}

// Len returns the width of the region.
func (r Region) Len() int { return r.End - r.Start }

func (r Region) String() string {
	if r.Strand == feat.NotOriented {
		return r.ID()
	}
	return fmt.Sprintf("%s(%c)", r.ID(), strandByte(r.Strand))
}

func strandByte(o feat.Orientation) byte {
	switch o {
	case feat.Forward:
		return '+'
	case feat.Reverse:
		return '-'
	}
	return '.'
}

func orientation(s string) feat.Orientation {
	switch s {
	case "+":
		return feat.Forward
	case "-":
		return feat.Reverse
	}
	return feat.NotOriented
}

// Set is an ordered collection of regions. After a merge it is sorted by
// (chrom, start) and contains no two regions within the merge gap of each
// other.
type Set []Region

// IDs returns the coordinate identifier of every region in order.
func (s Set) IDs() []string {
	ids := make([]string, len(s))
	for i, r := range s {
		ids[i] = r.ID()
	}
	return ids
}
