// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regions

import (
	"github.com/biogo/store/interval"
)

// ExclusionIndex answers overlap queries against a set of artifact regions,
// holding one interval tree per chromosome. Membership is any overlap, not
// exact match.
type ExclusionIndex struct {
	trees map[string]*interval.IntTree
	n     int
}

// irange satisfies interval.IntInterface with half-open matching.
type irange struct {
	start, end int
	id         uintptr
}

func (i irange) Overlap(b interval.IntRange) bool {
	// Half-open interval indexing.
	return i.end > b.Start && i.start < b.End
}
func (i irange) ID() uintptr              { return i.id }
func (i irange) Range() interval.IntRange { return interval.IntRange{Start: i.start, End: i.end} }

// NewExclusionIndex builds an index over the given regions.
func NewExclusionIndex(s Set) *ExclusionIndex {
	trees := make(map[string]*interval.IntTree)
	for k, r := range s {
		t, ok := trees[r.Chrom]
		if !ok {
			t = &interval.IntTree{}
			trees[r.Chrom] = t
		}
		t.Insert(irange{start: r.Start, end: r.End, id: uintptr(k)}, false)
	}
	return &ExclusionIndex{trees: trees, n: len(s)}
}

// Len returns the number of indexed regions.
func (x *ExclusionIndex) Len() int { return x.n }

// Overlaps reports whether r overlaps any indexed region.
func (x *ExclusionIndex) Overlaps(r Region) bool {
	t := x.trees[r.Chrom]
	if t == nil {
		return false
	}
	hit := false
	t.DoMatching(func(interval.IntInterface) (done bool) {
		hit = true
		return true
	}, irange{start: r.Start, end: r.End})
	return hit
}
