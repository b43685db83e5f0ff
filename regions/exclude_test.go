// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regions

import (
	"github.com/biogo/biogo/feat"
	check "gopkg.in/check.v1"
)

func (s *S) TestExclusionIndex(c *check.C) {
	idx := NewExclusionIndex(Set{
		{Chrom: "chr1", Start: 100, End: 200, Strand: feat.NotOriented},
		{Chrom: "chr1", Start: 1000, End: 1100, Strand: feat.NotOriented},
		{Chrom: "chr2", Start: 152226000, End: 152227000, Strand: feat.NotOriented},
	})
	c.Check(idx.Len(), check.Equals, 3)

	for _, t := range []struct {
		r   Region
		hit bool
	}{
		{New("chr1", 150, 160, feat.NotOriented), true},             // contained
		{New("chr1", 50, 150, feat.NotOriented), true},              // partial
		{New("chr1", 200, 300, feat.NotOriented), false},            // touching, half-open
		{New("chr1", 500, 600, feat.NotOriented), false},            // between entries
		{New("chr3", 100, 200, feat.NotOriented), false},            // unindexed chromosome
		{New("chr2", 152226670, 152226920, feat.NotOriented), true}, // fully inside exclusion region
	} {
		c.Check(idx.Overlaps(t.r), check.Equals, t.hit, check.Commentf("%v", t.r))
	}
}

func (s *S) TestExclusionIndexEmpty(c *check.C) {
	idx := NewExclusionIndex(nil)
	c.Check(idx.Len(), check.Equals, 0)
	c.Check(idx.Overlaps(New("chr1", 0, 100, feat.NotOriented)), check.Equals, false)
}
