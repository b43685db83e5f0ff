// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regions

import (
	"fmt"
	"sort"

	"github.com/biogo/biogo/feat"
)

// DefaultMaxGap is the merge distance used when unifying replicate peak
// sets, following the originating study's convention.
const DefaultMaxGap = 500

// Merge unions any number of per-sample region sets into a single
// non-overlapping set, combining regions on the same chromosome whose gap is
// at most maxGap. The inputs need not be sorted or individually merged. The
// result is sorted by (chrom, start) and unstranded; no two regions of the
// result are within maxGap of each other, so merging is idempotent and
// independent of input order. Empty input yields an empty set.
func Merge(maxGap int, sets ...Set) Set {
	if maxGap < 0 {
		panic(fmt.Sprintf("regions: negative merge gap %d", maxGap))
	}
	byChrom := make(map[string]Set)
	for _, s := range sets {
		for _, r := range s {
			byChrom[r.Chrom] = append(byChrom[r.Chrom], r)
		}
	}
	chroms := make([]string, 0, len(byChrom))
	for c := range byChrom {
		chroms = append(chroms, c)
	}
	sort.Strings(chroms)

	var merged Set
	for _, c := range chroms {
		rs := byChrom[c]
		sort.Slice(rs, func(i, j int) bool {
			if rs[i].Start != rs[j].Start {
				return rs[i].Start < rs[j].Start
			}
			return rs[i].End < rs[j].End
		})
		cur := Region{Chrom: c, Start: rs[0].Start, End: rs[0].End, Strand: feat.NotOriented}
		for _, r := range rs[1:] {
			if Gap(cur, r) <= maxGap {
				if r.End > cur.End {
					cur.End = r.End
				}
				continue
			}
			merged = append(merged, cur)
			cur = Region{Chrom: c, Start: r.Start, End: r.End, Strand: feat.NotOriented}
		}
		merged = append(merged, cur)
	}
	return merged
}
