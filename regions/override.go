// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regions

import (
	"encoding/json"
	"fmt"
	"os"
)

// Overrides is a manually curated correction applied to a merged region set:
// regions to remove by exact coordinate and strand match, and regions to
// insert verbatim. Corrections are data, not code — they are loaded from an
// external JSON document so that each domain-expert judgment call stays
// reviewable and reproducible. Matching is strictly literal, never fuzzy.
type Overrides struct {
	Drop Set
	Add  Set
}

type overrideFile struct {
	Drop []overrideRegion `json:"drop"`
	Add  []overrideRegion `json:"add"`
}

type overrideRegion struct {
	Chrom  string `json:"chrom"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Strand string `json:"strand"` // "+", "-" or "." (default ".")
}

// LoadOverrides reads an override document of the form
//
//	{"drop": [{"chrom": "chr9", "start": 100, "end": 200, "strand": "."}],
//	 "add":  [{"chrom": "chr9", "start": 120, "end": 180}]}
func LoadOverrides(path string) (Overrides, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, err
	}
	var f overrideFile
	if err := json.Unmarshal(b, &f); err != nil {
		return Overrides{}, fmt.Errorf("regions: malformed override file %q: %v", path, err)
	}
	var o Overrides
	if o.Drop, err = overrideSet(f.Drop, path); err != nil {
		return Overrides{}, err
	}
	if o.Add, err = overrideSet(f.Add, path); err != nil {
		return Overrides{}, err
	}
	return o, nil
}

func overrideSet(rs []overrideRegion, path string) (Set, error) {
	var s Set
	for _, r := range rs {
		if r.Start < 0 || r.Start >= r.End {
			return nil, fmt.Errorf("regions: invalid interval %s:%d-%d in override file %q", r.Chrom, r.Start, r.End, path)
		}
		s = append(s, Region{Chrom: r.Chrom, Start: r.Start, End: r.End, Strand: orientation(r.Strand)})
	}
	return s, nil
}

// Apply removes every region of s exactly matching a drop entry and appends
// the insertion regions. Survivors keep their input order; insertions follow
// in the order given. The number of removed regions is returned.
func (o Overrides) Apply(s Set) (Set, int) {
	drop := make(map[Region]bool, len(o.Drop))
	for _, r := range o.Drop {
		drop[r] = true
	}
	out := make(Set, 0, len(s)+len(o.Add))
	removed := 0
	for _, r := range s {
		if drop[r] {
			removed++
			continue
		}
		out = append(out, r)
	}
	out = append(out, o.Add...)
	return out, removed
}
