// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tables

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

// LeftJoinFirst left-joins right onto left by the key column, keeping every
// left row and attaching right columns where a match exists. A key may
// legitimately match several right rows (one genomic range can annotate to
// several overlapping gene features); the result is then de-duplicated by
// keeping the first occurrence of each key in row order. The tie-break is
// deliberately order-dependent rather than "most significant": it is only
// reproducible because every upstream stage preserves row order.
func LeftJoinFirst(left, right dataframe.DataFrame, key string) (dataframe.DataFrame, error) {
	if !hasColumn(left, key) || !hasColumn(right, key) {
		return left, fmt.Errorf("tables: join key %q missing from input", key)
	}
	j := left.LeftJoin(right, key)
	if j.Err != nil {
		return j, fmt.Errorf("tables: join on %q: %v", key, j.Err)
	}
	return DedupFirst(j, key)
}

// DedupFirst keeps the first row for each distinct key value, preserving
// row order, and discards later duplicates.
func DedupFirst(df dataframe.DataFrame, key string) (dataframe.DataFrame, error) {
	if !hasColumn(df, key) {
		return df, fmt.Errorf("tables: missing key column %q", key)
	}
	ids := df.Col(key).Records()
	seen := make(map[string]bool, len(ids))
	keep := make([]int, 0, len(ids))
	for i, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		keep = append(keep, i)
	}
	out := df.Subset(keep)
	return out, out.Err
}
