// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tables

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/sirupsen/logrus"

	"github.com/mtrobin/atacdiff/regions"
)

// ExcludeOverlapping drops every row whose identifier parses to a region
// overlapping the exclusion index, unless the identifier appears in the
// allow list. The identifier column is the single source of truth for a
// row's coordinates, so it is parsed back into a region rather than trusting
// any coordinate columns the table may carry. The identities of dropped rows
// are returned and logged for audit.
func ExcludeOverlapping(df dataframe.DataFrame, idCol string, idx *regions.ExclusionIndex, allow map[string]bool) (dataframe.DataFrame, []string, error) {
	if !hasColumn(df, idCol) {
		return df, nil, fmt.Errorf("tables: missing id column %q", idCol)
	}
	ids := df.Col(idCol).Records()
	keep := make([]int, 0, len(ids))
	var dropped []string
	for i, id := range ids {
		r, err := regions.ParseID(id)
		if err != nil {
			return df, nil, fmt.Errorf("tables: row %d: %v", i+1, err)
		}
		if idx.Overlaps(r) && !allow[id] {
			dropped = append(dropped, id)
			continue
		}
		keep = append(keep, i)
	}
	if len(dropped) > 0 {
		logrus.Infof("excluded %d of %d regions overlapping the exclusion set: %v", len(dropped), len(ids), dropped)
	}
	out := df.Subset(keep)
	return out, dropped, out.Err
}

// DefaultTSSDistance is the proximity threshold used when restricting the
// analysis to promoter-proximal regions, following the study's convention.
const DefaultTSSDistance = 1000

// FilterByDistance keeps rows whose absolute distance to the nearest
// transcription start is strictly below d, returning the filtered table and
// the kept-row count.
func FilterByDistance(df dataframe.DataFrame, distCol string, d int) (dataframe.DataFrame, int, error) {
	if !hasColumn(df, distCol) {
		return df, 0, fmt.Errorf("tables: missing distance column %q", distCol)
	}
	dist := df.Col(distCol).Float()
	keep := make([]int, 0, len(dist))
	for i, v := range dist {
		if math.Abs(v) < float64(d) {
			keep = append(keep, i)
		}
	}
	out := df.Subset(keep)
	return out, len(keep), out.Err
}
