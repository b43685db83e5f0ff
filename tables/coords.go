// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tables

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/mtrobin/atacdiff/regions"
)

// AddCoordinateColumns attaches seqname, start, end, width and strand
// columns derived from the identifier column. Coordinates are recovered by
// parsing the identifier, never read from other columns, so the identifier
// stays the single source of truth. Merged regions carry no orientation, so
// the strand column is always "*".
func AddCoordinateColumns(df dataframe.DataFrame, idCol string) (dataframe.DataFrame, error) {
	if !hasColumn(df, idCol) {
		return df, fmt.Errorf("tables: missing id column %q", idCol)
	}
	ids := df.Col(idCol).Records()
	seqname := make([]string, len(ids))
	start := make([]int, len(ids))
	end := make([]int, len(ids))
	width := make([]int, len(ids))
	strand := make([]string, len(ids))
	for i, id := range ids {
		r, err := regions.ParseID(id)
		if err != nil {
			return df, fmt.Errorf("tables: row %d: %v", i+1, err)
		}
		seqname[i] = r.Chrom
		start[i] = r.Start
		end[i] = r.End
		width[i] = r.Len()
		strand[i] = "*"
	}
	out := df.
		Mutate(series.New(seqname, series.String, "seqname")).
		Mutate(series.New(start, series.Int, "start")).
		Mutate(series.New(end, series.Int, "end")).
		Mutate(series.New(width, series.Int, "width")).
		Mutate(series.New(strand, series.String, "strand"))
	return out, out.Err
}
