// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tables

import (
	"github.com/biogo/biogo/feat"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	check "gopkg.in/check.v1"

	"github.com/mtrobin/atacdiff/regions"
)

func (s *S) TestExcludeOverlapping(c *check.C) {
	df := dataframe.New(
		series.New([]string{
			"chr1:100-200",
			"chr2:152226670-152226920", // inside the exclusion region, allow-listed
			"chr2:152226100-152226300", // inside the exclusion region
			"chr3:500-600",
		}, series.String, "id"),
		series.New([]float64{0.01, 0.02, 0.03, 0.04}, series.Float, "padj"),
	)
	c.Assert(df.Err, check.IsNil)

	idx := regions.NewExclusionIndex(regions.Set{
		{Chrom: "chr2", Start: 152226000, End: 152227000, Strand: feat.NotOriented},
	})
	allow := map[string]bool{"chr2:152226670-152226920": true}

	out, dropped, err := ExcludeOverlapping(df, "id", idx, allow)
	c.Assert(err, check.IsNil)
	c.Check(dropped, check.DeepEquals, []string{"chr2:152226100-152226300"})
	c.Check(out.Col("id").Records(), check.DeepEquals, []string{
		"chr1:100-200",
		"chr2:152226670-152226920",
		"chr3:500-600",
	})
}

func (s *S) TestExcludeOverlappingBadID(c *check.C) {
	df := dataframe.New(series.New([]string{"not-an-id"}, series.String, "id"))
	idx := regions.NewExclusionIndex(nil)
	_, _, err := ExcludeOverlapping(df, "id", idx, nil)
	c.Check(err, check.ErrorMatches, `tables: row 1: regions: malformed region id "not-an-id"`)

	_, _, err = ExcludeOverlapping(df, "peak", idx, nil)
	c.Check(err, check.ErrorMatches, `tables: missing id column "peak"`)
}

func (s *S) TestFilterByDistance(c *check.C) {
	df := dataframe.New(
		series.New([]string{"a", "b", "c", "d"}, series.String, "id"),
		series.New([]int{0, -999, 1000, -2500}, series.Int, "distanceToTSS"),
	)
	c.Assert(df.Err, check.IsNil)

	out, kept, err := FilterByDistance(df, "distanceToTSS", 1000)
	c.Assert(err, check.IsNil)
	c.Check(kept, check.Equals, 2)
	c.Check(out.Col("id").Records(), check.DeepEquals, []string{"a", "b"})
}
