// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tables

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"
)

// SignalToNoise computes the group-contrast statistic used for gene-set
// style ranking: the difference of the two group means divided by the sum of
// their standard deviations, where each standard deviation is capped at
// 0.2·|mean| and a mean of zero is treated as 1 before capping and
// differencing. The cap deliberately diverges from a pooled-variance
// t-statistic so near-zero within-group variance cannot blow the score up.
//
// Indices outside both groups are ignored. When both capped standard
// deviations are zero the statistic is undefined and NaN is returned;
// callers must handle NaN rather than expect a panic.
func SignalToNoise(values []float64, group1, group2 []int) float64 {
	m1, s1 := groupStats(values, group1)
	m2, s2 := groupStats(values, group2)
	if m1 == 0 {
		m1 = 1
	}
	if m2 == 0 {
		m2 = 1
	}
	s1 = math.Min(s1, 0.2*math.Abs(m1))
	s2 = math.Min(s2, 0.2*math.Abs(m2))
	if s1+s2 == 0 {
		return math.NaN()
	}
	return (m1 - m2) / (s1 + s2)
}

func groupStats(values []float64, group []int) (mean, sd float64) {
	g := make([]float64, len(group))
	for i, j := range group {
		g[i] = values[j]
	}
	mean = stat.Mean(g, nil)
	// A single observation has no sample variance; treat it as zero spread
	// so the cap is what bounds the denominator.
	if len(g) > 1 {
		sd = stat.StdDev(g, nil)
	}
	return mean, sd
}

// AppendSignalToNoise evaluates the statistic for every row of a normalized
// count table and returns the table with a signalToNoise column attached.
// sampleCols names the per-sample columns in their fixed order; group1 and
// group2 index into that order.
func AppendSignalToNoise(df dataframe.DataFrame, sampleCols []string, group1, group2 []int) (dataframe.DataFrame, error) {
	cols := make([][]float64, len(sampleCols))
	for i, c := range sampleCols {
		if !hasColumn(df, c) {
			return df, fmt.Errorf("tables: missing sample column %q", c)
		}
		cols[i] = df.Col(c).Float()
	}
	for _, g := range [][]int{group1, group2} {
		for _, j := range g {
			if j < 0 || j >= len(sampleCols) {
				return df, fmt.Errorf("tables: group index %d outside the %d sample columns", j, len(sampleCols))
			}
		}
	}
	n := df.Nrow()
	scores := make([]float64, n)
	row := make([]float64, len(sampleCols))
	for i := 0; i < n; i++ {
		for j := range cols {
			row[j] = cols[j][i]
		}
		scores[i] = SignalToNoise(row, group1, group2)
	}
	out := df.Mutate(series.New(scores, series.Float, "signalToNoise"))
	return out, out.Err
}
