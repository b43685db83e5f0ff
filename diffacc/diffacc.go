// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// diffacc assembles the final annotated differential-accessibility table.
// Starting from the per-region statistics exported by the differential
// testing collaborator, it removes regions overlapping a blacklist (with an
// allow-list rescue), attaches a signal-to-noise score computed from the
// normalized count table, joins the nearest-gene annotation, optionally
// restricts to TSS-proximal regions and writes the combined table as CSV.
//
//	diffacc -stats results.tsv -counts normcounts.tsv -anno annotation.tsv \
//	        -blacklist blacklist.bed -allow rescue.txt \
//	        -group1 4,5 -group2 0,1,2 -tssdist 1000 -out results.csv
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/sirupsen/logrus"

	"github.com/mtrobin/atacdiff/regions"
	"github.com/mtrobin/atacdiff/tables"
)

var (
	statf  = flag.String("stats", "", "differential statistics table (TSV keyed by region id)")
	countf = flag.String("counts", "", "normalized count table (TSV keyed by region id)")
	annof  = flag.String("anno", "", "nearest-gene annotation table (TSV keyed by region id)")
	blackf = flag.String("blacklist", "", "bed file of artifact regions to exclude by overlap")
	allowf = flag.String("allow", "", "file of region ids to retain despite blacklist overlap")
	idCol  = flag.String("id", "id", "name of the region id column")
	g1     = flag.String("group1", "", "comma-separated sample column indices of the first group")
	g2     = flag.String("group2", "", "comma-separated sample column indices of the second group")
	tss    = flag.Int("tssdist", 0, "if positive, keep only rows with |distanceToTSS| below this (the study convention is 1000)")
	outf   = flag.String("out", "", "output CSV file name. Defaults to stdout")
	help   = flag.Bool("help", false, "help prints this message")
)

// finalOrder is the column order of the assembled table; columns absent from
// the inputs are simply not emitted.
var finalOrder = []string{
	"start", "end", "width", "strand", "seqname", "id",
	"baseMean", "log2FoldChange", "lfcSE", "stat", "pvalue", "padj",
	"annotation", "geneChr", "geneStart", "geneEnd",
	"geneId", "transcriptId", "distanceToTSS", "geneSymbol",
	"signalToNoise",
}

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *statf == "" {
		flag.Usage()
		os.Exit(1)
	}

	df, err := tables.ReadTSV(*statf)
	if err != nil {
		logrus.Fatalf("failed to read statistics: %v", err)
	}
	logrus.Infof("%s: %d regions", *statf, df.Nrow())

	if *blackf != "" {
		bl, err := regions.ReadBed(*blackf)
		if err != nil {
			logrus.Fatalf("failed to read blacklist: %v", err)
		}
		allow := map[string]bool{}
		if *allowf != "" {
			if allow, err = tables.ReadAllowList(*allowf); err != nil {
				logrus.Fatalf("failed to read allow list: %v", err)
			}
		}
		df, _, err = tables.ExcludeOverlapping(df, *idCol, regions.NewExclusionIndex(bl), allow)
		if err != nil {
			logrus.Fatalf("exclusion filter failed: %v", err)
		}
	}

	if *countf != "" {
		group1, err := parseIndices(*g1)
		if err != nil {
			logrus.Fatalf("bad -group1: %v", err)
		}
		group2, err := parseIndices(*g2)
		if err != nil {
			logrus.Fatalf("bad -group2: %v", err)
		}
		s2n, err := scoreCounts(*countf, *idCol, group1, group2)
		if err != nil {
			logrus.Fatalf("signal-to-noise scoring failed: %v", err)
		}
		if df, err = tables.LeftJoinFirst(df, s2n, *idCol); err != nil {
			logrus.Fatalf("failed to attach scores: %v", err)
		}
	}

	if *annof != "" {
		anno, err := tables.ReadTSV(*annof)
		if err != nil {
			logrus.Fatalf("failed to read annotation: %v", err)
		}
		if df, err = tables.LeftJoinFirst(df, anno, *idCol); err != nil {
			logrus.Fatalf("failed to join annotation: %v", err)
		}
	}

	if *tss > 0 {
		var kept int
		df, kept, err = tables.FilterByDistance(df, "distanceToTSS", *tss)
		if err != nil {
			logrus.Fatalf("proximity filter failed: %v", err)
		}
		logrus.Infof("kept %d regions within %d bp of a transcription start", kept, *tss)
	}

	if df, err = tables.AddCoordinateColumns(df, *idCol); err != nil {
		logrus.Fatalf("failed to derive coordinates: %v", err)
	}
	df = orderColumns(df)
	if df.Err != nil {
		logrus.Fatalf("failed to assemble table: %v", df.Err)
	}

	out := os.Stdout
	if *outf != "" {
		if out, err = os.Create(*outf); err != nil {
			logrus.Fatalf("failed to create %q: %v", *outf, err)
		}
		defer out.Close()
	}
	if err := df.WriteCSV(out, dataframe.WriteHeader(true)); err != nil {
		logrus.Fatalf("failed to write table: %v", err)
	}
	logrus.Infof("wrote %d regions", df.Nrow())
}

// scoreCounts loads the normalized count table and evaluates the
// signal-to-noise statistic per region, returning an id/score table. All
// columns other than the id column are taken to be sample columns, in their
// file order.
func scoreCounts(path, idCol string, group1, group2 []int) (dataframe.DataFrame, error) {
	counts, err := tables.ReadTSV(path)
	if err != nil {
		return counts, err
	}
	var samples []string
	for _, n := range counts.Names() {
		if n != idCol {
			samples = append(samples, n)
		}
	}
	if len(samples) == len(counts.Names()) {
		return counts, fmt.Errorf("count table %q has no %q column", path, idCol)
	}
	scored, err := tables.AppendSignalToNoise(counts, samples, group1, group2)
	if err != nil {
		return scored, err
	}
	out := scored.Select([]string{idCol, "signalToNoise"})
	return out, out.Err
}

func parseIndices(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("empty index list")
	}
	var idx []int
	for _, f := range strings.Split(s, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bad index %q: %v", f, err)
		}
		idx = append(idx, i)
	}
	return idx, nil
}

// orderColumns selects the canonical output order, followed by any columns
// the inputs carried that the contract does not name.
func orderColumns(df dataframe.DataFrame) dataframe.DataFrame {
	want := make([]string, 0, len(df.Names()))
	have := make(map[string]bool)
	for _, n := range df.Names() {
		have[n] = true
	}
	named := make(map[string]bool)
	for _, n := range finalOrder {
		if have[n] {
			want = append(want, n)
			named[n] = true
		}
	}
	for _, n := range df.Names() {
		if !named[n] {
			want = append(want, n)
		}
	}
	return df.Select(want)
}
