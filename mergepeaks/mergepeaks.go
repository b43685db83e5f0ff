// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mergepeaks unions narrowPeak calls from any number of samples into a
// single non-overlapping region set, applies manually curated corrections
// and assigns coordinate identifiers. It writes the merged regions as a
// 4-column bed-with-id file and optionally as a SAF-style annotation table
// for the external read counter.
//
//	mergepeaks -out merged.bed -saf merged.saf sample1.narrowPeak ... sampleN.narrowPeak
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mtrobin/atacdiff/regions"
)

var (
	maxGap    = flag.Int("maxgap", regions.DefaultMaxGap, "merge peaks whose gap is at most this many bp")
	overrides = flag.String("overrides", "", "JSON file of manually curated region corrections")
	outf      = flag.String("out", "", "output merged bed-with-id file name. Defaults to stdout")
	saff      = flag.String("saf", "", "optional SAF-style output for the read counter")
	help      = flag.Bool("help", false, "help prints this message")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] peaks.narrowPeak ...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	sets := make([]regions.Set, flag.NArg())
	for i, path := range flag.Args() {
		s, err := regions.ReadNarrowPeak(path)
		if err != nil {
			logrus.Fatalf("failed to read peaks: %v", err)
		}
		logrus.Infof("%s: %d peaks", path, len(s))
		sets[i] = s
	}

	merged := regions.Merge(*maxGap, sets...)
	logrus.Infof("merged to %d regions with maxgap=%d", len(merged), *maxGap)

	if *overrides != "" {
		o, err := regions.LoadOverrides(*overrides)
		if err != nil {
			logrus.Fatalf("failed to read overrides: %v", err)
		}
		var removed int
		merged, removed = o.Apply(merged)
		logrus.Infof("overrides from %s: removed %d, inserted %d", *overrides, removed, len(o.Add))
	}

	out := os.Stdout
	if *outf != "" {
		var err error
		if out, err = os.Create(*outf); err != nil {
			logrus.Fatalf("failed to create %q: %v", *outf, err)
		}
		defer out.Close()
	}
	if err := regions.WriteBed(out, merged); err != nil {
		logrus.Fatalf("failed to write merged regions: %v", err)
	}

	if *saff != "" {
		f, err := os.Create(*saff)
		if err != nil {
			logrus.Fatalf("failed to create %q: %v", *saff, err)
		}
		defer f.Close()
		if err := regions.WriteSAF(f, merged); err != nil {
			logrus.Fatalf("failed to write SAF table: %v", err)
		}
	}
	logrus.Infof("wrote %d merged regions", len(merged))
}
