// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// annotatepeaks assigns each merged region its nearest transcription start
// site from a gene table and classifies regions as promoter-proximal or
// distal. The output is the tab-separated annotation table consumed by
// diffacc, with the same shape an external annotation tool would produce.
//
//	annotatepeaks -peaks merged.bed -genes genes.tsv -out annotation.tsv
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mtrobin/atacdiff/annotate"
	"github.com/mtrobin/atacdiff/regions"
)

var (
	peakf    = flag.String("peaks", "", "merged bed-with-id file of regions to annotate")
	genef    = flag.String("genes", "", "tab-separated gene table: chrom, start, end, strand, geneId, transcriptId, symbol")
	promoter = flag.Int("promoter", 1000, "absolute TSS distance below which a region is classified as Promoter")
	outf     = flag.String("out", "", "output annotation table. Defaults to stdout")
	help     = flag.Bool("help", false, "help prints this message")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *peakf == "" || *genef == "" {
		flag.Usage()
		os.Exit(1)
	}

	set, err := regions.ReadBed(*peakf)
	if err != nil {
		logrus.Fatalf("failed to read regions: %v", err)
	}
	genes, err := annotate.ReadGenes(*genef)
	if err != nil {
		logrus.Fatalf("failed to read genes: %v", err)
	}
	logrus.Infof("annotating %d regions against %d transcripts", len(set), len(genes))

	ann := annotate.Nearest(set, genes, *promoter)
	if n := len(set) - len(ann); n > 0 {
		logrus.Infof("%d regions lie on chromosomes without annotated transcripts", n)
	}

	out := os.Stdout
	if *outf != "" {
		if out, err = os.Create(*outf); err != nil {
			logrus.Fatalf("failed to create %q: %v", *outf, err)
		}
		defer out.Close()
	}
	if err := annotate.WriteTable(out, ann); err != nil {
		logrus.Fatalf("failed to write annotation: %v", err)
	}
}
