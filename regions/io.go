// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regions

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/brentp/xopen"
)

// ReadNarrowPeak reads peak calls in ENCODE narrowPeak format, possibly
// gzipped. Only the chromosome, interval and strand columns are consumed;
// score and enrichment columns are left to the peak caller's own reporting.
func ReadNarrowPeak(path string) (Set, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("regions: failed to open %q: %v", path, err)
	}
	defer r.Close()
	return readRegions(r, path, 10)
}

// ReadBed reads a headerless tab-separated interval file with at least
// chromosome, start and end columns, possibly gzipped.
func ReadBed(path string) (Set, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("regions: failed to open %q: %v", path, err)
	}
	defer r.Close()
	return readRegions(r, path, 3)
}

func readRegions(r io.Reader, name string, minCols int) (Set, error) {
	var set Set
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<22)
	for ln := 1; sc.Scan(); ln++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "track") {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < minCols {
			return nil, fmt.Errorf("regions: %s:%d: expected at least %d columns, got %d", name, ln, minCols, len(f))
		}
		start, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("regions: %s:%d: non-numeric start %q", name, ln, f[1])
		}
		end, err := strconv.Atoi(f[2])
		if err != nil {
			return nil, fmt.Errorf("regions: %s:%d: non-numeric end %q", name, ln, f[2])
		}
		if start < 0 || start >= end {
			return nil, fmt.Errorf("regions: %s:%d: invalid interval %d-%d", name, ln, start, end)
		}
		reg := Region{Chrom: f[0], Start: start, End: end}
		if len(f) > 5 {
			reg.Strand = orientation(f[5])
		}
		set = append(set, reg)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("regions: failed reading %q: %v", name, err)
	}
	return set, nil
}

// WriteBed writes the set as chromosome, start, end and region identifier,
// one region per line.
func WriteBed(w io.Writer, s Set) error {
	bw := bufio.NewWriter(w)
	for _, r := range s {
		fmt.Fprintf(bw, "%s\t%d\t%d\t%s\n", r.Chrom, r.Start, r.End, r.ID())
	}
	return bw.Flush()
}

// WriteSAF writes the set in the simplified annotation format consumed by
// read-counting tools: GeneID, Chr, Start, End and Strand, with 1-based
// inclusive coordinates and a header line. The GeneID column carries the
// region identifier so the resulting count matrix is keyed consistently
// with every other table in the pipeline.
func WriteSAF(w io.Writer, s Set) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "GeneID\tChr\tStart\tEnd\tStrand")
	for _, r := range s {
		fmt.Fprintf(bw, "%s\t%s\t%d\t%d\t%c\n", r.ID(), r.Chrom, r.Start+1, r.End, strandByte(r.Strand))
	}
	return bw.Flush()
}
