// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regions

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/feat"
	check "gopkg.in/check.v1"
)

const narrowPeak = "chr1\t9800\t10200\tpeak_1\t120\t+\t5.2\t12.1\t9.3\t200\n" +
	"chr1\t10600\t11000\tpeak_2\t80\t-\t3.1\t8.0\t6.2\t150\n" +
	"chr2\t500\t900\tpeak_3\t60\t.\t2.5\t6.1\t4.4\t100\n"

func (s *S) TestReadNarrowPeak(c *check.C) {
	path := filepath.Join(c.MkDir(), "sample.narrowPeak")
	c.Assert(os.WriteFile(path, []byte(narrowPeak), 0o644), check.IsNil)

	set, err := ReadNarrowPeak(path)
	c.Assert(err, check.IsNil)
	c.Check(set, check.DeepEquals, Set{
		{Chrom: "chr1", Start: 9800, End: 10200, Strand: feat.Forward},
		{Chrom: "chr1", Start: 10600, End: 11000, Strand: feat.Reverse},
		{Chrom: "chr2", Start: 500, End: 900, Strand: feat.NotOriented},
	})
}

func (s *S) TestReadNarrowPeakMalformed(c *check.C) {
	dir := c.MkDir()
	for _, t := range []struct {
		name, data, errPat string
	}{
		{"short.narrowPeak", "chr1\t100\t200\n", `regions: .*short.narrowPeak:1: expected at least 10 columns, got 3`},
		{"coord.narrowPeak", strings.Replace(narrowPeak, "9800", "x", 1), `regions: .*coord.narrowPeak:1: non-numeric start "x"`},
		{"inverted.narrowPeak", strings.Replace(narrowPeak, "10600\t11000", "11000\t10600", 1), `regions: .*inverted.narrowPeak:2: invalid interval 11000-10600`},
	} {
		path := filepath.Join(dir, t.name)
		c.Assert(os.WriteFile(path, []byte(t.data), 0o644), check.IsNil)
		_, err := ReadNarrowPeak(path)
		c.Check(err, check.ErrorMatches, t.errPat)
	}
}

func (s *S) TestReadBed(c *check.C) {
	path := filepath.Join(c.MkDir(), "blacklist.bed")
	data := "# artifact regions\n" +
		"chr2\t152226000\t152227000\n" +
		"chr5\t0\t1000\n"
	c.Assert(os.WriteFile(path, []byte(data), 0o644), check.IsNil)

	set, err := ReadBed(path)
	c.Assert(err, check.IsNil)
	c.Check(set, check.DeepEquals, Set{
		{Chrom: "chr2", Start: 152226000, End: 152227000, Strand: feat.NotOriented},
		{Chrom: "chr5", Start: 0, End: 1000, Strand: feat.NotOriented},
	})
}

func (s *S) TestWriteBedAndSAF(c *check.C) {
	set := Set{
		{Chrom: "chr1", Start: 100, End: 200, Strand: feat.NotOriented},
		{Chrom: "chr2", Start: 0, End: 50, Strand: feat.NotOriented},
	}
	var bed bytes.Buffer
	c.Assert(WriteBed(&bed, set), check.IsNil)
	c.Check(bed.String(), check.Equals,
		"chr1\t100\t200\tchr1:100-200\n"+
			"chr2\t0\t50\tchr2:0-50\n")

	var saf bytes.Buffer
	c.Assert(WriteSAF(&saf, set), check.IsNil)
	lines := strings.Split(strings.TrimRight(saf.String(), "\n"), "\n")
	c.Assert(lines, check.HasLen, len(set)+1)
	c.Check(lines[0], check.Equals, "GeneID\tChr\tStart\tEnd\tStrand")
	// SAF coordinates are 1-based inclusive.
	c.Check(lines[1], check.Equals, "chr1:100-200\tchr1\t101\t200\t.")
	c.Check(lines[2], check.Equals, "chr2:0-50\tchr2\t1\t50\t.")
}
