// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package annotate derives nearest-gene annotation for merged peak regions.
// It produces the same table shape as the external annotation collaborator,
// so the downstream join does not care which of the two produced it.
package annotate

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/brentp/xopen"
	gn "github.com/pbenner/gonetics"

	"github.com/mtrobin/atacdiff/regions"
)

// Gene is one transcript record of the gene table: the transcribed interval,
// its orientation and its identifiers. The transcription start is the
// interval start on the forward strand and the interval end on the reverse
// strand.
type Gene struct {
	Chrom      string
	Start      int
	End        int
	Strand     byte // '+' or '-'
	GeneID     string
	Transcript string
	Symbol     string
}

// TSS returns the transcription start coordinate of the gene.
func (g Gene) TSS() int {
	if g.Strand == '-' {
		return g.End - 1
	}
	return g.Start
}

// ReadGenes reads a tab-separated gene table with columns chrom, start, end,
// strand, geneId, transcriptId and symbol. Lines starting with '#' or
// 'chrom' are skipped, so a header is tolerated.
func ReadGenes(path string) ([]Gene, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("annotate: failed to open %q: %v", path, err)
	}
	defer r.Close()
	return readGenes(r, path)
}

func readGenes(r io.Reader, name string) ([]Gene, error) {
	var genes []Gene
	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "chrom") {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 7 {
			return nil, fmt.Errorf("annotate: %s:%d: expected 7 columns, got %d", name, ln, len(f))
		}
		start, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("annotate: %s:%d: non-numeric start %q", name, ln, f[1])
		}
		end, err := strconv.Atoi(f[2])
		if err != nil {
			return nil, fmt.Errorf("annotate: %s:%d: non-numeric end %q", name, ln, f[2])
		}
		if start < 0 || start >= end {
			return nil, fmt.Errorf("annotate: %s:%d: invalid interval %d-%d", name, ln, start, end)
		}
		strand := byte('+')
		if f[3] == "-" {
			strand = '-'
		}
		genes = append(genes, Gene{
			Chrom:      f[0],
			Start:      start,
			End:        end,
			Strand:     strand,
			GeneID:     f[4],
			Transcript: f[5],
			Symbol:     f[6],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("annotate: failed reading %q: %v", name, err)
	}
	return genes, nil
}

// Annotation is one row of the nearest-feature annotation produced for a
// region. DistanceToTSS is signed: zero when the region contains the start
// site, positive when the start site lies before the region, negative when
// it lies beyond it.
type Annotation struct {
	ID            string
	Class         string
	GeneChrom     string
	GeneStart     int
	GeneEnd       int
	GeneID        string
	Transcript    string
	Symbol        string
	DistanceToTSS int
}

// Nearest annotates every region with its closest transcription start site.
// Regions whose absolute distance is below promoterWindow are classified as
// "Promoter", the rest as "Distal". Regions on chromosomes without any gene
// are omitted; the downstream left join treats them as unannotated. The
// result preserves the order of the input set.
func Nearest(set regions.Set, genes []Gene, promoterWindow int) []Annotation {
	if len(set) == 0 || len(genes) == 0 {
		return nil
	}
	qSeq := make([]string, len(set))
	qFrom := make([]int, len(set))
	qTo := make([]int, len(set))
	for i, r := range set {
		qSeq[i] = r.Chrom
		qFrom[i] = r.Start
		qTo[i] = r.End
	}
	sSeq := make([]string, len(genes))
	sFrom := make([]int, len(genes))
	sTo := make([]int, len(genes))
	for i, g := range genes {
		sSeq[i] = g.Chrom
		sFrom[i] = g.TSS()
		sTo[i] = g.TSS() + 1
	}
	query := gn.NewGRanges(qSeq, qFrom, qTo, nil)
	subject := gn.NewGRanges(sSeq, sFrom, sTo, nil)

	// The sweep reports every overlapping start site plus the nearest
	// neighbor on each side; distances are signed, so the closest hit per
	// query is selected by absolute distance.
	queryHits, subjectHits, distances := gn.FindNearest(query, subject, 1)

	best := make(map[int]int, len(set))
	for k, qi := range queryHits {
		b, ok := best[qi]
		if !ok || abs(distances[k]) < abs(distances[b]) {
			best[qi] = k
		}
	}
	var ann []Annotation
	for i, r := range set {
		k, ok := best[i]
		if !ok {
			continue
		}
		g := genes[subjectHits[k]]
		d := distances[k]
		class := "Distal"
		if abs(d) < promoterWindow {
			class = "Promoter"
		}
		ann = append(ann, Annotation{
			ID:            r.ID(),
			Class:         class,
			GeneChrom:     g.Chrom,
			GeneStart:     g.Start,
			GeneEnd:       g.End,
			GeneID:        g.GeneID,
			Transcript:    g.Transcript,
			Symbol:        g.Symbol,
			DistanceToTSS: d,
		})
	}
	return ann
}

// WriteTable writes annotations as the tab-separated annotation contract
// consumed by the assembly stage.
func WriteTable(w io.Writer, ann []Annotation) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "id\tannotation\tgeneChr\tgeneStart\tgeneEnd\tgeneId\ttranscriptId\tdistanceToTSS\tgeneSymbol")
	for _, a := range ann {
		fmt.Fprintf(bw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\t%d\t%s\n",
			a.ID, a.Class, a.GeneChrom, a.GeneStart, a.GeneEnd, a.GeneID, a.Transcript, a.DistanceToTSS, a.Symbol)
	}
	return bw.Flush()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
