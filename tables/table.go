// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tables implements the keyed-table stages of the pipeline:
// overlap-based exclusion, proximity filtering, the signal-to-noise
// summarizer and the final join/de-duplication assembly. Every table is
// keyed by a region identifier column and every stage returns a new table,
// preserving row order, so the first-occurrence tie-breaks downstream stay
// reproducible.
package tables

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/brentp/xopen"
	"github.com/go-gota/gota/dataframe"
)

// ReadTSV loads a tab-separated table with a header row, transparently
// decompressing gzipped input.
func ReadTSV(path string) (dataframe.DataFrame, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("tables: failed to open %q: %v", path, err)
	}
	defer r.Close()
	df := dataframe.ReadCSV(r, dataframe.WithDelimiter('\t'), dataframe.HasHeader(true))
	if df.Err != nil {
		return df, fmt.Errorf("tables: malformed table %q: %v", path, df.Err)
	}
	return df, nil
}

// ReadAllowList reads region identifiers to be retained despite overlapping
// the exclusion set, one per line. Blank lines and #-comments are skipped.
func ReadAllowList(path string) (map[string]bool, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("tables: failed to open %q: %v", path, err)
	}
	defer r.Close()
	allow := make(map[string]bool)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		allow[line] = true
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tables: failed reading %q: %v", path, err)
	}
	return allow, nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
