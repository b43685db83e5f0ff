// Copyright ©2025 The atacdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tables

import (
	"os"
	"path/filepath"

	check "gopkg.in/check.v1"
)

func (s *S) TestReadTSV(c *check.C) {
	path := filepath.Join(c.MkDir(), "stats.tsv")
	data := "id\tbaseMean\tpadj\n" +
		"chr1:100-200\t54.2\t0.001\n" +
		"chr2:10-50\t11.8\t0.75\n"
	c.Assert(os.WriteFile(path, []byte(data), 0o644), check.IsNil)

	df, err := ReadTSV(path)
	c.Assert(err, check.IsNil)
	c.Check(df.Nrow(), check.Equals, 2)
	c.Check(df.Names(), check.DeepEquals, []string{"id", "baseMean", "padj"})
	c.Check(df.Col("id").Records(), check.DeepEquals, []string{"chr1:100-200", "chr2:10-50"})
}

func (s *S) TestReadAllowList(c *check.C) {
	path := filepath.Join(c.MkDir(), "allow.txt")
	data := "# manually rescued regions\n" +
		"chr2:152226670-152226920\n" +
		"\n" +
		"chr7:1000-2000\n"
	c.Assert(os.WriteFile(path, []byte(data), 0o644), check.IsNil)

	allow, err := ReadAllowList(path)
	c.Assert(err, check.IsNil)
	c.Check(allow, check.DeepEquals, map[string]bool{
		"chr2:152226670-152226920": true,
		"chr7:1000-2000":           true,
	})
}
