// SPDX-License-Identifier: MIT

package results

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperreach/internal/archive"
)

// WriteCSV writes t to w with header source,target followed by the names of
// the kinds present. Unset cells are left empty.
func WriteCSV(w io.Writer, t *Table, f Formatter) error {
	if f == nil {
		f = RawFormatter{}
	}
	kinds := t.Kinds()

	cw := csv.NewWriter(w)
	header := make([]string, 0, 2+len(kinds))
	header = append(header, "source", "target")
	for _, k := range kinds {
		header = append(header, k.String())
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	record := make([]string, len(header))
	for _, r := range t.Rows() {
		record[0], record[1] = r.Source, r.Target
		for i, k := range kinds {
			record[2+i] = ""
			if v, ok := r.Value(k); ok {
				record[2+i] = f.Format(k, v)
			}
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "flush csv")
}

// Save writes t as CSV to path, compressed by extension (".gz", ".zst").
func Save(path string, t *Table, f Formatter) (err error) {
	wc, err := archive.Create(path)
	if err != nil {
		return errors.Wrap(err, "save results")
	}
	defer func() {
		if cerr := wc.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "save results")
		}
	}()

	return WriteCSV(wc, t, f)
}
