// Package export renders frequency histories as tabular data in the
// long ("stacked") layout: one row per (generation, replicate) pair,
// generation-major — the layout the classroom spreadsheet expects. Writers
// are registered per format string so the CLI can dispatch on a flag.
package export

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Row is one long-format record. Replicates are labeled rep_1..rep_R.
type Row struct {
	Generation int     `json:"generation"`
	Replicate  string  `json:"replicate"`
	Freq0      float64 `json:"allele0_freq"`
}

// Rows flattens per-replicate histories into long-format rows, ordered by
// generation then replicate label. Histories are expected to share one
// length (the session guarantees it); shorter histories simply stop
// contributing rows.
func Rows(histories [][]float64) []Row {
	var rows []Row
	for rep, h := range histories {
		for gen, f := range h {
			rows = append(rows, Row{
				Generation: gen,
				Replicate:  fmt.Sprintf("rep_%d", rep+1),
				Freq0:      f,
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Generation != rows[j].Generation {
			return rows[i].Generation < rows[j].Generation
		}
		return rows[i].Replicate < rows[j].Replicate
	})
	return rows
}

// WriterFunc renders a history set to w in one format.
type WriterFunc func(w io.Writer, histories [][]float64) error

// writers maps format name to handler. Registered from init() blocks in the
// per-format files; last registration wins.
var writers = map[string]WriterFunc{}

// Register installs a writer under a format name.
func Register(format string, fn WriterFunc) {
	writers[format] = fn
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Write renders histories to w in the named format.
func Write(format string, w io.Writer, histories [][]float64) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown export format %q (known: %s)",
			format, strings.Join(Formats(), ", "))
	}
	return fn(w, histories)
}
