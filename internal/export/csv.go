package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

func init() {
	Register("csv", func(w io.Writer, histories [][]float64) error {
		return writeDelimited(w, histories, ',')
	})
	Register("tsv", func(w io.Writer, histories [][]float64) error {
		return writeDelimited(w, histories, '\t')
	})
}

func writeDelimited(w io.Writer, histories [][]float64, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	if err := cw.Write([]string{"generation", "replicate", "allele0_freq"}); err != nil {
		return err
	}
	for _, row := range Rows(histories) {
		record := []string{
			strconv.Itoa(row.Generation),
			row.Replicate,
			strconv.FormatFloat(row.Freq0, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
