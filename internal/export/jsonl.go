package export

import (
	"encoding/json"
	"io"
)

func init() {
	Register("jsonl", writeJSONL)
}

// writeJSONL streams each long-format row as one JSON object per line.
func writeJSONL(w io.Writer, histories [][]float64) error {
	enc := json.NewEncoder(w)
	for _, row := range Rows(histories) {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
