package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHistories() [][]float64 {
	return [][]float64{
		{0.75, 0.5},
		{0.75, 0.875},
	}
}

func TestRows_LongFormatOrder(t *testing.T) {
	rows := Rows(sampleHistories())
	require.Len(t, rows, 4)

	// Generation-major, replicate label within a generation.
	assert.Equal(t, Row{0, "rep_1", 0.75}, rows[0])
	assert.Equal(t, Row{0, "rep_2", 0.75}, rows[1])
	assert.Equal(t, Row{1, "rep_1", 0.5}, rows[2])
	assert.Equal(t, Row{1, "rep_2", 0.875}, rows[3])
}

func TestRows_LabelsSortLexically(t *testing.T) {
	// Eleven replicates: rep_10 and rep_11 sort between rep_1 and rep_2,
	// matching the label ordering of the classroom spreadsheet.
	histories := make([][]float64, 11)
	for i := range histories {
		histories[i] = []float64{0.5}
	}
	rows := Rows(histories)
	require.Len(t, rows, 11)
	assert.Equal(t, "rep_1", rows[0].Replicate)
	assert.Equal(t, "rep_10", rows[1].Replicate)
	assert.Equal(t, "rep_11", rows[2].Replicate)
	assert.Equal(t, "rep_2", rows[3].Replicate)
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("csv", &buf, sampleHistories()))

	want := strings.Join([]string{
		"generation,replicate,allele0_freq",
		"0,rep_1,0.75",
		"0,rep_2,0.75",
		"1,rep_1,0.5",
		"1,rep_2,0.875",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWrite_TSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("tsv", &buf, sampleHistories()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "generation\treplicate\tallele0_freq", lines[0])
	assert.Equal(t, "0\trep_1\t0.75", lines[1])
}

func TestWrite_JSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("jsonl", &buf, sampleHistories()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.JSONEq(t, `{"generation":0,"replicate":"rep_1","allele0_freq":0.75}`, lines[0])
	assert.JSONEq(t, `{"generation":1,"replicate":"rep_2","allele0_freq":0.875}`, lines[3])
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write("parquet", &buf, sampleHistories())
	assert.ErrorContains(t, err, `unknown export format "parquet"`)
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"csv", "jsonl", "tsv"}, Formats())
}
