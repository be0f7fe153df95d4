package writefiles

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const consoleSep = "\t\t"

// PrintTable echoes columns to the console with the default six significant digits
func PrintTable(w io.Writer, headers []string, columns ...[]float64) error {
	var (
		bw  = bufio.NewWriter(w)
		np  int
		row = make([]string, len(columns))
	)
	if len(columns) != 0 {
		np = len(columns[0])
	}
	bw.WriteString(strings.Join(headers, consoleSep))
	bw.WriteByte('\n')
	for i := 0; i < np; i++ {
		for n, col := range columns {
			row[n] = strconv.FormatFloat(col[i], 'g', 6, 64)
		}
		bw.WriteString(strings.Join(row, consoleSep))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
