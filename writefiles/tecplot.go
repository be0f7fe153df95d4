package writefiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	SP = 8  // Single precision significant digits
	DP = 17 // Double precision significant digits
)

/*
Tecplot is an ordered point zone: one column per variable, one row per node.
Aux lines are written verbatim after the point data.
*/
type Tecplot struct {
	Variables []string
	Columns   [][]float64
	ZoneTitle string
	Precision int
	Aux       []string
}

func NewTecplot(variables []string, columns ...[]float64) *Tecplot {
	return &Tecplot{
		Variables: variables,
		Columns:   columns,
		ZoneTitle: "Data",
		Precision: DP,
	}
}

// AddTimeAux appends the time step label and time span lines
func (tp *Tecplot) AddTimeAux(dt, startTime, endTime float64) *Tecplot {
	tp.Aux = append(tp.Aux,
		"DT="+ExpLabel(dt),
		"TIME="+strconv.FormatFloat(startTime, 'f', 1, 64)+","+strconv.FormatFloat(endTime, 'g', tp.Precision, 64))
	return tp
}

func (tp *Tecplot) NumPoints() (np int) {
	if len(tp.Columns) == 0 {
		return 0
	}
	return len(tp.Columns[0])
}

func (tp *Tecplot) Write(w io.Writer) (err error) {
	var (
		bw = bufio.NewWriter(w)
		np = tp.NumPoints()
	)
	if len(tp.Variables) != len(tp.Columns) {
		return fmt.Errorf("tecplot: %d variable names for %d columns", len(tp.Variables), len(tp.Columns))
	}
	for n, col := range tp.Columns {
		if len(col) != np {
			return fmt.Errorf("tecplot: column %s has %d points, expected %d", tp.Variables[n], len(col), np)
		}
	}
	fmt.Fprintf(bw, "VARIABLES=%s\n", strings.Join(tp.Variables, ","))
	fmt.Fprintf(bw, "ZONE T=\"%s\", I=%d, F=POINT\n", tp.ZoneTitle, np)
	row := make([]string, len(tp.Columns))
	for i := 0; i < np; i++ {
		for n, col := range tp.Columns {
			row[n] = strconv.FormatFloat(col[i], 'g', tp.Precision, 64)
		}
		bw.WriteString(strings.Join(row, " "))
		bw.WriteByte('\n')
	}
	for _, line := range tp.Aux {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteFile writes the zone to "<filename>.dat"
func (tp *Tecplot) WriteFile(filename string) (fileName string, err error) {
	var (
		f *os.File
	)
	fileName = filename + ".dat"
	if f, err = os.Create(fileName); err != nil {
		return fileName, fmt.Errorf("unable to create tecplot file: %w", err)
	}
	if err = tp.Write(f); err != nil {
		f.Close()
		return fileName, fmt.Errorf("unable to write tecplot file %s: %w", fileName, err)
	}
	return fileName, f.Close()
}

// ExpLabel formats a value with one decimal of mantissa and a bare exponent, e.g. 0.01 -> 1.0e-2
func ExpLabel(v float64) string {
	s := strconv.FormatFloat(v, 'e', 1, 64)
	ind := strings.IndexByte(s, 'e')
	if ind < 0 {
		return s // Inf or NaN
	}
	exp, err := strconv.Atoi(s[ind+1:])
	if err != nil {
		return s
	}
	return s[:ind] + "e" + strconv.Itoa(exp)
}
