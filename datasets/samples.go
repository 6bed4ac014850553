package datasets

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/neurlang/multiclass/fault"
	"github.com/neurlang/multiclass/features"
	"github.com/neurlang/multiclass/labels"
)

// Samples is a multiclass table: one feature row and one class per sample.
type Samples struct {
	Rows    [][]float64
	Classes []int
}

// Len reports the number of samples.
func (s Samples) Len() int {
	return len(s.Rows)
}

// Build turns the table into the features and labels of a multiclass machine.
func (s Samples) Build() (*features.Dense, *labels.Multiclass, error) {
	if len(s.Rows) != len(s.Classes) {
		return nil, nil, fault.Type("samples build", strconv.Itoa(len(s.Rows))+" rows but "+strconv.Itoa(len(s.Classes))+" classes")
	}
	f, err := features.FromRows(s.Rows)
	if err != nil {
		return nil, nil, err
	}
	l, err := labels.NewMulticlass(s.Classes)
	if err != nil {
		return nil, nil, err
	}
	return f, l, nil
}

// ReadCSV reads comma separated samples. Every column but the last is a
// feature, the last one is the integer class. A first record that does not
// parse is taken as a header and skipped.
func ReadCSV(r io.Reader) (s Samples, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Samples{}, err
		}
		if len(rec) < 2 {
			return Samples{}, fault.Type("read csv", "line "+strconv.Itoa(line)+": need a feature and a class")
		}
		row, class, perr := parseRecord(rec)
		if perr != nil {
			if line == 1 {
				continue
			}
			return Samples{}, fault.Type("read csv", "line "+strconv.Itoa(line)+": "+perr.Error())
		}
		s.Rows = append(s.Rows, row)
		s.Classes = append(s.Classes, class)
	}
	if len(s.Rows) == 0 {
		return Samples{}, fault.Type("read csv", "no samples")
	}
	return s, nil
}

func parseRecord(rec []string) ([]float64, int, error) {
	var row = make([]float64, len(rec)-1)
	for i := range row {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
		if err != nil {
			return nil, 0, err
		}
		row[i] = v
	}
	class, err := strconv.Atoi(strings.TrimSpace(rec[len(rec)-1]))
	if err != nil {
		return nil, 0, err
	}
	return row, class, nil
}
