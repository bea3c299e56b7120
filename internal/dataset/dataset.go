package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Dataset is an in-memory table of yearly indicators. Cells are kept as read;
// numeric columns also hold a parsed copy with NaN for missing cells.
type Dataset struct {
	columns []string
	rows    [][]string
	numeric map[string][]float64
}

func Load(path string, schema Schema) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Parse(f, schema)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return ds, nil
}

func Parse(r io.Reader, schema Schema) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv has no header")
	}

	columns := make([]string, len(records[0]))
	for i, name := range records[0] {
		columns[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	}

	for _, field := range schema.Required {
		if !slices.Contains(columns, field) {
			return nil, &MissingFieldError{Field: field}
		}
	}

	return newDataset(columns, records[1:]), nil
}

func newDataset(columns []string, rows [][]string) *Dataset {
	ds := &Dataset{
		columns: columns,
		rows:    rows,
		numeric: make(map[string][]float64),
	}

	for j, name := range columns {
		values := make([]float64, len(rows))
		numeric := true
		for i, row := range rows {
			cell := strings.TrimSpace(row[j])
			if cell == "" {
				values[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				numeric = false
				break
			}
			values[i] = v
		}
		if numeric || name == YearColumn {
			if !numeric {
				values = coerce(rows, j)
			}
			ds.numeric[name] = values
		}
	}

	return ds
}

// coerce parses a column leniently, turning bad cells into NaN.
func coerce(rows [][]string, j int) []float64 {
	values := make([]float64, len(rows))
	for i, row := range rows {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[j]), 64)
		if err != nil {
			v = math.NaN()
		}
		values[i] = v
	}
	return values
}

func (d *Dataset) Columns() []string {
	return slices.Clone(d.columns)
}

func (d *Dataset) Len() int {
	return len(d.rows)
}

func (d *Dataset) Rows() [][]string {
	out := make([][]string, len(d.rows))
	for i, row := range d.rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// NumericColumns lists columns whose every present cell is a number, in file order.
func (d *Dataset) NumericColumns() []string {
	var out []string
	for _, name := range d.columns {
		if _, ok := d.numeric[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

func (d *Dataset) HasColumn(name string) bool {
	return slices.Contains(d.columns, name)
}

// Clean drops every row with a missing cell or a Year that is not a whole
// number, and rewrites Year as an integer.
func (d *Dataset) Clean() (*Dataset, CleanReport) {
	years, hasYear := d.numeric[YearColumn]
	yearIdx := slices.Index(d.columns, YearColumn)

	var kept [][]string
	for i, row := range d.rows {
		if slices.ContainsFunc(row, func(cell string) bool { return strings.TrimSpace(cell) == "" }) {
			continue
		}

		if hasYear {
			y := years[i]
			if math.IsNaN(y) || y != math.Trunc(y) {
				continue
			}
			row = slices.Clone(row)
			row[yearIdx] = strconv.Itoa(int(y))
		}
		kept = append(kept, row)
	}

	cleaned := newDataset(d.columns, kept)
	return cleaned, CleanReport{
		Initial:   len(d.rows),
		Remaining: len(kept),
		Dropped:   len(d.rows) - len(kept),
	}
}

// Years returns the distinct years present, ascending.
func (d *Dataset) Years() []int {
	var years []int
	for _, y := range d.numeric[YearColumn] {
		if math.IsNaN(y) {
			continue
		}
		years = append(years, int(y))
	}
	slices.Sort(years)
	return slices.Compact(years)
}

// FilterYears keeps rows whose Year lies in [from, to].
func (d *Dataset) FilterYears(from, to int) (*Dataset, error) {
	years, ok := d.numeric[YearColumn]
	if !ok {
		return nil, &MissingFieldError{Field: YearColumn}
	}

	var kept [][]string
	for i, row := range d.rows {
		y := years[i]
		if !math.IsNaN(y) && int(y) >= from && int(y) <= to {
			kept = append(kept, row)
		}
	}
	return newDataset(d.columns, kept), nil
}

// Series pairs every year with the column's value, skipping missing cells.
func (d *Dataset) Series(column string) ([]Point, error) {
	years, ok := d.numeric[YearColumn]
	if !ok {
		return nil, &MissingFieldError{Field: YearColumn}
	}
	values, ok := d.numeric[column]
	if !ok {
		return nil, &MissingFieldError{Field: column}
	}

	points := make([]Point, 0, len(values))
	for i, v := range values {
		if math.IsNaN(years[i]) || math.IsNaN(v) {
			continue
		}
		points = append(points, Point{Year: int(years[i]), Value: Value(v)})
	}
	return points, nil
}

func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.columns); err != nil {
		return err
	}
	if err := cw.WriteAll(d.rows); err != nil {
		return err
	}
	return cw.Error()
}
