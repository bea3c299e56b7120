package dataset

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Describe summarises every numeric column the way pandas' describe does:
// sample standard deviation and linearly interpolated quartiles over the
// non-missing values.
func (d *Dataset) Describe() []ColumnSummary {
	var out []ColumnSummary
	for _, name := range d.NumericColumns() {
		out = append(out, summarize(name, present(d.numeric[name])))
	}
	return out
}

func summarize(name string, x []float64) ColumnSummary {
	s := ColumnSummary{Column: name, Count: len(x)}
	if len(x) == 0 {
		nan := Value(math.NaN())
		s.Mean, s.Std, s.Min, s.Q25, s.Q50, s.Q75, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}

	sorted := slices.Clone(x)
	slices.Sort(sorted)

	s.Mean = Value(stat.Mean(x, nil))
	s.Std = Value(math.NaN())
	if len(x) > 1 {
		s.Std = Value(stat.StdDev(x, nil))
	}
	s.Min = Value(floats.Min(x))
	s.Max = Value(floats.Max(x))
	s.Q25 = Value(quantile(sorted, 0.25))
	s.Q50 = Value(quantile(sorted, 0.50))
	s.Q75 = Value(quantile(sorted, 0.75))
	return s
}

// quantile interpolates between closest ranks (numpy's default "linear").
func quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// Correlation is the pairwise Pearson matrix of the numeric columns. Pairs
// with fewer than two complete observations or no variance yield NaN.
func (d *Dataset) Correlation() CorrelationMatrix {
	cols := d.NumericColumns()
	m := CorrelationMatrix{Columns: cols, Values: make([][]Value, len(cols))}

	for i, a := range cols {
		m.Values[i] = make([]Value, len(cols))
		for j, b := range cols {
			m.Values[i][j] = Value(pearson(d.numeric[a], d.numeric[b]))
		}
	}
	return m
}

func pearson(a, b []float64) float64 {
	var x, y []float64
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		x = append(x, a[i])
		y = append(y, b[i])
	}
	if len(x) < 2 {
		return math.NaN()
	}
	if floats.Min(x) == floats.Max(x) || floats.Min(y) == floats.Max(y) {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}

func present(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
