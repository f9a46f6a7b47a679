// Package corpus loads the reference contract corpus into a fully-encoded
// working table. Rows with any missing value across the taxonomy's feature
// columns are dropped at load time, so everything downstream can assume a
// dense numeric table.
package corpus

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/parchmint/clausal/errors"
)

// Table is the encoded, missing-value-free projection of the corpus,
// restricted to the taxonomy's feature columns. It is immutable once built.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]float64
	medians []float64
}

func newTable(columns []string, rows [][]float64) *Table {
	t := &Table{
		columns: columns,
		index:   make(map[string]int, len(columns)),
		rows:    rows,
	}
	for i, name := range columns {
		t.index[name] = i
	}
	t.medians = make([]float64, len(columns))
	for i := range columns {
		t.medians[i] = median(t.columnValues(i))
	}
	return t
}

// NumRows returns the number of surviving rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Columns returns the feature column names in taxonomy order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Median returns the fit-time median of a column, used as the fixed
// imputation value for features the caller does not supply.
func (t *Table) Median(name string) (float64, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, errors.Newf("no such column %q", name)
	}
	return t.medians[i], nil
}

// Column returns a copy of one column's encoded values.
func (t *Table) Column(name string) ([]float64, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, errors.Newf("no such column %q", name)
	}
	return t.columnValues(i), nil
}

// Classes returns one column's values as integer class codes.
func (t *Table) Classes(name string) ([]int, error) {
	vals, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = int(v)
	}
	return out, nil
}

// Matrix assembles the rows restricted to the given columns, in the given
// order. Each returned row is freshly allocated.
func (t *Table) Matrix(columns []string) ([][]float64, error) {
	idx := make([]int, len(columns))
	for j, name := range columns {
		i, ok := t.index[name]
		if !ok {
			return nil, errors.Newf("no such column %q", name)
		}
		idx[j] = i
	}

	out := make([][]float64, len(t.rows))
	for r, row := range t.rows {
		vec := make([]float64, len(idx))
		for j, i := range idx {
			vec[j] = row[i]
		}
		out[r] = vec
	}
	return out, nil
}

// MajorityClass returns the most frequent class code in a column and its
// relative frequency, the baseline a trained model has to beat. Ties go to
// the lower code for determinism.
func (t *Table) MajorityClass(name string) (int, float64, error) {
	classes, err := t.Classes(name)
	if err != nil {
		return 0, 0, err
	}
	if len(classes) == 0 {
		return 0, 0, errors.Newf("column %q has no rows", name)
	}

	counts := make(map[int]int)
	for _, c := range classes {
		counts[c]++
	}

	best, bestCount := 0, -1
	for c, n := range counts {
		if n > bestCount || (n == bestCount && c < best) {
			best, bestCount = c, n
		}
	}
	return best, float64(bestCount) / float64(len(classes)), nil
}

func (t *Table) columnValues(i int) []float64 {
	out := make([]float64, len(t.rows))
	for r, row := range t.rows {
		out[r] = row[i]
	}
	return out
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.LinInterp, sorted, nil)
}
