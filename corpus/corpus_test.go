package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parchmint/clausal/errors"
	"github.com/parchmint/clausal/taxonomy"
)

func yn(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// writeCorpus builds a small synthetic TSV in the CUAD header shape. Rows
// alternate between two clause profiles so every column has both classes.
func writeCorpus(t *testing.T, rows int, mutate func(i int, cells map[string]string)) string {
	t.Helper()

	header := append([]string{"URL", "Document Name", "Parties"}, taxonomy.FeatureNames()...)

	var sb strings.Builder
	sb.WriteString(strings.Join(header, "\t"))
	sb.WriteByte('\n')

	for i := 0; i < rows; i++ {
		even := i%2 == 0
		cells := map[string]string{
			"URL":           fmt.Sprintf("https://example.com/%d", i),
			"Document Name": fmt.Sprintf("contract-%d.html", i),
			"Parties":       "acme; globex",
		}
		for _, name := range taxonomy.FeatureNames() {
			col, _ := taxonomy.Lookup(name)
			switch col.Category {
			case taxonomy.Binary:
				cells[name] = yn(even)
			default:
				if even {
					cells[name] = "365"
				} else {
					cells[name] = "30"
				}
			}
		}
		if mutate != nil {
			mutate(i, cells)
		}

		line := make([]string, len(header))
		for j, name := range header {
			line[j] = cells[name]
		}
		sb.WriteString(strings.Join(line, "\t"))
		sb.WriteByte('\n')
	}

	path := filepath.Join(t.TempDir(), "corpus.tsv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCorpus(t, 60, nil)

	table, err := Load(path, 50)
	require.NoError(t, err)

	assert.Equal(t, 60, table.NumRows())
	assert.Equal(t, taxonomy.FeatureNames(), table.Columns())
}

func TestLoad_DropsRowsWithMissingValues(t *testing.T) {
	path := writeCorpus(t, 60, func(i int, cells map[string]string) {
		if i < 7 {
			cells["Audit Rights"] = "" // missing binary drops the row
		}
		if i >= 7 && i < 10 {
			cells["Change Of Control"] = "unclear" // unparseable binary drops too
		}
	})

	table, err := Load(path, 40)
	require.NoError(t, err)
	assert.Equal(t, 50, table.NumRows())
}

func TestLoad_OrdinalNeverDropsRows(t *testing.T) {
	path := writeCorpus(t, 60, func(i int, cells map[string]string) {
		cells["Renewal Term (Days)"] = "perpetual" // degrades to code 0
	})

	table, err := Load(path, 50)
	require.NoError(t, err)
	assert.Equal(t, 60, table.NumRows())

	vals, err := table.Column("Renewal Term (Days)")
	require.NoError(t, err)
	for _, v := range vals {
		assert.Equal(t, float64(taxonomy.RenewalNone), v)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.tsv"), 10)
	require.Error(t, err)
	assert.True(t, errors.IsDataError(err))
}

func TestLoad_MissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.tsv")
	content := "URL\tAudit Rights\nhttps://example.com\tyes\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path, 1)
	require.Error(t, err)
	assert.True(t, errors.IsDataError(err))
	assert.Contains(t, err.Error(), "missing required columns")
}

func TestLoad_TooFewRows(t *testing.T) {
	path := writeCorpus(t, 10, nil)

	_, err := Load(path, 50)
	require.Error(t, err)
	assert.True(t, errors.IsDataError(err))
	assert.Contains(t, err.Error(), "usable rows")
}

func TestTable_Median(t *testing.T) {
	path := writeCorpus(t, 60, nil)
	table, err := Load(path, 50)
	require.NoError(t, err)

	// Binary columns alternate yes/no evenly, so the interpolated median is 0.5
	m, err := table.Median("Audit Rights")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, m, 1e-9)

	_, err = table.Median("Uncapped Liability")
	assert.Error(t, err, "derived columns are not in the working table")
}

func TestTable_MajorityClass(t *testing.T) {
	path := writeCorpus(t, 60, func(i int, cells map[string]string) {
		if i < 45 {
			cells["Liquidated Damages"] = "no"
		} else {
			cells["Liquidated Damages"] = "yes"
		}
	})
	table, err := Load(path, 50)
	require.NoError(t, err)

	class, freq, err := table.MajorityClass("Liquidated Damages")
	require.NoError(t, err)
	assert.Equal(t, 0, class)
	assert.InDelta(t, 0.75, freq, 1e-9)
}

func TestTable_Matrix(t *testing.T) {
	path := writeCorpus(t, 60, nil)
	table, err := Load(path, 50)
	require.NoError(t, err)

	m, err := table.Matrix([]string{"Audit Rights", "Renewal Term (Days)"})
	require.NoError(t, err)
	require.Len(t, m, 60)
	assert.Equal(t, []float64{1, float64(taxonomy.RenewalStandard)}, m[0])
	assert.Equal(t, []float64{0, float64(taxonomy.RenewalShort)}, m[1])

	_, err = table.Matrix([]string{"Nope"})
	assert.Error(t, err)
}
