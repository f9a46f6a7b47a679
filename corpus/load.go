package corpus

import (
	"bufio"
	"os"
	"strings"

	"github.com/parchmint/clausal/errors"
	"github.com/parchmint/clausal/logger"
	"github.com/parchmint/clausal/taxonomy"
)

// Cells in a CUAD export can hold whole clauses; allow long lines.
const maxLineBytes = 4 << 20

// Load reads a tab-separated corpus with a header row, encodes every feature
// column through the taxonomy, and drops rows with any missing value in the
// feature set. It fails with a data error when the file is unreadable, a
// taxonomy column is absent from the header, or fewer than minRows rows
// survive cleaning.
func Load(path string, minRows int) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapData(err, "opening corpus")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.WrapData(err, "reading corpus header")
		}
		return nil, errors.NewDataError("corpus %s is empty", path)
	}

	header := strings.Split(strings.TrimRight(scanner.Text(), "\r\n"), "\t")
	cellIndex := make(map[string]int, len(header))
	for i, name := range header {
		cellIndex[strings.TrimSpace(name)] = i
	}

	features := taxonomy.FeatureNames()
	var missing []string
	for _, name := range features {
		if _, ok := cellIndex[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.WithHint(
			errors.NewDataError("corpus %s is missing required columns: %s",
				path, strings.Join(missing, ", ")),
			"the corpus header must contain every taxonomy column")
	}

	var rows [][]float64
	scanned, dropped := 0, 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		scanned++

		cells := strings.Split(line, "\t")
		row := make([]float64, len(features))
		keep := true
		for j, name := range features {
			col, _ := taxonomy.Lookup(name)
			i := cellIndex[name]

			raw := ""
			if i < len(cells) {
				raw = cells[i]
			}

			code, ok := col.Encode(raw)
			if !ok {
				keep = false
				break
			}
			row[j] = float64(code)
		}

		if keep {
			rows = append(rows, row)
		} else {
			dropped++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapData(err, "reading corpus")
	}

	if len(rows) < minRows {
		return nil, errors.WithHint(
			errors.NewDataError("corpus %s has %d usable rows after cleaning, need at least %d",
				path, len(rows), minRows),
			"a model trained on this few contracts would overfit; supply a larger corpus or lower corpus.min_rows")
	}

	logger.Infow("Corpus loaded",
		logger.FieldCorpus, path,
		logger.FieldRows, len(rows),
		"scanned", scanned,
		"dropped", dropped,
		logger.FieldColumns, len(features),
	)

	return newTable(features, rows), nil
}
