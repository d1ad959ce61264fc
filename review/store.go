package review

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Parse reads header-keyed CSV data into a RecordSet. The first row is the
// field set; every following row becomes a Record keyed by header name.
// Category columns absent from the header are appended with the default No
// for every row, then the required column set is checked; a failure returns
// *MissingColumnsError and leaves nothing behind.
func Parse(r io.Reader) (*RecordSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("empty file")
	}

	columns := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		columns[i] = cleanCell(cell)
	}
	have := make(map[string]int, len(columns))
	for i, col := range columns {
		have[col] = i
	}
	for _, c := range categoryOrder {
		if _, ok := have[string(c)]; !ok {
			have[string(c)] = len(columns)
			columns = append(columns, string(c))
		}
	}

	var missing []string
	for _, col := range RequiredFields() {
		if _, ok := have[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	set := &RecordSet{columns: columns}
	for _, row := range rows[1:] {
		rec := make(Record, len(columns))
		for i, col := range columns {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		normalizeRecord(rec)
		set.rows = append(set.rows, rec)
	}
	return set, nil
}

// normalizeRecord coerces every category value into the canonical token
// domain and forces locked rows to all-No.
func normalizeRecord(rec Record) {
	if rec.Correct() {
		rec.setAnswers(allNo())
		return
	}
	for _, c := range categoryOrder {
		rec[string(c)] = string(rec.Answer(c))
	}
}

// LoadFile parses the CSV file at path.
func LoadFile(path string) (*RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	set, err := Parse(f)
	if err != nil {
		var missingErr *MissingColumnsError
		if errors.As(err, &missingErr) {
			return nil, err
		}
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return set, nil
}

// Serialize writes the record set as CSV: the augmented field set as the
// header, then every row in original order. Rows missing a category field
// are given the No default on emission.
func (s *RecordSet) Serialize(w io.Writer) error {
	columns := s.Columns()
	have := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		have[col] = struct{}{}
	}
	for _, c := range categoryOrder {
		if _, ok := have[string(c)]; !ok {
			columns = append(columns, string(c))
		}
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(columns))
	for _, rec := range s.rows {
		for i, col := range columns {
			val, ok := rec[col]
			if !ok && isCategoryColumn(col) {
				val = string(No)
			}
			row[i] = val
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func isCategoryColumn(col string) bool {
	_, ok := categoryPrompts[Category(col)]
	return ok
}

// SaveAnnotated serializes the record set next to the original file name,
// prefixed and placed under the configured output directory (created when
// absent). It returns the path the file was written to.
func (s *RecordSet) SaveAnnotated(originalPath string, cfg Config) (string, error) {
	cfg.ApplyDefaults()
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	outPath := filepath.Join(cfg.OutputDir, cfg.OutputPrefix+filepath.Base(originalPath))
	var buf bytes.Buffer
	if err := s.Serialize(&buf); err != nil {
		return "", err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", filepath.Base(outPath), err)
	}
	return outPath, nil
}
