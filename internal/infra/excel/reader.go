// internal/infra/excel/reader.go
package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"birthday_notification_bot/internal/domain/contact"

	"github.com/xuri/excelize/v2"
)

// requiredColumns must be present (case-insensitive, whitespace-trimmed) in
// the header row. The remaining columns are optional.
var requiredColumns = []string{"name", "phone", "birthday"}

// Reader loads contacts from a tabular file. The format is chosen by file
// extension: .csv is read as comma-separated text, everything else goes
// through the xlsx reader.
type Reader struct {
	path  string
	sheet string
}

func NewReader(path, sheet string) *Reader {
	return &Reader{path: path, sheet: sheet}
}

// Load reads all rows of the configured sheet into Contact values, in
// source order. It fails when the file cannot be opened or parsed, or when
// a required column is missing from the header.
func (r *Reader) Load(ctx context.Context) ([]contact.Contact, error) {
	var rows [][]string
	var err error
	if strings.EqualFold(filepath.Ext(r.path), ".csv") {
		rows, err = r.readCSV()
	} else {
		rows, err = r.readXLSX()
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("contacts file %s: sheet %q is empty", r.path, r.sheet)
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		normalized := strings.ToLower(strings.TrimSpace(header))
		if normalized == "" {
			continue
		}
		if _, exists := columns[normalized]; !exists {
			columns[normalized] = i
		}
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("contacts file missing required column: %s", required)
		}
	}

	contacts := make([]contact.Contact, 0, len(rows)-1)
	for _, row := range rows[1:] {
		c := contact.Contact{
			Name:     strings.TrimSpace(cellAt(row, columns, "name")),
			Phone:    strings.TrimSpace(cellAt(row, columns, "phone")),
			Birthday: cellAt(row, columns, "birthday"),
			Timezone: strings.TrimSpace(cellAt(row, columns, "timezone")),
			Notes:    cellAt(row, columns, "notes"),
			Template: cellAt(row, columns, "template"),
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

func (r *Reader) readXLSX() ([][]string, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open contacts file %s: %w", r.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q from %s: %w", r.sheet, r.path, err)
	}
	return rows, nil
}

func (r *Reader) readCSV() ([][]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open contacts file %s: %w", r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may be ragged, cellAt tolerates that
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse contacts file %s: %w", r.path, err)
	}
	return rows, nil
}

// cellAt returns the value of the named column in a row, or "" when the
// column is absent or the row is shorter than the header.
func cellAt(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
