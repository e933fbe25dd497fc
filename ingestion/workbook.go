package ingestion

import (
	"fmt"
	"strings"

	"github.com/poiesic/homematch/core"
	"github.com/xuri/excelize/v2"
)

// Column headers expected in the source workbook.
const (
	ColUserID      = "User ID"
	ColPropertyID  = "Property ID"
	ColBudget      = "Budget"
	ColPrice       = "Price"
	ColBedrooms    = "Bedrooms"
	ColBathrooms   = "Bathrooms"
	ColLivingArea  = "Living Area (sq ft)"
	ColDescription = "Qualitative Description"
)

// Row provides named access to one record of a tabular source.
// It is the single extraction point for heterogeneous row shapes; all
// downstream parsing goes through Field.
type Row interface {
	// Field returns the raw cell value under the named column.
	// The boolean is false when the column does not exist in the source.
	Field(name string) (string, bool)
}

// headerRow indexes a slice of cells by the sheet's header.
type headerRow struct {
	index map[string]int
	cells []string
}

func (r headerRow) Field(name string) (string, bool) {
	idx, ok := r.index[name]
	if !ok {
		return "", false
	}
	if idx >= len(r.cells) {
		// Excel omits trailing empty cells.
		return "", true
	}
	return r.cells[idx], true
}

// optionalField parses a named cell tolerantly: a missing column, blank
// cell, or malformed number all yield an absent value.
func optionalField(row Row, name string) core.Optional {
	raw, ok := row.Field(name)
	if !ok {
		return core.None()
	}
	return core.ParseOptional(raw)
}

// textField returns a trimmed cell value, empty when the column is absent.
func textField(row Row, name string) string {
	raw, _ := row.Field(name)
	return strings.TrimSpace(raw)
}

// LoadWorkbook reads user preferences from the first sheet of an Excel
// workbook and property listings from the second.
func LoadWorkbook(path string) ([]*core.UserPreference, []*core.PropertyListing, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) < 2 {
		return nil, nil, fmt.Errorf("%w: need a users sheet and a properties sheet, found %d", ErrMissingSheet, len(sheets))
	}

	users, err := loadUsers(f, sheets[0])
	if err != nil {
		return nil, nil, err
	}
	properties, err := loadProperties(f, sheets[1])
	if err != nil {
		return nil, nil, err
	}
	return users, properties, nil
}

func loadUsers(f *excelize.File, sheet string) ([]*core.UserPreference, error) {
	rows, err := sheetRows(f, sheet, ColUserID)
	if err != nil {
		return nil, err
	}

	users := make([]*core.UserPreference, 0, len(rows))
	for i, row := range rows {
		user := &core.UserPreference{
			Id:          textField(row, ColUserID),
			Budget:      optionalField(row, ColBudget),
			Bedrooms:    optionalField(row, ColBedrooms),
			Bathrooms:   optionalField(row, ColBathrooms),
			LivingArea:  optionalField(row, ColLivingArea),
			Description: textField(row, ColDescription),
		}
		if err := core.ValidateUserPreference(user); err != nil {
			return nil, fmt.Errorf("sheet %q row %d: %w", sheet, i+2, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func loadProperties(f *excelize.File, sheet string) ([]*core.PropertyListing, error) {
	rows, err := sheetRows(f, sheet, ColPropertyID)
	if err != nil {
		return nil, err
	}

	properties := make([]*core.PropertyListing, 0, len(rows))
	for i, row := range rows {
		property := &core.PropertyListing{
			Id:          textField(row, ColPropertyID),
			Price:       optionalField(row, ColPrice),
			Bedrooms:    optionalField(row, ColBedrooms),
			Bathrooms:   optionalField(row, ColBathrooms),
			LivingArea:  optionalField(row, ColLivingArea),
			Description: textField(row, ColDescription),
		}
		if err := core.ValidatePropertyListing(property); err != nil {
			return nil, fmt.Errorf("sheet %q row %d: %w", sheet, i+2, err)
		}
		properties = append(properties, property)
	}
	return properties, nil
}

// sheetRows reads a sheet, validates its header against the required
// identity column, and returns the data rows wrapped for named access.
// Rows that are entirely blank are skipped.
func sheetRows(f *excelize.File, sheet, idColumn string) ([]Row, error) {
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheet, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: sheet %q", ErrEmptySheet, sheet)
	}

	index := make(map[string]int, len(raw[0]))
	for i, name := range raw[0] {
		index[strings.TrimSpace(name)] = i
	}
	if _, ok := index[idColumn]; !ok {
		return nil, fmt.Errorf("%w: sheet %q needs column %q", ErrMissingColumn, sheet, idColumn)
	}

	var rows []Row
	for _, cells := range raw[1:] {
		if isBlank(cells) {
			continue
		}
		rows = append(rows, headerRow{index: index, cells: cells})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q", ErrEmptySheet, sheet)
	}
	return rows, nil
}

func isBlank(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
