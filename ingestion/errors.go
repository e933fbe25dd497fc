package ingestion

import "errors"

var (
	// ErrMissingSheet is returned when the workbook lacks a users or properties sheet.
	ErrMissingSheet = errors.New("workbook sheet missing")

	// ErrEmptySheet is returned when a required sheet has no data rows.
	ErrEmptySheet = errors.New("workbook sheet has no data rows")

	// ErrMissingColumn is returned when a required column is absent from a sheet header.
	ErrMissingColumn = errors.New("required column missing")
)
