// Package ingestion loads the tabular source data and persists ranked results.
//
// The source is an Excel workbook with user preferences on the first sheet
// and property listings on the second. Numeric cells are parsed tolerantly:
// blank or malformed values become absent attributes and never abort a
// load. Structural problems are different: a missing sheet, a missing
// identity column, or a sheet with no data rows is a hard error, because
// nothing sensible can be matched against it.
package ingestion
