package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/poiesic/homematch/core"
)

// WriteResults writes ranked match records as CSV with a header row.
// Records are written in the order given; the match engine already emits
// them grouped by user and sorted by score.
func WriteResults(w io.Writer, records []core.MatchRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"user_id", "property_id", "match_score"}); err != nil {
		return fmt.Errorf("write results header: %w", err)
	}
	for _, record := range records {
		row := []string{
			record.UserId,
			record.PropertyId,
			strconv.FormatFloat(record.MatchScore, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write result row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteResultsFile writes ranked match records to a CSV file.
func WriteResultsFile(path string, records []core.MatchRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}

	if err := WriteResults(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
