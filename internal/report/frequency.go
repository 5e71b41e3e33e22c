package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	childes "github.com/jamesainslie/go-childes"
)

// Sheet is the worksheet holding the frequency table in XLSX output.
const Sheet = "Sheet1"

// FrequencyHeader is the header row of the frequency table.
var FrequencyHeader = []string{"Pattern", "Wrong", "Correct", "Frequency"}

// WriteFrequencies writes rows to path, as XLSX or CSV depending on the
// extension of path.
func WriteFrequencies(path string, rows []childes.PatternCount) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error {
		if format == XLSX {
			return EncodeFrequenciesXLSX(w, rows)
		}
		return EncodeFrequenciesCSV(w, rows)
	})
}

// EncodeFrequenciesCSV writes the frequency table as CSV.
func EncodeFrequenciesCSV(w io.Writer, rows []childes.PatternCount) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(FrequencyHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{r.Pattern, r.Wrong, r.Correct, strconv.Itoa(r.Frequency)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeFrequenciesXLSX writes the frequency table as a single sheet
// workbook. Frequency cells are numeric.
func EncodeFrequenciesXLSX(w io.Writer, rows []childes.PatternCount) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	header := make([]any, len(FrequencyHeader))
	for i, h := range FrequencyHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(Sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{r.Pattern, r.Wrong, r.Correct, r.Frequency}
		if err := f.SetSheetRow(Sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("encode workbook: %w", err)
	}
	return nil
}
