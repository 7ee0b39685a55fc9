// Package export renders extraction results as an XLSX workbook: one
// "Invoices" sheet with the fixed record columns, plus a "Warnings" sheet
// when any file produced warnings.
package export

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/invoicelens/invoicelens/constants"
	"github.com/invoicelens/invoicelens/internal/extract"
)

// Item is one processed file's contribution to the workbook. Items with a
// nil Record (no-data documents) appear only on the Warnings sheet.
type Item struct {
	File     string
	Record   *extract.Record
	Warnings []string
}

const (
	invoicesSheet = "Invoices"
	warningsSheet = "Warnings"
	maxColWidth   = 50
)

// BuildWorkbook renders the items into XLSX bytes.
func BuildWorkbook(items []Item) ([]byte, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", invoicesSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	setCell := func(sheet string, col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}

	widths := make([]int, len(constants.RecordColumns))
	for i, h := range constants.RecordColumns {
		if err := setCell(invoicesSheet, i+1, 1, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
		widths[i] = len(h)
	}

	row := 2
	hasWarnings := false
	for _, item := range items {
		if len(item.Warnings) > 0 {
			hasWarnings = true
		}
		if item.Record == nil {
			continue
		}
		for col, v := range item.Record.Row() {
			if err := setCell(invoicesSheet, col+1, row, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
			if len(v) > widths[col] {
				widths[col] = len(v)
			}
		}
		row++
	}

	for i := range widths {
		w := float64(widths[i] + 2)
		if w > maxColWidth {
			w = maxColWidth
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(invoicesSheet, name, name, w); err != nil {
			return nil, fmt.Errorf("set col width: %w", err)
		}
	}

	if hasWarnings {
		if _, err := f.NewSheet(warningsSheet); err != nil {
			return nil, fmt.Errorf("warnings sheet: %w", err)
		}
		_ = setCell(warningsSheet, 1, 1, "File")
		_ = setCell(warningsSheet, 2, 1, "Warning")
		wrow := 2
		for _, item := range items {
			for _, w := range item.Warnings {
				if err := setCell(warningsSheet, 1, wrow, item.File); err != nil {
					return nil, err
				}
				if err := setCell(warningsSheet, 2, wrow, w); err != nil {
					return nil, err
				}
				wrow++
			}
		}
		_ = f.SetColWidth(warningsSheet, "A", "A", 35)
		_ = f.SetColWidth(warningsSheet, "B", "B", 60)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile builds the workbook and writes it to path.
func WriteFile(path string, items []Item) error {
	data, err := BuildWorkbook(items)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
