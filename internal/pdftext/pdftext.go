// Package pdftext recovers the textual layer of a PDF for the extraction
// core: reading-order text plus coarse row/column grids. It handles only
// text-based documents; pages without a text layer come back empty.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/invoicelens/invoicelens/internal/common"
)

// Result is what the extraction core consumes: newline-joined page text in
// reading order and zero or more per-page cell grids.
type Result struct {
	Text   string
	Tables [][][]string
	Pages  int
}

// ExtractFile reads the text layer of a PDF. Parse panics from malformed
// documents are converted to errors so a bad file never takes down a batch.
func ExtractFile(path string) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = common.NewAppError("PDF_PARSE", fmt.Sprintf("malformed document %s", path), fmt.Errorf("%v", r))
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var text strings.Builder
	var tables [][][]string

	numPages := reader.NumPage()
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}

		var grid [][]string
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				if s := strings.TrimSpace(word.S); s != "" {
					words = append(words, s)
				}
			}
			if len(words) == 0 {
				continue
			}
			text.WriteString(strings.Join(words, " "))
			text.WriteString("\n")

			// Multi-word rows double as coarse table rows: word order
			// approximates column order for the simple grids invoices use.
			if len(words) >= 2 {
				grid = append(grid, words)
			}
		}
		if len(grid) >= 2 {
			tables = append(tables, grid)
		}
	}

	return Result{Text: text.String(), Tables: tables, Pages: numPages}, nil
}
