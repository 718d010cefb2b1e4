// Package extractor decodes spreadsheet statement uploads into CSV text
// so every downstream extractor operates on one uniform shape.
package extractor

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// ToCSV decodes the first sheet of an .xlsx or .xls workbook and
// re-encodes it as CSV text. Decode failures mean the upload was not a
// valid spreadsheet at all and propagate as errors.
func ToCSV(data []byte, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".xlsx":
		rows, err := xlsxRows(data)
		if err != nil {
			return "", err
		}
		return rowsToCSV(rows)
	case ".xls":
		rows, err := xlsRows(data)
		if err != nil {
			return "", err
		}
		return rowsToCSV(rows)
	default:
		return "", fmt.Errorf("unsupported spreadsheet extension %q", ext)
	}
}

func xlsxRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read xlsx sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func xlsRows(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode xls: %w", err)
	}

	sheet, err := wb.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("read xls sheet: %w", err)
	}

	var rows [][]string
	for _, row := range sheet.GetRows() {
		var cells []string
		for _, c := range row.GetCols() {
			cells = append(cells, c.GetString())
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func rowsToCSV(rows [][]string) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("encode csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("encode csv: %w", err)
	}
	return buf.String(), nil
}
