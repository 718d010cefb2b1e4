package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledgerkeep/ledgerkeep/internal/extractor"
	"github.com/ledgerkeep/ledgerkeep/internal/models"
)

// Extract routes file bytes to the right extractor for the declared bank
// type. Spreadsheet inputs are converted to CSV text first so every
// extractor sees the same shape. Within the Indian-bank family the
// quoted-CSV sub-format is auto-detected from the header signature. An
// unrecognized statement layout yields an empty slice, not an error;
// errors mean the file itself could not be read or decoded.
func Extract(data []byte, filename string, bank models.BankType, opts Options) ([]models.Transaction, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var csvText string
	switch ext {
	case ".xlsx", ".xls":
		converted, err := extractor.ToCSV(data, ext)
		if err != nil {
			return nil, err
		}
		csvText = converted
	case ".csv":
		csvText = string(data)
	default:
		return nil, fmt.Errorf("unsupported file extension %q", ext)
	}

	switch bank {
	case models.BankIndian, models.BankIOB:
		lines := splitLines(csvText)
		if len(lines) > 0 && IsQuotedCSVFormat(lines[0]) {
			return ExtractQuotedCSV(lines, opts), nil
		}
		return ExtractFixedColumn(lines, opts), nil

	case models.BankDefault:
		rs, err := ReadRecords(csvText)
		if err != nil {
			return nil, err
		}
		txns := ExtractColumnar(rs, opts)
		if len(txns) == 0 {
			// Header names didn't line up; one retry with the
			// column-sniffing fallback before giving up.
			txns = ExtractFallback(rs, opts)
		}
		return txns, nil

	default:
		return nil, fmt.Errorf("unknown bank type %q", bank)
	}
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
