package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ledgerkeep/ledgerkeep/internal/models"
)

// JSONWriter writes transactions as a pretty-printed JSON array.
type JSONWriter struct{}

// WriteToFile writes transactions to a JSON file at the given path.
func (w *JSONWriter) WriteToFile(path string, txns []models.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, txns)
}

// Write writes transactions as indented JSON to the given writer.
func (w *JSONWriter) Write(out io.Writer, txns []models.Transaction) error {
	if txns == nil {
		txns = []models.Transaction{}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(txns); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
