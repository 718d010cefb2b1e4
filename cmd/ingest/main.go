package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/models"
	"github.com/ledgerkeep/ledgerkeep/internal/parser"
	"github.com/ledgerkeep/ledgerkeep/internal/writer"
)

const version = "1.0.0"

func main() {
	bankFlag := flag.String("bank", "default", "Bank type: default, indian_bank, iob")
	inputFlag := flag.String("input", "", "Directory to scan for statements (alternative to file arguments)")
	outputFlag := flag.String("output", "", "Output directory (defaults to each input file's directory)")
	deleteFlag := flag.Bool("delete", false, "Delete each source file after successful conversion")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Ledgerkeep statement ingester

Converts bank statement exports (CSV, XLSX, XLS) into normalized
CSV and JSON transaction files.

Usage:
  ingest [flags] <statement.csv> [statement2.xlsx ...]
  ingest [flags] -input=/path/to/statements

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Supported Banks:
  default      - generic columnar export with named columns
  indian_bank  - fixed-column export with multi-line narrations
  iob          - quoted single-row-per-transaction CSV export
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("ledgerkeep-ingest v%s\n", version)
		os.Exit(0)
	}

	bank, ok := models.ParseBankType(*bankFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown bank type %q\n", *bankFlag)
		flag.Usage()
		os.Exit(1)
	}

	files := flag.Args()
	if *inputFlag != "" {
		scanned, err := scanDir(*inputFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		files = append(files, scanned...)
	}
	if len(files) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if *outputFlag != "" {
		if err := os.MkdirAll(*outputFlag, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error: create output directory: %v\n", err)
			os.Exit(1)
		}
	}

	totalTxns := 0
	totalNet := decimal.Zero
	failed := 0

	for _, path := range files {
		n, net, err := convertFile(path, *outputFlag, bank, *deleteFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("✓ %s: %d transactions, net %s\n", path, n, net)
		totalTxns += n
		totalNet = totalNet.Add(net)
	}

	if len(files) > 1 {
		fmt.Printf("\n%d files, %d transactions, net %s\n", len(files)-failed, totalTxns, totalNet)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func convertFile(path, outDir string, bank models.BankType, remove bool) (int, decimal.Decimal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, decimal.Zero, err
	}

	txns, err := parser.Extract(data, path, bank, parser.Options{})
	if err != nil {
		return 0, decimal.Zero, err
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	if outDir != "" {
		base = filepath.Join(outDir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}

	if err := (&writer.CSVWriter{}).WriteToFile(base+".csv", txns); err != nil {
		return 0, decimal.Zero, fmt.Errorf("write csv: %w", err)
	}
	if err := (&writer.JSONWriter{}).WriteToFile(base+".json", txns); err != nil {
		return 0, decimal.Zero, fmt.Errorf("write json: %w", err)
	}

	net := decimal.Zero
	for _, t := range txns {
		net = net.Add(t.Amount)
	}

	if remove {
		if err := os.Remove(path); err != nil {
			return len(txns), net, fmt.Errorf("delete source: %w", err)
		}
	}
	return len(txns), net, nil
}

func scanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".csv", ".xlsx", ".xls":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
