package parser

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/ledgerkeep/ledgerkeep/internal/classifier"
	"github.com/ledgerkeep/ledgerkeep/internal/models"
	"github.com/shopspring/decimal"
)

// Expected column names of the default columnar export.
const (
	columnarDateHeader       = "Date"
	columnarNarrationHeader  = "Narration"
	columnarWithdrawalHeader = "Withdrawal Amt."
	columnarDepositHeader    = "Deposit Amt."
	columnarRefHeader        = "Chq./Ref.No."
)

// maskToken marks redacted date cells in some exports; rows carrying it
// are not transactions.
const maskToken = "****"

var summaryDateWords = []string{"opening", "closing", "summary"}

// RecordSet is a header-keyed view of a columnar CSV export. Headers keep
// their file order so the fallback extractor can sniff them.
type RecordSet struct {
	Headers []string
	Rows    []map[string]string
}

// ReadRecords parses CSV text into header-keyed records. Ragged rows are
// tolerated; cells beyond the header count are dropped and missing cells
// read as "".
func ReadRecords(csvText string) (RecordSet, error) {
	r := csv.NewReader(strings.NewReader(csvText))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	all, err := r.ReadAll()
	if err != nil {
		return RecordSet{}, fmt.Errorf("read csv records: %w", err)
	}
	if len(all) == 0 {
		return RecordSet{}, nil
	}

	rs := RecordSet{}
	for _, h := range all[0] {
		rs.Headers = append(rs.Headers, strings.TrimSpace(h))
	}
	for _, row := range all[1:] {
		rec := make(map[string]string, len(rs.Headers))
		for i, h := range rs.Headers {
			if i < len(row) {
				rec[h] = strings.TrimSpace(row[i])
			} else {
				rec[h] = ""
			}
		}
		rs.Rows = append(rs.Rows, rec)
	}
	return rs, nil
}

func isSummaryDate(date string) bool {
	lower := strings.ToLower(date)
	for _, w := range summaryDateWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// ExtractColumnar parses the default columnar export: one record per
// transaction with named date/narration/withdrawal/deposit columns and an
// optional check/reference column.
func ExtractColumnar(rs RecordSet, opts Options) []models.Transaction {
	tables := classifier.DefaultTables()

	var out []models.Transaction
	for _, rec := range rs.Rows {
		date := rec[columnarDateHeader]
		if date == "" || strings.Contains(date, maskToken) || isSummaryDate(date) {
			continue
		}
		desc := rec[columnarNarrationHeader]
		if desc == "" {
			continue
		}

		withdrawal := ParseAmount(rec[columnarWithdrawalHeader])
		deposit := ParseAmount(rec[columnarDepositHeader])

		amount := decimal.Zero
		switch {
		case withdrawal.IsPositive():
			amount = withdrawal.Neg()
		case deposit.IsPositive():
			amount = deposit
		}

		iso := ToISODateSlash(date)
		if !dateResolved(iso) || amount.IsZero() {
			continue
		}

		out = append(out, models.Transaction{
			Date:            iso,
			Description:     desc,
			Category:        tables.ClassifyCategory(desc, opts.CategoryRules),
			Type:            classifier.ClassifyType(desc),
			Tags:            tables.ClassifyTags(desc, opts.TagRules),
			Amount:          amount,
			ReferenceNumber: strings.TrimSpace(rec[columnarRefHeader]),
		})
	}
	return out
}

// ExtractFallback is the degraded-mode columnar extractor used when the
// named-column extractor finds nothing. Column identities are discovered
// by substring-sniffing the headers; the amount is a single signed column
// rather than a debit/credit pair.
func ExtractFallback(rs RecordSet, opts Options) []models.Transaction {
	dateHeader := sniffHeader(rs.Headers, "date")
	descHeader := sniffHeader(rs.Headers, "description", "narration", "memo")
	amountHeader := sniffHeader(rs.Headers, "amount")
	refHeader := sniffHeader(rs.Headers, "chq", "ref", "reference")

	tables := classifier.DefaultTables()

	var out []models.Transaction
	for _, rec := range rs.Rows {
		date := rec[dateHeader]
		if dateHeader == "" || date == "" || isSummaryDate(date) {
			continue
		}
		desc := rec[descHeader]
		if desc == "" {
			continue
		}

		amount := ParseSignedAmount(rec[amountHeader])
		iso := ToISODateSlash(date)
		if !dateResolved(iso) || amount.IsZero() {
			continue
		}

		out = append(out, models.Transaction{
			Date:            iso,
			Description:     desc,
			Category:        tables.ClassifyCategory(desc, opts.CategoryRules),
			Type:            classifier.ClassifyType(desc),
			Tags:            tables.ClassifyTags(desc, opts.TagRules),
			Amount:          amount,
			ReferenceNumber: strings.TrimSpace(rec[refHeader]),
		})
	}
	return out
}

// sniffHeader returns the first header containing any needle,
// case-insensitive, or "".
func sniffHeader(headers []string, needles ...string) string {
	for _, h := range headers {
		lower := strings.ToLower(h)
		for _, n := range needles {
			if strings.Contains(lower, n) {
				return h
			}
		}
	}
	return ""
}
