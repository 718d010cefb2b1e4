package parser

import (
	"strings"

	"github.com/ledgerkeep/ledgerkeep/internal/classifier"
	"github.com/ledgerkeep/ledgerkeep/internal/models"
	"github.com/shopspring/decimal"
)

// quotedHeaderSignature is the exact first-line header of the quoted-CSV
// sub-format. The dispatcher uses it to pick between the two
// Indian-bank-family extractors.
const quotedHeaderSignature = "Date,Transaction Details,Debits,Credits,Balance"

const (
	quotedDateCol    = 0
	quotedDetailsCol = 1
	quotedDebitCol   = 2
	quotedCreditCol  = 3
)

// IsQuotedCSVFormat reports whether the first line carries the quoted-CSV
// header signature.
func IsQuotedCSVFormat(firstLine string) bool {
	return strings.Contains(strings.TrimSpace(firstLine), quotedHeaderSignature)
}

// ExtractQuotedCSV parses the quoted-CSV sub-format: one complete
// transaction per line, dash-format dates, "-" sentinels in whichever of
// the debit/credit columns is unused.
func ExtractQuotedCSV(lines []string, opts Options) []models.Transaction {
	tables := classifier.IOBTables()

	var out []models.Transaction
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		cols := splitCSVLine(line)
		if len(cols) < 5 {
			continue
		}

		date := ToISODateDash(strings.TrimSpace(col(cols, quotedDateCol)))
		desc := strings.TrimSpace(col(cols, quotedDetailsCol))
		debit := ParseAmount(col(cols, quotedDebitCol))
		credit := ParseAmount(col(cols, quotedCreditCol))

		amount := decimal.Zero
		switch {
		case debit.IsPositive():
			amount = debit.Neg()
		case credit.IsPositive():
			amount = credit
		}

		if !dateResolved(date) || desc == "" || amount.IsZero() {
			continue
		}

		out = append(out, models.Transaction{
			Date:            date,
			Description:     desc,
			Category:        tables.ClassifyCategory(desc, opts.CategoryRules),
			Type:            classifier.ClassifyType(desc),
			Tags:            tables.ClassifyTags(desc, opts.TagRules),
			Amount:          amount,
			ReferenceNumber: ExtractReferenceIOB(desc),
		})
	}
	return out
}
