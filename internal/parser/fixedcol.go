package parser

import (
	"regexp"
	"strings"

	"github.com/ledgerkeep/ledgerkeep/internal/classifier"
	"github.com/ledgerkeep/ledgerkeep/internal/models"
	"github.com/shopspring/decimal"
)

// Fixed column offsets of the indian_bank eStatement export. A logical
// transaction starts on a row whose transaction-date column holds a
// "DD Mon YYYY" value; narration continuation rows leave the date column
// empty. Amounts carry an "INR " prefix and thousands commas.
const (
	fixedDateCol      = 1
	fixedNarrationCol = 3
	fixedDebitCol     = 5
	fixedCreditCol    = 6
)

// fixedHeaderMarker identifies the repeating header block the export
// re-emits every page.
const fixedHeaderMarker = "Transaction Date"

// Strict transaction-date shape: 2 digits, 3 letters, 4 digits.
var fixedDateRowPattern = regexp.MustCompile(`^\d{2}\s+[A-Za-z]{3}\s+\d{4}$`)

// ExtractFixedColumn runs the stateful line parser for the
// fixed-column-offset format. One transaction spans from a date row to
// the next date row (or end of input); continuation rows only extend the
// narration. A file with no date rows yields no transactions.
func ExtractFixedColumn(lines []string, opts Options) []models.Transaction {
	tables := classifier.DefaultTables()

	var out []models.Transaction
	var curDate, curDesc string
	curDebit, curCredit := decimal.Zero, decimal.Zero

	flush := func() {
		if curDate == "" && curDesc == "" {
			return
		}
		date := ToISODateLong(curDate)
		desc := strings.TrimSpace(curDesc)

		amount := decimal.Zero
		switch {
		case curDebit.IsPositive():
			amount = curDebit.Neg()
		case curCredit.IsPositive():
			amount = curCredit
		}

		// Zero amounts are balance/summary rows that slipped through,
		// not transactions.
		if !dateResolved(date) || desc == "" || amount.IsZero() {
			return
		}

		out = append(out, models.Transaction{
			Date:            date,
			Description:     desc,
			Category:        tables.ClassifyCategory(desc, opts.CategoryRules),
			Type:            classifier.ClassifyType(desc),
			Tags:            tables.ClassifyTags(desc, opts.TagRules),
			Amount:          amount,
			ReferenceNumber: ExtractReferenceIndian(desc),
		})
	}

	reset := func(date, desc string, debit, credit decimal.Decimal) {
		curDate, curDesc = date, desc
		curDebit, curCredit = debit, credit
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.Contains(line, fixedHeaderMarker) {
			continue
		}

		cols := splitCSVLine(line)
		dateCell := strings.TrimSpace(col(cols, fixedDateCol))
		narration := strings.TrimSpace(col(cols, fixedNarrationCol))

		switch {
		case fixedDateRowPattern.MatchString(dateCell):
			flush()
			reset(dateCell, narration,
				ParseAmount(col(cols, fixedDebitCol)),
				ParseAmount(col(cols, fixedCreditCol)))
		case dateCell == "" && narration != "":
			// Continuation row: the narration wrapped onto another
			// physical line. Date and amounts stay untouched.
			if curDesc != "" {
				curDesc += " " + narration
			} else {
				curDesc = narration
			}
		default:
			// Account metadata or other non-transaction row.
		}
	}

	flush()
	return out
}
