package models

import "github.com/shopspring/decimal"

// Transaction is the canonical record produced by the statement extractors.
// Amount is signed: negative means money out (debit/withdrawal), positive
// means money in. Extractors never emit a zero-amount transaction.
type Transaction struct {
	Date            string          `json:"date"` // YYYY-MM-DD
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Type            string          `json:"type"`
	Tags            []string        `json:"tags"`
	Amount          decimal.Decimal `json:"amount"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
}

// BankType selects which extractor pipeline applies to an uploaded file.
type BankType string

const (
	// BankDefault is the generic columnar export with named
	// date/narration/withdrawal/deposit columns.
	BankDefault BankType = "default"
	// BankIndian is the fixed-column-offset export with repeating header
	// blocks, multi-line narrations and INR-prefixed amounts.
	BankIndian BankType = "indian_bank"
	// BankIOB is the quoted single-row-per-transaction CSV export.
	BankIOB BankType = "iob"
)

// ParseBankType maps a caller-declared discriminator to a BankType.
func ParseBankType(s string) (BankType, bool) {
	switch s {
	case string(BankDefault):
		return BankDefault, true
	case string(BankIndian):
		return BankIndian, true
	case string(BankIOB):
		return BankIOB, true
	}
	return "", false
}

// Uncategorized is the category assigned when no rule matches.
const Uncategorized = "Uncategorized"

// Transaction type labels. Types come from a fixed keyword table and are
// not user-configurable, unlike categories and tags.
const (
	TypeUPI      = "UPI"
	TypeBillPay  = "Bill Payment"
	TypeTransfer = "Transfer"
	TypePOS      = "POS"
	TypeCheck    = "Check"
	TypeATM      = "ATM"
	TypeOther    = "Other"
)

// ImportResult summarizes a statement import: how many rows the extractor
// produced, how many the store inserted, and how many were skipped as
// duplicates of an already-stored reference number. Errors holds per-row
// insertion failures; a partially failed import still reports its counts.
type ImportResult struct {
	Parsed   int      `json:"parsed"`
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
