package parser

import (
	"testing"

	"github.com/shopspring/decimal"
)

const columnarStatement = `Date,Narration,Chq./Ref.No.,Value Dt,Withdrawal Amt.,Deposit Amt.,Closing Balance
01/02/26,UPI-SWIGGY-FOOD ORDER,0000512345678901,01/02/26,600.00,0.00,49400.00
03/02/26,SALARY CREDIT FEB,N123456,03/02/26,0.00,85000.00,134400.00
Opening Balance,,,,,,50000.00
04/02/26,,NOREF,04/02/26,10.00,0.00,134390.00
****masked****,HIDDEN ROW,X,,,5.00,134395.00
05/02/26,ZERO AMOUNT ROW,Z,05/02/26,0.00,0.00,134390.00`

func TestExtractColumnar(t *testing.T) {
	rs, err := ReadRecords(columnarStatement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	txns := ExtractColumnar(rs, Options{})
	if len(txns) != 2 {
		t.Fatalf("transactions: got %d, want 2", len(txns))
	}

	first := txns[0]
	if first.Date != "2026-02-01" {
		t.Errorf("txn[0].Date = %q, want %q", first.Date, "2026-02-01")
	}
	if !first.Amount.Equal(decimal.NewFromInt(-600)) {
		t.Errorf("txn[0].Amount = %s, want -600", first.Amount)
	}
	if first.ReferenceNumber != "0000512345678901" {
		t.Errorf("txn[0].ReferenceNumber = %q, want %q", first.ReferenceNumber, "0000512345678901")
	}
	if first.Category != "Food" {
		t.Errorf("txn[0].Category = %q, want %q", first.Category, "Food")
	}

	second := txns[1]
	if !second.Amount.Equal(decimal.NewFromInt(85000)) {
		t.Errorf("txn[1].Amount = %s, want 85000", second.Amount)
	}
	if second.Category != "Salary" {
		t.Errorf("txn[1].Category = %q, want %q", second.Category, "Salary")
	}
}

const fallbackStatement = `Txn Date,Details Memo,Txn Amount,Ref No
05/03/26,COFFEE SHOP CORNER,-250.00,R1
06/03/26,CLIENT PAYMENT RECEIVED,"1,500.00",R2
07/03/26,BROKEN ROW,,R3`

func TestExtractFallback(t *testing.T) {
	rs, err := ReadRecords(fallbackStatement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The named-column extractor finds nothing in this layout; the
	// fallback sniffs the columns instead.
	if got := ExtractColumnar(rs, Options{}); len(got) != 0 {
		t.Fatalf("columnar extractor should find nothing, got %d", len(got))
	}

	txns := ExtractFallback(rs, Options{})
	if len(txns) != 2 {
		t.Fatalf("transactions: got %d, want 2", len(txns))
	}

	if !txns[0].Amount.Equal(decimal.NewFromInt(-250)) {
		t.Errorf("txn[0].Amount = %s, want -250 (sign preserved)", txns[0].Amount)
	}
	if !txns[1].Amount.Equal(decimal.NewFromFloat(1500)) {
		t.Errorf("txn[1].Amount = %s, want 1500", txns[1].Amount)
	}
	if txns[0].ReferenceNumber != "R1" {
		t.Errorf("txn[0].ReferenceNumber = %q, want %q", txns[0].ReferenceNumber, "R1")
	}
}

func TestExtractFallback_NoDateColumn(t *testing.T) {
	rs, err := ReadRecords("Memo,Amount\nSOMETHING,5.00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	txns := ExtractFallback(rs, Options{})
	if len(txns) != 0 {
		t.Errorf("expected 0 transactions without a date column, got %d", len(txns))
	}
}

func TestReadRecords_Empty(t *testing.T) {
	rs, err := ReadRecords("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rs.Rows))
	}
}
