package store

import (
	"testing"

	"github.com/ledgerkeep/ledgerkeep/internal/classifier"
	"github.com/ledgerkeep/ledgerkeep/internal/models"
	"github.com/shopspring/decimal"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return s
}

func amt(t *testing.T, v string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(v)
	if err != nil {
		t.Fatalf("parse %q: %v", v, err)
	}
	return d
}

func TestInsertTransactionsDeduplicatesByReference(t *testing.T) {
	s := newTestStore(t)

	txns := []models.Transaction{
		{Date: "2026-01-05", Description: "UPI/5212890711/SWIGGY", Category: "Food", Type: "UPI",
			Tags: []string{"UPI", "FOOD"}, Amount: amt(t, "-450.00"), ReferenceNumber: "5212890711"},
		{Date: "2026-01-06", Description: "NEFT SALARY JAN", Category: "Salary", Type: "Transfer",
			Tags: []string{"SALARY"}, Amount: amt(t, "85000"), ReferenceNumber: "N006261020304"},
		{Date: "2026-01-07", Description: "POS AMAZON", Category: "Shopping", Type: "POS",
			Tags: []string{}, Amount: amt(t, "-1200.50")},
	}

	res := s.InsertTransactions("default", "indian_bank", txns)
	if res.Parsed != 3 || res.Inserted != 3 || res.Skipped != 0 {
		t.Fatalf("first import = %+v, want 3 parsed, 3 inserted", res)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("first import errors = %v", res.Errors)
	}

	// Re-importing the same statement skips referenced rows. The row
	// with no reference number has nothing to dedup on and inserts again.
	res = s.InsertTransactions("default", "indian_bank", txns)
	if res.Inserted != 1 || res.Skipped != 2 {
		t.Errorf("re-import = %+v, want 1 inserted, 2 skipped", res)
	}
}

func TestListTransactionsMonthFilter(t *testing.T) {
	s := newTestStore(t)

	s.InsertTransactions("default", "default", []models.Transaction{
		{Date: "2026-01-05", Description: "JAN A", Category: "Food", Type: "UPI", Amount: amt(t, "-100")},
		{Date: "2026-01-20", Description: "JAN B", Category: "Rent", Type: "Transfer", Amount: amt(t, "-15000")},
		{Date: "2026-02-02", Description: "FEB A", Category: "Food", Type: "UPI", Amount: amt(t, "-200")},
	})

	all, err := s.ListTransactions("default", "")
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}
	if all[0].Description != "JAN A" || all[2].Description != "FEB A" {
		t.Errorf("ordering = %q ... %q, want date ascending", all[0].Description, all[2].Description)
	}
	if !all[1].Amount.Equal(amt(t, "-15000")) {
		t.Errorf("stored amount = %s, want -15000", all[1].Amount)
	}

	jan, err := s.ListTransactions("default", "2026-01")
	if err != nil {
		t.Fatalf("ListTransactions month: %v", err)
	}
	if len(jan) != 2 {
		t.Errorf("len(jan) = %d, want 2", len(jan))
	}

	other, err := s.ListTransactions("someone-else", "")
	if err != nil {
		t.Fatalf("ListTransactions other user: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("other user sees %d transactions, want 0", len(other))
	}
}

func TestUpdateClassification(t *testing.T) {
	s := newTestStore(t)

	s.InsertTransactions("default", "default", []models.Transaction{
		{Date: "2026-03-01", Description: "UNKNOWN MERCHANT", Category: models.Uncategorized,
			Type: "Other", Amount: amt(t, "-99")},
	})
	rows, err := s.ListTransactions("default", "")
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}

	if err := s.UpdateClassification(rows[0].ID, "Shopping", []string{"ONLINE"}); err != nil {
		t.Fatalf("UpdateClassification: %v", err)
	}
	rows, _ = s.ListTransactions("default", "")
	if rows[0].Category != "Shopping" {
		t.Errorf("category = %q, want Shopping", rows[0].Category)
	}
	if len(rows[0].Tags) != 1 || rows[0].Tags[0] != "ONLINE" {
		t.Errorf("tags = %v, want [ONLINE]", rows[0].Tags)
	}

	if err := s.UpdateClassification("no-such-id", "X", nil); err == nil {
		t.Error("UpdateClassification on missing id should fail")
	}
}

func TestCategoryRuleCRUD(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateCategoryRule(models.CategoryRule{
		UserID: "default", Category: "Coffee", Pattern: "BLUE TOKAI",
		Match: models.MatchContains, Priority: 50,
	})
	if err != nil {
		t.Fatalf("CreateCategoryRule: %v", err)
	}

	rules, err := s.ListCategoryRules("default")
	if err != nil {
		t.Fatalf("ListCategoryRules: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("len(rules) = %d, want 1", len(rules))
	}
	if rules[0].Pattern != "blue tokai" {
		t.Errorf("pattern stored as %q, want lowercased", rules[0].Pattern)
	}

	if err := s.UpdateCategoryRule(models.CategoryRule{
		ID: id, UserID: "default", Category: "Coffee", Pattern: "tokai",
		Match: models.MatchContains, Priority: 99,
	}); err != nil {
		t.Fatalf("UpdateCategoryRule: %v", err)
	}
	rules, _ = s.ListCategoryRules("default")
	if rules[0].Priority != 99 {
		t.Errorf("priority = %d, want 99", rules[0].Priority)
	}

	if err := s.DeleteCategoryRule("default", id); err != nil {
		t.Fatalf("DeleteCategoryRule: %v", err)
	}
	if err := s.DeleteCategoryRule("default", id); err == nil {
		t.Error("deleting a deleted rule should fail")
	}
}

func TestTagRuleUppercasesName(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreateTagRule(models.TagRule{
		UserID: "default", TagName: "travel", Pattern: "IRCTC", Match: models.MatchContains,
	}); err != nil {
		t.Fatalf("CreateTagRule: %v", err)
	}
	rules, err := s.ListTagRules("default")
	if err != nil {
		t.Fatalf("ListTagRules: %v", err)
	}
	if rules[0].TagName != "TRAVEL" {
		t.Errorf("tag name = %q, want TRAVEL", rules[0].TagName)
	}
	if rules[0].Pattern != "irctc" {
		t.Errorf("pattern = %q, want irctc", rules[0].Pattern)
	}
}

func TestSeedRulesIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	cats, tags := classifier.DefaultTables().SeedRules()
	n, err := s.SeedRules("default", cats, tags)
	if err != nil {
		t.Fatalf("SeedRules: %v", err)
	}
	if n != len(cats)+len(tags) {
		t.Errorf("seeded %d rules, want %d", n, len(cats)+len(tags))
	}

	n, err = s.SeedRules("default", cats, tags)
	if err != nil {
		t.Fatalf("SeedRules again: %v", err)
	}
	if n != 0 {
		t.Errorf("second seed inserted %d rules, want 0", n)
	}

	rules, _ := s.ListCategoryRules("default")
	for i := 1; i < len(rules); i++ {
		if rules[i].Priority > rules[i-1].Priority {
			t.Fatalf("rules not in descending priority at index %d", i)
		}
	}
}

func TestBudgetUpsertAndReport(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpsertBudget(models.Budget{UserID: "default", Category: "Food", Month: "2026-01", Limit: "3000"}); err != nil {
		t.Fatalf("UpsertBudget: %v", err)
	}
	// Upsert on the same key replaces the limit.
	if err := s.UpsertBudget(models.Budget{UserID: "default", Category: "Food", Month: "2026-01", Limit: "2500"}); err != nil {
		t.Fatalf("UpsertBudget replace: %v", err)
	}
	budgets, err := s.ListBudgets("default", "2026-01")
	if err != nil {
		t.Fatalf("ListBudgets: %v", err)
	}
	if len(budgets) != 1 || budgets[0].Limit != "2500" {
		t.Fatalf("budgets = %+v, want single Food budget of 2500", budgets)
	}

	s.InsertTransactions("default", "default", []models.Transaction{
		{Date: "2026-01-03", Description: "SWIGGY", Category: "Food", Type: "UPI", Amount: amt(t, "-1800.25")},
		{Date: "2026-01-09", Description: "ZOMATO", Category: "Food", Type: "UPI", Amount: amt(t, "-900")},
		{Date: "2026-01-15", Description: "REFUND ZOMATO", Category: "Food", Type: "UPI", Amount: amt(t, "200")},
	})

	report, err := s.BudgetReport("default", "2026-01")
	if err != nil {
		t.Fatalf("BudgetReport: %v", err)
	}
	if len(report) != 1 {
		t.Fatalf("len(report) = %d, want 1", len(report))
	}
	// Credits do not offset spending.
	if report[0].Spent != "2700.25" {
		t.Errorf("spent = %s, want 2700.25", report[0].Spent)
	}
	if !report[0].Over {
		t.Error("2700.25 against a 2500 limit should be over")
	}
}

func TestMonthlyCategoryTotalsIgnoresCredits(t *testing.T) {
	s := newTestStore(t)

	s.InsertTransactions("default", "default", []models.Transaction{
		{Date: "2026-02-01", Description: "SALARY", Category: "Salary", Type: "Transfer", Amount: amt(t, "85000")},
		{Date: "2026-02-02", Description: "RENT", Category: "Rent", Type: "Transfer", Amount: amt(t, "-15000")},
		{Date: "2026-02-03", Description: "SWIGGY", Category: "Food", Type: "UPI", Amount: amt(t, "-450.50")},
	})

	totals, err := s.MonthlyCategoryTotals("default", "2026-02")
	if err != nil {
		t.Fatalf("MonthlyCategoryTotals: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("len(totals) = %d, want 2 (credit-only categories excluded)", len(totals))
	}
	if totals[0].Category != "Food" || totals[0].Spent != "450.5" {
		t.Errorf("totals[0] = %+v, want Food 450.5", totals[0])
	}
	if totals[1].Category != "Rent" || totals[1].Spent != "15000" {
		t.Errorf("totals[1] = %+v, want Rent 15000", totals[1])
	}
}

func TestRecurringCandidates(t *testing.T) {
	s := newTestStore(t)

	s.InsertTransactions("default", "default", []models.Transaction{
		{Date: "2026-01-05", Description: "NETFLIX.COM", Category: "Entertainment", Type: "Other", Amount: amt(t, "-649")},
		{Date: "2026-02-05", Description: "NETFLIX.COM", Category: "Entertainment", Type: "Other", Amount: amt(t, "-649")},
		{Date: "2026-03-05", Description: "NETFLIX.COM", Category: "Entertainment", Type: "Other", Amount: amt(t, "-649")},
		// Same merchant twice in one month does not count as two months.
		{Date: "2026-01-10", Description: "SWIGGY", Category: "Food", Type: "UPI", Amount: amt(t, "-300")},
		{Date: "2026-01-20", Description: "SWIGGY", Category: "Food", Type: "UPI", Amount: amt(t, "-300")},
		{Date: "2026-02-11", Description: "SWIGGY", Category: "Food", Type: "UPI", Amount: amt(t, "-300")},
		// Credits never qualify.
		{Date: "2026-01-01", Description: "SALARY", Category: "Salary", Type: "Transfer", Amount: amt(t, "85000")},
		{Date: "2026-02-01", Description: "SALARY", Category: "Salary", Type: "Transfer", Amount: amt(t, "85000")},
		{Date: "2026-03-01", Description: "SALARY", Category: "Salary", Type: "Transfer", Amount: amt(t, "85000")},
	})

	got, err := s.RecurringCandidates("default")
	if err != nil {
		t.Fatalf("RecurringCandidates: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(candidates) = %d, want 1: %+v", len(got), got)
	}
	if got[0].Description != "NETFLIX.COM" || got[0].Months != 3 {
		t.Errorf("candidate = %+v, want NETFLIX.COM over 3 months", got[0])
	}
	if got[0].LastDate != "2026-03-05" {
		t.Errorf("last date = %s, want 2026-03-05", got[0].LastDate)
	}
}
