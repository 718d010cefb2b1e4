package store

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one row of a monthly spending report. Spent is the
// absolute sum of negative amounts in the category.
type CategoryTotal struct {
	Category string `json:"category"`
	Spent    string `json:"spent"`
	Count    int    `json:"count"`
}

// BudgetStatus pairs a budget with what was actually spent against it.
type BudgetStatus struct {
	Category string `json:"category"`
	Month    string `json:"month"`
	Limit    string `json:"limit"`
	Spent    string `json:"spent"`
	Over     bool   `json:"over"`
}

// RecurringCandidate is a (description, amount) pair that debits in three
// or more distinct months, a likely subscription or standing order.
type RecurringCandidate struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Months      int    `json:"months"`
	LastDate    string `json:"lastDate"`
}

// MonthlyCategoryTotals sums spending per category for one YYYY-MM month.
// Amounts are stored as decimal strings, so totals are accumulated in Go
// rather than with SQL aggregates.
func (s *Store) MonthlyCategoryTotals(userID, month string) ([]CategoryTotal, error) {
	rows, err := s.db.Query(`
		SELECT category, amount
		FROM transactions
		WHERE user_id = ? AND substr(date, 1, 7) = ?
	`, userID, month)
	if err != nil {
		return nil, fmt.Errorf("query monthly totals: %w", err)
	}
	defer rows.Close()

	totals := map[string]decimal.Decimal{}
	counts := map[string]int{}
	for rows.Next() {
		var category, amount string
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, fmt.Errorf("scan monthly total: %w", err)
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse stored amount %q: %w", amount, err)
		}
		if d.Sign() >= 0 {
			continue
		}
		totals[category] = totals[category].Add(d.Abs())
		counts[category]++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, CategoryTotal{Category: category, Spent: total.String(), Count: counts[category]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

// BudgetReport compares each budget for a month against actual spending.
func (s *Store) BudgetReport(userID, month string) ([]BudgetStatus, error) {
	budgets, err := s.ListBudgets(userID, month)
	if err != nil {
		return nil, err
	}
	totals, err := s.MonthlyCategoryTotals(userID, month)
	if err != nil {
		return nil, err
	}

	spent := map[string]string{}
	for _, t := range totals {
		spent[t.Category] = t.Spent
	}

	out := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		limit, err := decimal.NewFromString(b.Limit)
		if err != nil {
			return nil, fmt.Errorf("parse budget limit %q: %w", b.Limit, err)
		}
		actual := decimal.Zero
		if v, ok := spent[b.Category]; ok {
			actual, err = decimal.NewFromString(v)
			if err != nil {
				return nil, fmt.Errorf("parse spent total %q: %w", v, err)
			}
		}
		out = append(out, BudgetStatus{
			Category: b.Category,
			Month:    b.Month,
			Limit:    limit.String(),
			Spent:    actual.String(),
			Over:     actual.GreaterThan(limit),
		})
	}
	return out, nil
}

// RecurringCandidates finds debits whose exact (description, amount) pair
// repeats across at least three distinct months.
func (s *Store) RecurringCandidates(userID string) ([]RecurringCandidate, error) {
	rows, err := s.db.Query(`
		SELECT description, amount, COUNT(DISTINCT substr(date, 1, 7)) AS months, MAX(date) AS last_date
		FROM transactions
		WHERE user_id = ? AND amount LIKE '-%'
		GROUP BY description, amount
		HAVING months >= 3
		ORDER BY last_date DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query recurring candidates: %w", err)
	}
	defer rows.Close()

	var out []RecurringCandidate
	for rows.Next() {
		var c RecurringCandidate
		if err := rows.Scan(&c.Description, &c.Amount, &c.Months, &c.LastDate); err != nil {
			return nil, fmt.Errorf("scan recurring candidate: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
