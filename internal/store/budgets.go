package store

import (
	"fmt"

	"github.com/ledgerkeep/ledgerkeep/internal/models"
)

// UpsertBudget creates or replaces the budget for (category, month).
func (s *Store) UpsertBudget(b models.Budget) error {
	_, err := s.db.Exec(`
		INSERT INTO budgets (user_id, category, month, limit_amount)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, category, month) DO UPDATE SET limit_amount = excluded.limit_amount
	`, b.UserID, b.Category, b.Month, b.Limit)
	if err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}
	return nil
}

// ListBudgets returns a user's budgets. month, when non-empty, filters to
// one YYYY-MM month.
func (s *Store) ListBudgets(userID, month string) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category, month, limit_amount
		FROM budgets
		WHERE user_id = ?`
	args := []any{userID}
	if month != "" {
		query += ` AND month = ?`
		args = append(args, month)
	}
	query += ` ORDER BY month, category`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer rows.Close()

	var out []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Month, &b.Limit); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// DeleteBudget removes one budget row.
func (s *Store) DeleteBudget(userID string, id int64) error {
	res, err := s.db.Exec(`DELETE FROM budgets WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("budget %d", id))
}
