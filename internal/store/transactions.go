package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ledgerkeep/ledgerkeep/internal/models"
	"github.com/shopspring/decimal"
)

// StoredTransaction is a persisted transaction row.
type StoredTransaction struct {
	ID   string `json:"id"`
	Bank string `json:"bank"`
	models.Transaction
}

// InsertTransactions persists extracted transactions for a user. A
// transaction whose non-empty reference number already exists is counted
// as skipped, not inserted; insert failures are collected per row. The
// result always carries counts, even on partial failure.
func (s *Store) InsertTransactions(userID, bank string, txns []models.Transaction) models.ImportResult {
	result := models.ImportResult{Parsed: len(txns)}

	for i, txn := range txns {
		if txn.ReferenceNumber != "" {
			var exists bool
			err := s.db.QueryRow(
				`SELECT EXISTS(SELECT 1 FROM transactions WHERE user_id = ? AND reference_number = ?)`,
				userID, txn.ReferenceNumber,
			).Scan(&exists)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i, err))
				continue
			}
			if exists {
				result.Skipped++
				continue
			}
		}

		_, err := s.db.Exec(`
			INSERT INTO transactions (id, user_id, date, description, category, type, tags, amount, reference_number, bank)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.NewString(), userID, txn.Date, txn.Description, txn.Category, txn.Type,
			strings.Join(txn.Tags, ","), txn.Amount.String(), txn.ReferenceNumber, bank)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i, err))
			continue
		}
		result.Inserted++
	}

	return result
}

// ListTransactions returns a user's transactions ordered by date. month,
// when non-empty, filters to a YYYY-MM calendar month.
func (s *Store) ListTransactions(userID, month string) ([]StoredTransaction, error) {
	query := `
		SELECT id, date, description, category, type, tags, amount, reference_number, bank
		FROM transactions
		WHERE user_id = ?`
	args := []any{userID}
	if month != "" {
		query += ` AND substr(date, 1, 7) = ?`
		args = append(args, month)
	}
	query += ` ORDER BY date, created_at`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []StoredTransaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, txn)
	}
	return out, rows.Err()
}

func scanTransaction(rows *sql.Rows) (StoredTransaction, error) {
	var t StoredTransaction
	var tags, amount string
	if err := rows.Scan(&t.ID, &t.Date, &t.Description, &t.Category, &t.Type,
		&tags, &amount, &t.ReferenceNumber, &t.Bank); err != nil {
		return t, fmt.Errorf("scan transaction: %w", err)
	}
	if tags != "" {
		t.Tags = strings.Split(tags, ",")
	} else {
		t.Tags = []string{}
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return t, fmt.Errorf("parse stored amount %q: %w", amount, err)
	}
	t.Amount = d
	return t, nil
}

// UpdateClassification overwrites the stored category and tags of one
// transaction. Used by the re-classify operation after rule edits.
func (s *Store) UpdateClassification(id, category string, tags []string) error {
	res, err := s.db.Exec(`UPDATE transactions SET category = ?, tags = ? WHERE id = ?`,
		category, strings.Join(tags, ","), id)
	if err != nil {
		return fmt.Errorf("update classification: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update classification: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("transaction %s not found", id)
	}
	return nil
}

// DeleteTransaction removes one transaction.
func (s *Store) DeleteTransaction(userID, id string) error {
	res, err := s.db.Exec(`DELETE FROM transactions WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("transaction %s not found", id)
	}
	return nil
}
