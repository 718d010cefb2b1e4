package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ledgerkeep/ledgerkeep/internal/models"
)

// ListCategoryRules returns a user's category rules, highest priority
// first.
func (s *Store) ListCategoryRules(userID string) ([]models.CategoryRule, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, category, pattern, match_type, priority, color
		FROM category_rules
		WHERE user_id = ?
		ORDER BY priority DESC, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query category rules: %w", err)
	}
	defer rows.Close()

	var out []models.CategoryRule
	for rows.Next() {
		var r models.CategoryRule
		if err := rows.Scan(&r.ID, &r.UserID, &r.Category, &r.Pattern, &r.Match, &r.Priority, &r.Color); err != nil {
			return nil, fmt.Errorf("scan category rule: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CreateCategoryRule inserts a rule and returns its id. Patterns are
// lowercased at rest so matching stays case-insensitive.
func (s *Store) CreateCategoryRule(r models.CategoryRule) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO category_rules (user_id, category, pattern, match_type, priority, color)
		VALUES (?, ?, ?, ?, ?, ?)
	`, r.UserID, r.Category, strings.ToLower(r.Pattern), string(r.Match), r.Priority, r.Color)
	if err != nil {
		return 0, fmt.Errorf("insert category rule: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert category rule: %w", err)
	}
	return id, nil
}

// UpdateCategoryRule overwrites an existing rule in place.
func (s *Store) UpdateCategoryRule(r models.CategoryRule) error {
	res, err := s.db.Exec(`
		UPDATE category_rules
		SET category = ?, pattern = ?, match_type = ?, priority = ?, color = ?
		WHERE user_id = ? AND id = ?
	`, r.Category, strings.ToLower(r.Pattern), string(r.Match), r.Priority, r.Color, r.UserID, r.ID)
	if err != nil {
		return fmt.Errorf("update category rule: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("category rule %d", r.ID))
}

// DeleteCategoryRule removes a rule.
func (s *Store) DeleteCategoryRule(userID string, id int64) error {
	res, err := s.db.Exec(`DELETE FROM category_rules WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("delete category rule: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("category rule %d", id))
}

// ListTagRules returns a user's tag rules, highest priority first.
func (s *Store) ListTagRules(userID string) ([]models.TagRule, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, tag_name, pattern, match_type, priority
		FROM tag_rules
		WHERE user_id = ?
		ORDER BY priority DESC, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query tag rules: %w", err)
	}
	defer rows.Close()

	var out []models.TagRule
	for rows.Next() {
		var r models.TagRule
		if err := rows.Scan(&r.ID, &r.UserID, &r.TagName, &r.Pattern, &r.Match, &r.Priority); err != nil {
			return nil, fmt.Errorf("scan tag rule: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CreateTagRule inserts a rule and returns its id. Tag names are stored
// uppercase, patterns lowercase.
func (s *Store) CreateTagRule(r models.TagRule) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO tag_rules (user_id, tag_name, pattern, match_type, priority)
		VALUES (?, ?, ?, ?, ?)
	`, r.UserID, strings.ToUpper(r.TagName), strings.ToLower(r.Pattern), string(r.Match), r.Priority)
	if err != nil {
		return 0, fmt.Errorf("insert tag rule: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert tag rule: %w", err)
	}
	return id, nil
}

// UpdateTagRule overwrites an existing rule in place.
func (s *Store) UpdateTagRule(r models.TagRule) error {
	res, err := s.db.Exec(`
		UPDATE tag_rules
		SET tag_name = ?, pattern = ?, match_type = ?, priority = ?
		WHERE user_id = ? AND id = ?
	`, strings.ToUpper(r.TagName), strings.ToLower(r.Pattern), string(r.Match), r.Priority, r.UserID, r.ID)
	if err != nil {
		return fmt.Errorf("update tag rule: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("tag rule %d", r.ID))
}

// DeleteTagRule removes a rule.
func (s *Store) DeleteTagRule(userID string, id int64) error {
	res, err := s.db.Exec(`DELETE FROM tag_rules WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("delete tag rule: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("tag rule %d", id))
}

// SeedRules loads the built-in keyword tables as editable rules for a
// user who has none yet. Returns the number of rules inserted; zero if
// the user already had rules.
func (s *Store) SeedRules(userID string, categories []models.CategoryRule, tags []models.TagRule) (int, error) {
	var existing int
	err := s.db.QueryRow(`
		SELECT (SELECT COUNT(*) FROM category_rules WHERE user_id = ?) +
		       (SELECT COUNT(*) FROM tag_rules WHERE user_id = ?)
	`, userID, userID).Scan(&existing)
	if err != nil {
		return 0, fmt.Errorf("count rules: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	inserted := 0
	for _, r := range categories {
		r.UserID = userID
		if _, err := s.CreateCategoryRule(r); err != nil {
			return inserted, err
		}
		inserted++
	}
	for _, r := range tags {
		r.UserID = userID
		if _, err := s.CreateTagRule(r); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s not found", what)
	}
	return nil
}
