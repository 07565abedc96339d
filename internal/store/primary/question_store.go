package primary

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"quest/internal/models"
	"quest/internal/store"
)

// scanQuestion scans a single question row. Column order must match the
// SELECT/RETURNING lists below.
func scanQuestion(row pgx.Row, dest *models.Question) error {
	return row.Scan(
		&dest.ID,
		&dest.Title,
		&dest.Content,
		&dest.Tags,
		&dest.AccountID,
	)
}

// ListQuestions returns a page of questions ordered by id.
func (s *StoreImpl) ListQuestions(ctx context.Context, limit, offset int) ([]models.Question, error) {
	query := `
		SELECT id, title, content, tags, account_id
		FROM questions
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := s.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		if err := scanQuestion(rows, &q); err != nil {
			return nil, fmt.Errorf("failed to scan question row: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading question rows: %w", err)
	}
	return questions, nil
}

func (s *StoreImpl) GetQuestion(ctx context.Context, id int) (*models.Question, error) {
	query := `
		SELECT id, title, content, tags, account_id
		FROM questions
		WHERE id = $1`

	var q models.Question
	err := scanQuestion(s.db.QueryRow(ctx, query, id), &q)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("question %d: %w", id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	return &q, nil
}

// AddQuestion inserts a new question owned by accountID.
func (s *StoreImpl) AddQuestion(ctx context.Context, nq models.NewQuestion, accountID int) (*models.Question, error) {
	query := `
		INSERT INTO questions (title, content, tags, account_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, content, tags, account_id`

	var q models.Question
	err := scanQuestion(s.db.QueryRow(ctx, query, nq.Title, nq.Content, nq.Tags, accountID), &q)
	if err != nil {
		return nil, fmt.Errorf("failed to insert question: %w", err)
	}
	return &q, nil
}

// UpdateQuestion applies new fields to a question, re-asserting ownership
// inside the statement. The predicate closes the gap between the gate
// check and the write: if the row is gone or its owner changed in between,
// no row matches and ErrNotFound is returned.
func (s *StoreImpl) UpdateQuestion(ctx context.Context, nq models.NewQuestion, questionID, accountID int) (*models.Question, error) {
	query := `
		UPDATE questions
		SET title = $1, content = $2, tags = $3
		WHERE id = $4 AND account_id = $5
		RETURNING id, title, content, tags, account_id`

	var q models.Question
	err := scanQuestion(s.db.QueryRow(ctx, query, nq.Title, nq.Content, nq.Tags, questionID, accountID), &q)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("question %d: %w", questionID, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update question %d: %w", questionID, err)
	}
	return &q, nil
}

// DeleteQuestion removes a question with the same ownership predicate as
// UpdateQuestion.
func (s *StoreImpl) DeleteQuestion(ctx context.Context, questionID, accountID int) error {
	ct, err := s.db.Exec(ctx,
		`DELETE FROM questions WHERE id = $1 AND account_id = $2`,
		questionID, accountID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", questionID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("question %d: %w", questionID, store.ErrNotFound)
	}
	return nil
}

// IsQuestionOwner performs the existence+ownership lookup in one query.
func (s *StoreImpl) IsQuestionOwner(ctx context.Context, questionID, accountID int) (bool, error) {
	var owner bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM questions WHERE id = $1 AND account_id = $2)`,
		questionID, accountID,
	).Scan(&owner)
	if err != nil {
		return false, fmt.Errorf("failed to check question %d ownership: %w", questionID, err)
	}
	return owner, nil
}
