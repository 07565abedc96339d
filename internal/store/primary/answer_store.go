package primary

import (
	"context"
	"fmt"

	"quest/internal/models"
)

// AddAnswer inserts an answer to an existing question.
func (s *StoreImpl) AddAnswer(ctx context.Context, na models.NewAnswer, accountID int) (*models.Answer, error) {
	query := `
		INSERT INTO answers (content, question_id, account_id)
		VALUES ($1, $2, $3)
		RETURNING id, content, question_id, account_id`

	var a models.Answer
	err := s.db.QueryRow(ctx, query, na.Content, na.QuestionID, accountID).
		Scan(&a.ID, &a.Content, &a.QuestionID, &a.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert answer for question %d: %w", na.QuestionID, err)
	}
	return &a, nil
}
