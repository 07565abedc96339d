package services

import (
	"context"

	"quest/internal/models"
	"quest/internal/store"
)

type AnswerService struct {
	answers store.AnswerStore
	filter  Censorer
}

type AnswerServiceDeps struct {
	AnswerStore store.AnswerStore
	Filter      Censorer
}

func NewAnswerService(deps AnswerServiceDeps) *AnswerService {
	return &AnswerService{
		answers: deps.AnswerStore,
		filter:  deps.Filter,
	}
}

// Add censors the answer content and inserts it. A filter failure means
// nothing is persisted.
func (s *AnswerService) Add(ctx context.Context, session models.Session, na models.NewAnswer) (*models.Answer, error) {
	censored, err := s.filter.Censor(ctx, na.Content)
	if err != nil {
		return nil, err
	}
	na.Content = censored

	a, err := s.answers.AddAnswer(ctx, na, session.AccountID)
	if err != nil {
		return nil, models.StoreError(err)
	}
	return a, nil
}
