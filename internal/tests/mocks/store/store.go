// Package mockstore provides testify mocks for the store interfaces.
package mockstore

import (
	"context"

	"github.com/stretchr/testify/mock"

	"quest/internal/models"
)

type QuestionStore struct {
	mock.Mock
}

func (m *QuestionStore) ListQuestions(ctx context.Context, limit, offset int) ([]models.Question, error) {
	args := m.Called(ctx, limit, offset)
	var questions []models.Question
	if v := args.Get(0); v != nil {
		questions = v.([]models.Question)
	}
	return questions, args.Error(1)
}

func (m *QuestionStore) GetQuestion(ctx context.Context, id int) (*models.Question, error) {
	args := m.Called(ctx, id)
	var q *models.Question
	if v := args.Get(0); v != nil {
		q = v.(*models.Question)
	}
	return q, args.Error(1)
}

func (m *QuestionStore) AddQuestion(ctx context.Context, nq models.NewQuestion, accountID int) (*models.Question, error) {
	args := m.Called(ctx, nq, accountID)
	var q *models.Question
	if v := args.Get(0); v != nil {
		q = v.(*models.Question)
	}
	return q, args.Error(1)
}

func (m *QuestionStore) UpdateQuestion(ctx context.Context, nq models.NewQuestion, questionID, accountID int) (*models.Question, error) {
	args := m.Called(ctx, nq, questionID, accountID)
	var q *models.Question
	if v := args.Get(0); v != nil {
		q = v.(*models.Question)
	}
	return q, args.Error(1)
}

func (m *QuestionStore) DeleteQuestion(ctx context.Context, questionID, accountID int) error {
	args := m.Called(ctx, questionID, accountID)
	return args.Error(0)
}

func (m *QuestionStore) IsQuestionOwner(ctx context.Context, questionID, accountID int) (bool, error) {
	args := m.Called(ctx, questionID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *QuestionStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type AnswerStore struct {
	mock.Mock
}

func (m *AnswerStore) AddAnswer(ctx context.Context, na models.NewAnswer, accountID int) (*models.Answer, error) {
	args := m.Called(ctx, na, accountID)
	var a *models.Answer
	if v := args.Get(0); v != nil {
		a = v.(*models.Answer)
	}
	return a, args.Error(1)
}

type AccountStore struct {
	mock.Mock
}

func (m *AccountStore) AddAccount(ctx context.Context, na models.NewAccount) error {
	args := m.Called(ctx, na)
	return args.Error(0)
}

func (m *AccountStore) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	args := m.Called(ctx, email)
	var a *models.Account
	if v := args.Get(0); v != nil {
		a = v.(*models.Account)
	}
	return a, args.Error(1)
}
