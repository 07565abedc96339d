package store

import (
	"context"

	"quest/internal/models"
)

// --- Question Store ---

type QuestionStore interface {
	ListQuestions(ctx context.Context, limit, offset int) ([]models.Question, error)
	GetQuestion(ctx context.Context, id int) (*models.Question, error)
	AddQuestion(ctx context.Context, q models.NewQuestion, accountID int) (*models.Question, error)

	// UpdateQuestion and DeleteQuestion re-assert ownership inside the
	// statement predicate. A conditional write that matches no row returns
	// ErrNotFound, never a silent no-op.
	UpdateQuestion(ctx context.Context, q models.NewQuestion, questionID, accountID int) (*models.Question, error)
	DeleteQuestion(ctx context.Context, questionID, accountID int) error

	// IsQuestionOwner reports whether the question exists and belongs to
	// the account. A missing question and a question owned by someone else
	// both read as false so existence is not leaked to non-owners.
	IsQuestionOwner(ctx context.Context, questionID, accountID int) (bool, error)

	Ping(ctx context.Context) error
}

// --- Answer Store ---

type AnswerStore interface {
	AddAnswer(ctx context.Context, a models.NewAnswer, accountID int) (*models.Answer, error)
}

// --- Account Store ---

type AccountStore interface {
	AddAccount(ctx context.Context, a models.NewAccount) error
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
}
