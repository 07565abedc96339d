package services

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"

	"quest/internal/models"
	"quest/internal/store"
)

// Censorer filters user-submitted text through the profanity API.
// profanity.Client satisfies it; tests inject fakes.
type Censorer interface {
	Censor(ctx context.Context, text string) (string, error)
}

type QuestionService struct {
	questions store.QuestionStore
	filter    Censorer
}

type QuestionServiceDeps struct {
	QuestionStore store.QuestionStore
	Filter        Censorer
}

func NewQuestionService(deps QuestionServiceDeps) *QuestionService {
	return &QuestionService{
		questions: deps.QuestionStore,
		filter:    deps.Filter,
	}
}

func (s *QuestionService) List(ctx context.Context, limit, offset int) ([]models.Question, error) {
	questions, err := s.questions.ListQuestions(ctx, limit, offset)
	if err != nil {
		return nil, models.StoreError(err)
	}
	return questions, nil
}

func (s *QuestionService) Get(ctx context.Context, id int) (*models.Question, error) {
	q, err := s.questions.GetQuestion(ctx, id)
	if err != nil {
		return nil, classifyStoreError(err, id)
	}
	return q, nil
}

func (s *QuestionService) Add(ctx context.Context, session models.Session, nq models.NewQuestion) (*models.Question, error) {
	q, err := s.questions.AddQuestion(ctx, nq, session.AccountID)
	if err != nil {
		return nil, models.StoreError(err)
	}
	return q, nil
}

// Update applies an ownership-gated, filtered update to a question:
//
//  1. The ownership gate runs first. A store failure or a negative answer
//     ends the flow; the filter is never called for a non-owner.
//  2. Title and content are censored concurrently. Both calls run to
//     completion before any decision is made.
//  3. If either censor call failed nothing is persisted. When both fail,
//     the title failure wins.
//  4. The store update re-asserts ownership in its own predicate, so a
//     question deleted or re-owned after the gate check surfaces as
//     not-found rather than a silent success.
//
// Tags and the owner are carried through untouched.
func (s *QuestionService) Update(ctx context.Context, session models.Session, questionID int, update models.NewQuestion) (*models.Question, error) {
	owner, err := s.questions.IsQuestionOwner(ctx, questionID, session.AccountID)
	if err != nil {
		return nil, models.StoreError(err)
	}
	if !owner {
		log.WithFields(log.Fields{
			"question_id": questionID,
			"account_id":  session.AccountID,
		}).Info("rejected update of question not owned by account")
		return nil, models.UnauthorizedError()
	}

	var (
		title, content       string
		titleErr, contentErr error
	)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		title, titleErr = s.filter.Censor(ctx, update.Title)
	}()
	go func() {
		defer wg.Done()
		content, contentErr = s.filter.Censor(ctx, update.Content)
	}()
	wg.Wait()

	// Title's failure takes precedence when both fields failed.
	if titleErr != nil {
		return nil, titleErr
	}
	if contentErr != nil {
		return nil, contentErr
	}
	if err := ctx.Err(); err != nil {
		// Request was cancelled while the filter calls were in flight;
		// discard the results rather than persisting.
		return nil, err
	}

	q, err := s.questions.UpdateQuestion(ctx, models.NewQuestion{
		Title:   title,
		Content: content,
		Tags:    update.Tags,
	}, questionID, session.AccountID)
	if err != nil {
		return nil, classifyStoreError(err, questionID)
	}
	return q, nil
}

// Delete removes a question through the same gate contract as Update.
func (s *QuestionService) Delete(ctx context.Context, session models.Session, questionID int) error {
	owner, err := s.questions.IsQuestionOwner(ctx, questionID, session.AccountID)
	if err != nil {
		return models.StoreError(err)
	}
	if !owner {
		return models.UnauthorizedError()
	}

	if err := s.questions.DeleteQuestion(ctx, questionID, session.AccountID); err != nil {
		return classifyStoreError(err, questionID)
	}
	return nil
}

// classifyStoreError turns a store failure into its classified kind. A
// conditional write that matched no row reads as not-found.
func classifyStoreError(err error, questionID int) *models.Error {
	if errors.Is(err, store.ErrNotFound) {
		return models.NotFoundError(questionID)
	}
	return models.StoreError(err)
}
