package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quest/internal/models"
	"quest/internal/services"
	mockstore "quest/internal/tests/mocks/store"
)

func TestAddAnswerCensorsContent(t *testing.T) {
	answers := new(mockstore.AnswerStore)
	filter := &fakeCensorer{outputs: map[string]string{"a rude answer": "a **** answer"}}
	svc := services.NewAnswerService(services.AnswerServiceDeps{
		AnswerStore: answers,
		Filter:      filter,
	})

	censored := models.NewAnswer{Content: "a **** answer", QuestionID: 42}
	answers.On("AddAnswer", mock.Anything, censored, 7).
		Return(&models.Answer{ID: 1, Content: censored.Content, QuestionID: 42, AccountID: 7}, nil).Once()

	a, err := svc.Add(context.Background(), ownerSession, models.NewAnswer{Content: "a rude answer", QuestionID: 42})
	require.NoError(t, err)
	assert.Equal(t, "a **** answer", a.Content)
	answers.AssertExpectations(t)
}

func TestAddAnswerFilterFailureSkipsPersistence(t *testing.T) {
	answers := new(mockstore.AnswerStore)
	filter := &fakeCensorer{errs: map[string]error{
		"bad": models.UpstreamServerError(500, "filter down"),
	}}
	svc := services.NewAnswerService(services.AnswerServiceDeps{
		AnswerStore: answers,
		Filter:      filter,
	})

	_, err := svc.Add(context.Background(), ownerSession, models.NewAnswer{Content: "bad", QuestionID: 42})
	assert.Equal(t, models.KindUpstreamServer, errorKind(t, err))
	answers.AssertNotCalled(t, "AddAnswer", mock.Anything, mock.Anything, mock.Anything)
}
