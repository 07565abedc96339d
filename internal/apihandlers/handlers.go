package apihandlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quest/internal/app"
	"quest/internal/models"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(a *app.App) *APIHandler {
	return &APIHandler{App: a}
}

// --- Questions ---

func (h *APIHandler) ListQuestionsHandler(c *gin.Context) {
	pagination, err := parsePagination(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	questions, err := h.App.QuestionService.List(c.Request.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		RespondError(c, err)
		return
	}
	if questions == nil {
		questions = []models.Question{}
	}
	c.JSON(http.StatusOK, gin.H{"data": questions})
}

func (h *APIHandler) GetQuestionHandler(c *gin.Context) {
	id, err := questionID(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	question, err := h.App.QuestionService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": question})
}

func (h *APIHandler) AddQuestionHandler(c *gin.Context) {
	session, ok := SessionFromContext(c)
	if !ok {
		RespondError(c, models.UnauthorizedError())
		return
	}

	nq, err := bindNewQuestion(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	question, err := h.App.QuestionService.Add(c.Request.Context(), session, nq)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": question})
}

func (h *APIHandler) UpdateQuestionHandler(c *gin.Context) {
	session, ok := SessionFromContext(c)
	if !ok {
		RespondError(c, models.UnauthorizedError())
		return
	}

	id, err := questionID(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	update, err := bindNewQuestion(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	question, err := h.App.QuestionService.Update(c.Request.Context(), session, id, update)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": question})
}

func (h *APIHandler) DeleteQuestionHandler(c *gin.Context) {
	session, ok := SessionFromContext(c)
	if !ok {
		RespondError(c, models.UnauthorizedError())
		return
	}

	id, err := questionID(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	if err := h.App.QuestionService.Delete(c.Request.Context(), session, id); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": fmt.Sprintf("question %d deleted", id)})
}

// questionID parses the :id path parameter.
func questionID(c *gin.Context) (int, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.ValidationError(fmt.Errorf("invalid question id %q", raw))
	}
	return id, nil
}

// bindNewQuestion parses and validates the question body. Binding
// diagnostics stay server-side; the caller only learns the parameters
// were invalid.
func bindNewQuestion(c *gin.Context) (models.NewQuestion, error) {
	var nq models.NewQuestion
	if err := c.ShouldBindJSON(&nq); err != nil {
		return nq, models.ValidationError(err)
	}
	if nq.Title == "" || nq.Content == "" {
		return nq, models.ValidationError(fmt.Errorf("title and content are required"))
	}
	return nq, nil
}

// --- Answers ---

func (h *APIHandler) AddAnswerHandler(c *gin.Context) {
	session, ok := SessionFromContext(c)
	if !ok {
		RespondError(c, models.UnauthorizedError())
		return
	}

	var na models.NewAnswer
	if err := c.ShouldBind(&na); err != nil {
		RespondError(c, models.ValidationError(err))
		return
	}
	if na.Content == "" || na.QuestionID == 0 {
		RespondError(c, models.ValidationError(fmt.Errorf("content and question_id are required")))
		return
	}

	answer, err := h.App.AnswerService.Add(c.Request.Context(), session, na)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": answer})
}

// --- Accounts ---

func (h *APIHandler) RegistrationHandler(c *gin.Context) {
	var na models.NewAccount
	if err := c.ShouldBindJSON(&na); err != nil {
		RespondError(c, models.ValidationError(err))
		return
	}

	if err := h.App.AccountService.Register(c.Request.Context(), na); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": "account created"})
}

func (h *APIHandler) LoginHandler(c *gin.Context) {
	var creds models.NewAccount
	if err := c.ShouldBindJSON(&creds); err != nil {
		RespondError(c, models.ValidationError(err))
		return
	}

	token, err := h.App.AccountService.Login(c.Request.Context(), creds)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"token": token}})
}
