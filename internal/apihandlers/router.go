package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quest/internal/app"
)

// NewRouter builds the gin engine with all API routes. Mutating routes sit
// behind the auth middleware; everything else is public.
func NewRouter(a *app.App) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), RequestIDMiddleware())

	handler := NewAPIHandler(a)
	authRequired := AuthMiddleware(a.Tokens)

	questionGroup := router.Group("/questions")
	{
		questionGroup.GET("", handler.ListQuestionsHandler)
		questionGroup.GET("/:id", handler.GetQuestionHandler)
		questionGroup.POST("", authRequired, handler.AddQuestionHandler)
		questionGroup.PUT("/:id", authRequired, handler.UpdateQuestionHandler)
		questionGroup.DELETE("/:id", authRequired, handler.DeleteQuestionHandler)
	}

	router.POST("/answers", authRequired, handler.AddAnswerHandler)
	router.POST("/registration", handler.RegistrationHandler)
	router.POST("/login", handler.LoginHandler)

	router.NoRoute(RouteNotFound)

	router.GET("/health", func(c *gin.Context) {
		if err := a.QuestionStore.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
