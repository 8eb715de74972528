package rest

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/present/rest/middleware"
	"github.com/drives-academy/academy-api/internal/present/rest/presenter"
	"github.com/drives-academy/academy-api/internal/service"
	"github.com/drives-academy/academy-api/internal/usecase"
)

type Handler struct {
	credential *service.CredentialService
	lessons    *usecase.LessonUsecase
	quizzes    *usecase.QuizUsecase
	results    *usecase.ResultUsecase
	videos     *usecase.VideoUsecase
	rules      *usecase.RulesUsecase
	signal     *service.SignalService
}

func NewHandler(
	credential *service.CredentialService,
	lessons *usecase.LessonUsecase,
	quizzes *usecase.QuizUsecase,
	results *usecase.ResultUsecase,
	videos *usecase.VideoUsecase,
	rules *usecase.RulesUsecase,
	signal *service.SignalService,
) *Handler {
	return &Handler{
		credential: credential,
		lessons:    lessons,
		quizzes:    quizzes,
		results:    results,
		videos:     videos,
		rules:      rules,
		signal:     signal,
	}
}

// RegisterRoutes wires the API surface. Registration and login are public,
// everything else requires a bearer token.
func (h *Handler) RegisterRoutes(e *echo.Echo, auth *middleware.AuthMiddleware) {
	users := e.Group("/users")
	users.POST("/register", h.handleRegister)
	users.POST("/login", h.handleLogin)
	users.GET("/:id", h.handleGetUser, auth.RequireAuth)
	users.PUT("/:id", h.handleUpdateUser, auth.RequireAuth)
	users.DELETE("/:id", h.handleDeleteUser, auth.RequireAuth)

	lessons := e.Group("/driving-lessons", auth.RequireAuth)
	lessons.POST("", h.handleCreateLesson)
	lessons.GET("", h.handleListLessons)
	lessons.GET("/:id", h.handleGetLesson)
	lessons.PUT("/:id", h.handleUpdateLesson)
	lessons.DELETE("/:id", h.handleDeleteLesson)

	contents := e.Group("/lesson-contents", auth.RequireAuth)
	contents.POST("", h.handleCreateLessonContent)
	contents.GET("", h.handleListLessonContents)
	contents.GET("/:id", h.handleGetLessonContent)
	contents.PUT("/:id", h.handleUpdateLessonContent)
	contents.DELETE("/:id", h.handleDeleteLessonContent)

	quizzes := e.Group("/quizzes", auth.RequireAuth)
	quizzes.POST("", h.handleCreateQuiz)
	quizzes.GET("", h.handleListQuizzes)
	quizzes.GET("/:id", h.handleGetQuiz)
	quizzes.PUT("/:id", h.handleUpdateQuiz)
	quizzes.DELETE("/:id", h.handleDeleteQuiz)

	questions := e.Group("/questions", auth.RequireAuth)
	questions.POST("", h.handleCreateQuestion)
	questions.GET("", h.handleListQuestions)
	questions.GET("/quizzes/:quizId/questions", h.handleListQuestionsByQuiz)
	questions.GET("/:id", h.handleGetQuestion)
	questions.PUT("/:id", h.handleUpdateQuestion)
	questions.DELETE("/:id", h.handleDeleteQuestion)

	answers := e.Group("/answers", auth.RequireAuth)
	answers.POST("", h.handleCreateAnswer)
	answers.GET("", h.handleListAnswers)
	answers.GET("/questions/:questionId/answers", h.handleListAnswersByQuestion)
	answers.GET("/:id", h.handleGetAnswer)
	answers.PUT("/:id", h.handleUpdateAnswer)
	answers.DELETE("/:id", h.handleDeleteAnswer)

	results := e.Group("/user-quiz-results", auth.RequireAuth)
	results.POST("", h.handleCreateResult)
	results.GET("", h.handleListResults)
	results.GET("/users/:userId/user-quiz-results", h.handleListResultsByUser)
	results.GET("/quizzes/:quizId/user-quiz-results", h.handleListResultsByQuiz)
	results.GET("/:id", h.handleGetResult)
	results.PUT("/:id", h.handleUpdateResult)
	results.DELETE("/:id", h.handleDeleteResult)

	videos := e.Group("/video-tutorials", auth.RequireAuth)
	videos.POST("", h.handleCreateVideo)
	videos.GET("", h.handleListVideos)
	videos.GET("/:id", h.handleGetVideo)
	videos.PUT("/:id", h.handleUpdateVideo)
	videos.DELETE("/:id", h.handleDeleteVideo)

	rules := e.Group("/api/rules", auth.RequireAuth)
	rules.POST("/categories", h.handleCreateRulesCategory)
	rules.GET("/categories", h.handleListRulesCategories)
	rules.GET("/categories/:id", h.handleGetRulesCategory)
	rules.PUT("/categories/:id", h.handleUpdateRulesCategory)
	rules.DELETE("/categories/:id", h.handleDeleteRulesCategory)
	rules.GET("/categories/:categoryId/content", h.handleListRulesContentByCategory)
	rules.POST("/content", h.handleCreateRulesContent)
	rules.GET("/content", h.handleListRulesContent)
	rules.GET("/content/:id", h.handleGetRulesContent)
	rules.PUT("/content/:id", h.handleUpdateRulesContent)
	rules.DELETE("/content/:id", h.handleDeleteRulesContent)

	e.GET("/realtime", h.handleRealtime, auth.RequireAuth)
}

func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return id, nil
}

// respondError maps a service failure to the uniform envelope. NotFound keeps
// the resource name the storage layer reported; everything else is a 500 with
// the cause logged, not echoed.
func respondError(c echo.Context, err error, verb, resource string) error {
	var nf domain.NotFoundError
	if errors.As(err, &nf) {
		if nf.Resource != "" {
			return presenter.NotFound(c, nf.Resource)
		}
		return presenter.NotFound(c, resource)
	}
	return presenter.InternalError(c, verb, resource, err)
}
