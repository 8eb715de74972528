package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/present/rest/presenter"
)

type createQuizRequest struct {
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description"`
	Difficulty        string `json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	NumberOfQuestions int    `json:"number_of_questions" validate:"gte=0"`
	BestScore         string `json:"best_score"`
}

type updateQuizRequest struct {
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	Difficulty        *string `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	NumberOfQuestions *int    `json:"number_of_questions" validate:"omitempty,gte=0"`
	BestScore         *string `json:"best_score"`
}

func (h *Handler) handleCreateQuiz(c echo.Context) error {
	var req createQuizRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Title and a valid difficulty are required")
	}

	quiz, err := h.quizzes.CreateQuiz(c.Request().Context(), domain.Quiz{
		Title:             req.Title,
		Description:       req.Description,
		Difficulty:        req.Difficulty,
		NumberOfQuestions: req.NumberOfQuestions,
		BestScore:         req.BestScore,
	})
	if err != nil {
		return presenter.InternalError(c, "creating", "quiz", err)
	}
	return presenter.Created(c, quiz)
}

func (h *Handler) handleListQuizzes(c echo.Context) error {
	quizzes, err := h.quizzes.ListQuizzes(c.Request().Context())
	if err != nil {
		return presenter.InternalError(c, "fetching", "quizzes", err)
	}
	return presenter.OK(c, quizzes)
}

func (h *Handler) handleGetQuiz(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid quiz id")
	}
	quiz, err := h.quizzes.GetQuiz(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "fetching", "Quiz")
	}
	return presenter.OK(c, quiz)
}

func (h *Handler) handleUpdateQuiz(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid quiz id")
	}
	var req updateQuizRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Invalid field values")
	}

	quiz, err := h.quizzes.UpdateQuiz(c.Request().Context(), id, domain.QuizPatch{
		Title:             req.Title,
		Description:       req.Description,
		Difficulty:        req.Difficulty,
		NumberOfQuestions: req.NumberOfQuestions,
		BestScore:         req.BestScore,
	})
	if err != nil {
		return respondError(c, err, "updating", "Quiz")
	}
	return presenter.OK(c, quiz)
}

func (h *Handler) handleDeleteQuiz(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid quiz id")
	}
	if err := h.quizzes.DeleteQuiz(c.Request().Context(), id); err != nil {
		return respondError(c, err, "deleting", "Quiz")
	}
	return presenter.Message(c, "Quiz deleted successfully")
}

type createQuestionRequest struct {
	QuizID       int64  `json:"quiz_id" validate:"required,gt=0"`
	QuestionText string `json:"question_text" validate:"required"`
}

type updateQuestionRequest struct {
	QuizID       *int64  `json:"quiz_id" validate:"omitempty,gt=0"`
	QuestionText *string `json:"question_text"`
}

func (h *Handler) handleCreateQuestion(c echo.Context) error {
	var req createQuestionRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Quiz id and question text are required")
	}

	question, err := h.quizzes.CreateQuestion(c.Request().Context(), domain.Question{
		QuizID:       req.QuizID,
		QuestionText: req.QuestionText,
	})
	if err != nil {
		return respondError(c, err, "creating", "question")
	}
	return presenter.Created(c, question)
}

func (h *Handler) handleListQuestions(c echo.Context) error {
	questions, err := h.quizzes.ListQuestions(c.Request().Context())
	if err != nil {
		return presenter.InternalError(c, "fetching", "questions", err)
	}
	return presenter.OK(c, questions)
}

func (h *Handler) handleListQuestionsByQuiz(c echo.Context) error {
	quizID, err := parseID(c, "quizId")
	if err != nil {
		return presenter.BadRequest(c, "Invalid quiz id")
	}
	questions, err := h.quizzes.ListQuestionsByQuiz(c.Request().Context(), quizID)
	if err != nil {
		return respondError(c, err, "fetching", "questions")
	}
	return presenter.OK(c, questions)
}

func (h *Handler) handleGetQuestion(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid question id")
	}
	question, err := h.quizzes.GetQuestion(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "fetching", "Question")
	}
	return presenter.OK(c, question)
}

func (h *Handler) handleUpdateQuestion(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid question id")
	}
	var req updateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Invalid field values")
	}

	question, err := h.quizzes.UpdateQuestion(c.Request().Context(), id, domain.QuestionPatch{
		QuizID:       req.QuizID,
		QuestionText: req.QuestionText,
	})
	if err != nil {
		return respondError(c, err, "updating", "Question")
	}
	return presenter.OK(c, question)
}

func (h *Handler) handleDeleteQuestion(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid question id")
	}
	if err := h.quizzes.DeleteQuestion(c.Request().Context(), id); err != nil {
		return respondError(c, err, "deleting", "Question")
	}
	return presenter.Message(c, "Question deleted successfully")
}

type createAnswerRequest struct {
	QuestionID int64   `json:"question_id" validate:"required,gt=0"`
	AnswerText string  `json:"answer_text" validate:"required"`
	IsCorrect  bool    `json:"is_correct"`
	ImageURL   *string `json:"image_url"`
	Order      int     `json:"order" validate:"gte=0"`
	IsActive   *bool   `json:"is_active"`
}

type updateAnswerRequest struct {
	QuestionID *int64  `json:"question_id" validate:"omitempty,gt=0"`
	AnswerText *string `json:"answer_text"`
	IsCorrect  *bool   `json:"is_correct"`
	ImageURL   *string `json:"image_url"`
	Order      *int    `json:"order" validate:"omitempty,gte=0"`
	IsActive   *bool   `json:"is_active"`
}

func (h *Handler) handleCreateAnswer(c echo.Context) error {
	var req createAnswerRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Question id and answer text are required")
	}

	// answers default to active unless the client says otherwise
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	answer, err := h.quizzes.CreateAnswer(c.Request().Context(), domain.Answer{
		QuestionID: req.QuestionID,
		AnswerText: req.AnswerText,
		IsCorrect:  req.IsCorrect,
		ImageURL:   req.ImageURL,
		Order:      req.Order,
		IsActive:   active,
	})
	if err != nil {
		return respondError(c, err, "creating", "answer")
	}
	return presenter.Created(c, answer)
}

func (h *Handler) handleListAnswers(c echo.Context) error {
	answers, err := h.quizzes.ListAnswers(c.Request().Context())
	if err != nil {
		return presenter.InternalError(c, "fetching", "answers", err)
	}
	return presenter.OK(c, answers)
}

func (h *Handler) handleListAnswersByQuestion(c echo.Context) error {
	questionID, err := parseID(c, "questionId")
	if err != nil {
		return presenter.BadRequest(c, "Invalid question id")
	}
	answers, err := h.quizzes.ListAnswersByQuestion(c.Request().Context(), questionID)
	if err != nil {
		return respondError(c, err, "fetching", "answers")
	}
	return presenter.OK(c, answers)
}

func (h *Handler) handleGetAnswer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid answer id")
	}
	answer, err := h.quizzes.GetAnswer(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "fetching", "Answer")
	}
	return presenter.OK(c, answer)
}

func (h *Handler) handleUpdateAnswer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid answer id")
	}
	var req updateAnswerRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, "Invalid field values")
	}

	answer, err := h.quizzes.UpdateAnswer(c.Request().Context(), id, domain.AnswerPatch{
		QuestionID: req.QuestionID,
		AnswerText: req.AnswerText,
		IsCorrect:  req.IsCorrect,
		ImageURL:   req.ImageURL,
		Order:      req.Order,
		IsActive:   req.IsActive,
	})
	if err != nil {
		return respondError(c, err, "updating", "Answer")
	}
	return presenter.OK(c, answer)
}

func (h *Handler) handleDeleteAnswer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.BadRequest(c, "Invalid answer id")
	}
	if err := h.quizzes.DeleteAnswer(c.Request().Context(), id); err != nil {
		return respondError(c, err, "deleting", "Answer")
	}
	return presenter.Message(c, "Answer deleted successfully")
}
