package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/service"
)

// TriviaHandler handles the trivia HTTP API
type TriviaHandler struct {
	trivia *service.TriviaService
}

// NewTriviaHandler creates a new trivia handler
func NewTriviaHandler(trivia *service.TriviaService) *TriviaHandler {
	return &TriviaHandler{
		trivia: trivia,
	}
}

// Register registers the trivia routes
func (h *TriviaHandler) Register(e *echo.Echo) {
	e.GET("/categories", h.GetCategories)
	e.GET("/categories/:id/questions", h.GetQuestionsByCategory)

	e.GET("/questions", h.GetQuestions)
	e.POST("/questions", h.CreateQuestion)
	e.POST("/questions/search", h.SearchQuestions)
	e.DELETE("/questions/:id", h.DeleteQuestion)

	e.POST("/quizzes", h.PlayQuiz)
}

// GetCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Failure 404 {object} ErrorResponse
// @Router /categories [get]
func (h *TriviaHandler) GetCategories(c echo.Context) error {
	categories, err := h.trivia.Categories(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}

// GetQuestions godoc
// @Summary List questions, ten per page
// @Tags questions
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} QuestionPageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /questions [get]
func (h *TriviaHandler) GetQuestions(c echo.Context) error {
	page := 1
	if err := echo.QueryParamsBinder(c).Int("page", &page).BindError(); err != nil {
		return fmt.Errorf("%w: page must be an integer", service.ErrBadRequest)
	}

	result, err := h.trivia.ListQuestions(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuestionPageResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		Categories:      result.Categories,
		CurrentCategory: nil,
	})
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} DeleteQuestionResponse
// @Failure 422 {object} ErrorResponse
// @Router /questions/{id} [delete]
func (h *TriviaHandler) DeleteQuestion(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	deleted, err := h.trivia.DeleteQuestion(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DeleteQuestionResponse{
		Success: true,
		Deleted: deleted,
	})
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body CreateQuestionRequest true "Question"
// @Success 200 {object} CreateQuestionResponse
// @Failure 422 {object} ErrorResponse
// @Router /questions [post]
func (h *TriviaHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: %v", service.ErrUnprocessable, err)
	}

	created, err := h.trivia.CreateQuestion(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CreateQuestionResponse{
		Success:        true,
		Created:        created.ID,
		TotalQuestions: created.TotalQuestions,
	})
}

// SearchQuestions godoc
// @Summary Search questions by substring, ignoring case
// @Tags questions
// @Accept json
// @Produce json
// @Param search body SearchRequest true "Search term"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /questions/search [post]
func (h *TriviaHandler) SearchQuestions(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: %v", service.ErrBadRequest, err)
	}

	result, err := h.trivia.SearchQuestions(c.Request().Context(), string(req.SearchTerm))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.TotalQuestions,
	})
}

// GetQuestionsByCategory godoc
// @Summary List the questions of a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} CategoryQuestionsResponse
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *TriviaHandler) GetQuestionsByCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	result, err := h.trivia.QuestionsByCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: result.CurrentCategory,
	})
}

// PlayQuiz godoc
// @Summary Get a random question not asked yet
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body QuizRequest true "Quiz state"
// @Success 200 {object} QuizResponse
// @Failure 422 {object} ErrorResponse
// @Router /quizzes [post]
func (h *TriviaHandler) PlayQuiz(c echo.Context) error {
	var req QuizRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: %v", service.ErrUnprocessable, err)
	}

	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %v", service.ErrUnprocessable, err)
	}

	category, err := req.QuizCategory.toDomain()
	if err != nil {
		return fmt.Errorf("%w: %v", service.ErrUnprocessable, err)
	}

	question, err := h.trivia.NextQuizQuestion(c.Request().Context(), category, req.PreviousQuestions)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuizResponse{
		Success:  true,
		Question: question,
	})
}

// pathID reads the integer :id path parameter. A non-integer id does not
// name any resource.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.ErrNotFound
	}
	return id, nil
}
