package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// FlexInt decodes a JSON number or a string holding one.
// The quiz front end posts select values as strings.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (n *FlexInt) UnmarshalJSON(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%s is not an integer", b)
	}
	*n = FlexInt(v)
	return nil
}

func (n *FlexInt) intPtr() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}

// CreateQuestionRequest represents the request to create a new question.
// Every field is optional here; the store rejects what it cannot hold.
type CreateQuestionRequest struct {
	Question   *string  `json:"question"`
	Answer     *string  `json:"answer"`
	Category   *FlexInt `json:"category"`
	Difficulty *FlexInt `json:"difficulty"`
}

func (r CreateQuestionRequest) toDomain() *domain.NewQuestion {
	return &domain.NewQuestion{
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   r.Category.intPtr(),
		Difficulty: r.Difficulty.intPtr(),
	}
}

// SearchTerm decodes a JSON string or number. A number is searched for as
// its literal text, and zero, like null, means no term.
type SearchTerm string

// UnmarshalJSON implements json.Unmarshaler
func (t *SearchTerm) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = SearchTerm(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%s is not a search term", b)
	}
	if f, err := n.Float64(); err == nil && f == 0 {
		*t = ""
		return nil
	}
	*t = SearchTerm(n.String())
	return nil
}

// SearchRequest represents a question search
type SearchRequest struct {
	SearchTerm SearchTerm `json:"searchTerm"`
}

var errQuizCategoryID = errors.New("quiz_category.id is required unless every category is selected")

// QuizCategoryRequest is the category selected in the quiz. The id may be
// left out only when the type selects every category.
type QuizCategoryRequest struct {
	Type *string  `json:"type" validate:"required"`
	ID   *FlexInt `json:"id"`
}

func (r QuizCategoryRequest) toDomain() (domain.QuizCategory, error) {
	category := domain.QuizCategory{Type: *r.Type}
	if r.ID == nil {
		if category.Type != domain.AllCategoriesType {
			return domain.QuizCategory{}, errQuizCategoryID
		}
		return category, nil
	}
	category.ID = int(*r.ID)
	return category, nil
}

// QuizRequest represents the request for the next quiz question
type QuizRequest struct {
	QuizCategory      *QuizCategoryRequest `json:"quiz_category" validate:"required"`
	PreviousQuestions []int                `json:"previous_questions" validate:"required"`
}

// RequestValidator adapts go-playground/validator to echo.Validator
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a new request validator
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
