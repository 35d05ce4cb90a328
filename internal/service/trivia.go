package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// TriviaService implements the trivia API operations on top of the repositories
type TriviaService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository

	// pick returns a uniform index in [0, n)
	pick func(n int) int
}

// NewTriviaService creates a new trivia service
func NewTriviaService(questions domain.QuestionRepository, categories domain.CategoryRepository) *TriviaService {
	return &TriviaService{
		questions:  questions,
		categories: categories,
		pick:       rand.Intn,
	}
}

// QuestionPage is one page of the full question list
type QuestionPage struct {
	Questions      []domain.Question
	TotalQuestions int
	Categories     map[int]string
}

// CreatedQuestion describes a freshly inserted question
type CreatedQuestion struct {
	ID             int
	TotalQuestions int
}

// QuestionList is a list of questions together with its length
type QuestionList struct {
	Questions      []domain.Question
	TotalQuestions int
}

// CategoryQuestions lists the questions of one category
type CategoryQuestions struct {
	QuestionList
	CurrentCategory string
}

// Categories returns every category keyed by id
func (s *TriviaService) Categories(ctx context.Context) (map[int]string, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, notFound(errors.New("no categories stored"))
	}
	return domain.CategoryMap(categories), nil
}

// ListQuestions returns the given page of questions ordered by id
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}

	current := Paginate(all, page)

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(current) == 0 {
		return nil, notFound(fmt.Errorf("page %d is empty", page))
	}

	return &QuestionPage{
		Questions:      current,
		TotalQuestions: len(all),
		Categories:     domain.CategoryMap(categories),
	}, nil
}

// DeleteQuestion removes a question. Every failure, including a missing
// question, is reported as ErrUnprocessable.
func (s *TriviaService) DeleteQuestion(ctx context.Context, id int) (int, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return 0, unprocessable(err)
	}

	if err := s.questions.Delete(ctx, question.ID); err != nil {
		return 0, unprocessable(err)
	}

	return question.ID, nil
}

// CreateQuestion inserts a question as given and reports the new total.
// Missing fields are passed through; rejection by the store is ErrUnprocessable.
func (s *TriviaService) CreateQuestion(ctx context.Context, question *domain.NewQuestion) (*CreatedQuestion, error) {
	id, err := s.questions.Create(ctx, question)
	if err != nil {
		return nil, unprocessable(err)
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		return nil, unprocessable(err)
	}

	return &CreatedQuestion{ID: id, TotalQuestions: total}, nil
}

// SearchQuestions returns every question containing term, ignoring case.
// An empty term is ErrNotFound.
func (s *TriviaService) SearchQuestions(ctx context.Context, term string) (*QuestionList, error) {
	if term == "" {
		return nil, notFound(errors.New("empty search term"))
	}

	questions, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	return &QuestionList{Questions: questions, TotalQuestions: len(questions)}, nil
}

// QuestionsByCategory lists the questions of a category. Any failure,
// including an unknown category, is ErrNotFound.
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int) (*CategoryQuestions, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, notFound(err)
	}

	questions, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, notFound(err)
	}

	return &CategoryQuestions{
		QuestionList:    QuestionList{Questions: questions, TotalQuestions: len(questions)},
		CurrentCategory: category.Type,
	}, nil
}

// NextQuizQuestion picks a random question of the quiz category that is not in
// previous. It returns nil, nil when no candidate is left.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, category domain.QuizCategory, previous []int) (*domain.Question, error) {
	candidates, err := s.questions.ListCandidates(ctx, category.CategoryFilter(), previous)
	if err != nil {
		return nil, unprocessable(err)
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	question := candidates[s.pick(len(candidates))]
	return &question, nil
}

