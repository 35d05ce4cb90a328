package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// List retrieves every question ordered by id
	List(ctx context.Context) ([]Question, error)

	// Count returns the number of stored questions
	Count(ctx context.Context) (int, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int) (*Question, error)

	// Create inserts a new question and fills in its ID
	Create(ctx context.Context, question *NewQuestion) (int, error)

	// Delete deletes a question
	Delete(ctx context.Context, id int) error

	// Search retrieves questions whose text contains term, ignoring case, ordered by id
	Search(ctx context.Context, term string) ([]Question, error)

	// ListByCategory retrieves questions of one category ordered by id
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)

	// ListCandidates retrieves questions not in exclude, optionally limited to one category
	ListCandidates(ctx context.Context, categoryID *int, exclude []int) ([]Question, error)
}

// Question represents a stored trivia question.
// Category refers to Category.ID but is not checked against it. Category and
// Difficulty are nullable columns and render as JSON null when unset.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   *int   `json:"category"`
	Difficulty *int   `json:"difficulty"`
}

// InCategory reports whether the question belongs to categoryID. A question
// without a category belongs to none.
func (q Question) InCategory(categoryID int) bool {
	return q.Category != nil && *q.Category == categoryID
}

// NewQuestion carries the fields of a question to insert. Any of them may be
// missing; the store decides whether that is acceptable.
type NewQuestion struct {
	Question   *string
	Answer     *string
	Category   *int
	Difficulty *int
}
