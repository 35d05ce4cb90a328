// Package memory keeps questions and categories in process memory. It mirrors
// the behaviour of the postgres repositories, including the NOT NULL
// constraints on question text and answer, and is used to exercise the
// service and HTTP layers without a database.
package memory

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

var errNotNull = errors.New("question and answer must not be null")

// Store holds both tables behind one lock.
type Store struct {
	mu         sync.RWMutex
	nextID     int
	questions  []domain.Question
	categories []domain.Category
}

// NewStore creates a store seeded with the given rows. Question ids continue
// after the highest seeded id.
func NewStore(categories []domain.Category, questions []domain.Question) *Store {
	s := &Store{
		categories: slices.Clone(categories),
		questions:  slices.Clone(questions),
	}
	sort.Slice(s.questions, func(i, j int) bool { return s.questions[i].ID < s.questions[j].ID })
	for _, q := range s.questions {
		s.nextID = max(s.nextID, q.ID)
	}
	return s
}

// Questions returns a domain.QuestionRepository backed by the store.
func (s *Store) Questions() *QuestionRepository {
	return &QuestionRepository{store: s}
}

// Categories returns a domain.CategoryRepository backed by the store.
func (s *Store) Categories() *CategoryRepository {
	return &CategoryRepository{store: s}
}

// QuestionRepository implements domain.QuestionRepository in memory.
type QuestionRepository struct {
	store *Store
}

// List returns every question ordered by id.
func (r *QuestionRepository) List(_ context.Context) ([]domain.Question, error) {
	return r.filter(func(domain.Question) bool { return true }), nil
}

// Count returns the number of stored questions.
func (r *QuestionRepository) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.questions), nil
}

// GetByID returns a copy of the question with the given id.
func (r *QuestionRepository) GetByID(_ context.Context, id int) (*domain.Question, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, q := range r.store.questions {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, domain.ErrQuestionNotFound
}

// Create appends a question under the next free id. Question and answer are
// required; category and difficulty may be missing.
func (r *QuestionRepository) Create(_ context.Context, question *domain.NewQuestion) (int, error) {
	if question.Question == nil || question.Answer == nil {
		return 0, errNotNull
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextID++
	// Absent category and difficulty stay NULL, as in the questions table.
	q := domain.Question{
		ID:         r.store.nextID,
		Question:   *question.Question,
		Answer:     *question.Answer,
		Category:   clonePtr(question.Category),
		Difficulty: clonePtr(question.Difficulty),
	}
	r.store.questions = append(r.store.questions, q)
	return q.ID, nil
}

// Delete removes a question, reporting domain.ErrQuestionNotFound when absent.
func (r *QuestionRepository) Delete(_ context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, q := range r.store.questions {
		if q.ID == id {
			r.store.questions = slices.Delete(r.store.questions, i, i+1)
			return nil
		}
	}
	return domain.ErrQuestionNotFound
}

// Search matches term anywhere in the question text, ignoring case.
func (r *QuestionRepository) Search(_ context.Context, term string) ([]domain.Question, error) {
	term = strings.ToLower(term)
	return r.filter(func(q domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	}), nil
}

// ListByCategory returns the questions of one category ordered by id.
func (r *QuestionRepository) ListByCategory(_ context.Context, categoryID int) ([]domain.Question, error) {
	return r.filter(func(q domain.Question) bool { return q.InCategory(categoryID) }), nil
}

// ListCandidates returns questions not in exclude, limited to categoryID when
// it is set.
func (r *QuestionRepository) ListCandidates(_ context.Context, categoryID *int, exclude []int) ([]domain.Question, error) {
	return r.filter(func(q domain.Question) bool {
		if categoryID != nil && !q.InCategory(*categoryID) {
			return false
		}
		return !slices.Contains(exclude, q.ID)
	}), nil
}

func (r *QuestionRepository) filter(keep func(domain.Question) bool) []domain.Question {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []domain.Question{}
	for _, q := range r.store.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

// CategoryRepository implements domain.CategoryRepository in memory.
type CategoryRepository struct {
	store *Store
}

// List returns every category ordered by type.
func (r *CategoryRepository) List(_ context.Context) ([]domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := slices.Clone(r.store.categories)
	if out == nil {
		out = []domain.Category{}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

// GetByID returns the category with the given id.
func (r *CategoryRepository) GetByID(_ context.Context, id int) (*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, c := range r.store.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func clonePtr(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

var (
	_ domain.QuestionRepository = (*QuestionRepository)(nil)
	_ domain.CategoryRepository = (*CategoryRepository)(nil)
)
