package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
)

func newSampleService() *TriviaService {
	store := memory.NewSampleStore()
	return NewTriviaService(store.Questions(), store.Categories())
}

func ptr[T any](v T) *T { return &v }

func TestCategories(t *testing.T) {
	svc := newSampleService()

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 6)
	assert.Equal(t, "Science", categories[1])
}

func TestCategoriesEmpty(t *testing.T) {
	store := memory.NewStore(nil, nil)
	svc := NewTriviaService(store.Questions(), store.Categories())

	_, err := svc.Categories(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListQuestions(t *testing.T) {
	svc := newSampleService()
	ctx := context.Background()

	first, err := svc.ListQuestions(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, first.Questions, 10)
	assert.Equal(t, 19, first.TotalQuestions)
	assert.Len(t, first.Categories, 6)
	for i := 1; i < len(first.Questions); i++ {
		assert.Less(t, first.Questions[i-1].ID, first.Questions[i].ID)
	}

	second, err := svc.ListQuestions(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, second.Questions, 9)
	assert.Equal(t, 19, second.TotalQuestions)

	_, err = svc.ListQuestions(ctx, 1000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteQuestion(t *testing.T) {
	store := memory.NewSampleStore()
	svc := NewTriviaService(store.Questions(), store.Categories())
	ctx := context.Background()

	deleted, err := svc.DeleteQuestion(ctx, 17)
	require.NoError(t, err)
	assert.Equal(t, 17, deleted)

	_, err = store.Questions().GetByID(ctx, 17)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)

	_, err = svc.DeleteQuestion(ctx, 17)
	assert.ErrorIs(t, err, ErrUnprocessable)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}

func TestCreateQuestion(t *testing.T) {
	svc := newSampleService()
	ctx := context.Background()

	created, err := svc.CreateQuestion(ctx, &domain.NewQuestion{
		Question:   ptr("What is the currency of Saudi Arabia?"),
		Answer:     ptr("Saudi Riyal"),
		Category:   ptr(3),
		Difficulty: ptr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 24, created.ID)
	assert.Equal(t, 20, created.TotalQuestions)

	_, err = svc.CreateQuestion(ctx, &domain.NewQuestion{Question: ptr("no answer")})
	assert.ErrorIs(t, err, ErrUnprocessable)
}

func TestCreateQuestionWithoutCategory(t *testing.T) {
	svc := newSampleService()
	ctx := context.Background()

	created, err := svc.CreateQuestion(ctx, &domain.NewQuestion{
		Question: ptr("What is the currency of Saudi Arabia?"),
		Answer:   ptr("Saudi Riyal"),
	})
	require.NoError(t, err)

	page, err := svc.ListQuestions(ctx, 2)
	require.NoError(t, err)
	last := page.Questions[len(page.Questions)-1]
	assert.Equal(t, created.ID, last.ID)
	assert.Nil(t, last.Category)
	assert.Nil(t, last.Difficulty)

	q, err := svc.NextQuizQuestion(ctx, domain.QuizCategory{Type: "Geography", ID: 3}, []int{13, 14, 15})
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestSearchQuestions(t *testing.T) {
	svc := newSampleService()
	ctx := context.Background()

	result, err := svc.SearchQuestions(ctx, "TITLE")
	require.NoError(t, err)
	require.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, 5, result.Questions[0].ID)
	assert.Equal(t, 6, result.Questions[1].ID)

	none, err := svc.SearchQuestions(ctx, "xyzzy")
	require.NoError(t, err)
	assert.Empty(t, none.Questions)
	assert.Zero(t, none.TotalQuestions)

	_, err = svc.SearchQuestions(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuestionsByCategory(t *testing.T) {
	svc := newSampleService()
	ctx := context.Background()

	result, err := svc.QuestionsByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Science", result.CurrentCategory)
	assert.Equal(t, 3, result.TotalQuestions)
	for _, q := range result.Questions {
		assert.Equal(t, ptr(1), q.Category)
	}

	_, err = svc.QuestionsByCategory(ctx, 1000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuestionsByCategoryDanglingReference(t *testing.T) {
	store := memory.NewStore(
		[]domain.Category{{ID: 1, Type: "Science"}},
		[]domain.Question{{ID: 1, Question: "q", Answer: "a", Category: ptr(9), Difficulty: ptr(1)}},
	)
	svc := NewTriviaService(store.Questions(), store.Categories())

	result, err := svc.QuestionsByCategory(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, result.Questions)

	_, err = svc.QuestionsByCategory(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNextQuizQuestion(t *testing.T) {
	svc := newSampleService()
	svc.pick = func(n int) int { return n - 1 }
	ctx := context.Background()

	q, err := svc.NextQuizQuestion(ctx, domain.QuizCategory{Type: "click", ID: 0}, nil)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, 23, q.ID)

	q, err = svc.NextQuizQuestion(ctx, domain.QuizCategory{Type: "Art", ID: 2}, []int{19})
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, 18, q.ID)

	q, err = svc.NextQuizQuestion(ctx, domain.QuizCategory{Type: "Science", ID: 1}, []int{20, 21, 22})
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestNextQuizQuestionNeverRepeats(t *testing.T) {
	svc := newSampleService()
	ctx := context.Background()

	var previous []int
	for {
		q, err := svc.NextQuizQuestion(ctx, domain.QuizCategory{Type: "History", ID: 4}, previous)
		require.NoError(t, err)
		if q == nil {
			break
		}
		assert.Equal(t, ptr(4), q.Category)
		assert.NotContains(t, previous, q.ID)
		previous = append(previous, q.ID)
	}
	assert.ElementsMatch(t, []int{5, 9, 12, 23}, previous)
}

type failingQuestions struct {
	domain.QuestionRepository
}

func (failingQuestions) ListCandidates(context.Context, *int, []int) ([]domain.Question, error) {
	return nil, errors.New("connection reset")
}

func TestNextQuizQuestionStorageFailure(t *testing.T) {
	store := memory.NewSampleStore()
	svc := NewTriviaService(failingQuestions{store.Questions()}, store.Categories())

	_, err := svc.NextQuizQuestion(context.Background(), domain.QuizCategory{Type: "click"}, nil)
	assert.ErrorIs(t, err, ErrUnprocessable)
}
