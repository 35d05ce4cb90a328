package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

func TestFlexInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{`2`, 2, false},
		{`"2"`, 2, false},
		{`-7`, -7, false},
		{`"Art"`, 0, true},
		{`2.5`, 0, true},
		{`null`, 0, true},
		{`true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var n FlexInt
			err := json.Unmarshal([]byte(tt.in), &n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, FlexInt(tt.want), n)
		})
	}
}

func TestCreateQuestionRequestToDomain(t *testing.T) {
	var req CreateQuestionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"question":"q","category":"3","difficulty":null}`), &req))

	q := req.toDomain()
	require.NotNil(t, q.Question)
	assert.Equal(t, "q", *q.Question)
	assert.Nil(t, q.Answer)
	require.NotNil(t, q.Category)
	assert.Equal(t, 3, *q.Category)
	assert.Nil(t, q.Difficulty)
}

func TestQuizRequestValidation(t *testing.T) {
	v := NewRequestValidator()

	var full QuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"quiz_category":{"type":"click","id":0},"previous_questions":[]}`), &full))
	assert.NoError(t, v.Validate(&full))

	var noPrevious QuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"quiz_category":{"type":"click","id":0}}`), &noPrevious))
	assert.Error(t, v.Validate(&noPrevious))

	var noType QuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"quiz_category":{"id":2},"previous_questions":[]}`), &noType))
	assert.Error(t, v.Validate(&noType))

	var noCategory QuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"previous_questions":[1,2]}`), &noCategory))
	assert.Error(t, v.Validate(&noCategory))
}

func TestQuizCategoryRequestToDomain(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.QuizCategory
		wantErr bool
	}{
		{`{"type":"Art","id":"2"}`, domain.QuizCategory{Type: "Art", ID: 2}, false},
		{`{"type":"click","id":0}`, domain.QuizCategory{Type: "click"}, false},
		{`{"type":"click"}`, domain.QuizCategory{Type: "click"}, false},
		{`{"type":"Art"}`, domain.QuizCategory{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var req QuizCategoryRequest
			require.NoError(t, json.Unmarshal([]byte(tt.in), &req))
			got, err := req.toDomain()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchTerm(t *testing.T) {
	tests := []struct {
		in      string
		want    SearchTerm
		wantErr bool
	}{
		{`"title"`, "title", false},
		{`""`, "", false},
		{`null`, "", false},
		{`1930`, "1930", false},
		{`2.5`, "2.5", false},
		{`0`, "", false},
		{`true`, "", true},
		{`["a"]`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var term SearchTerm
			err := json.Unmarshal([]byte(tt.in), &term)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, term)
		})
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: empty", service.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: bad body", service.ErrUnprocessable), http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: page", service.ErrBadRequest), http.StatusBadRequest},
		{echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{echo.ErrNotFound, http.StatusNotFound},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusCode(tt.err), tt.err.Error())
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "unprocessable", errorMessage(http.StatusUnprocessableEntity))
	assert.Equal(t, "unsupported media type", errorMessage(http.StatusUnsupportedMediaType))
}
