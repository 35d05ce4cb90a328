package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i + 1
	}

	tests := []struct {
		name string
		page int
		want []int
	}{
		{"first page", 1, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"second page", 2, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}},
		{"partial last page", 3, []int{21, 22, 23}},
		{"past the end", 4, []int{}},
		{"zero", 0, []int{}},
		{"negative", -1, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(items, tt.page))
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	assert.Empty(t, Paginate([]string(nil), 1))
}
