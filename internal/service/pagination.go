package service

// QuestionsPerPage is the fixed size of a question page.
const QuestionsPerPage = 10

// Paginate returns the 1-based page of items. Pages outside the data,
// including page numbers below 1, are empty.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		return []T{}
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return []T{}
	}

	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}
