package domain

// QuizCategory is the category a quiz is played in.
type QuizCategory struct {
	Type string
	ID   int
}

// CategoryFilter returns the category to restrict candidates to, or nil when
// every category is selected.
func (c QuizCategory) CategoryFilter() *int {
	if c.Type == AllCategoriesType {
		return nil
	}
	id := c.ID
	return &id
}
