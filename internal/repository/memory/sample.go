package memory

import "github.com/zizouhuweidi/trivia/internal/domain"

// SampleCategories is the stock category table of the trivia game.
func SampleCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

// SampleQuestions is the stock question table of the trivia game.
func SampleQuestions() []domain.Question {
	return []domain.Question{
		{ID: 2, Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: ref(5), Difficulty: ref(4)},
		{ID: 4, Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Category: ref(5), Difficulty: ref(4)},
		{ID: 5, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: ref(4), Difficulty: ref(2)},
		{ID: 6, Question: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", Category: ref(5), Difficulty: ref(3)},
		{ID: 9, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: ref(4), Difficulty: ref(1)},
		{ID: 10, Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: ref(6), Difficulty: ref(3)},
		{ID: 11, Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: ref(6), Difficulty: ref(4)},
		{ID: 12, Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: ref(4), Difficulty: ref(2)},
		{ID: 13, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: ref(3), Difficulty: ref(2)},
		{ID: 14, Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: ref(3), Difficulty: ref(3)},
		{ID: 15, Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: ref(3), Difficulty: ref(2)},
		{ID: 16, Question: "Which Dutch graphic artist–initials M C was a creator of optical illusions?", Answer: "Escher", Category: ref(2), Difficulty: ref(1)},
		{ID: 17, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: ref(2), Difficulty: ref(3)},
		{ID: 18, Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: ref(2), Difficulty: ref(4)},
		{ID: 19, Question: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", Category: ref(2), Difficulty: ref(2)},
		{ID: 20, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: ref(1), Difficulty: ref(4)},
		{ID: 21, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: ref(1), Difficulty: ref(3)},
		{ID: 22, Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: ref(1), Difficulty: ref(4)},
		{ID: 23, Question: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", Category: ref(4), Difficulty: ref(4)},
	}
}

// NewSampleStore returns a store filled with the stock trivia data.
func NewSampleStore() *Store {
	return NewStore(SampleCategories(), SampleQuestions())
}

func ref(n int) *int {
	return &n
}
