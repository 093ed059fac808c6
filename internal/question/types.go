package question

// Question is a single trivia entry as stored and served to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CreateInput carries an incoming create request. Category and Difficulty
// are pointers so an absent field is distinguishable from a legitimate
// zero value.
type CreateInput struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   *int   `json:"category"`
	Difficulty *int   `json:"difficulty"`
}

// CreateParams is a validated insert payload for the store.
type CreateParams struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}
