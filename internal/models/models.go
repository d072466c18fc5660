package models

import "time"

// ReadingStatus enumerates the shelf states a book can be in for a user.
type ReadingStatus string

const (
	StatusWantToRead ReadingStatus = "WANT_TO_READ"
	StatusReading    ReadingStatus = "READING"
	StatusRead       ReadingStatus = "READ"
	StatusDropped    ReadingStatus = "DROPPED"
)

// Valid reports whether s is one of the known shelf states.
func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusRead, StatusDropped:
		return true
	}
	return false
}

// Book represents a book as returned by the BookMatch backend.
//
// Two Book values with the same GoogleBookID are the same logical book
// even when BookID differs.
type Book struct {
	BookID            int64         `json:"bookId,omitempty"`
	GoogleBookID      string        `json:"googleBookId"`
	Title             string        `json:"title"`
	Authors           string        `json:"authors"`
	Description       string        `json:"description"`
	CoverURL          string        `json:"coverUrl"`
	PublishedDate     string        `json:"publishedDate,omitempty"`
	PageCount         int           `json:"pageCount,omitempty"`
	AverageRatingAPI  float64       `json:"averageRatingApi,omitempty"`
	Genres            []string      `json:"genres,omitempty"`
	Tags              []string      `json:"tags,omitempty"`
	UserReadingStatus ReadingStatus `json:"userReadingStatus,omitempty"`
}

// Genre is a backend-curated genre option.
type Genre struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BookCount int    `json:"bookCount,omitempty"`
}

// Tag is a backend-curated descriptive tag option.
type Tag struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BookCount   int    `json:"bookCount,omitempty"`
}

// Home is the aggregate payload for the home view. PersonalRecommendations
// is only present for authenticated requests.
type Home struct {
	FeaturedBooks           []Book           `json:"featuredBooks"`
	PersonalRecommendations []Recommendation `json:"personalRecommendations,omitempty"`
	MainGenres              []Genre          `json:"mainGenres"`
	MainTags                []Tag            `json:"mainTags"`
}

// Recommendation pairs a book with its personalization score and the
// reasons the backend chose it.
type Recommendation struct {
	Book    Book     `json:"book"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// BlindDateCard is an anonymized recommendation prompt. GoogleBookID is
// known to the client but withheld from the user until reveal.
type BlindDateCard struct {
	QuoteID      int64  `json:"quoteId"`
	QuoteText    string `json:"quoteText"`
	GoogleBookID string `json:"googleBookId"`
	GenreHint    string `json:"genre"`
}

// QuizOption is one selectable answer to a quiz question.
type QuizOption struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// QuizQuestion is a single question of the recommendation quiz.
type QuizQuestion struct {
	ID      int64        `json:"id"`
	Text    string       `json:"text"`
	Options []QuizOption `json:"options"`
}

// QuizAnswer records the option chosen for one question.
type QuizAnswer struct {
	QuestionID       int64 `json:"questionId"`
	SelectedOptionID int64 `json:"selectedOptionId"`
}

// QuizResult is the terminal payload of a quiz run.
type QuizResult struct {
	RecommendedBook  Book    `json:"recommendedBook"`
	Explanation      string  `json:"explanation"`
	MatchPercentage  float64 `json:"matchPercentage,omitempty"`
	AlternativeBooks []Book  `json:"alternativeBooks,omitempty"`
}

// Review is a user review of a book as returned by the backend.
type Review struct {
	ReviewID  int64     `json:"reviewId"`
	Username  string    `json:"username"`
	UserBio   string    `json:"userBio,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomList is a user-owned named book collection.
type CustomList struct {
	ListID      int64  `json:"listId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
	BookCount   int    `json:"bookCount"`
	Books       []Book `json:"books,omitempty"`
}
