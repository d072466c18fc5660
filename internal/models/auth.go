package models

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the successful login payload.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// RegisterRequest carries the registration form, including the genre and
// tag preference ids picked during signup.
type RegisterRequest struct {
	Username           string  `json:"username"`
	Email              string  `json:"email"`
	Password           string  `json:"password"`
	GenrePreferenceIDs []int64 `json:"genrePreferenceIds"`
	TagPreferenceIDs   []int64 `json:"tagPreferenceIds"`
}

// ReviewRequest carries a new review submission.
type ReviewRequest struct {
	UserID       int64  `json:"userId"`
	GoogleBookID string `json:"googleBookId"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// StatusRequest carries a shelf status mutation.
type StatusRequest struct {
	UserID       int64         `json:"userId"`
	GoogleBookID string        `json:"googleBookId"`
	Status       ReadingStatus `json:"status"`
}

// CreateListRequest carries a new custom list.
type CreateListRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}
