package models

import "time"

// Question is a stored question owned by exactly one account.
// AccountID is set at creation and never changed by the update path.
type Question struct {
	ID        int      `json:"id" db:"id"`
	Title     string   `json:"title" db:"title"`
	Content   string   `json:"content" db:"content"`
	Tags      []string `json:"tags,omitempty" db:"tags"`
	AccountID int      `json:"-" db:"account_id"`
}

// NewQuestion carries the caller-supplied fields of a question. The ID is
// assigned by the database and the owner comes from the session.
type NewQuestion struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

type Answer struct {
	ID         int    `json:"id" db:"id"`
	Content    string `json:"content" db:"content"`
	QuestionID int    `json:"question_id" db:"question_id"`
	AccountID  int    `json:"-" db:"account_id"`
}

type NewAnswer struct {
	Content    string `json:"content" form:"content"`
	QuestionID int    `json:"question_id" form:"question_id"`
}

type Account struct {
	ID       int    `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
}

type NewAccount struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the authenticated principal attached to a request. It is
// carried as a value, never as ambient state, and is not persisted here.
type Session struct {
	AccountID int
	NotBefore time.Time
	Expiry    time.Time
}
