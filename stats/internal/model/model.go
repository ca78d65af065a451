package model

import "time"

// UserStats counts the activity events a user performed, by type.
type UserStats struct {
	UserID         int64     `json:"userId" db:"user_id"`
	Username       string    `json:"username" db:"username"`
	LastActivity   time.Time `json:"lastActivity" db:"last_activity"`
	FriendRequests int       `json:"friendRequests" db:"friend_requests"`
	FriendsAdded   int       `json:"friendsAdded" db:"friends_added"`
	BooksRequested int       `json:"booksRequested" db:"books_requested"`
	BooksLent      int       `json:"booksLent" db:"books_lent"`
	BooksReturned  int       `json:"booksReturned" db:"books_returned"`
	Ratings        int       `json:"ratings" db:"ratings"`
	Reviews        int       `json:"reviews" db:"reviews"`
	Messages       int       `json:"messages" db:"messages"`
	Total          int       `json:"total" db:"total"`
}

type StatsInfo struct {
	Data []UserStats `json:"data"`
}

type Filter struct {
	UserID int64
	Since  time.Time
}
