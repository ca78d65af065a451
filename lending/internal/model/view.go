package model

type ProfileView struct {
	User           User    `json:"user"`
	Profile        Profile `json:"profile"`
	IsOwner        bool    `json:"isOwner"`
	IsFriend       bool    `json:"isFriend"`
	PendingRequest bool    `json:"pendingRequest"`
}

type LibraryView struct {
	Owner   User   `json:"owner"`
	Books   []Book `json:"books"`
	IsOwner bool   `json:"isOwner"`
}

type BookDetail struct {
	Book         BookWithOwner `json:"book"`
	Reviews      []ReviewView  `json:"reviews"`
	IsFriend     bool          `json:"isFriend"`
	IsOwner      bool          `json:"isOwner"`
	LikeCount    int           `json:"likeCount"`
	DislikeCount int           `json:"dislikeCount"`
}

type BookRatings struct {
	Book     BookWithOwner `json:"book"`
	Likes    []RatingView  `json:"likes"`
	Dislikes []RatingView  `json:"dislikes"`
}

type FriendRequests struct {
	Received []FriendshipView `json:"received"`
	Sent     []FriendshipView `json:"sent"`
}

type BookRequests struct {
	Received      []BookRequestView `json:"received"`
	SentPending   []BookRequestView `json:"sentPending"`
	SentReturned  []BookRequestView `json:"sentReturned"`
	ActiveBorrows []BookRequestView `json:"activeBorrows"`
}

type NotificationItem struct {
	NotificationView
	Destination Destination `json:"destination"`
}

type NotificationList struct {
	Items       []NotificationItem `json:"items"`
	UnreadCount int                `json:"unreadCount"`
}

type ChatList struct {
	Friends       []User                `json:"friends"`
	Conversations []ConversationSummary `json:"conversations"`
}

type Conversation struct {
	Friend   User      `json:"friend"`
	Messages []Message `json:"messages"`
}

type UserResult struct {
	User
	// FriendshipStatus is empty when no friendship row exists.
	FriendshipStatus FriendshipStatus `json:"friendshipStatus"`
}

type SearchResult struct {
	Query string          `json:"query"`
	Scope SearchScope     `json:"type"`
	Users []UserResult    `json:"users"`
	Books []BookWithOwner `json:"books"`
}

type Dashboard struct {
	FriendBooks    []BookWithOwner `json:"friendBooks"`
	FriendRequests int             `json:"friendRequests"`
	BookRequests   int             `json:"bookRequests"`
}
