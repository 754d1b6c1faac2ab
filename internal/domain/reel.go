package domain

import "time"

// Reel is a short-form video with denormalized social counters.
// The counters are advisory and may drift from the like and comment rows.
type Reel struct {
	ID            string    `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Description   *string   `db:"description" json:"description"`
	VideoURL      string    `db:"video_url" json:"video_url"`
	ThumbnailURL  *string   `db:"thumbnail_url" json:"thumbnail_url"`
	LikesCount    int       `db:"likes_count" json:"likes_count"`
	CommentsCount int       `db:"comments_count" json:"comments_count"`
	SharesCount   int       `db:"shares_count" json:"shares_count"`
	Category      *string   `db:"category" json:"category"`
	UploadedBy    *string   `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Counter names a denormalized counter column on reels.
type Counter string

const (
	CounterLikes    Counter = "likes_count"
	CounterComments Counter = "comments_count"
	CounterShares   Counter = "shares_count"
)

func (c Counter) Valid() bool {
	switch c {
	case CounterLikes, CounterComments, CounterShares:
		return true
	}
	return false
}

// Get returns the value of counter c on the reel.
func (r *Reel) Get(c Counter) int {
	switch c {
	case CounterLikes:
		return r.LikesCount
	case CounterComments:
		return r.CommentsCount
	case CounterShares:
		return r.SharesCount
	}
	return 0
}

// Set updates counter c on the reel.
func (r *Reel) Set(c Counter, v int) {
	switch c {
	case CounterLikes:
		r.LikesCount = v
	case CounterComments:
		r.CommentsCount = v
	case CounterShares:
		r.SharesCount = v
	}
}

// ReelLike records that a session liked a reel. At most one per (reel, session).
type ReelLike struct {
	ID            string    `db:"id" json:"id"`
	ReelID        string    `db:"reel_id" json:"reel_id"`
	UserSessionID string    `db:"user_session_id" json:"user_session_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// ReelComment is an unauthenticated comment, append-only from the client.
type ReelComment struct {
	ID          string    `db:"id" json:"id"`
	ReelID      string    `db:"reel_id" json:"reel_id"`
	UserName    string    `db:"user_name" json:"user_name"`
	CommentText string    `db:"comment_text" json:"comment_text"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type NewComment struct {
	ReelID      string
	UserName    string
	CommentText string
}
