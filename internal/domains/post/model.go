package post

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog entry written by a user. Tags live in a text[] column.
type Post struct {
	ID        uuid.UUID `json:"id" db:"id"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Tags      []string  `json:"tags" db:"tags"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PostWithMeta is a post row joined with author username and like count.
type PostWithMeta struct {
	Post
	AuthorUsername string `db:"author_username"`
	LikeCount      int    `db:"like_count"`
}

// Like is a user's like on a post. One row per (post, user).
type Like struct {
	PostID    uuid.UUID `json:"post_id" db:"post_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
