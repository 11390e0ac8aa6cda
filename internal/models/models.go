package models

import (
	"time"
)

// Profile mirrors a row in the profiles table. The id comes from the
// external identity provider; a non-null deleted_at means the account
// is soft-deleted.
type Profile struct {
	ID              string     `json:"id" db:"id"`
	Nickname        *string    `json:"nickname" db:"nickname"`
	ProfileImageURL *string    `json:"profile_image_url" db:"profile_image_url"`
	DeletedAt       *time.Time `json:"deleted_at" db:"deleted_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

type Blog struct {
	ID           string     `json:"id" db:"id"`
	UserID       string     `json:"user_id" db:"user_id"`
	Name         string     `json:"name" db:"name"`
	Description  *string    `json:"description" db:"description"`
	ThumbnailURL *string    `json:"thumbnail_url" db:"thumbnail_url"`
	DeletedAt    *time.Time `json:"deleted_at" db:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// Post.UserID is copied from the owning blog at creation time and is
// compared as-is for the private-post check. It is not refreshed if the
// blog ever changes hands.
type Post struct {
	ID           string    `json:"id" db:"id"`
	BlogID       string    `json:"blog_id" db:"blog_id"`
	UserID       string    `json:"user_id" db:"user_id"`
	Title        string    `json:"title" db:"title"`
	Content      string    `json:"content" db:"content"`
	ThumbnailURL *string   `json:"thumbnail_url" db:"thumbnail_url"`
	CategoryID   *string   `json:"category_id" db:"category_id"`
	IsPrivate    bool      `json:"is_private" db:"is_private"`
	Published    bool      `json:"published" db:"published"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type Category struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type PostCategory struct {
	PostID     string `json:"post_id" db:"post_id"`
	CategoryID string `json:"category_id" db:"category_id"`
}

// Subscription is a directed pair: SubID follows SubedID.
type Subscription struct {
	SubID     string    `json:"sub_id" db:"sub_id"`
	SubedID   string    `json:"subed_id" db:"subed_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Forum struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	BlogID      *string   `json:"blog_id" db:"blog_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type ForumComment struct {
	ID        string    `json:"id" db:"id"`
	ForumID   string    `json:"forum_id" db:"forum_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BlogSummary is the embedded blog shape that list and detail endpoints
// return next to a post.
type BlogSummary struct {
	Name         string  `json:"name"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

// PostListItem is one row of a post listing joined with its blog.
type PostListItem struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Content      string    `json:"content" db:"content"`
	ThumbnailURL *string   `json:"thumbnail_url" db:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	BlogID       string    `json:"blog_id" db:"blog_id"`

	BlogName         *string `json:"-" db:"blog_name"`
	BlogThumbnailURL *string `json:"-" db:"blog_thumbnail_url"`

	Blog *BlogSummary `json:"blog" db:"-"`
}

// ForumListItem is one row of the forum listing with its blog and
// comment count.
type ForumListItem struct {
	Forum
	BlogName         *string `json:"-" db:"blog_name"`
	BlogThumbnailURL *string `json:"-" db:"blog_thumbnail_url"`
	CommentCount     int     `json:"comment_count" db:"comment_count"`

	Blog *BlogSummary `json:"blog" db:"-"`
}
