package models

import (
	"sort"
	"time"
)

// Comment represents a question or remark attached to a listing. Comments are
// immutable once created; the only lifecycle events are creation and deletion.
type Comment struct {
	ID               string    `json:"id"`
	ListingID        string    `json:"announcement_id"`
	UserID           string    `json:"user_id"`
	UserName         string    `json:"user_name"`
	UserAvatar       *string   `json:"user_avatar,omitempty"`
	Content          string    `json:"content"`
	VideoURL         *string   `json:"video_url,omitempty"`
	IsSellerResponse bool      `json:"is_seller_response"`
	CreatedAt        time.Time `json:"created_at"`
	ParentCommentID  *string   `json:"parent_comment_id,omitempty"`
}

// HasVideo checks if the comment carries an attached video
func (c Comment) HasVideo() bool {
	return c.VideoURL != nil && *c.VideoURL != ""
}

// CreatedAtDisplay returns the creation time formatted for the panel
func (c Comment) CreatedAtDisplay() string {
	return c.CreatedAt.Format("02 Jan 2006, 15:04")
}

// SortCommentsNewestFirst orders comments by creation time descending. The
// sort is stable so equal timestamps keep their incoming relative order, and
// re-sorting an already sorted slice is a no-op.
func SortCommentsNewestFirst(comments []Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
}
