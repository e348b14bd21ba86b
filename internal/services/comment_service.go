package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"videopecas-web/internal/backend"
	"videopecas-web/internal/models"
)

// ErrEmptyComment marks a submission rejected before any backend call
var ErrEmptyComment = errors.New("comment content is empty")

// CommentBackend is the slice of the data backend the comment panel consumes
type CommentBackend interface {
	CreateComment(ctx context.Context, input backend.CommentInput) (*models.Comment, error)
}

// CommentService submits comments and prepares the panel's render order
type CommentService struct {
	backend CommentBackend
	catalog *CatalogService
}

// NewCommentService creates a new comment service
func NewCommentService(b CommentBackend, catalog *CatalogService) *CommentService {
	return &CommentService{backend: b, catalog: catalog}
}

// Submit creates a comment on a listing. Empty or whitespace-only content is
// rejected locally with ErrEmptyComment, without touching the network. On
// success the entire catalog is reloaded so the panel shows the canonical
// comment set; a reload failure after a successful create is not an error
// for the submitter.
func (s *CommentService) Submit(ctx context.Context, listingID string, author GuestSession, content string, videoURL *string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyComment
	}

	input := backend.CommentInput{
		ListingID:        listingID,
		UserID:           author.ID,
		UserName:         author.Name,
		Content:          content,
		VideoURL:         videoURL,
		IsSellerResponse: false,
	}
	if _, err := s.backend.CreateComment(ctx, input); err != nil {
		return fmt.Errorf("submit comment: %w", err)
	}

	// Reload is best-effort; the comment itself is already stored.
	_ = s.catalog.Reload(ctx)
	return nil
}

// CommentsFor returns a listing's comments sorted newest first. The sort is
// applied locally and does not depend on backend return order.
func (s *CommentService) CommentsFor(listing models.Listing) []models.Comment {
	comments := make([]models.Comment, len(listing.Comments))
	copy(comments, listing.Comments)
	models.SortCommentsNewestFirst(comments)
	return comments
}
