package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"videopecas-web/internal/backend"
	"videopecas-web/internal/models"
	"videopecas-web/internal/services"
)

// ShowComments renders the comment panel for one listing, newest first
func (h *Handlers) ShowComments(c *gin.Context) {
	h.guestSession(c)

	listing, ok := h.catalog.Ensure(c.Request.Context(), c.Param("id"))
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	h.renderCommentPanel(c, listing, "", "")
}

// SubmitComment handles a new comment, with an optional attached video.
// Whitespace-only content is a local no-op with no backend call; a backend
// failure re-renders the panel with the typed content preserved so the user
// can retry.
func (h *Handlers) SubmitComment(c *gin.Context) {
	session := h.guestSession(c)
	listingID := c.Param("id")

	listing, ok := h.catalog.Ensure(c.Request.Context(), listingID)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	content := c.PostForm("content")

	var videoURL *string
	if h.storage != nil {
		if fileHeader, err := c.FormFile("video"); err == nil && fileHeader.Size > 0 {
			url, err := h.uploadCommentVideo(c, fileHeader)
			if err != nil {
				h.renderCommentPanel(c, listing, content, "Erro ao enviar o vídeo. Tente novamente.")
				return
			}
			videoURL = &url
		}
	}

	err := h.comments.Submit(c.Request.Context(), listingID, session, content, videoURL)
	if errors.Is(err, services.ErrEmptyComment) {
		// Client-side guard: nothing was sent to the backend.
		h.renderCommentPanel(c, listing, content, "")
		return
	}
	if err != nil {
		h.renderCommentPanel(c, listing, content, "Erro ao adicionar comentário. Tente novamente.")
		return
	}

	c.Redirect(http.StatusSeeOther, "/listings/"+listingID+"/comments")
}

func (h *Handlers) renderCommentPanel(c *gin.Context, listing models.Listing, content, notice string) {
	c.HTML(http.StatusOK, "comments.html", gin.H{
		"Listing":        listing,
		"Comments":       h.comments.CommentsFor(listing),
		"Content":        content,
		"Notice":         notice,
		"UploadsEnabled": h.storage != nil,
	})
}

// uploadCommentVideo stores the attached file in the videos bucket and
// returns its public URL.
func (h *Handlers) uploadCommentVideo(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("comments/%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")
	return h.storage.Upload(c.Request.Context(), backend.BucketVideos, path, data, contentType)
}
