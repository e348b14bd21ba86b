package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"videopecas-web/config"
	"videopecas-web/internal/backend"
	"videopecas-web/internal/services"
)

// SessionCookie is the guest session cookie name
const SessionCookie = "vp_session"

// Handlers bundles the storefront's HTTP handlers and their collaborators
type Handlers struct {
	cfg       *config.Config
	catalog   *services.CatalogService
	comments  *services.CommentService
	purchases *services.PurchaseService
	sessions  *services.SessionService
	storage   *backend.Storage // nil when uploads are not configured
}

// NewHandlers creates the handler set
func NewHandlers(cfg *config.Config, catalog *services.CatalogService, comments *services.CommentService, purchases *services.PurchaseService, sessions *services.SessionService, storage *backend.Storage) *Handlers {
	return &Handlers{
		cfg:       cfg,
		catalog:   catalog,
		comments:  comments,
		purchases: purchases,
		sessions:  sessions,
		storage:   storage,
	}
}

// RegisterRoutes wires the storefront routes onto the router
func (h *Handlers) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)

	router.GET("/", h.ShowCatalog)

	listings := router.Group("/listings/:id")
	{
		listings.GET("/video", h.ShowVideo)
		listings.GET("/comments", h.ShowComments)
		listings.POST("/comments", h.SubmitComment)
		listings.GET("/buy", h.ShowWizard)
		listings.POST("/buy/next", h.WizardNext)
		listings.POST("/buy/back", h.WizardBack)
	}
}

// Health is the liveness endpoint
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    "healthy",
		"message":   "videopecas storefront is running",
		"timestamp": time.Now().Unix(),
	})
}

// guestSession returns the caller's guest identity, issuing a fresh signed
// session cookie when none is present or the existing one fails to verify.
func (h *Handlers) guestSession(c *gin.Context) services.GuestSession {
	if token, err := c.Cookie(SessionCookie); err == nil {
		if session, err := h.sessions.Parse(token); err == nil {
			return session
		}
	}

	token, session, err := h.sessions.Issue()
	if err == nil {
		c.SetCookie(SessionCookie, token, h.cfg.SessionMaxAge, "/", "", false, true)
	}
	return session
}
