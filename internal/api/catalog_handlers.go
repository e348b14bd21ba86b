package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videopecas-web/config"
	"videopecas-web/internal/backend"
)

// ShowCatalog renders the listing catalog. Filters come from the query
// string; the search form submits explicitly (Enter in the free-text field
// submits the same form). A backend failure degrades to example data plus a
// transient notice instead of an empty page.
func (h *Handlers) ShowCatalog(c *gin.Context) {
	h.guestSession(c)

	filter := backend.ListingFilter{
		Region:     c.Query("state"),
		Locality:   c.Query("city"),
		Brand:      c.Query("brand"),
		SearchTerm: c.Query("q"),
	}

	var notice string
	if err := h.catalog.Load(c.Request.Context(), filter); err != nil {
		notice = "Erro ao carregar anúncios. Usando dados de exemplo."
	}

	c.HTML(http.StatusOK, "catalog.html", gin.H{
		"Listings":   h.catalog.Listings(),
		"Notice":     notice,
		"Search":     filter.SearchTerm,
		"State":      filter.Region,
		"City":       filter.Locality,
		"Brand":      filter.Brand,
		"States":     config.BrazilianStates,
		"Brands":     config.VehicleBrands,
		"Categories": config.PartCategories,
	})
}

// ShowVideo renders the video viewer overlay for one listing. Opening the
// viewer is the trigger for the view-count increment; a failed increment is
// logged by the catalog and never blocks the viewer.
func (h *Handlers) ShowVideo(c *gin.Context) {
	h.guestSession(c)

	listingID := c.Param("id")
	if _, ok := h.catalog.Ensure(c.Request.Context(), listingID); !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	listing, ok := h.catalog.OpenVideo(c.Request.Context(), listingID)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.HTML(http.StatusOK, "video.html", gin.H{
		"Listing": listing,
	})
}
