package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videopecas-web/config"
	"videopecas-web/internal/models"
	"videopecas-web/internal/services"
)

// ShowWizard renders the purchase wizard at its current step, resuming an
// in-progress flow for the same listing with all selections intact.
func (h *Handlers) ShowWizard(c *gin.Context) {
	session := h.guestSession(c)

	listing, ok := h.catalog.Ensure(c.Request.Context(), c.Param("id"))
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	wizard := h.purchases.Start(session.ID, listing.ID)
	h.renderWizard(c, listing, wizard, "")
}

// WizardNext applies the current step's form fields and advances the wizard.
// A failed guard leaves the step unchanged. From the confirm step this
// submits the purchase record to the backend.
func (h *Handlers) WizardNext(c *gin.Context) {
	session := h.guestSession(c)
	listingID := c.Param("id")

	listing, ok := h.catalog.Ensure(c.Request.Context(), listingID)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	wizard, ok := h.purchases.Wizard(session.ID)
	if !ok || wizard.ListingID != listingID {
		c.Redirect(http.StatusSeeOther, "/listings/"+listingID+"/buy")
		return
	}

	switch wizard.Step {
	case services.StepPayment:
		if method := c.PostForm("payment_method"); method != "" {
			wizard.PaymentMethod = models.PaymentMethod(method)
		}
	case services.StepDelivery:
		if method := c.PostForm("delivery_method"); method != "" {
			wizard.DeliveryMethod = models.DeliveryMethod(method)
		}
		wizard.ZipCode = c.PostForm("zip_code")
	case services.StepConfirm:
		purchase, err := h.purchases.Submit(c.Request.Context(), session.ID, session)
		if err != nil {
			h.renderWizard(c, listing, wizard, "Erro ao processar compra. Tente novamente.")
			return
		}
		c.HTML(http.StatusOK, "purchase_success.html", gin.H{
			"Listing":  listing,
			"Purchase": purchase,
		})
		return
	}

	wizard.Next()
	c.Redirect(http.StatusSeeOther, "/listings/"+listingID+"/buy")
}

// WizardBack steps backward; always allowed and data-preserving
func (h *Handlers) WizardBack(c *gin.Context) {
	session := h.guestSession(c)
	listingID := c.Param("id")

	if wizard, ok := h.purchases.Wizard(session.ID); ok && wizard.ListingID == listingID {
		wizard.Back()
	}
	c.Redirect(http.StatusSeeOther, "/listings/"+listingID+"/buy")
}

func (h *Handlers) renderWizard(c *gin.Context, listing models.Listing, wizard *services.Wizard, notice string) {
	summary := services.Summarize(listing)

	c.HTML(http.StatusOK, "purchase.html", gin.H{
		"Listing":             listing,
		"Step":                string(wizard.Step),
		"PaymentMethod":       string(wizard.PaymentMethod),
		"PaymentMethodLabel":  wizard.PaymentMethod.Label(),
		"DeliveryMethod":      string(wizard.DeliveryMethod),
		"DeliveryMethodLabel": wizard.DeliveryMethod.Label(),
		"ZipCode":             wizard.ZipCode,
		"CanAdvance":          wizard.CanAdvance(),
		"Notice":              notice,
		"PaymentOptions":      config.PaymentOptions,
		"DeliveryOptions":     config.DeliveryOptions,
		"CommissionRate":      summary.CommissionRate,
		"PriceDisplay":        models.FormatCurrency(summary.Price),
		"CommissionAmount":    models.FormatCurrency(summary.CommissionAmount),
		"SellerAmount":        models.FormatCurrency(summary.SellerAmount),
	})
}
