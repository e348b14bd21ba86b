package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"videopecas-web/config"
	"videopecas-web/internal/backend"
	"videopecas-web/internal/models"
	"videopecas-web/internal/services"
)

type fakeDataBackend struct {
	listings []models.Listing

	createCommentCalls  int
	lastComment         backend.CommentInput
	createPurchaseCalls int
	lastPurchase        backend.PurchaseInput
	incrementCalls      int
}

func (f *fakeDataBackend) ListListings(ctx context.Context, filter backend.ListingFilter) ([]models.Listing, error) {
	out := make([]models.Listing, len(f.listings))
	copy(out, f.listings)
	return out, nil
}

func (f *fakeDataBackend) GetListing(ctx context.Context, listingID string) (*models.Listing, error) {
	for i := range f.listings {
		if f.listings[i].ID == listingID {
			listing := f.listings[i]
			return &listing, nil
		}
	}
	return nil, errors.New("listing not found")
}

func (f *fakeDataBackend) IncrementViewCount(ctx context.Context, listingID string) error {
	f.incrementCalls++
	return nil
}

func (f *fakeDataBackend) CreateComment(ctx context.Context, input backend.CommentInput) (*models.Comment, error) {
	f.createCommentCalls++
	f.lastComment = input
	return &models.Comment{ID: "comment-1", ListingID: input.ListingID, Content: input.Content, CreatedAt: time.Now()}, nil
}

func (f *fakeDataBackend) CreatePurchase(ctx context.Context, input backend.PurchaseInput) (*models.Purchase, error) {
	f.createPurchaseCalls++
	f.lastPurchase = input
	return &models.Purchase{
		ID:             "purchase-1",
		ListingID:      input.ListingID,
		PaymentMethod:  input.PaymentMethod,
		DeliveryMethod: input.DeliveryMethod,
		ZipCode:        input.ZipCode,
		Status:         input.Status,
	}, nil
}

func storefrontFixture() []models.Listing {
	return []models.Listing{
		{
			ID:           "l1",
			Title:        "Porta Dianteira Direita Civic",
			Price:        450,
			Tier:         models.ListingTierNormal,
			VideoURL:     "https://cdn.example.com/videos/l1.mp4",
			Seller:       models.Seller{ID: "s1", Name: "Auto Peças Santos", Rating: 4.6},
			Location:     models.Location{City: "Santos", State: "SP"},
			VehicleBrand: "Honda",
			Views:        30,
			Comments:     []models.Comment{},
		},
	}
}

// testClient drives the storefront through the router, carrying the session
// cookie between requests the way a browser would.
type testClient struct {
	router  *gin.Engine
	cookies []*http.Cookie
}

func (tc *testClient) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, cookie := range tc.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		tc.cookies = cookies
	}
	return w
}

func newTestStorefront(t *testing.T, fake *fakeDataBackend) *testClient {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment:   "test",
		Port:          "8080",
		BackendURL:    "https://backend.example.com/rest/v1",
		BackendAPIKey: "key",
		SessionSecret: "test-session-secret",
		SessionMaxAge: 3600,
	}

	catalog := services.NewCatalogService(fake)
	comments := services.NewCommentService(fake, catalog)
	purchases := services.NewPurchaseService(fake)
	sessions := services.NewSessionService(cfg.SessionSecret, time.Hour)

	router := gin.New()
	router.LoadHTMLGlob("../../templates/*")

	handlers := NewHandlers(cfg, catalog, comments, purchases, sessions, nil)
	handlers.RegisterRoutes(router)

	return &testClient{router: router}
}

func TestHealthEndpoint(t *testing.T) {
	client := newTestStorefront(t, &fakeDataBackend{})

	w := client.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestCatalogPage(t *testing.T) {
	t.Run("RendersListings", func(t *testing.T) {
		client := newTestStorefront(t, &fakeDataBackend{listings: storefrontFixture()})

		w := client.do(http.MethodGet, "/", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Porta Dianteira Direita Civic")
		assert.Contains(t, w.Body.String(), "Auto Peças Santos")
	})

	t.Run("IssuesSessionCookie", func(t *testing.T) {
		client := newTestStorefront(t, &fakeDataBackend{listings: storefrontFixture()})

		client.do(http.MethodGet, "/", nil)
		assert.NotEmpty(t, client.cookies)
		assert.Equal(t, SessionCookie, client.cookies[0].Name)
	})
}

func TestVideoPage(t *testing.T) {
	t.Run("OpensViewerAndCountsView", func(t *testing.T) {
		fake := &fakeDataBackend{listings: storefrontFixture()}
		client := newTestStorefront(t, fake)

		client.do(http.MethodGet, "/", nil)
		w := client.do(http.MethodGet, "/listings/l1/video", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "https://cdn.example.com/videos/l1.mp4")
		assert.Contains(t, w.Body.String(), "31 visualizações")
		assert.Equal(t, 1, fake.incrementCalls)
	})

	t.Run("UnknownListingRedirectsHome", func(t *testing.T) {
		client := newTestStorefront(t, &fakeDataBackend{listings: storefrontFixture()})

		client.do(http.MethodGet, "/", nil)
		w := client.do(http.MethodGet, "/listings/missing/video", nil)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})
}

func TestCommentSubmission(t *testing.T) {
	t.Run("ValidCommentRedirectsToPanel", func(t *testing.T) {
		fake := &fakeDataBackend{listings: storefrontFixture()}
		client := newTestStorefront(t, fake)

		client.do(http.MethodGet, "/", nil)
		w := client.do(http.MethodPost, "/listings/l1/comments", url.Values{"content": {"Serve no Civic 2010?"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/listings/l1/comments", w.Header().Get("Location"))
		assert.Equal(t, 1, fake.createCommentCalls)
		assert.Equal(t, "Serve no Civic 2010?", fake.lastComment.Content)
	})

	t.Run("WhitespaceOnlyCommentIsALocalNoOp", func(t *testing.T) {
		fake := &fakeDataBackend{listings: storefrontFixture()}
		client := newTestStorefront(t, fake)

		client.do(http.MethodGet, "/", nil)
		w := client.do(http.MethodPost, "/listings/l1/comments", url.Values{"content": {"   "}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, fake.createCommentCalls)
	})
}

func TestPurchaseWizard(t *testing.T) {
	t.Run("FullFlow", func(t *testing.T) {
		fake := &fakeDataBackend{listings: storefrontFixture()}
		client := newTestStorefront(t, fake)
		client.do(http.MethodGet, "/", nil)

		// Step 1: payment
		w := client.do(http.MethodGet, "/listings/l1/buy", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Como você quer pagar?")

		w = client.do(http.MethodPost, "/listings/l1/buy/next", url.Values{"payment_method": {"pix"}})
		assert.Equal(t, http.StatusSeeOther, w.Code)

		// Step 2: delivery
		w = client.do(http.MethodGet, "/listings/l1/buy", nil)
		assert.Contains(t, w.Body.String(), "Como você quer receber?")

		w = client.do(http.MethodPost, "/listings/l1/buy/next", url.Values{
			"delivery_method": {"sedex"},
			"zip_code":        {"11010-100"},
		})
		assert.Equal(t, http.StatusSeeOther, w.Code)

		// Step 3: confirm shows the commission split (450 normal: 36 / 414)
		w = client.do(http.MethodGet, "/listings/l1/buy", nil)
		assert.Contains(t, w.Body.String(), "Confirme sua compra")
		assert.Contains(t, w.Body.String(), "R$ 36")
		assert.Contains(t, w.Body.String(), "R$ 414")

		w = client.do(http.MethodPost, "/listings/l1/buy/next", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Compra realizada com sucesso!")
		assert.Equal(t, 1, fake.createPurchaseCalls)
		assert.Equal(t, models.PaymentMethodPix, fake.lastPurchase.PaymentMethod)
		assert.Equal(t, models.DeliveryMethodSedex, fake.lastPurchase.DeliveryMethod)
		assert.Equal(t, models.PurchaseStatusPending, fake.lastPurchase.Status)
	})

	t.Run("GuardBlocksAdvanceWithoutSelection", func(t *testing.T) {
		fake := &fakeDataBackend{listings: storefrontFixture()}
		client := newTestStorefront(t, fake)
		client.do(http.MethodGet, "/", nil)

		client.do(http.MethodGet, "/listings/l1/buy", nil)
		client.do(http.MethodPost, "/listings/l1/buy/next", nil)

		// Still on the payment step
		w := client.do(http.MethodGet, "/listings/l1/buy", nil)
		assert.Contains(t, w.Body.String(), "Como você quer pagar?")
		assert.Equal(t, 0, fake.createPurchaseCalls)
	})

	t.Run("BackKeepsSelections", func(t *testing.T) {
		fake := &fakeDataBackend{listings: storefrontFixture()}
		client := newTestStorefront(t, fake)
		client.do(http.MethodGet, "/", nil)

		client.do(http.MethodGet, "/listings/l1/buy", nil)
		client.do(http.MethodPost, "/listings/l1/buy/next", url.Values{"payment_method": {"boleto"}})
		client.do(http.MethodPost, "/listings/l1/buy/back", nil)

		w := client.do(http.MethodGet, "/listings/l1/buy", nil)
		assert.Contains(t, w.Body.String(), "Como você quer pagar?")
		assert.Contains(t, w.Body.String(), `value="boleto" checked`)
	})

	t.Run("WizardWithoutStartRedirectsToBuyPage", func(t *testing.T) {
		fake := &fakeDataBackend{listings: storefrontFixture()}
		client := newTestStorefront(t, fake)
		client.do(http.MethodGet, "/", nil)

		w := client.do(http.MethodPost, "/listings/l1/buy/next", url.Values{"payment_method": {"pix"}})
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/listings/l1/buy", w.Header().Get("Location"))
	})
}
