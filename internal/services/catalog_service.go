package services

import (
	"context"
	"log"
	"sync"

	"videopecas-web/internal/backend"
	"videopecas-web/internal/models"
)

// CatalogBackend is the slice of the data backend the catalog consumes
type CatalogBackend interface {
	ListListings(ctx context.Context, filter backend.ListingFilter) ([]models.Listing, error)
	GetListing(ctx context.Context, listingID string) (*models.Listing, error)
	IncrementViewCount(ctx context.Context, listingID string) error
}

// CatalogService holds the page-session copy of the listing catalog. All
// reads render from this in-memory state; it is replaced wholesale on every
// load and mutated only by optimistic view-count bumps.
type CatalogService struct {
	backend CatalogBackend

	mu       sync.RWMutex
	listings []models.Listing
	filter   backend.ListingFilter
	degraded bool
}

// NewCatalogService creates a new catalog service
func NewCatalogService(b CatalogBackend) *CatalogService {
	return &CatalogService{backend: b}
}

// Load fetches the catalog for the given filter and replaces local state.
// On backend failure the page must never render empty: state falls back to a
// deterministic example listing and the error is returned so the caller can
// surface a transient notice.
func (s *CatalogService) Load(ctx context.Context, filter backend.ListingFilter) error {
	listings, err := s.backend.ListListings(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter

	if err != nil {
		log.Printf("catalog load failed, falling back to example data: %v", err)
		s.listings = []models.Listing{fallbackListing()}
		s.degraded = true
		return err
	}

	s.listings = listings
	s.degraded = false
	return nil
}

// Reload re-fetches the catalog with the filter of the last Load
func (s *CatalogService) Reload(ctx context.Context) error {
	s.mu.RLock()
	filter := s.filter
	s.mu.RUnlock()
	return s.Load(ctx, filter)
}

// Listings returns a copy of the current catalog state
func (s *CatalogService) Listings() []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Listing, len(s.listings))
	copy(out, s.listings)
	return out
}

// Degraded reports whether the current state is the failure fallback
func (s *CatalogService) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// Get returns the local copy of one listing
func (s *CatalogService) Get(listingID string) (models.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.listings {
		if s.listings[i].ID == listingID {
			return s.listings[i], true
		}
	}
	return models.Listing{}, false
}

// Ensure returns the local copy of a listing, fetching it from the backend
// when the catalog has not seen it yet (a deep link into a fresh process).
// Fetched listings join the local state so later lookups and view bumps see
// them.
func (s *CatalogService) Ensure(ctx context.Context, listingID string) (models.Listing, bool) {
	if listing, ok := s.Get(listingID); ok {
		return listing, true
	}

	listing, err := s.backend.GetListing(ctx, listingID)
	if err != nil {
		log.Printf("listing fetch failed for %s: %v", listingID, err)
		return models.Listing{}, false
	}

	s.mu.Lock()
	found := false
	for i := range s.listings {
		if s.listings[i].ID == listingID {
			found = true
			break
		}
	}
	if !found {
		s.listings = append(s.listings, *listing)
	}
	s.mu.Unlock()
	return s.Get(listingID)
}

// OpenVideo registers a view for the listing and returns its local copy.
// The backend increment is fire-and-forget from the catalog's perspective: a
// failure is logged and never blocks the viewer from opening. On success the
// local count is bumped by exactly +1 rather than re-fetched, so the
// displayed count may drift from backend truth until the next full reload.
func (s *CatalogService) OpenVideo(ctx context.Context, listingID string) (models.Listing, bool) {
	if err := s.backend.IncrementViewCount(ctx, listingID); err != nil {
		log.Printf("view count increment failed for listing %s: %v", listingID, err)
		return s.Get(listingID)
	}

	s.mu.Lock()
	for i := range s.listings {
		if s.listings[i].ID == listingID {
			s.listings[i].Views++
			break
		}
	}
	s.mu.Unlock()

	return s.Get(listingID)
}

// fallbackListing is the deterministic example card shown when the backend
// is unreachable.
func fallbackListing() models.Listing {
	return models.Listing{
		ID:           "exemplo-1",
		Title:        "Motor Parcial 1.0 Flex Gol G5",
		Price:        1200,
		Tier:         models.ListingTierPremium,
		Commission:   int(models.CommissionRate(models.ListingTierPremium)),
		VideoURL:     "https://www.w3schools.com/html/mov_bbb.mp4",
		ThumbnailURL: "https://images.unsplash.com/photo-1486262715619-67b85e0b08d3?w=400&h=300&fit=crop",
		Seller: models.Seller{
			ID:     "seller-exemplo",
			Name:   "João Silva",
			Rating: 4.8,
		},
		Location:     models.Location{City: "São Paulo", State: "SP"},
		VehicleBrand: "Volkswagen",
		Views:        245,
		Comments:     []models.Comment{},
	}
}
