package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"videopecas-web/internal/backend"
	"videopecas-web/internal/models"
)

// WizardStep identifies a step of the purchase wizard
type WizardStep string

const (
	StepPayment  WizardStep = "payment"
	StepDelivery WizardStep = "delivery"
	StepConfirm  WizardStep = "confirm"
)

// ErrWizardNotReady marks a submit attempted before the confirm step
var ErrWizardNotReady = errors.New("wizard has not reached the confirm step")

// Wizard holds the accumulated selections of one purchase flow. Forward
// transitions are guarded; backward transitions are always allowed and never
// clear previously entered data, so re-entering a later step shows the prior
// selections intact.
type Wizard struct {
	ListingID      string
	Step           WizardStep
	PaymentMethod  models.PaymentMethod
	DeliveryMethod models.DeliveryMethod
	ZipCode        string
}

// NewWizard starts a wizard at the payment step
func NewWizard(listingID string) *Wizard {
	return &Wizard{ListingID: listingID, Step: StepPayment}
}

// CanAdvance reports whether the current step's guard is satisfied
func (w *Wizard) CanAdvance() bool {
	switch w.Step {
	case StepPayment:
		return w.PaymentMethod.IsValid()
	case StepDelivery:
		return w.DeliveryMethod.IsValid() && strings.TrimSpace(w.ZipCode) != ""
	default:
		return false
	}
}

// Next advances one step when the guard allows it. There is no path that
// skips a step: confirm is only reachable by stepping through delivery.
// Returns false, leaving the state unchanged, when the guard fails or the
// wizard is already at confirm.
func (w *Wizard) Next() bool {
	if !w.CanAdvance() {
		return false
	}
	switch w.Step {
	case StepPayment:
		w.Step = StepDelivery
	case StepDelivery:
		w.Step = StepConfirm
	default:
		return false
	}
	return true
}

// Back steps backward unconditionally, keeping all entered data
func (w *Wizard) Back() bool {
	switch w.Step {
	case StepDelivery:
		w.Step = StepPayment
	case StepConfirm:
		w.Step = StepDelivery
	default:
		return false
	}
	return true
}

// PurchaseSummary is the confirm screen's commission split. Amounts are
// computed from the listing's own tier via the canonical commission
// functions, never from the backend-supplied rate field.
type PurchaseSummary struct {
	Price            int64
	CommissionRate   int64
	CommissionAmount int64
	SellerAmount     int64
}

// Summarize computes the confirm-screen split for a listing
func Summarize(listing models.Listing) PurchaseSummary {
	return PurchaseSummary{
		Price:            listing.Price,
		CommissionRate:   models.CommissionRate(listing.Tier),
		CommissionAmount: models.CommissionAmount(listing.Price, listing.Tier),
		SellerAmount:     models.SellerAmount(listing.Price, listing.Tier),
	}
}

// PurchaseBackend is the slice of the data backend the wizard consumes
type PurchaseBackend interface {
	CreatePurchase(ctx context.Context, input backend.PurchaseInput) (*models.Purchase, error)
}

// PurchaseService keeps one active wizard per guest session. The page only
// ever has a single purchase flow open, so a wizard started for a different
// listing replaces the previous one.
type PurchaseService struct {
	backend PurchaseBackend

	mu      sync.Mutex
	wizards map[string]*Wizard // keyed by session ID
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(b PurchaseBackend) *PurchaseService {
	return &PurchaseService{
		backend: b,
		wizards: make(map[string]*Wizard),
	}
}

// Start returns the session's wizard for the listing, creating or resetting
// it as needed. An in-progress wizard for the same listing is resumed with
// its selections intact.
func (s *PurchaseService) Start(sessionID, listingID string) *Wizard {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.wizards[sessionID]; ok && w.ListingID == listingID {
		return w
	}
	w := NewWizard(listingID)
	s.wizards[sessionID] = w
	return w
}

// Wizard returns the session's active wizard, if any
func (s *PurchaseService) Wizard(sessionID string) (*Wizard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[sessionID]
	return w, ok
}

// Abandon discards the session's wizard
func (s *PurchaseService) Abandon(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, sessionID)
}

// Submit records the purchase for a wizard that has reached confirm. The
// record snapshots the buyer's contact fields from the guest session, carries
// the accumulated selections, and starts in the pending status. The wizard is
// discarded only after the backend accepts the record, so a failed submit can
// be retried by the user.
func (s *PurchaseService) Submit(ctx context.Context, sessionID string, buyer GuestSession) (*models.Purchase, error) {
	s.mu.Lock()
	w, ok := s.wizards[sessionID]
	s.mu.Unlock()
	if !ok || w.Step != StepConfirm {
		return nil, ErrWizardNotReady
	}

	purchase, err := s.backend.CreatePurchase(ctx, backend.PurchaseInput{
		ListingID:      w.ListingID,
		BuyerID:        buyer.ID,
		BuyerName:      buyer.Name,
		BuyerEmail:     buyer.Email,
		BuyerPhone:     buyer.Phone,
		BuyerCity:      buyer.City,
		BuyerState:     buyer.State,
		PaymentMethod:  w.PaymentMethod,
		DeliveryMethod: w.DeliveryMethod,
		ZipCode:        strings.TrimSpace(w.ZipCode),
		Status:         models.PurchaseStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("submit purchase: %w", err)
	}

	s.Abandon(sessionID)
	return purchase, nil
}
