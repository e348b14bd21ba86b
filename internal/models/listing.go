package models

import (
	"fmt"
)

// ListingTier represents the commercial tier of a listing
type ListingTier string

const (
	ListingTierNormal  ListingTier = "normal"
	ListingTierPremium ListingTier = "premium"
	ListingTierNew     ListingTier = "new"
)

// IsValid checks if the tier is one of the known values
func (t ListingTier) IsValid() bool {
	return t == ListingTierNormal || t == ListingTierPremium || t == ListingTierNew
}

// Seller is the subset of a user identity shown on listing cards
type Seller struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Avatar *string `json:"avatar_url,omitempty"`
}

// RatingDisplay returns the seller rating formatted with one fractional digit
func (s Seller) RatingDisplay() string {
	return fmt.Sprintf("%.1f", s.Rating)
}

// Location is the city/state pair attached to a listing
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Display returns the location as a formatted string
func (l Location) Display() string {
	return l.City + " - " + l.State
}

// Listing represents a single for-sale part posting backed by a video
type Listing struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Price        int64       `json:"price"` // integer currency units (whole reais)
	Tier         ListingTier `json:"type"`
	VideoURL     string      `json:"video_url"`
	ThumbnailURL string      `json:"thumbnail_url"`
	Seller       Seller      `json:"seller"`
	Location     Location    `json:"location"`
	VehicleBrand string      `json:"vehicle_brand"`
	Views        int64       `json:"views"`
	Comments     []Comment   `json:"comments"`

	// Commission is the backend-stored rate in percent, shown on cards.
	// Monetary math never reads it; see CommissionAmount.
	Commission int `json:"commission"`
}

// CommentCount returns the number of comments on the listing
func (l Listing) CommentCount() int {
	return len(l.Comments)
}

// TierLabel returns the badge text for the listing's tier
func (l Listing) TierLabel() string {
	switch l.Tier {
	case ListingTierPremium:
		return "Premium"
	case ListingTierNew:
		return "Novo"
	default:
		return "Normal"
	}
}

// PriceDisplay returns the price formatted with thousands separators (pt-BR)
func (l Listing) PriceDisplay() string {
	return FormatCurrency(l.Price)
}

// FormatCurrency renders integer currency units with pt-BR thousands
// separators, e.g. 1200 -> "1.200".
func FormatCurrency(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	if len(s) > 3 {
		var out []byte
		for i, c := range []byte(s) {
			if i > 0 && (len(s)-i)%3 == 0 {
				out = append(out, '.')
			}
			out = append(out, c)
		}
		s = string(out)
	}
	if neg {
		return "-" + s
	}
	return s
}
