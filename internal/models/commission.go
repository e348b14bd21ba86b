package models

// Commission rates per listing tier, in whole percent. This is the single
// canonical table: every monetary split in the storefront goes through the
// functions below, never through the rate column the backend stores on
// listing rows.
var commissionRates = map[ListingTier]int64{
	ListingTierNormal:  8,
	ListingTierPremium: 15,
	ListingTierNew:     5,
}

// CommissionRate returns the platform's percentage cut for a tier.
// Unknown tiers fall back to the normal rate.
func CommissionRate(tier ListingTier) int64 {
	if rate, ok := commissionRates[tier]; ok {
		return rate
	}
	return commissionRates[ListingTierNormal]
}

// CommissionAmount returns the platform's cut of a price in integer currency
// units. Integer floor division keeps the split exact:
// CommissionAmount + SellerAmount == price for every tier and price.
func CommissionAmount(price int64, tier ListingTier) int64 {
	return price * CommissionRate(tier) / 100
}

// SellerAmount returns what the seller receives after the platform's cut
func SellerAmount(price int64, tier ListingTier) int64 {
	return price - CommissionAmount(price, tier)
}
