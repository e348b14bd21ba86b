package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommissionRate(t *testing.T) {
	t.Run("KnownTiers", func(t *testing.T) {
		assert.Equal(t, int64(8), CommissionRate(ListingTierNormal))
		assert.Equal(t, int64(15), CommissionRate(ListingTierPremium))
		assert.Equal(t, int64(5), CommissionRate(ListingTierNew))
	})

	t.Run("UnknownTierFallsBackToNormal", func(t *testing.T) {
		assert.Equal(t, int64(8), CommissionRate(ListingTier("destaque")))
		assert.Equal(t, int64(8), CommissionRate(ListingTier("")))
	})
}

func TestCommissionSplit(t *testing.T) {
	t.Run("PremiumListing", func(t *testing.T) {
		assert.Equal(t, int64(180), CommissionAmount(1200, ListingTierPremium))
		assert.Equal(t, int64(1020), SellerAmount(1200, ListingTierPremium))
	})

	t.Run("NormalListing", func(t *testing.T) {
		assert.Equal(t, int64(96), CommissionAmount(1200, ListingTierNormal))
		assert.Equal(t, int64(1104), SellerAmount(1200, ListingTierNormal))
	})

	t.Run("NewPartListing", func(t *testing.T) {
		assert.Equal(t, int64(60), CommissionAmount(1200, ListingTierNew))
		assert.Equal(t, int64(1140), SellerAmount(1200, ListingTierNew))
	})

	t.Run("OddPriceFloorsCommission", func(t *testing.T) {
		// 999 * 15 / 100 = 149.85, floored to 149
		assert.Equal(t, int64(149), CommissionAmount(999, ListingTierPremium))
		assert.Equal(t, int64(850), SellerAmount(999, ListingTierPremium))
	})

	t.Run("SplitAlwaysSumsToPrice", func(t *testing.T) {
		prices := []int64{0, 1, 7, 99, 100, 101, 999, 1200, 54321, 1000000}
		tiers := []ListingTier{ListingTierNormal, ListingTierPremium, ListingTierNew, ListingTier("unknown")}

		for _, price := range prices {
			for _, tier := range tiers {
				commission := CommissionAmount(price, tier)
				seller := SellerAmount(price, tier)
				assert.Equal(t, price, commission+seller, "price %d tier %s", price, tier)
				assert.GreaterOrEqual(t, commission, int64(0))
				assert.GreaterOrEqual(t, seller, int64(0))
			}
		}
	})
}
