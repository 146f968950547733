package models

import "testing"

func TestRarityFor_Bands(t *testing.T) {
	cases := []struct {
		amount int64
		want   Rarity
	}{
		{1, RarityCommon},
		{10, RarityCommon},
		{11, RarityUncommon},
		{50, RarityUncommon},
		{100, RarityUncommon},
		{101, RarityRare},
		{1000, RarityRare},
		{1001, RarityEpic},
		{5000, RarityEpic},
		{10000, RarityEpic},
		{10001, RarityLegendary},
		{1_000_000, RarityLegendary},
	}
	for _, tc := range cases {
		if got := RarityFor(tc.amount); got != tc.want {
			t.Errorf("RarityFor(%d) = %s, want %s", tc.amount, got, tc.want)
		}
	}
}

func TestCoupon_BeforeSave_DerivesRarity(t *testing.T) {
	c := &Coupon{Code: "X", Amount: 5000, Rarity: RarityCommon} // снаружи подсунули не ту rarity
	if err := c.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if c.Rarity != RarityEpic {
		t.Errorf("rarity expected Epic, got %s", c.Rarity)
	}
}

func TestCoupon_BeforeSave_AmountBounds(t *testing.T) {
	for _, amount := range []int64{0, -5, 1_000_001} {
		c := &Coupon{Code: "X", Amount: amount}
		if err := c.BeforeSave(nil); err == nil {
			t.Errorf("amount %d expected to be rejected", amount)
		}
	}
}
