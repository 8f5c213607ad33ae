package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSuggestedPricing(t *testing.T) {
	tests := []struct {
		name                               string
		florist, org, platform, processing string
		wantRetail, wantMin                string
		wantOrg, wantPlatform, wantProc    string
	}{
		{
			name:    "catalog scenario",
			florist: "20", org: "25", platform: "10", processing: "3",
			wantRetail: "32.26", wantMin: "22.99",
			wantOrg: "8.06", wantPlatform: "3.23", wantProc: "0.97",
		},
		{
			name:    "zero org profit",
			florist: "20", org: "0", platform: "10", processing: "3",
			wantRetail: "22.99", wantMin: "22.99",
			wantOrg: "0", wantPlatform: "2.3", wantProc: "0.69",
		},
		{
			name:    "zero florist price",
			florist: "0", org: "25", platform: "10", processing: "3",
			wantRetail: "0", wantMin: "0",
			wantOrg: "0", wantPlatform: "0", wantProc: "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := SuggestedPricing(Input{
				FloristPrice:         dec(tt.florist),
				OrgProfitPercent:     dec(tt.org),
				PlatformFeePercent:   dec(tt.platform),
				ProcessingFeePercent: dec(tt.processing),
			})
			if !b.SuggestedRetailPrice.Equal(dec(tt.wantRetail)) {
				t.Errorf("retail = %s, want %s", b.SuggestedRetailPrice, tt.wantRetail)
			}
			if !b.MinimumRetailPrice.Equal(dec(tt.wantMin)) {
				t.Errorf("minimum = %s, want %s", b.MinimumRetailPrice, tt.wantMin)
			}
			if !b.OrgProfit.Equal(dec(tt.wantOrg)) {
				t.Errorf("org profit = %s, want %s", b.OrgProfit, tt.wantOrg)
			}
			if !b.PlatformFee.Equal(dec(tt.wantPlatform)) {
				t.Errorf("platform fee = %s, want %s", b.PlatformFee, tt.wantPlatform)
			}
			if !b.ProcessingFee.Equal(dec(tt.wantProc)) {
				t.Errorf("processing fee = %s, want %s", b.ProcessingFee, tt.wantProc)
			}
			if !b.FloristReceives.Equal(dec(tt.florist)) {
				t.Errorf("florist receives = %s, want %s", b.FloristReceives, tt.florist)
			}
		})
	}
}

func TestSuggestedPricing_Infeasible(t *testing.T) {
	// 50 + 40 + 20 = 110% of retail; no finite price exists.
	b := SuggestedPricing(Input{
		FloristPrice:         dec("10"),
		OrgProfitPercent:     dec("50"),
		PlatformFeePercent:   dec("40"),
		ProcessingFeePercent: dec("20"),
	})
	if !b.SuggestedRetailPrice.Equal(dec("10")) {
		t.Errorf("retail = %s, want florist price 10", b.SuggestedRetailPrice)
	}
	if !b.MinimumRetailPrice.Equal(dec("10")) {
		t.Errorf("minimum = %s, want florist price 10", b.MinimumRetailPrice)
	}
	if !b.OrgProfit.IsZero() || !b.PlatformFee.IsZero() || !b.ProcessingFee.IsZero() {
		t.Errorf("expected zero amounts, got org=%s platform=%s processing=%s",
			b.OrgProfit, b.PlatformFee, b.ProcessingFee)
	}
}

func TestSuggestedPricing_ExactlyHundredPercent(t *testing.T) {
	b := SuggestedPricing(Input{
		FloristPrice:         dec("15"),
		OrgProfitPercent:     dec("87"),
		PlatformFeePercent:   dec("10"),
		ProcessingFeePercent: dec("3"),
	})
	if !b.SuggestedRetailPrice.Equal(dec("15")) || !b.OrgProfit.IsZero() {
		t.Errorf("k=1 should degenerate: retail=%s org=%s", b.SuggestedRetailPrice, b.OrgProfit)
	}
}

func TestSuggestedPricing_Determinism(t *testing.T) {
	in := Input{
		FloristPrice:         dec("17.35"),
		OrgProfitPercent:     dec("22.5"),
		PlatformFeePercent:   dec("10"),
		ProcessingFeePercent: dec("3"),
	}
	a := SuggestedPricing(in)
	b := SuggestedPricing(in)
	if a.SuggestedRetailPrice.String() != b.SuggestedRetailPrice.String() ||
		a.OrgProfit.String() != b.OrgProfit.String() {
		t.Errorf("repeated calls differ: %+v vs %+v", a, b)
	}
}

func TestActualRevenueSplit(t *testing.T) {
	s := ActualRevenueSplit(dec("20"), dec("40"), dec("10"), dec("3"))
	if !s.FloristReceives.Equal(dec("20")) {
		t.Errorf("florist receives = %s, want 20", s.FloristReceives)
	}
	if !s.PlatformFee.Equal(dec("4")) {
		t.Errorf("platform fee = %s, want 4", s.PlatformFee)
	}
	if !s.ProcessingFee.Equal(dec("1.2")) {
		t.Errorf("processing fee = %s, want 1.2", s.ProcessingFee)
	}
	// 40 - 20 - 4 - 1.2
	if !s.OrgProfit.Equal(dec("14.8")) {
		t.Errorf("org profit = %s, want 14.8", s.OrgProfit)
	}
	if !s.IsProfitable {
		t.Error("expected profitable split")
	}
}

func TestActualRevenueSplit_BelowFloor(t *testing.T) {
	// Retail barely above the florist price: fees push the raw profit negative.
	s := ActualRevenueSplit(dec("20"), dec("21"), dec("10"), dec("3"))
	if !s.OrgProfit.IsZero() {
		t.Errorf("org profit = %s, want 0 (clamped)", s.OrgProfit)
	}
	if s.IsProfitable {
		t.Error("expected IsProfitable=false below the cost floor")
	}
	if !s.FloristReceives.Equal(dec("20")) {
		t.Errorf("florist floor violated: %s", s.FloristReceives)
	}
}

func TestActualRevenueSplit_BreakEven(t *testing.T) {
	// 100 - 87 - 10 - 3 == 0: break-even still counts as profitable.
	s := ActualRevenueSplit(dec("87"), dec("100"), dec("10"), dec("3"))
	if !s.OrgProfit.IsZero() {
		t.Errorf("org profit = %s, want 0", s.OrgProfit)
	}
	if !s.IsProfitable {
		t.Error("break-even should report IsProfitable=true")
	}
}

func TestRoundTrip(t *testing.T) {
	in := Input{
		FloristPrice:         dec("20"),
		OrgProfitPercent:     dec("25"),
		PlatformFeePercent:   dec("10"),
		ProcessingFeePercent: dec("3"),
	}
	b := SuggestedPricing(in)
	s := ActualRevenueSplit(in.FloristPrice, b.SuggestedRetailPrice, in.PlatformFeePercent, in.ProcessingFeePercent)

	if !s.FloristReceives.Equal(in.FloristPrice) {
		t.Errorf("round trip lost florist price: %s", s.FloristReceives)
	}
	drift := s.OrgProfit.Sub(b.OrgProfit).Abs()
	if drift.Cmp(dec("0.01")) > 0 {
		t.Errorf("round trip org profit drift %s exceeds a cent (%s vs %s)",
			drift, s.OrgProfit, b.OrgProfit)
	}
}

func TestProjectRevenue(t *testing.T) {
	products := []ProductPricing{
		{
			// Suggested price 32.26, org profit 8.06 per unit.
			FloristPrice:         dec("20"),
			OrgProfitPercent:     dec("25"),
			PlatformFeePercent:   dec("10"),
			ProcessingFeePercent: dec("3"),
		},
		{
			// Custom price: 30 - 10 - 3 - 0.9 = 16.10 profit per unit.
			FloristPrice:         dec("10"),
			PlatformFeePercent:   dec("10"),
			ProcessingFeePercent: dec("3"),
			RetailPrice:          dec("30"),
			IsCustomPrice:        true,
		},
	}
	rows := ProjectRevenue(products, []int{10, 50})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	// Per-product averages at volume 10.
	r := rows[0]
	if r.Volume != 10 {
		t.Errorf("volume = %d, want 10", r.Volume)
	}
	if !r.TotalRevenue.Equal(dec("311.30")) {
		t.Errorf("total revenue = %s, want 311.30", r.TotalRevenue)
	}
	if !r.FloristRevenue.Equal(dec("150")) {
		t.Errorf("florist revenue = %s, want 150", r.FloristRevenue)
	}
	if !r.OrgRevenue.Equal(dec("120.80")) {
		t.Errorf("org revenue = %s, want 120.80", r.OrgRevenue)
	}
}

func TestProjectRevenue_NoProducts(t *testing.T) {
	rows := ProjectRevenue(nil, []int{10, 25})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, r := range rows {
		if !r.TotalRevenue.IsZero() || !r.FloristRevenue.IsZero() || !r.OrgRevenue.IsZero() {
			t.Errorf("empty campaign should project zero: %+v", r)
		}
	}
}
