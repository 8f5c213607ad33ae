package payout

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func campaignOrders() []Order {
	return []Order{
		{ID: 1, OrderNumber: "BF-1001", Subtotal: dec("100"), ProcessingFee: dec("3"), PlatformFee: dec("10"), PaymentStatus: StatusPaid},
		{ID: 2, OrderNumber: "BF-1002", Subtotal: dec("55.50"), ProcessingFee: dec("1.67"), PlatformFee: dec("5.55"), PaymentStatus: StatusPaid},
		{ID: 3, OrderNumber: "BF-1003", Subtotal: dec("70"), ProcessingFee: dec("2.10"), PlatformFee: dec("7"), PaymentStatus: StatusPending},
		{ID: 4, OrderNumber: "BF-1004", Subtotal: dec("42"), ProcessingFee: dec("1.26"), PlatformFee: dec("4.20"), PaymentStatus: StatusFailed},
		{ID: 5, OrderNumber: "BF-1005", Subtotal: dec("30"), ProcessingFee: dec("0.90"), PlatformFee: dec("3"), PaymentStatus: StatusRefunded},
	}
}

func TestCalculateCampaignPayouts(t *testing.T) {
	// Single paid order: available = 100 - 3 - 10 = 87,
	// florist share 40/60 = 2/3, org share 1/3.
	orders := []Order{
		{ID: 1, OrderNumber: "BF-2001", Subtotal: dec("100"), ProcessingFee: dec("3"), PlatformFee: dec("10"), PaymentStatus: StatusPaid},
	}
	cfg := MarginConfig{
		FloristMarginPercent: dec("40"),
		OrgMarginPercent:     dec("20"),
		PlatformFeePercent:   dec("10"),
	}

	b := CalculateCampaignPayouts(orders, cfg)
	if len(b.OrderPayouts) != 1 {
		t.Fatalf("expected 1 order payout, got %d", len(b.OrderPayouts))
	}
	op := b.OrderPayouts[0]
	if !op.FloristPayout.Equal(dec("58")) {
		t.Errorf("florist payout = %s, want 58.00", op.FloristPayout)
	}
	if !op.OrgPayout.Equal(dec("29")) {
		t.Errorf("org payout = %s, want 29.00", op.OrgPayout)
	}
	if !b.FloristTotal.Equal(dec("58")) || !b.OrgTotal.Equal(dec("29")) {
		t.Errorf("totals = %s/%s, want 58.00/29.00", b.FloristTotal, b.OrgTotal)
	}
	if !b.TotalRevenue.Equal(dec("100")) {
		t.Errorf("total revenue = %s, want 100", b.TotalRevenue)
	}
}

func TestCalculateCampaignPayouts_FiltersUnpaid(t *testing.T) {
	cfg := MarginConfig{FloristMarginPercent: dec("50"), OrgMarginPercent: dec("50")}
	b := CalculateCampaignPayouts(campaignOrders(), cfg)

	if len(b.OrderPayouts) != 2 {
		t.Fatalf("expected only the 2 paid orders, got %d payouts", len(b.OrderPayouts))
	}
	for _, op := range b.OrderPayouts {
		if op.OrderID != 1 && op.OrderID != 2 {
			t.Errorf("unpaid order %d leaked into payouts", op.OrderID)
		}
	}
	if !b.TotalRevenue.Equal(dec("155.50")) {
		t.Errorf("total revenue = %s, want 155.50 (paid orders only)", b.TotalRevenue)
	}
}

func TestCalculateCampaignPayouts_ZeroMarginFallback(t *testing.T) {
	// Both margins zero: legacy campaigns split 50/50, not an error.
	orders := []Order{
		{ID: 1, OrderNumber: "BF-3001", Subtotal: dec("113"), ProcessingFee: dec("3"), PlatformFee: dec("10"), PaymentStatus: StatusPaid},
	}
	cfg := MarginConfig{FloristMarginPercent: dec("0"), OrgMarginPercent: dec("0")}

	b := CalculateCampaignPayouts(orders, cfg)
	if !b.FloristTotal.Equal(dec("50")) {
		t.Errorf("florist total = %s, want 50.00", b.FloristTotal)
	}
	if !b.OrgTotal.Equal(dec("50")) {
		t.Errorf("org total = %s, want 50.00", b.OrgTotal)
	}
}

func TestCalculateCampaignPayouts_Empty(t *testing.T) {
	cfg := MarginConfig{FloristMarginPercent: dec("40"), OrgMarginPercent: dec("20")}
	b := CalculateCampaignPayouts(nil, cfg)
	if len(b.OrderPayouts) != 0 {
		t.Fatalf("expected no payouts, got %d", len(b.OrderPayouts))
	}
	if !b.FloristTotal.IsZero() || !b.OrgTotal.IsZero() || !b.TotalRevenue.IsZero() {
		t.Errorf("empty input should produce zero totals: %+v", b)
	}
}

func TestCalculateCampaignPayouts_Determinism(t *testing.T) {
	cfg := MarginConfig{FloristMarginPercent: dec("35"), OrgMarginPercent: dec("15")}
	a := CalculateCampaignPayouts(campaignOrders(), cfg)
	b := CalculateCampaignPayouts(campaignOrders(), cfg)

	if a.FloristTotal.String() != b.FloristTotal.String() ||
		a.OrgTotal.String() != b.OrgTotal.String() ||
		len(a.OrderPayouts) != len(b.OrderPayouts) {
		t.Errorf("repeated runs differ: %+v vs %+v", a, b)
	}
}

func TestCalculateCampaignPayouts_OrderIndependence(t *testing.T) {
	cfg := MarginConfig{FloristMarginPercent: dec("40"), OrgMarginPercent: dec("20")}
	orders := campaignOrders()
	reversed := make([]Order, len(orders))
	for i, o := range orders {
		reversed[len(orders)-1-i] = o
	}

	a := CalculateCampaignPayouts(orders, cfg)
	b := CalculateCampaignPayouts(reversed, cfg)
	if !a.FloristTotal.Equal(b.FloristTotal) || !a.OrgTotal.Equal(b.OrgTotal) {
		t.Errorf("totals depend on input ordering: %s/%s vs %s/%s",
			a.FloristTotal, a.OrgTotal, b.FloristTotal, b.OrgTotal)
	}
}

func TestCalculateCampaignPayouts_ShareConservation(t *testing.T) {
	cfg := MarginConfig{FloristMarginPercent: dec("37.5"), OrgMarginPercent: dec("12.5")}
	b := CalculateCampaignPayouts(campaignOrders(), cfg)

	cent := dec("0.01")
	for _, op := range b.OrderPayouts {
		available := op.Subtotal.Sub(op.ProcessingFee).Sub(op.PlatformFee)
		drift := op.FloristPayout.Add(op.OrgPayout).Sub(available).Abs()
		if drift.Cmp(cent) > 0 {
			t.Errorf("order %s: florist+org=%s drifts %s from available %s",
				op.OrderNumber, op.FloristPayout.Add(op.OrgPayout), drift, available)
		}
	}
}

func TestPartyPayout(t *testing.T) {
	cfg := MarginConfig{FloristMarginPercent: dec("40"), OrgMarginPercent: dec("20")}
	orders := campaignOrders()
	b := CalculateCampaignPayouts(orders, cfg)

	got, err := PartyPayout(orders, cfg, PartyFlorist)
	if err != nil {
		t.Fatalf("PartyPayout(florist): %v", err)
	}
	if !got.Equal(b.FloristTotal) {
		t.Errorf("florist payout = %s, want %s", got, b.FloristTotal)
	}

	got, err = PartyPayout(orders, cfg, PartyOrganization)
	if err != nil {
		t.Fatalf("PartyPayout(organization): %v", err)
	}
	if !got.Equal(b.OrgTotal) {
		t.Errorf("org payout = %s, want %s", got, b.OrgTotal)
	}

	if _, err = PartyPayout(orders, cfg, Party("platform")); err == nil {
		t.Error("expected error for unknown party")
	}
}
