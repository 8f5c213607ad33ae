package payout

import (
	"errors"

	"github.com/shopspring/decimal"

	"bloomfundr-api/internal/utils"
)

type PaymentStatus string

const (
	StatusPending  PaymentStatus = "pending"
	StatusPaid     PaymentStatus = "paid"
	StatusFailed   PaymentStatus = "failed"
	StatusRefunded PaymentStatus = "refunded"
)

type Party string

const (
	PartyFlorist      Party = "florist"
	PartyOrganization Party = "organization"
)

var ErrInvalidParty = errors.New("party must be florist or organization")

// Order is an immutable snapshot of a campaign order. Fees are the values
// stored when the order was placed, never recomputed, so later fee config
// changes cannot desynchronize historical payouts.
type Order struct {
	ID            uint64
	OrderNumber   string
	Subtotal      decimal.Decimal
	ProcessingFee decimal.Decimal
	PlatformFee   decimal.Decimal
	PaymentStatus PaymentStatus
}

// MarginConfig is the split ratio agreed for a campaign, locked once
// orders exist.
type MarginConfig struct {
	FloristMarginPercent decimal.Decimal
	OrgMarginPercent     decimal.Decimal
	PlatformFeePercent   decimal.Decimal
}

// OrderPayout is the per-order distribution, rounded to cents.
type OrderPayout struct {
	OrderID       uint64          `json:"orderId"`
	OrderNumber   string          `json:"orderNumber"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ProcessingFee decimal.Decimal `json:"processingFee"`
	PlatformFee   decimal.Decimal `json:"platformFee"`
	FloristPayout decimal.Decimal `json:"floristPayout"`
	OrgPayout     decimal.Decimal `json:"orgPayout"`
}

// Breakdown aggregates all order payouts for a campaign. Always recomputed
// fresh from the given order snapshot.
type Breakdown struct {
	OrderPayouts        []OrderPayout   `json:"orderPayouts"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalProcessingFees decimal.Decimal `json:"totalProcessingFees"`
	TotalPlatformFees   decimal.Decimal `json:"totalPlatformFees"`
	FloristTotal        decimal.Decimal `json:"floristTotal"`
	OrgTotal            decimal.Decimal `json:"orgTotal"`
}

// CalculateCampaignPayouts splits post-fee revenue of the paid orders
// between florist and organization.
//
// Unpaid, failed and refunded orders contribute nothing and are silently
// excluded. When both margins are zero the pool splits 50/50; that is the
// agreed policy for legacy campaigns with no configured margins, not an
// error. Per-order amounts are rounded to cents before summing, which
// keeps the result independent of input ordering at the cost of up to a
// cent of drift versus an unrounded total.
func CalculateCampaignPayouts(orders []Order, cfg MarginConfig) Breakdown {
	floristShare := decimal.NewFromFloat(0.5)
	orgShare := decimal.NewFromFloat(0.5)
	totalMargin := cfg.FloristMarginPercent.Add(cfg.OrgMarginPercent)
	if totalMargin.Sign() > 0 {
		floristShare = cfg.FloristMarginPercent.Div(totalMargin)
		orgShare = cfg.OrgMarginPercent.Div(totalMargin)
	}

	b := Breakdown{
		OrderPayouts:        make([]OrderPayout, 0, len(orders)),
		TotalRevenue:        decimal.Zero,
		TotalProcessingFees: decimal.Zero,
		TotalPlatformFees:   decimal.Zero,
		FloristTotal:        decimal.Zero,
		OrgTotal:            decimal.Zero,
	}

	for _, o := range orders {
		if o.PaymentStatus != StatusPaid {
			continue
		}

		available := o.Subtotal.Sub(o.ProcessingFee).Sub(o.PlatformFee)

		op := OrderPayout{
			OrderID:       o.ID,
			OrderNumber:   o.OrderNumber,
			Subtotal:      utils.RoundCents(o.Subtotal),
			ProcessingFee: utils.RoundCents(o.ProcessingFee),
			PlatformFee:   utils.RoundCents(o.PlatformFee),
			FloristPayout: utils.RoundCents(available.Mul(floristShare)),
			OrgPayout:     utils.RoundCents(available.Mul(orgShare)),
		}
		b.OrderPayouts = append(b.OrderPayouts, op)

		b.TotalRevenue = b.TotalRevenue.Add(op.Subtotal)
		b.TotalProcessingFees = b.TotalProcessingFees.Add(op.ProcessingFee)
		b.TotalPlatformFees = b.TotalPlatformFees.Add(op.PlatformFee)
		b.FloristTotal = b.FloristTotal.Add(op.FloristPayout)
		b.OrgTotal = b.OrgTotal.Add(op.OrgPayout)
	}

	b.TotalRevenue = utils.RoundCents(b.TotalRevenue)
	b.TotalProcessingFees = utils.RoundCents(b.TotalProcessingFees)
	b.TotalPlatformFees = utils.RoundCents(b.TotalPlatformFees)
	b.FloristTotal = utils.RoundCents(b.FloristTotal)
	b.OrgTotal = utils.RoundCents(b.OrgTotal)
	return b
}

// PartyPayout returns one party's total from CalculateCampaignPayouts.
func PartyPayout(orders []Order, cfg MarginConfig, party Party) (decimal.Decimal, error) {
	b := CalculateCampaignPayouts(orders, cfg)
	switch party {
	case PartyFlorist:
		return b.FloristTotal, nil
	case PartyOrganization:
		return b.OrgTotal, nil
	default:
		return decimal.Zero, ErrInvalidParty
	}
}
