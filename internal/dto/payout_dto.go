package dto

import "github.com/shopspring/decimal"

// OrderPayoutVO is one order's distribution inside a payout breakdown.
type OrderPayoutVO struct {
	OrderID       uint64          `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ProcessingFee decimal.Decimal `json:"processing_fee"`
	PlatformFee   decimal.Decimal `json:"platform_fee"`
	FloristPayout decimal.Decimal `json:"florist_payout"`
	OrgPayout     decimal.Decimal `json:"org_payout"`
}

// PayoutBreakdownVO is the preview/commit result for a campaign.
type PayoutBreakdownVO struct {
	CampaignID          uint64          `json:"campaign_id"`
	OrderPayouts        []OrderPayoutVO `json:"order_payouts"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalProcessingFees decimal.Decimal `json:"total_processing_fees"`
	TotalPlatformFees   decimal.Decimal `json:"total_platform_fees"`
	FloristTotal        decimal.Decimal `json:"florist_total"`
	OrgTotal            decimal.Decimal `json:"org_total"`
	PaidOrderCount      int             `json:"paid_order_count"`
}

// PartyPayoutReq asks for one party's total owed from a campaign.
type PartyPayoutReq struct {
	CampaignID uint64 `form:"campaign_id" binding:"required"`
	Party      string `form:"party" binding:"required,oneof=florist organization"`
}

type PartyPayoutVO struct {
	CampaignID uint64          `json:"campaign_id"`
	Party      string          `json:"party"`
	Amount     decimal.Decimal `json:"amount"`
}

// PayoutCommitResp reports written ledger rows after a closeout run.
type PayoutCommitResp struct {
	CampaignID      uint64            `json:"campaign_id"`
	FloristLedgerID uint64            `json:"florist_ledger_id"`
	OrgLedgerID     uint64            `json:"org_ledger_id"`
	Breakdown       PayoutBreakdownVO `json:"breakdown"`
}
