package dto

// CampaignClosedEvent triggers the payout worker after a closeout.
type CampaignClosedEvent struct {
	CampaignID uint64 `json:"campaign_id"`
	ClosedAt   int64  `json:"closed_at"`
	RetryCount int    `json:"retry_count"`
}

// PayoutCreatedEvent hands a pending ledger row to the external funds
// transfer worker. Amount is a decimal string.
type PayoutCreatedEvent struct {
	CampaignID uint64 `json:"campaign_id"`
	LedgerID   uint64 `json:"ledger_id"`
	Party      string `json:"party"`
	PartyID    uint64 `json:"party_id"`
	PayoutRef  string `json:"payout_ref"`
	Amount     string `json:"amount"`
	CreatedAt  int64  `json:"created_at"`
}
