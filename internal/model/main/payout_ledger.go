package mainmodel

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Payout ledger status lifecycle: pending -> processing -> completed | failed.
const (
	PayoutStatusPending    = "pending"
	PayoutStatusProcessing = "processing"
	PayoutStatusCompleted  = "completed"
	PayoutStatusFailed     = "failed"
)

const (
	PayoutPartyFlorist      = "florist"
	PayoutPartyOrganization = "organization"
)

// PayoutSnapshot is the full breakdown stored on the ledger entry, kept as
// JSON so a run can be audited long after order tables rotate.
type PayoutSnapshot struct {
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalProcessingFees decimal.Decimal `json:"totalProcessingFees"`
	TotalPlatformFees   decimal.Decimal `json:"totalPlatformFees"`
	FloristTotal        decimal.Decimal `json:"floristTotal"`
	OrgTotal            decimal.Decimal `json:"orgTotal"`
	PaidOrderCount      int             `json:"paidOrderCount"`
}

func (s *PayoutSnapshot) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("PayoutSnapshot scan failed: %v", value)
	}
	return json.Unmarshal(bytes, s)
}

func (s PayoutSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// PayoutLedger is one party's payable amount from one campaign closeout.
// The external transfer worker drives Status; this service only creates
// pending rows.
type PayoutLedger struct {
	LedgerID   uint64          `gorm:"column:ledger_id;primaryKey" json:"ledgerId"`
	CampaignID uint64          `gorm:"column:campaign_id;not null;index" json:"campaignId"`
	Party      string          `gorm:"column:party;size:20;not null" json:"party"`
	PartyID    uint64          `gorm:"column:party_id;not null" json:"partyId"`
	Amount     decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	Status     string          `gorm:"column:status;size:20;not null" json:"status"`
	Snapshot   PayoutSnapshot  `gorm:"column:snapshot;type:json" json:"snapshot"`
	CreateTime time.Time       `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	UpdateTime time.Time       `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
	FinishTime *time.Time      `gorm:"column:finish_time" json:"finishTime"`
}

func (PayoutLedger) TableName() string { return "bf_payout_ledger" }
