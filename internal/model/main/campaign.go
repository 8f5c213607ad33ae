package mainmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign status lifecycle: draft -> active -> closed -> fulfilled.
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusClosed    = "closed"
	CampaignStatusFulfilled = "fulfilled"
)

// Campaign ties one organization to one florist for a selling window.
// The margin percentages and fee snapshot are fixed at the pricing step;
// once orders exist they are locked, since order fee snapshots were taken
// against them.
type Campaign struct {
	CampaignID           uint64          `gorm:"column:campaign_id;primaryKey" json:"campaignId"`
	OrgID                uint64          `gorm:"column:org_id;not null" json:"orgId"`
	FloristID            uint64          `gorm:"column:florist_id;not null" json:"floristId"`
	Title                string          `gorm:"column:title;size:100;not null" json:"title"`
	Status               string          `gorm:"column:status;size:20;not null" json:"status"`
	FloristMarginPercent decimal.Decimal `gorm:"column:florist_margin_percent;type:decimal(5,2);not null" json:"floristMarginPercent"`
	OrgMarginPercent     decimal.Decimal `gorm:"column:org_margin_percent;type:decimal(5,2);not null" json:"orgMarginPercent"`
	PlatformFeePercent   decimal.Decimal `gorm:"column:platform_fee_percent;type:decimal(5,2);not null" json:"platformFeePercent"`
	ProcessingFeePercent decimal.Decimal `gorm:"column:processing_fee_percent;type:decimal(5,2);not null" json:"processingFeePercent"`
	StartAt              *time.Time      `gorm:"column:start_at" json:"startAt"`
	EndAt                *time.Time      `gorm:"column:end_at" json:"endAt"`
	ClosedAt             *time.Time      `gorm:"column:closed_at" json:"closedAt"`
	CreateTime           time.Time       `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	UpdateTime           time.Time       `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
}

func (Campaign) TableName() string { return "bf_campaign" }
