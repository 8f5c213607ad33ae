package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCampaignProductReq configures one product at the pricing step.
// CustomRetailPrice overrides the suggested price when present.
type CreateCampaignProductReq struct {
	Name              string `json:"name" binding:"required"`
	FloristPrice      string `json:"florist_price" binding:"required,amountstr"`
	OrgProfitPercent  string `json:"org_profit_percent" binding:"required,percentstr"`
	CustomRetailPrice string `json:"custom_retail_price" binding:"omitempty,amountstr"`
}

type CreateCampaignReq struct {
	OrgID                uint64                     `json:"org_id" binding:"required"`
	FloristID            uint64                     `json:"florist_id" binding:"required"`
	Title                string                     `json:"title" binding:"required"`
	FloristMarginPercent string                     `json:"florist_margin_percent" binding:"required,percentstr"`
	OrgMarginPercent     string                     `json:"org_margin_percent" binding:"required,percentstr"`
	StartAt              string                     `json:"start_at" binding:"omitempty"`
	EndAt                string                     `json:"end_at" binding:"omitempty"`
	Products             []CreateCampaignProductReq `json:"products" binding:"required,min=1,dive"`
}

type CampaignProductVO struct {
	ProductID        uint64          `json:"product_id"`
	Name             string          `json:"name"`
	FloristPrice     decimal.Decimal `json:"florist_price"`
	OrgProfitPercent decimal.Decimal `json:"org_profit_percent"`
	RetailPrice      decimal.Decimal `json:"retail_price"`
	IsCustomPrice    bool            `json:"is_custom_price"`
}

type CampaignVO struct {
	CampaignID           uint64              `json:"campaign_id"`
	OrgID                uint64              `json:"org_id"`
	FloristID            uint64              `json:"florist_id"`
	Title                string              `json:"title"`
	Status               string              `json:"status"`
	FloristMarginPercent decimal.Decimal     `json:"florist_margin_percent"`
	OrgMarginPercent     decimal.Decimal     `json:"org_margin_percent"`
	PlatformFeePercent   decimal.Decimal     `json:"platform_fee_percent"`
	ProcessingFeePercent decimal.Decimal     `json:"processing_fee_percent"`
	Products             []CampaignProductVO `json:"products,omitempty"`
	ClosedAt             *time.Time          `json:"closed_at,omitempty"`
	CreateTime           time.Time           `json:"create_time"`
}
