package mainmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignProduct is one sellable item on a campaign. FloristPrice is the
// fixed amount the florist requires per unit; RetailPrice is either the
// suggested price persisted at the pricing step or an organization's
// custom override (IsCustomPrice).
type CampaignProduct struct {
	ProductID        uint64          `gorm:"column:product_id;primaryKey" json:"productId"`
	CampaignID       uint64          `gorm:"column:campaign_id;not null;index" json:"campaignId"`
	Name             string          `gorm:"column:name;size:100;not null" json:"name"`
	FloristPrice     decimal.Decimal `gorm:"column:florist_price;type:decimal(10,2);not null" json:"floristPrice"`
	OrgProfitPercent decimal.Decimal `gorm:"column:org_profit_percent;type:decimal(5,2);not null" json:"orgProfitPercent"`
	RetailPrice      decimal.Decimal `gorm:"column:retail_price;type:decimal(10,2);not null" json:"retailPrice"`
	IsCustomPrice    bool            `gorm:"column:is_custom_price;not null" json:"isCustomPrice"`
	Active           bool            `gorm:"column:active;not null;default:true" json:"active"`
	CreateTime       time.Time       `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	UpdateTime       time.Time       `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
}

func (CampaignProduct) TableName() string { return "bf_campaign_product" }
