package ordermodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order payment status values. Only paid orders participate in payouts.
const (
	PayStatusPending  = "pending"
	PayStatusPaid     = "paid"
	PayStatusFailed   = "failed"
	PayStatusRefunded = "refunded"
)

// CampaignOrder lives in the monthly-sharded tables bf_order_{YYYYMM}_p{n};
// the table name is resolved through internal/shard, so no TableName here.
//
// ProcessingFee and PlatformFee are snapshots computed from the campaign
// fee config at order time. Payout math reads these stored values and
// never recomputes them, so later fee changes cannot rewrite history.
type CampaignOrder struct {
	OrderID       uint64          `gorm:"column:order_id;primaryKey;not null" json:"orderId"`
	OrderNumber   string          `gorm:"column:order_number;type:varchar(50);not null" json:"orderNumber"`
	CampaignID    uint64          `gorm:"column:campaign_id;not null" json:"campaignId"`
	ProductID     uint64          `gorm:"column:product_id;not null" json:"productId"`
	SellerName    string          `gorm:"column:seller_name;type:varchar(50)" json:"sellerName"` // student seller credited with the sale
	CustomerName  string          `gorm:"column:customer_name;type:varchar(50);not null" json:"customerName"`
	CustomerEmail string          `gorm:"column:customer_email;type:varchar(100);not null" json:"customerEmail"`
	Quantity      int             `gorm:"column:quantity;not null" json:"quantity"`
	Subtotal      decimal.Decimal `gorm:"column:subtotal;type:decimal(12,2);not null" json:"subtotal"`
	ProcessingFee decimal.Decimal `gorm:"column:processing_fee;type:decimal(10,2);not null" json:"processingFee"`
	PlatformFee   decimal.Decimal `gorm:"column:platform_fee;type:decimal(10,2);not null" json:"platformFee"`
	PayStatus     string          `gorm:"column:pay_status;type:varchar(20);not null" json:"payStatus"`
	PayRef        string          `gorm:"column:pay_ref;type:varchar(100)" json:"payRef"` // provider transaction reference
	PaidAt        *time.Time      `gorm:"column:paid_at" json:"paidAt"`
	CreateTime    *time.Time      `gorm:"column:create_time;autoCreateTime;not null" json:"createTime"`
	UpdateTime    *time.Time      `gorm:"column:update_time;autoUpdateTime;not null" json:"updateTime"`
}
