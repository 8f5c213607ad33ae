package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateOrderReq struct {
	CampaignID    uint64 `json:"campaign_id" binding:"required"`
	ProductID     uint64 `json:"product_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,gt=0"`
	SellerName    string `json:"seller_name" binding:"omitempty"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
}

type OrderVO struct {
	OrderID       uint64          `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	CampaignID    uint64          `json:"campaign_id"`
	ProductID     uint64          `json:"product_id"`
	Quantity      int             `json:"quantity"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ProcessingFee decimal.Decimal `json:"processing_fee"`
	PlatformFee   decimal.Decimal `json:"platform_fee"`
	PayStatus     string          `json:"pay_status"`
	CreatedAt     *time.Time      `json:"created_at"`
}

// PaymentWebhookReq is the provider callback marking an order paid or
// failed. Signed with the MD5 param signature; tran_datetime is a
// millisecond epoch checked for freshness.
type PaymentWebhookReq struct {
	OrderNumber  string `json:"order_number" binding:"required"`
	Status       string `json:"status" binding:"required,oneof=paid failed refunded"`
	Amount       string `json:"amount" binding:"required,amountstr"`
	PayRef       string `json:"pay_ref" binding:"omitempty"`
	TranDatetime string `json:"tran_datetime" binding:"required"`
	Sign         string `json:"sign" binding:"required"`
}
