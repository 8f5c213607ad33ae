package dto

import "github.com/shopspring/decimal"

// SuggestPricingReq asks for the retail price covering a florist's price
// point. Amounts travel as strings and are parsed to decimals at this
// boundary. Fee percent overrides are optional; absent values resolve
// from the fee configuration.
type SuggestPricingReq struct {
	FloristPrice         string `json:"florist_price" binding:"required,amountstr"`
	OrgProfitPercent     string `json:"org_profit_percent" binding:"required,percentstr"`
	PlatformFeePercent   string `json:"platform_fee_percent" binding:"omitempty,percentstr"`
	ProcessingFeePercent string `json:"processing_fee_percent" binding:"omitempty,percentstr"`
}

// PricingBreakdownVO is the computed breakdown returned to pricing forms.
type PricingBreakdownVO struct {
	SuggestedRetailPrice decimal.Decimal `json:"suggested_retail_price"`
	MinimumRetailPrice   decimal.Decimal `json:"minimum_retail_price"`
	FloristReceives      decimal.Decimal `json:"florist_receives"`
	OrgProfit            decimal.Decimal `json:"org_profit"`
	PlatformFee          decimal.Decimal `json:"platform_fee"`
	ProcessingFee        decimal.Decimal `json:"processing_fee"`
	Feasible             bool            `json:"feasible"`
}

// RevenueSplitReq prices a custom retail price against the florist floor.
type RevenueSplitReq struct {
	FloristPrice         string `json:"florist_price" binding:"required,amountstr"`
	RetailPrice          string `json:"retail_price" binding:"required,amountstr"`
	PlatformFeePercent   string `json:"platform_fee_percent" binding:"omitempty,percentstr"`
	ProcessingFeePercent string `json:"processing_fee_percent" binding:"omitempty,percentstr"`
}

type RevenueSplitVO struct {
	FloristReceives decimal.Decimal `json:"florist_receives"`
	OrgProfit       decimal.Decimal `json:"org_profit"`
	PlatformFee     decimal.Decimal `json:"platform_fee"`
	ProcessingFee   decimal.Decimal `json:"processing_fee"`
	IsProfitable    bool            `json:"is_profitable"`
}

// UpdateRetailPriceReq overrides a product's retail price.
type UpdateRetailPriceReq struct {
	RetailPrice string `json:"retail_price" binding:"required,amountstr"`
}

// ProjectionReq estimates campaign revenue at the given unit volumes.
type ProjectionReq struct {
	CampaignID uint64 `json:"campaign_id" binding:"required"`
	Volumes    []int  `json:"volumes" binding:"required,min=1,dive,gt=0"`
}

type ProjectionRowVO struct {
	Volume         int             `json:"volume"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	FloristRevenue decimal.Decimal `json:"florist_revenue"`
	OrgRevenue     decimal.Decimal `json:"org_revenue"`
}
