package pricing

import (
	"github.com/shopspring/decimal"

	"bloomfundr-api/internal/utils"
)

var hundred = decimal.NewFromInt(100)

// Input carries the percentages agreed at campaign setup. All percentages
// are 0-100 values; fee percentages come from configuration, never literals.
type Input struct {
	FloristPrice         decimal.Decimal
	OrgProfitPercent     decimal.Decimal
	PlatformFeePercent   decimal.Decimal
	ProcessingFeePercent decimal.Decimal
}

// Breakdown is the read-only result of a pricing computation.
type Breakdown struct {
	SuggestedRetailPrice decimal.Decimal `json:"suggestedRetailPrice"`
	MinimumRetailPrice   decimal.Decimal `json:"minimumRetailPrice"`
	FloristReceives      decimal.Decimal `json:"floristReceives"`
	OrgProfit            decimal.Decimal `json:"orgProfit"`
	PlatformFee          decimal.Decimal `json:"platformFee"`
	ProcessingFee        decimal.Decimal `json:"processingFee"`
}

// Split is the outcome of pricing at an arbitrary retail price.
type Split struct {
	FloristReceives decimal.Decimal `json:"floristReceives"`
	OrgProfit       decimal.Decimal `json:"orgProfit"`
	PlatformFee     decimal.Decimal `json:"platformFee"`
	ProcessingFee   decimal.Decimal `json:"processingFee"`
	IsProfitable    bool            `json:"isProfitable"`
}

// ProductPricing is one product line as configured on a campaign.
type ProductPricing struct {
	FloristPrice         decimal.Decimal
	OrgProfitPercent     decimal.Decimal
	PlatformFeePercent   decimal.Decimal
	ProcessingFeePercent decimal.Decimal
	RetailPrice          decimal.Decimal
	IsCustomPrice        bool
}

// ProjectionRow estimates revenue at one sales volume, averaged per product.
type ProjectionRow struct {
	Volume         int             `json:"volume"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	FloristRevenue decimal.Decimal `json:"floristRevenue"`
	OrgRevenue     decimal.Decimal `json:"orgRevenue"`
}

// SuggestedPricing derives the retail price at which the florist receives
// exactly in.FloristPrice after the three percentage-of-retail deductions.
//
// When the percentages sum to 100 or more no finite retail price exists;
// the breakdown degenerates to retail == minimum == florist price with all
// amounts zero. Callers detect infeasibility as OrgProfit zero despite a
// positive OrgProfitPercent, so pricing forms can explain the state inline
// instead of failing.
func SuggestedPricing(in Input) Breakdown {
	k := in.OrgProfitPercent.Add(in.PlatformFeePercent).Add(in.ProcessingFeePercent).Div(hundred)
	feeK := in.PlatformFeePercent.Add(in.ProcessingFeePercent).Div(hundred)
	one := decimal.NewFromInt(1)

	if k.Cmp(one) >= 0 {
		price := utils.RoundCents(in.FloristPrice)
		return Breakdown{
			SuggestedRetailPrice: price,
			MinimumRetailPrice:   price,
			FloristReceives:      price,
			OrgProfit:            decimal.Zero,
			PlatformFee:          decimal.Zero,
			ProcessingFee:        decimal.Zero,
		}
	}

	// Unique price p with p*(1-k) == floristPrice. Amounts derive from the
	// unrounded price, then round independently to cents.
	retail := in.FloristPrice.Div(one.Sub(k))

	minimum := in.FloristPrice
	if feeK.Cmp(one) < 0 {
		minimum = in.FloristPrice.Div(one.Sub(feeK))
	}

	return Breakdown{
		SuggestedRetailPrice: utils.RoundCents(retail),
		MinimumRetailPrice:   utils.RoundCents(minimum),
		FloristReceives:      utils.RoundCents(in.FloristPrice),
		OrgProfit:            utils.RoundCents(utils.PctOf(retail, in.OrgProfitPercent)),
		PlatformFee:          utils.RoundCents(utils.PctOf(retail, in.PlatformFeePercent)),
		ProcessingFee:        utils.RoundCents(utils.PctOf(retail, in.ProcessingFeePercent)),
	}
}

// ActualRevenueSplit prices at a custom retail price. The florist price is
// a guaranteed floor, so FloristReceives is always floristPrice; the
// organization absorbs any shortfall, clamped at zero with IsProfitable
// reporting the misconfiguration.
func ActualRevenueSplit(floristPrice, retailPrice, platformFeePercent, processingFeePercent decimal.Decimal) Split {
	platformFee := utils.PctOf(retailPrice, platformFeePercent)
	processingFee := utils.PctOf(retailPrice, processingFeePercent)

	rawProfit := retailPrice.Sub(floristPrice).Sub(platformFee).Sub(processingFee)

	return Split{
		FloristReceives: utils.RoundCents(floristPrice),
		OrgProfit:       utils.RoundCents(utils.MaxDecimal(rawProfit, decimal.Zero)),
		PlatformFee:     utils.RoundCents(platformFee),
		ProcessingFee:   utils.RoundCents(processingFee),
		IsProfitable:    rawProfit.Sign() >= 0,
	}
}

// ProjectRevenue estimates totals at each volume across the campaign's
// products. Products priced at a custom retail price use that price,
// others the suggested price. Each row reports the per-product average
// rather than a weighted total.
func ProjectRevenue(products []ProductPricing, volumes []int) []ProjectionRow {
	rows := make([]ProjectionRow, 0, len(volumes))
	if len(products) == 0 {
		for _, v := range volumes {
			rows = append(rows, ProjectionRow{Volume: v})
		}
		return rows
	}

	count := decimal.NewFromInt(int64(len(products)))
	for _, v := range volumes {
		vol := decimal.NewFromInt(int64(v))
		total := decimal.Zero
		florist := decimal.Zero
		org := decimal.Zero

		for _, p := range products {
			price := p.RetailPrice
			var profit decimal.Decimal
			if p.IsCustomPrice {
				profit = ActualRevenueSplit(p.FloristPrice, price, p.PlatformFeePercent, p.ProcessingFeePercent).OrgProfit
			} else {
				b := SuggestedPricing(Input{
					FloristPrice:         p.FloristPrice,
					OrgProfitPercent:     p.OrgProfitPercent,
					PlatformFeePercent:   p.PlatformFeePercent,
					ProcessingFeePercent: p.ProcessingFeePercent,
				})
				price = b.SuggestedRetailPrice
				profit = b.OrgProfit
			}
			total = total.Add(price.Mul(vol))
			florist = florist.Add(p.FloristPrice.Mul(vol))
			org = org.Add(profit.Mul(vol))
		}

		rows = append(rows, ProjectionRow{
			Volume:         v,
			TotalRevenue:   utils.RoundCents(total.Div(count)),
			FloristRevenue: utils.RoundCents(florist.Div(count)),
			OrgRevenue:     utils.RoundCents(org.Div(count)),
		})
	}
	return rows
}
