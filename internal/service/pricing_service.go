package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"bloomfundr-api/internal/config"
	"bloomfundr-api/internal/constant"
	"bloomfundr-api/internal/dao"
	"bloomfundr-api/internal/dto"
	mainmodel "bloomfundr-api/internal/model/main"
	"bloomfundr-api/internal/pricing"
)

type PricingService struct {
	mainDao       *dao.MainDao
	campaignGroup singleflight.Group
}

func NewPricingService() *PricingService {
	return &PricingService{
		mainDao: dao.NewMainDao(),
	}
}

// resolveFees turns optional per-request overrides into concrete fee
// percentages, defaulting to the process-wide fee configuration.
func resolveFees(platformOverride, processingOverride string) (decimal.Decimal, decimal.Decimal, error) {
	platform := decimal.NewFromFloat(config.C.Fees.PlatformPercent)
	processing := decimal.NewFromFloat(config.C.Fees.ProcessingPercent)

	if platformOverride != "" {
		p, err := parsePercent(platformOverride)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		platform = p
	}
	if processingOverride != "" {
		p, err := parsePercent(processingOverride)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		processing = p
	}
	return platform, processing, nil
}

func parsePercent(s string) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(s)
	if err != nil || p.Sign() < 0 || p.Cmp(decimal.NewFromInt(100)) > 0 {
		return decimal.Zero, constant.NewError(constant.CodePricingPercentInvalid)
	}
	return p, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	a, err := decimal.NewFromString(s)
	if err != nil || a.Sign() < 0 {
		return decimal.Zero, constant.NewError(constant.CodePricingAmountInvalid)
	}
	return a, nil
}

// Suggest computes the retail price covering the florist price point at
// the requested organization profit.
func (s *PricingService) Suggest(req dto.SuggestPricingReq) (dto.PricingBreakdownVO, error) {
	var vo dto.PricingBreakdownVO

	floristPrice, err := parseAmount(req.FloristPrice)
	if err != nil {
		return vo, err
	}
	orgProfit, err := parsePercent(req.OrgProfitPercent)
	if err != nil {
		return vo, err
	}
	platform, processing, err := resolveFees(req.PlatformFeePercent, req.ProcessingFeePercent)
	if err != nil {
		return vo, err
	}

	b := pricing.SuggestedPricing(pricing.Input{
		FloristPrice:         floristPrice,
		OrgProfitPercent:     orgProfit,
		PlatformFeePercent:   platform,
		ProcessingFeePercent: processing,
	})
	if err := copier.Copy(&vo, &b); err != nil {
		return vo, constant.NewError(constant.CodeInternalError)
	}
	vo.Feasible = orgProfit.Add(platform).Add(processing).Cmp(decimal.NewFromInt(100)) < 0
	return vo, nil
}

// Split prices a custom retail price against the florist floor.
func (s *PricingService) Split(req dto.RevenueSplitReq) (dto.RevenueSplitVO, error) {
	var vo dto.RevenueSplitVO

	floristPrice, err := parseAmount(req.FloristPrice)
	if err != nil {
		return vo, err
	}
	retail, err := parseAmount(req.RetailPrice)
	if err != nil {
		return vo, err
	}
	platform, processing, err := resolveFees(req.PlatformFeePercent, req.ProcessingFeePercent)
	if err != nil {
		return vo, err
	}

	split := pricing.ActualRevenueSplit(floristPrice, retail, platform, processing)
	if err := copier.Copy(&vo, &split); err != nil {
		return vo, constant.NewError(constant.CodeInternalError)
	}
	return vo, nil
}

// Project estimates campaign revenue at each requested volume, using the
// campaign's fee snapshot rather than current config.
func (s *PricingService) Project(req dto.ProjectionReq) ([]dto.ProjectionRowVO, error) {
	key := fmt.Sprintf("campaign_products:%d", req.CampaignID)
	val, err, _ := s.campaignGroup.Do(key, func() (interface{}, error) {
		campaign, err := s.mainDao.GetCampaign(req.CampaignID)
		if err != nil {
			return nil, constant.NewError(constant.CodeCampaignNotFound)
		}
		products, err := s.mainDao.GetCampaignProducts(req.CampaignID)
		if err != nil {
			return nil, constant.NewError(constant.CodeDatabaseError)
		}
		return projectionInput{campaign: campaign, products: products}, nil
	})
	if err != nil {
		return nil, err
	}
	in := val.(projectionInput)

	items := make([]pricing.ProductPricing, 0, len(in.products))
	for _, p := range in.products {
		if !p.Active {
			continue
		}
		items = append(items, pricing.ProductPricing{
			FloristPrice:         p.FloristPrice,
			OrgProfitPercent:     p.OrgProfitPercent,
			PlatformFeePercent:   in.campaign.PlatformFeePercent,
			ProcessingFeePercent: in.campaign.ProcessingFeePercent,
			RetailPrice:          p.RetailPrice,
			IsCustomPrice:        p.IsCustomPrice,
		})
	}

	rows := pricing.ProjectRevenue(items, req.Volumes)
	vos := make([]dto.ProjectionRowVO, 0, len(rows))
	for _, r := range rows {
		vos = append(vos, dto.ProjectionRowVO{
			Volume:         r.Volume,
			TotalRevenue:   r.TotalRevenue,
			FloristRevenue: r.FloristRevenue,
			OrgRevenue:     r.OrgRevenue,
		})
	}
	return vos, nil
}

type projectionInput struct {
	campaign *mainmodel.Campaign
	products []mainmodel.CampaignProduct
}

// SetRetailPrice overrides one product's retail price with a custom
// value. Prices below the break-even floor are rejected at write time.
func (s *PricingService) SetRetailPrice(productID uint64, price string) (dto.CampaignProductVO, error) {
	var vo dto.CampaignProductVO

	retail, err := parseAmount(price)
	if err != nil {
		return vo, err
	}
	product, err := s.mainDao.GetCampaignProduct(productID)
	if err != nil {
		return vo, constant.NewError(constant.CodeProductNotFound)
	}
	campaign, err := s.mainDao.GetCampaign(product.CampaignID)
	if err != nil {
		return vo, constant.NewError(constant.CodeCampaignNotFound)
	}

	b := pricing.SuggestedPricing(pricing.Input{
		FloristPrice:         product.FloristPrice,
		OrgProfitPercent:     product.OrgProfitPercent,
		PlatformFeePercent:   campaign.PlatformFeePercent,
		ProcessingFeePercent: campaign.ProcessingFeePercent,
	})
	if retail.Cmp(b.MinimumRetailPrice) < 0 {
		return vo, constant.NewError(constant.CodePricingBelowMinimum).
			WithData(map[string]interface{}{"minimum_retail_price": b.MinimumRetailPrice})
	}

	if err := s.mainDao.UpdateProductRetailPrice(productID, retail, true); err != nil {
		return vo, constant.NewError(constant.CodeDatabaseError)
	}
	product.RetailPrice = retail
	product.IsCustomPrice = true
	if err := copier.Copy(&vo, product); err != nil {
		return vo, constant.NewError(constant.CodeInternalError)
	}
	return vo, nil
}
