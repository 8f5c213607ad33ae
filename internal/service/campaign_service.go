package service

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"bloomfundr-api/internal/config"
	"bloomfundr-api/internal/constant"
	"bloomfundr-api/internal/dao"
	"bloomfundr-api/internal/dto"
	"bloomfundr-api/internal/idgen"
	mainmodel "bloomfundr-api/internal/model/main"
	"bloomfundr-api/internal/mq"
	"bloomfundr-api/internal/pricing"
	"bloomfundr-api/internal/utils/timeutil"
)

type CampaignService struct {
	mainDao *dao.MainDao
}

func NewCampaignService() *CampaignService {
	return &CampaignService{mainDao: dao.NewMainDao()}
}

// Create sets up a campaign with its products at the pricing step. The
// platform/processing fee percentages in force are snapshotted onto the
// campaign so later config changes never touch a running campaign.
func (s *CampaignService) Create(req dto.CreateCampaignReq) (dto.CampaignVO, error) {
	var vo dto.CampaignVO

	org, err := s.mainDao.GetOrganization(req.OrgID)
	if err != nil {
		return vo, constant.NewError(constant.CodeOrganizationNotFound)
	}
	if org.Status != 1 {
		return vo, constant.NewError(constant.CodeOrganizationDisabled)
	}
	florist, err := s.mainDao.GetFlorist(req.FloristID)
	if err != nil {
		return vo, constant.NewError(constant.CodeFloristNotFound)
	}
	if florist.Status != 1 {
		return vo, constant.NewError(constant.CodeFloristDisabled)
	}

	floristMargin, err := parsePercent(req.FloristMarginPercent)
	if err != nil {
		return vo, constant.NewError(constant.CodeCampaignMarginInvalid)
	}
	orgMargin, err := parsePercent(req.OrgMarginPercent)
	if err != nil {
		return vo, constant.NewError(constant.CodeCampaignMarginInvalid)
	}

	platform := decimal.NewFromFloat(config.C.Fees.PlatformPercent)
	processing := decimal.NewFromFloat(config.C.Fees.ProcessingPercent)

	campaign := mainmodel.Campaign{
		CampaignID:           idgen.New(),
		OrgID:                req.OrgID,
		FloristID:            req.FloristID,
		Title:                req.Title,
		Status:               mainmodel.CampaignStatusActive,
		FloristMarginPercent: floristMargin,
		OrgMarginPercent:     orgMargin,
		PlatformFeePercent:   platform,
		ProcessingFeePercent: processing,
	}
	if req.StartAt != "" {
		if t, err := timeutil.ParseISO8601(req.StartAt); err == nil {
			campaign.StartAt = &t
		}
	}
	if req.EndAt != "" {
		if t, err := timeutil.ParseISO8601(req.EndAt); err == nil {
			campaign.EndAt = &t
		}
	}

	products := make([]mainmodel.CampaignProduct, 0, len(req.Products))
	for _, p := range req.Products {
		floristPrice, err := parseAmount(p.FloristPrice)
		if err != nil {
			return vo, err
		}
		orgProfit, err := parsePercent(p.OrgProfitPercent)
		if err != nil {
			return vo, err
		}

		b := pricing.SuggestedPricing(pricing.Input{
			FloristPrice:         floristPrice,
			OrgProfitPercent:     orgProfit,
			PlatformFeePercent:   platform,
			ProcessingFeePercent: processing,
		})

		retail := b.SuggestedRetailPrice
		isCustom := false
		if p.CustomRetailPrice != "" {
			custom, err := parseAmount(p.CustomRetailPrice)
			if err != nil {
				return vo, err
			}
			if custom.Cmp(b.MinimumRetailPrice) < 0 {
				return vo, constant.NewError(constant.CodePricingBelowMinimum).
					WithData(map[string]interface{}{"minimum_retail_price": b.MinimumRetailPrice})
			}
			retail = custom
			isCustom = true
		}

		products = append(products, mainmodel.CampaignProduct{
			ProductID:        idgen.New(),
			Name:             p.Name,
			FloristPrice:     floristPrice,
			OrgProfitPercent: orgProfit,
			RetailPrice:      retail,
			IsCustomPrice:    isCustom,
			Active:           true,
		})
	}

	if err := s.mainDao.CreateCampaign(&campaign, products); err != nil {
		return vo, constant.NewError(constant.CodeDatabaseError)
	}
	return s.toVO(&campaign, products)
}

func (s *CampaignService) Get(campaignID uint64) (dto.CampaignVO, error) {
	var vo dto.CampaignVO
	campaign, err := s.mainDao.GetCampaign(campaignID)
	if err != nil {
		return vo, constant.NewError(constant.CodeCampaignNotFound)
	}
	products, err := s.mainDao.GetCampaignProducts(campaignID)
	if err != nil {
		return vo, constant.NewError(constant.CodeDatabaseError)
	}
	return s.toVO(campaign, products)
}

// Close ends the selling window and hands the campaign to the payout
// worker via campaign.closed.
func (s *CampaignService) Close(campaignID uint64) (dto.CampaignVO, error) {
	var vo dto.CampaignVO

	campaign, err := s.mainDao.GetCampaign(campaignID)
	if err != nil {
		return vo, constant.NewError(constant.CodeCampaignNotFound)
	}
	switch campaign.Status {
	case mainmodel.CampaignStatusActive:
	case mainmodel.CampaignStatusClosed, mainmodel.CampaignStatusFulfilled:
		return vo, constant.NewError(constant.CodeCampaignAlreadyClosed)
	default:
		return vo, constant.NewError(constant.CodeCampaignStatusInvalid)
	}

	now := time.Now()
	err = s.mainDao.UpdateCampaignStatus(campaignID, mainmodel.CampaignStatusActive, mainmodel.CampaignStatusClosed,
		map[string]interface{}{"closed_at": &now})
	if err != nil {
		return vo, constant.NewError(constant.CodeCampaignStatusInvalid)
	}

	_ = mq.PublishCampaignClosed(dto.CampaignClosedEvent{
		CampaignID: campaignID,
		ClosedAt:   now.Unix(),
	})

	campaign.Status = mainmodel.CampaignStatusClosed
	campaign.ClosedAt = &now
	return s.toVO(campaign, nil)
}

// Fulfill marks delivery done after payouts settle.
func (s *CampaignService) Fulfill(campaignID uint64) error {
	err := s.mainDao.UpdateCampaignStatus(campaignID, mainmodel.CampaignStatusClosed, mainmodel.CampaignStatusFulfilled, nil)
	if err != nil {
		return constant.NewError(constant.CodeCampaignStatusInvalid)
	}
	return nil
}

func (s *CampaignService) toVO(campaign *mainmodel.Campaign, products []mainmodel.CampaignProduct) (dto.CampaignVO, error) {
	var vo dto.CampaignVO
	if err := copier.Copy(&vo, campaign); err != nil {
		return vo, constant.NewError(constant.CodeInternalError)
	}
	for _, p := range products {
		var pv dto.CampaignProductVO
		if err := copier.Copy(&pv, &p); err != nil {
			return vo, constant.NewError(constant.CodeInternalError)
		}
		vo.Products = append(vo.Products, pv)
	}
	return vo, nil
}
