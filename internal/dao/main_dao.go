package dao

import (
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bloomfundr-api/internal/dal"
	mainmodel "bloomfundr-api/internal/model/main"
)

// ErrLedgerExists marks a replayed closeout against an already-settled
// campaign.
var ErrLedgerExists = errors.New("payout ledger already exists for campaign")

type MainDao struct {
	DB *gorm.DB
}

// factory, defaults to dal.MainDB
func NewMainDao() *MainDao {
	if dal.MainDB == nil {
		log.Panic("[FATAL] dal.MainDB is nil - database not initialized")
	}
	return &MainDao{DB: dal.MainDB}
}

func (r *MainDao) GetOrganization(orgID uint64) (*mainmodel.Organization, error) {
	var m mainmodel.Organization
	if err := r.DB.Where("org_id=?", orgID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MainDao) GetFlorist(floristID uint64) (*mainmodel.Florist, error) {
	var m mainmodel.Florist
	if err := r.DB.Where("florist_id=?", floristID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MainDao) GetCampaign(campaignID uint64) (*mainmodel.Campaign, error) {
	var c mainmodel.Campaign
	if err := r.DB.Where("campaign_id=?", campaignID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MainDao) GetCampaignProducts(campaignID uint64) ([]mainmodel.CampaignProduct, error) {
	var ps []mainmodel.CampaignProduct
	if err := r.DB.Where("campaign_id=?", campaignID).Order("product_id").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *MainDao) GetCampaignProduct(productID uint64) (*mainmodel.CampaignProduct, error) {
	var p mainmodel.CampaignProduct
	if err := r.DB.Where("product_id=?", productID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateCampaign writes the campaign and its products in one transaction.
func (r *MainDao) CreateCampaign(c *mainmodel.Campaign, products []mainmodel.CampaignProduct) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		for i := range products {
			products[i].CampaignID = c.CampaignID
		}
		return tx.Create(&products).Error
	})
}

// UpdateCampaignStatus moves the campaign from one status to another;
// the from guard makes concurrent transitions lose cleanly.
func (r *MainDao) UpdateCampaignStatus(campaignID uint64, from, to string, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = to
	res := r.DB.Model(&mainmodel.Campaign{}).
		Where("campaign_id=? AND status=?", campaignID, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MainDao) UpdateProductRetailPrice(productID uint64, retail decimal.Decimal, isCustom bool) error {
	return r.DB.Model(&mainmodel.CampaignProduct{}).
		Where("product_id=?", productID).
		Updates(map[string]interface{}{"retail_price": retail, "is_custom_price": isCustom}).Error
}

// CreatePayoutLedger writes both party rows atomically. The existence
// check keeps a replayed closeout from double-crediting a campaign.
func (r *MainDao) CreatePayoutLedger(rows []mainmodel.PayoutLedger) error {
	if len(rows) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing mainmodel.PayoutLedger
		err := tx.Where("campaign_id=?", rows[0].CampaignID).First(&existing).Error
		if err == nil {
			return ErrLedgerExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&rows).Error
	})
}

func (r *MainDao) GetPayoutLedger(campaignID uint64) ([]mainmodel.PayoutLedger, error) {
	var rows []mainmodel.PayoutLedger
	if err := r.DB.Where("campaign_id=?", campaignID).Order("ledger_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
