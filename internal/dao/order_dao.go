package dao

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"bloomfundr-api/internal/dal"
	ordermodel "bloomfundr-api/internal/model/order"
	"bloomfundr-api/internal/shard"
)

const orderTableBase = "bf_order"

type OrderDao struct {
	DB *gorm.DB
}

// factory, defaults to dal.OrderDB
func NewOrderDao() *OrderDao {
	if dal.OrderDB == nil {
		log.Panic("[FATAL] dal.OrderDB is nil - database not initialized")
	}
	return &OrderDao{DB: dal.OrderDB}
}

func (r *OrderDao) Insert(ctx context.Context, o *ordermodel.CampaignOrder, ts time.Time) error {
	table := shard.Table(orderTableBase, ts, o.OrderID)
	return r.DB.WithContext(ctx).Table(table).Create(o).Error
}

func (r *OrderDao) GetByID(orderID uint64, ts time.Time) (*ordermodel.CampaignOrder, error) {
	table := shard.Table(orderTableBase, ts, orderID)
	var o ordermodel.CampaignOrder
	if err := r.DB.Table(table).Where("order_id=?", orderID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// MarkPayStatus advances an order's payment status: paid/failed from
// pending, refunded from paid. RowsAffected zero means the transition
// already happened, which webhook retries hit routinely.
func (r *OrderDao) MarkPayStatus(orderID uint64, ts time.Time, status, payRef string) error {
	table := shard.Table(orderTableBase, ts, orderID)
	now := time.Now()
	updates := map[string]interface{}{
		"pay_status": status,
		"pay_ref":    payRef,
	}
	from := ordermodel.PayStatusPending
	switch status {
	case ordermodel.PayStatusPaid:
		updates["paid_at"] = &now
	case ordermodel.PayStatusRefunded:
		from = ordermodel.PayStatusPaid
	}
	res := r.DB.Table(table).
		Where("order_id=? AND pay_status=?", orderID, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByCampaign scans every shard of the given months for the campaign's
// orders. Only missing shard tables (months with no traffic) are skipped;
// any other scan error aborts, so payout math never runs on a partial
// order set.
func (r *OrderDao) ListByCampaign(campaignID uint64, months []time.Time) ([]ordermodel.CampaignOrder, error) {
	var tables []string
	for _, m := range months {
		tables = append(tables, shard.AllTables(orderTableBase, m)...)
	}
	return scanOrderTables(tables, func(table string) ([]ordermodel.CampaignOrder, error) {
		var batch []ordermodel.CampaignOrder
		err := r.DB.Table(table).Where("campaign_id=?", campaignID).Find(&batch).Error
		return batch, err
	})
}

func scanOrderTables(tables []string, query func(table string) ([]ordermodel.CampaignOrder, error)) ([]ordermodel.CampaignOrder, error) {
	var all []ordermodel.CampaignOrder
	for _, table := range tables {
		batch, err := query(table)
		if err != nil {
			if isMissingTable(err) {
				continue
			}
			return nil, err
		}
		all = append(all, batch...)
	}
	return all, nil
}

// isMissingTable matches MySQL 1146 (table doesn't exist), the normal
// state for shard months with no traffic.
func isMissingTable(err error) bool {
	var my *mysql.MySQLError
	return errors.As(err, &my) && my.Number == 1146
}
