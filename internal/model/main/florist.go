package mainmodel

import "time"

// Florist supplies and fulfils the products sold through campaigns.
type Florist struct {
	FloristID  uint64    `gorm:"column:florist_id;primaryKey" json:"floristId"`
	ShopName   string    `gorm:"column:shop_name;size:100;not null" json:"shopName"`
	Email      string    `gorm:"column:email;size:100;not null" json:"email"`
	PayoutRef  string    `gorm:"column:payout_ref;size:100" json:"payoutRef"` // linked payment account reference
	Status     int8      `gorm:"column:status;not null" json:"status"`        // 1 active, 0 disabled
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	UpdateTime time.Time `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
}

func (Florist) TableName() string { return "bf_florist" }
