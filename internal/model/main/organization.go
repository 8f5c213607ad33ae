package mainmodel

import "time"

// Organization is a fundraising group: a school, team or club.
type Organization struct {
	OrgID       uint64    `gorm:"column:org_id;primaryKey" json:"orgId"`
	Name        string    `gorm:"column:name;size:100;not null" json:"name"`
	ContactName string    `gorm:"column:contact_name;size:50" json:"contactName"`
	Email       string    `gorm:"column:email;size:100;not null" json:"email"`
	PayoutRef   string    `gorm:"column:payout_ref;size:100" json:"payoutRef"` // linked payment account reference
	Status      int8      `gorm:"column:status;not null" json:"status"`        // 1 active, 0 disabled
	CreateTime  time.Time `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	UpdateTime  time.Time `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
}

func (Organization) TableName() string { return "bf_organization" }
