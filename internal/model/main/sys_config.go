package mainmodel

import "time"

// SysConfig holds operator-editable settings, e.g. the fee override keys
// fees.platform_percent / fees.processing_percent and the ops alert chat.
type SysConfig struct {
	ConfigId    int `gorm:"primaryKey;autoIncrement"`
	ConfigName  string
	ConfigKey   string
	ConfigValue string
	ConfigType  string `gorm:"default:N"`
	CreateBy    string
	CreateTime  time.Time `gorm:"autoCreateTime"`
	UpdateBy    string
	UpdateTime  time.Time `gorm:"autoUpdateTime"`
	Remark      string
}

func (SysConfig) TableName() string {
	return "sys_config"
}
