package system

import (
	"log"

	"github.com/shopspring/decimal"

	"bloomfundr-api/internal/config"
)

var BotChatID string

// Config loads operator overrides from sys_config. The fee keys are the
// documented runtime override point for config.C.Fees.
func Config() {
	cs := &ConfigSystem{}

	BotChatID = cs.GetConfigCacheByConfigKey("sys.telegram.notify.group").ConfigValue
	log.Printf("ops alert chat id: %s", BotChatID)

	if v := cs.GetConfigCacheByConfigKey("fees.platform_percent").ConfigValue; v != "" {
		if pct, err := decimal.NewFromString(v); err == nil && pct.Sign() >= 0 {
			f, _ := pct.Float64()
			config.C.Fees.PlatformPercent = f
			log.Printf("platform fee percent overridden: %s", v)
		}
	}
	if v := cs.GetConfigCacheByConfigKey("fees.processing_percent").ConfigValue; v != "" {
		if pct, err := decimal.NewFromString(v); err == nil && pct.Sign() >= 0 {
			f, _ := pct.Float64()
			config.C.Fees.ProcessingPercent = f
			log.Printf("processing fee percent overridden: %s", v)
		}
	}
}
