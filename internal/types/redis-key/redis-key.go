package rediskey

import "strconv"

const projectPrefix = "bloomfundr"

// SysConfigKey holds the cached sys_config rows as a hash.
func SysConfigKey() string {
	return projectPrefix + ":system:config"
}

// PayoutRunKey locks one campaign's payout closeout run.
func PayoutRunKey(campaignID uint64) string {
	return projectPrefix + ":payout:run:" + strconv.FormatUint(campaignID, 10)
}
