package system

import (
	"context"

	"bloomfundr-api/internal/dal"
	"bloomfundr-api/internal/dto"
	mainmodel "bloomfundr-api/internal/model/main"
	rediskey "bloomfundr-api/internal/types/redis-key"
	"bloomfundr-api/internal/utils"
)

type ConfigSystem struct{}

// GetConfigByConfigKey reads one sys_config row straight from the DB.
func (s *ConfigSystem) GetConfigByConfigKey(configKey string) dto.ConfigDetailResponse {
	var config dto.ConfigDetailResponse
	dal.MainDB.Model(mainmodel.SysConfig{}).Where("config_key = ?", configKey).Last(&config)
	return config
}

// GetConfigCacheByConfigKey reads through the redis hash cache, falling
// back to the DB and populating the cache on miss.
func (s *ConfigSystem) GetConfigCacheByConfigKey(configKey string) dto.ConfigDetailResponse {
	var config dto.ConfigDetailResponse

	if configCache, _ := dal.RedisClient.HGet(context.Background(), rediskey.SysConfigKey(), configKey).Result(); configCache != "" {
		if err := utils.JSONToMap(configCache, &config); err == nil {
			return config
		}
	}

	config = s.GetConfigByConfigKey(configKey)
	if config.ConfigId > 0 {
		dal.RedisClient.HSet(context.Background(), rediskey.SysConfigKey(), configKey, utils.MapToJSON(&config)).Result()
	}

	return config
}
