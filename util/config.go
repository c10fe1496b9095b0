package util

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variable.
type Config struct {
	Environment       string   `mapstructure:"ENVIRONMENT"`
	AllowedOrigins    []string `mapstructure:"ALLOWED_ORIGINS"`
	DBSource          string   `mapstructure:"DB_SOURCE"`
	MigrationURL      string   `mapstructure:"MIGRATION_URL"`
	RedisAddress      string   `mapstructure:"REDIS_ADDRESS"`
	RedisPassword     string   `mapstructure:"REDIS_PASSWORD"`
	HTTPServerAddress string   `mapstructure:"HTTP_SERVER_ADDRESS"`

	// 调度算法配置（每次调度装配成 algorithm.DispatchConfig 传入，核心不读全局状态）
	DispatchMaxOrdersPerCourier int           `mapstructure:"DISPATCH_MAX_ORDERS_PER_COURIER"` // 单个骑手最大订单数
	DispatchMaxGroupingDistance float64       `mapstructure:"DISPATCH_MAX_GROUPING_DISTANCE"`  // km - 可合并配送的商家最大间距
	DispatchMaxAdditionalWait   int           `mapstructure:"DISPATCH_MAX_ADDITIONAL_WAIT"`    // 分钟 - 可容忍的出餐时间差
	DispatchMinOrdersForHybrid  int           `mapstructure:"DISPATCH_MIN_ORDERS_FOR_HYBRID"`  // 触发混合策略的最小订单数
	DispatchSearchRadius        float64       `mapstructure:"DISPATCH_SEARCH_RADIUS"`          // km - 骑手搜索半径
	DispatchDistanceWeight      float64       `mapstructure:"DISPATCH_DISTANCE_WEIGHT"`        // 骑手评分：距离权重
	DispatchPrepTimeWeight      float64       `mapstructure:"DISPATCH_PREP_TIME_WEIGHT"`       // 骑手评分：出餐时间权重
	DispatchOrderCountWeight    float64       `mapstructure:"DISPATCH_ORDER_COUNT_WEIGHT"`     // 骑手评分：订单数权重
	DispatchWorkloadWeight      float64       `mapstructure:"DISPATCH_WORKLOAD_WEIGHT"`        // 骑手评分：当前负载权重
	DispatchRedispatchCron      string        `mapstructure:"DISPATCH_REDISPATCH_CRON"`        // cron 表达式 - 未分派订单补发频率
	DispatchStaleGroupAge       time.Duration `mapstructure:"DISPATCH_STALE_GROUP_AGE"`        // 超过该时长仍有未分派订单的组会被补发
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	// Normalize common quoted values from .env (e.g. REDIS_PASSWORD="...")
	config.RedisPassword = trimOptionalQuotes(config.RedisPassword)
	return
}

func trimOptionalQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\"")
	s = strings.TrimSuffix(s, "\"")
	s = strings.TrimPrefix(s, "'")
	s = strings.TrimSuffix(s, "'")
	return s
}
